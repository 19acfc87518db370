package service

import (
	"context"
	"errors"
	"mime/multipart"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio-api/internal/dto"
	"portfolio-api/internal/model"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/storage"
	"portfolio-api/pkg/apperror"
)

const cvContentType = "application/pdf"

type CVService interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (*model.CV, error)
	GetCurrent(ctx context.Context) (*dto.CVInfoResponse, error)
	Delete(ctx context.Context) error
}

type cvService struct {
	repo     repository.CVRepository
	files    *storage.LocalStorage
	maxBytes int64
	log      *zap.Logger
}

func NewCVService(repo repository.CVRepository, files *storage.LocalStorage, maxBytes int64, log *zap.Logger) CVService {
	return &cvService{
		repo:     repo,
		files:    files,
		maxBytes: maxBytes,
		log:      log,
	}
}

// Upload replaces the current CV: every prior record and its backing file is
// removed before the new one is stored. Cleanup failures are logged but do
// not fail the upload.
func (s *cvService) Upload(ctx context.Context, file *multipart.FileHeader) (*model.CV, error) {
	if file.Header.Get("Content-Type") != cvContentType {
		return nil, apperror.BadRequest("Not a PDF file! Only PDF files are allowed.")
	}
	if file.Size > s.maxBytes {
		return nil, apperror.BadRequest("File too large. Maximum size is 5MB.")
	}

	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, old := range existing {
		if err := s.files.Remove(old.FilePath); err != nil {
			s.log.Warn("failed to remove old CV file",
				zap.String("path", old.FilePath), zap.Error(err))
		}
		if err := s.repo.Delete(ctx, old.ID); err != nil {
			s.log.Warn("failed to delete old CV record",
				zap.String("id", old.ID.String()), zap.Error(err))
		}
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	fileName := storage.UniqueName("cvFile", file.Filename)
	relPath, err := s.files.Save(storage.CVDir, fileName, src)
	if err != nil {
		return nil, err
	}

	cv := &model.CV{
		FileName:     fileName,
		OriginalName: file.Filename,
		FilePath:     relPath,
		MimeType:     file.Header.Get("Content-Type"),
		Size:         file.Size,
	}

	if err := s.repo.Create(ctx, cv); err != nil {
		// Don't leave an orphan file behind when the record never made it in.
		if rmErr := s.files.Remove(relPath); rmErr != nil {
			s.log.Warn("failed to remove orphan CV file",
				zap.String("path", relPath), zap.Error(rmErr))
		}
		return nil, err
	}

	return cv, nil
}

func (s *cvService) GetCurrent(ctx context.Context) (*dto.CVInfoResponse, error) {
	cv, err := s.repo.FindLatest(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("No CV found")
		}
		return nil, err
	}

	return &dto.CVInfoResponse{
		FileName:   cv.OriginalName,
		FilePath:   cv.FilePath,
		UploadedAt: cv.UploadedAt,
	}, nil
}

func (s *cvService) Delete(ctx context.Context) error {
	cv, err := s.repo.FindLatest(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("No CV to delete")
		}
		return err
	}

	if err := s.files.Remove(cv.FilePath); err != nil {
		s.log.Warn("failed to remove CV file",
			zap.String("path", cv.FilePath), zap.Error(err))
	}

	return s.repo.Delete(ctx, cv.ID)
}
