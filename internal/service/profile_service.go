package service

import (
	"context"
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"portfolio-api/internal/dto"
	"portfolio-api/internal/model"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/storage"
	"portfolio-api/pkg/apperror"
)

type ProfileService interface {
	UploadHeadshot(ctx context.Context, file *multipart.FileHeader) (*dto.HeadshotResponse, error)
	GetHeadshot(ctx context.Context) (*dto.HeadshotResponse, error)
}

type profileService struct {
	repo     repository.ProfileRepository
	files    *storage.LocalStorage
	maxBytes int64
}

func NewProfileService(repo repository.ProfileRepository, files *storage.LocalStorage, maxBytes int64) ProfileService {
	return &profileService{
		repo:     repo,
		files:    files,
		maxBytes: maxBytes,
	}
}

// UploadHeadshot stores the image under a fixed name so a new upload
// physically replaces the previous file, then upserts the single profile
// row.
func (s *profileService) UploadHeadshot(ctx context.Context, file *multipart.FileHeader) (*dto.HeadshotResponse, error) {
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return nil, apperror.BadRequest("Not an image file! Please upload JPG, PNG, GIF, or WEBP.")
	}
	if file.Size > s.maxBytes {
		return nil, apperror.BadRequest("File too large. Maximum size is 2MB.")
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	fileName := "headshot" + filepath.Ext(file.Filename)
	relPath, err := s.files.Save(storage.ProfileDir, fileName, src)
	if err != nil {
		return nil, err
	}

	profile := &model.Profile{HeadshotImageURL: relPath}
	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	saved, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.HeadshotResponse{
		HeadshotImageURL: saved.HeadshotImageURL,
		LastUpdatedAt:    saved.LastUpdatedAt,
	}, nil
}

func (s *profileService) GetHeadshot(ctx context.Context) (*dto.HeadshotResponse, error) {
	profile, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("No headshot image found")
		}
		return nil, err
	}
	if profile.HeadshotImageURL == "" {
		return nil, apperror.NotFound("No headshot image found")
	}

	return &dto.HeadshotResponse{
		HeadshotImageURL: profile.HeadshotImageURL,
		LastUpdatedAt:    profile.LastUpdatedAt,
	}, nil
}
