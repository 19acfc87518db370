package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-api/internal/model"
)

type CVRepository interface {
	Create(ctx context.Context, cv *model.CV) error
	FindAll(ctx context.Context) ([]*model.CV, error)
	FindLatest(ctx context.Context) (*model.CV, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type cvRepository struct {
	db *gorm.DB
}

func NewCVRepository(db *gorm.DB) CVRepository {
	return &cvRepository{db: db}
}

func (r *cvRepository) Create(ctx context.Context, cv *model.CV) error {
	return r.db.WithContext(ctx).Create(cv).Error
}

func (r *cvRepository) FindAll(ctx context.Context) ([]*model.CV, error) {
	var cvs []*model.CV
	if err := r.db.WithContext(ctx).Find(&cvs).Error; err != nil {
		return nil, err
	}
	return cvs, nil
}

func (r *cvRepository) FindLatest(ctx context.Context) (*model.CV, error) {
	var cv model.CV
	if err := r.db.WithContext(ctx).Order("uploaded_at desc").First(&cv).Error; err != nil {
		return nil, err
	}
	return &cv, nil
}

func (r *cvRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CV{}, "id = ?", id).Error
}
