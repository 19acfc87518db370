package repository

import (
	"context"

	"gorm.io/gorm"

	"portfolio-api/internal/model"
)

type ContactRepository interface {
	Create(ctx context.Context, message *model.ContactMessage) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, message *model.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}
