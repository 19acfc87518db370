package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-api/internal/model"
)

type BlogRepository interface {
	Create(ctx context.Context, post *model.BlogPost) error
	FindAll(ctx context.Context) ([]*model.BlogPost, error)
	FindPublished(ctx context.Context) ([]*model.BlogPost, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.BlogPost, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	FindPublishedByIDs(ctx context.Context, ids []string) ([]*model.BlogPost, error)
	Save(ctx context.Context, post *model.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, post *model.BlogPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *blogRepository) FindAll(ctx context.Context) ([]*model.BlogPost, error) {
	var posts []*model.BlogPost
	err := r.db.WithContext(ctx).
		Order("display_order asc").
		Order("created_at desc").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogRepository) FindPublished(ctx context.Context) ([]*model.BlogPost, error) {
	var posts []*model.BlogPost
	err := r.db.WithContext(ctx).
		Where("status = ?", model.StatusPublished).
		Order("display_order asc").
		Order("published_at desc").
		Order("created_at desc").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.BlogPost, error) {
	var post model.BlogPost
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) FindPublishedBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	var post model.BlogPost
	err := r.db.WithContext(ctx).
		Where("slug = ? AND status = ?", slug, model.StatusPublished).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) FindBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	var post model.BlogPost
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) FindPublishedByIDs(ctx context.Context, ids []string) ([]*model.BlogPost, error) {
	var posts []*model.BlogPost
	err := r.db.WithContext(ctx).
		Where("id IN ? AND status = ?", ids, model.StatusPublished).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogRepository) Save(ctx context.Context, post *model.BlogPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.BlogPost{}, "id = ?", id).Error
}
