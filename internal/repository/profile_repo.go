package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portfolio-api/internal/model"
)

type ProfileRepository interface {
	Get(ctx context.Context) (*model.Profile, error)
	Upsert(ctx context.Context, profile *model.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Get(ctx context.Context) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).First(&profile, "key = ?", model.ProfileKey).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert writes the single profile row under its fixed key.
func (r *profileRepository) Upsert(ctx context.Context, profile *model.Profile) error {
	profile.Key = model.ProfileKey
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			UpdateAll: true,
		}).
		Create(profile).Error
}
