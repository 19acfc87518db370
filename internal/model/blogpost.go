package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// BlogPost is addressed publicly by slug, internally by id. PublishedAt is
// stamped the first time the post transitions to published and never
// cleared afterwards.
type BlogPost struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title            string     `gorm:"size:150;not null" json:"title"`
	Slug             string     `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Summary          string     `gorm:"size:300" json:"summary"`
	Content          string     `gorm:"type:text;not null" json:"content"`
	FeaturedImageURL string     `gorm:"type:text" json:"featuredImageUrl"`
	Author           string     `gorm:"size:100" json:"author"`
	Tags             Tags       `gorm:"type:jsonb" json:"tags"`
	Status           string     `gorm:"size:20;default:draft" json:"status"`
	YoutubeLink      string     `gorm:"type:text" json:"youtubeLink"`
	SpotifyLink      string     `gorm:"type:text" json:"spotifyLink"`
	Order            int        `gorm:"column:display_order;default:0" json:"order"`
	PublishedAt      *time.Time `json:"publishedAt"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *BlogPost) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID, err = uuid.NewV7()
	}
	return
}
