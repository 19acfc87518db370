package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is a portfolio entry. All projects are publicly readable; writes
// require an admin token.
type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	ImageURL    string    `gorm:"type:text" json:"imageUrl"`
	Tags        Tags      `gorm:"type:jsonb" json:"tags"`
	LiveLink    string    `gorm:"type:text" json:"liveLink"`
	GithubLink  string    `gorm:"type:text" json:"githubLink"`
	SpotifyLink string    `gorm:"type:text" json:"spotifyLink"`
	YoutubeLink string    `gorm:"type:text" json:"youtubeLink"`
	// Display priority, ascending. Lower numbers appear first.
	Order     int       `gorm:"column:display_order;default:0" json:"order"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID, err = uuid.NewV7()
	}
	return
}
