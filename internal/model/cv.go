package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CV is a singleton by convention: each upload deletes every prior row and
// its backing file before inserting the replacement.
type CV struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FileName     string    `gorm:"size:255;not null" json:"fileName"`
	OriginalName string    `gorm:"size:255;not null" json:"originalName"`
	FilePath     string    `gorm:"size:512;not null" json:"filePath"`
	MimeType     string    `gorm:"size:100;not null" json:"mimeType"`
	Size         int64     `gorm:"not null" json:"size"`
	UploadedAt   time.Time `gorm:"autoCreateTime" json:"uploadedAt"`
}

func (c *CV) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID, err = uuid.NewV7()
	}
	return
}
