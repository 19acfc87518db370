package model

import "time"

// ProfileKey is the fixed primary key of the single profile row. Uploads
// upsert against it instead of relying on "find the first row".
const ProfileKey = "main"

type Profile struct {
	Key              string    `gorm:"size:20;primaryKey" json:"-"`
	HeadshotImageURL string    `gorm:"type:text" json:"headshotImageUrl"`
	LastUpdatedAt    time.Time `gorm:"autoUpdateTime" json:"lastUpdatedAt"`
}
