package dto

import "time"

// CVInfoResponse carries what the client needs to build a download link;
// the binary itself is served statically.
type CVInfoResponse struct {
	FileName   string    `json:"fileName"`
	FilePath   string    `json:"filePath"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type HeadshotResponse struct {
	HeadshotImageURL string    `json:"headshotImageUrl"`
	LastUpdatedAt    time.Time `json:"lastUpdatedAt"`
}
