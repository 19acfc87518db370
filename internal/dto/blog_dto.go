package dto

type CreateBlogPostRequest struct {
	Title            string  `json:"title"`
	Slug             string  `json:"slug"`
	Summary          string  `json:"summary"`
	Content          string  `json:"content"`
	FeaturedImageURL string  `json:"featuredImageUrl"`
	Tags             TagList `json:"tags"`
	Status           string  `json:"status" binding:"omitempty,oneof=draft published"`
	YoutubeLink      string  `json:"youtubeLink"`
	SpotifyLink      string  `json:"spotifyLink"`
	Order            int     `json:"order"`
}

type UpdateBlogPostRequest struct {
	Title            *string  `json:"title"`
	Slug             *string  `json:"slug"`
	Summary          *string  `json:"summary"`
	Content          *string  `json:"content"`
	FeaturedImageURL *string  `json:"featuredImageUrl"`
	Tags             *TagList `json:"tags"`
	Status           *string  `json:"status" binding:"omitempty,oneof=draft published"`
	YoutubeLink      *string  `json:"youtubeLink"`
	SpotifyLink      *string  `json:"spotifyLink"`
	Order            *int     `json:"order"`
}
