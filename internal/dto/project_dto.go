package dto

type CreateProjectRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Tags        TagList `json:"tags"`
	LiveLink    string  `json:"liveLink"`
	GithubLink  string  `json:"githubLink"`
	SpotifyLink string  `json:"spotifyLink"`
	YoutubeLink string  `json:"youtubeLink"`
	Order       int     `json:"order"`
}

// UpdateProjectRequest applies only the fields the client sent; nil means
// "leave unchanged".
type UpdateProjectRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"imageUrl"`
	Tags        *TagList `json:"tags"`
	LiveLink    *string  `json:"liveLink"`
	GithubLink  *string  `json:"githubLink"`
	SpotifyLink *string  `json:"spotifyLink"`
	YoutubeLink *string  `json:"youtubeLink"`
	Order       *int     `json:"order"`
}
