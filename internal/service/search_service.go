package service

import (
	"encoding/json"
	"html"
	"strings"

	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"portfolio-api/internal/model"
)

const blogIndex = "blog_posts"

// SearchService maintains the full-text index of published blog posts. The
// noop implementation keeps the rest of the code oblivious to whether a
// search engine is configured.
type SearchService interface {
	IndexPost(post *model.BlogPost) error
	DeletePost(id string) error
	SearchPosts(query string) ([]string, error)
}

type meiliBlogDoc struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Summary     string   `json:"summary"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	PublishedAt int64    `json:"published_at"`
}

type meiliSearchService struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
	log       *zap.Logger
}

// NewMeiliSearchService builds the meilisearch-backed index. host == ""
// disables search entirely.
func NewMeiliSearchService(host, apiKey string, log *zap.Logger) SearchService {
	if host == "" {
		return noopSearchService{}
	}

	client := meilisearch.New(host, meilisearch.WithAPIKey(apiKey))
	s := &meiliSearchService{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
		log:       log,
	}
	s.initIndex()
	return s
}

func (s *meiliSearchService) initIndex() {
	sortableAttrs := []string{"published_at"}
	if _, err := s.client.Index(blogIndex).UpdateSortableAttributes(&sortableAttrs); err != nil {
		s.log.Warn("failed to update search index sortable attributes", zap.Error(err))
	}
}

func (s *meiliSearchService) IndexPost(post *model.BlogPost) error {
	doc := meiliBlogDoc{
		ID:      post.ID.String(),
		Title:   post.Title,
		Slug:    post.Slug,
		Summary: post.Summary,
		Content: s.cleanContentForIndex(post.Content),
		Tags:    post.Tags,
	}
	if post.PublishedAt != nil {
		doc.PublishedAt = post.PublishedAt.Unix()
	}

	_, err := s.client.Index(blogIndex).AddDocuments([]meiliBlogDoc{doc}, strPtr("id"))
	return err
}

func (s *meiliSearchService) DeletePost(id string) error {
	_, err := s.client.Index(blogIndex).DeleteDocument(id)
	return err
}

func (s *meiliSearchService) SearchPosts(query string) ([]string, error) {
	res, err := s.client.Index(blogIndex).Search(query, &meilisearch.SearchRequest{
		Limit: 50,
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(res.Hits))
	for _, hit := range res.Hits {
		raw, err := json.Marshal(hit)
		if err != nil {
			continue
		}
		var doc meiliBlogDoc
		if err := json.Unmarshal(raw, &doc); err != nil || doc.ID == "" {
			continue
		}
		ids = append(ids, doc.ID)
	}
	return ids, nil
}

// cleanContentForIndex strips markup so the index only holds searchable
// text.
func (s *meiliSearchService) cleanContentForIndex(content string) string {
	content = strings.ReplaceAll(content, "</p>", " ")
	content = strings.ReplaceAll(content, "<br>", " ")
	content = strings.ReplaceAll(content, "</div>", " ")

	cleanText := html.UnescapeString(s.sanitizer.Sanitize(content))
	return strings.Join(strings.Fields(cleanText), " ")
}

func strPtr(s string) *string {
	return &s
}

type noopSearchService struct{}

func (noopSearchService) IndexPost(*model.BlogPost) error { return nil }

func (noopSearchService) DeletePost(string) error { return nil }

func (noopSearchService) SearchPosts(string) ([]string, error) { return nil, nil }
