package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio-api/internal/dto"
	"portfolio-api/internal/model"
	"portfolio-api/internal/repository"
	"portfolio-api/pkg/apperror"
)

var (
	slugSpaceRe = regexp.MustCompile(`\s+`)
	slugStripRe = regexp.MustCompile(`[^\w-]+`)
)

// NormalizeSlug lowercases, joins whitespace runs with hyphens and strips
// everything outside word characters and hyphens.
func NormalizeSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugSpaceRe.ReplaceAllString(s, "-")
	return slugStripRe.ReplaceAllString(s, "")
}

type BlogService interface {
	CreatePost(ctx context.Context, author string, req dto.CreateBlogPostRequest) (*model.BlogPost, error)
	GetAllPosts(ctx context.Context) ([]*model.BlogPost, error)
	GetPublishedPosts(ctx context.Context) ([]*model.BlogPost, error)
	GetPostByID(ctx context.Context, id string) (*model.BlogPost, error)
	GetPublishedPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	UpdatePost(ctx context.Context, id string, req dto.UpdateBlogPostRequest) (*model.BlogPost, error)
	DeletePost(ctx context.Context, id string) error
	SearchPublishedPosts(ctx context.Context, query string) ([]*model.BlogPost, error)
}

type blogService struct {
	repo      repository.BlogRepository
	search    SearchService
	sanitizer *bluemonday.Policy
	log       *zap.Logger
}

func NewBlogService(repo repository.BlogRepository, search SearchService, log *zap.Logger) BlogService {
	return &blogService{
		repo:      repo,
		search:    search,
		sanitizer: bluemonday.UGCPolicy(),
		log:       log,
	}
}

func (s *blogService) CreatePost(ctx context.Context, author string, req dto.CreateBlogPostRequest) (*model.BlogPost, error) {
	if req.Title == "" || req.Content == "" {
		return nil, apperror.BadRequest("Please include at least a title and content")
	}

	slug := req.Slug
	if slug == "" {
		slug = req.Title
	}
	slug = NormalizeSlug(slug)
	if slug == "" {
		return nil, apperror.BadRequest("Slug is required or could not be generated from title.")
	}

	if _, err := s.repo.FindBySlug(ctx, slug); err == nil {
		return nil, apperror.Conflict("Slug already exists. Please use a unique slug.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.StatusDraft
	}

	post := &model.BlogPost{
		Title:            req.Title,
		Slug:             slug,
		Summary:          s.sanitizer.Sanitize(req.Summary),
		Content:          s.sanitizer.Sanitize(req.Content),
		FeaturedImageURL: req.FeaturedImageURL,
		Author:           author,
		Tags:             model.Tags(req.Tags),
		Status:           status,
		YoutubeLink:      req.YoutubeLink,
		SpotifyLink:      req.SpotifyLink,
		Order:            req.Order,
	}
	stampPublishedAt(post)

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.syncSearchIndex(post)
	return post, nil
}

func (s *blogService) GetAllPosts(ctx context.Context) ([]*model.BlogPost, error) {
	return s.repo.FindAll(ctx)
}

func (s *blogService) GetPublishedPosts(ctx context.Context) ([]*model.BlogPost, error) {
	return s.repo.FindPublished(ctx)
}

func (s *blogService) GetPostByID(ctx context.Context, id string) (*model.BlogPost, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.NotFound("Blog post not found (invalid ID format)")
	}

	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Blog post not found")
		}
		return nil, err
	}
	return post, nil
}

func (s *blogService) GetPublishedPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	post, err := s.repo.FindPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Blog post not found or not published")
		}
		return nil, err
	}
	return post, nil
}

func (s *blogService) UpdatePost(ctx context.Context, id string, req dto.UpdateBlogPostRequest) (*model.BlogPost, error) {
	post, err := s.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Slug != nil {
		newSlug := NormalizeSlug(*req.Slug)
		if newSlug == "" {
			return nil, apperror.BadRequest("Slug is required or could not be generated from title.")
		}
		if newSlug != post.Slug {
			if existing, err := s.repo.FindBySlug(ctx, newSlug); err == nil && existing.ID != post.ID {
				return nil, apperror.Conflict("New slug already exists. Please use a unique slug.")
			} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		post.Slug = newSlug
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Summary != nil {
		post.Summary = s.sanitizer.Sanitize(*req.Summary)
	}
	if req.Content != nil {
		post.Content = s.sanitizer.Sanitize(*req.Content)
	}
	if req.FeaturedImageURL != nil {
		post.FeaturedImageURL = *req.FeaturedImageURL
	}
	if req.Tags != nil {
		post.Tags = model.Tags(*req.Tags)
	}
	if req.YoutubeLink != nil {
		post.YoutubeLink = *req.YoutubeLink
	}
	if req.SpotifyLink != nil {
		post.SpotifyLink = *req.SpotifyLink
	}
	if req.Order != nil {
		post.Order = *req.Order
	}
	if req.Status != nil {
		post.Status = *req.Status
	}
	stampPublishedAt(post)

	if err := s.repo.Save(ctx, post); err != nil {
		return nil, err
	}

	s.syncSearchIndex(post)
	return post, nil
}

func (s *blogService) DeletePost(ctx context.Context, id string) error {
	post, err := s.GetPostByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, post.ID); err != nil {
		return err
	}

	if err := s.search.DeletePost(post.ID.String()); err != nil {
		s.log.Warn("failed to remove post from search index",
			zap.String("post_id", post.ID.String()), zap.Error(err))
	}
	return nil
}

func (s *blogService) SearchPublishedPosts(ctx context.Context, query string) ([]*model.BlogPost, error) {
	ids, err := s.search.SearchPosts(query)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.BlogPost{}, nil
	}

	posts, err := s.repo.FindPublishedByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Preserve the relevance order the search engine returned.
	byID := make(map[string]*model.BlogPost, len(posts))
	for _, p := range posts {
		byID[p.ID.String()] = p
	}
	ordered := make([]*model.BlogPost, 0, len(posts))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// stampPublishedAt sets PublishedAt the first time a post reaches the
// published status. Once set it is never cleared, so repeated publishes are
// idempotent.
func stampPublishedAt(post *model.BlogPost) {
	if post.Status == model.StatusPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
}

// syncSearchIndex mirrors the post's visibility into the search index.
// Index failures are logged, never surfaced to the client.
func (s *blogService) syncSearchIndex(post *model.BlogPost) {
	var err error
	if post.Status == model.StatusPublished {
		err = s.search.IndexPost(post)
	} else {
		err = s.search.DeletePost(post.ID.String())
	}
	if err != nil {
		s.log.Warn("failed to sync post with search index",
			zap.String("post_id", post.ID.String()), zap.Error(err))
	}
}
