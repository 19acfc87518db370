package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-api/internal/dto"
	"portfolio-api/internal/model"
	"portfolio-api/internal/repository"
	"portfolio-api/pkg/apperror"
)

type ProjectService interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*model.Project, error)
	GetAllProjects(ctx context.Context) ([]*model.Project, error)
	GetProjectByID(ctx context.Context, id string) (*model.Project, error)
	UpdateProject(ctx context.Context, id string, req dto.UpdateProjectRequest) (*model.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

type projectService struct {
	repo repository.ProjectRepository
}

func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*model.Project, error) {
	if req.Title == "" || req.Description == "" {
		return nil, apperror.BadRequest("Please include a title and description")
	}

	project := &model.Project{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Tags:        model.Tags(req.Tags),
		LiveLink:    req.LiveLink,
		GithubLink:  req.GithubLink,
		SpotifyLink: req.SpotifyLink,
		YoutubeLink: req.YoutubeLink,
		Order:       req.Order,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) GetAllProjects(ctx context.Context) ([]*model.Project, error) {
	return s.repo.FindAll(ctx)
}

func (s *projectService) GetProjectByID(ctx context.Context, id string) (*model.Project, error) {
	projectID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.NotFound("Project not found (invalid ID format)")
	}

	project, err := s.repo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Project not found")
		}
		return nil, err
	}
	return project, nil
}

func (s *projectService) UpdateProject(ctx context.Context, id string, req dto.UpdateProjectRequest) (*model.Project, error) {
	project, err := s.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ImageURL != nil {
		project.ImageURL = *req.ImageURL
	}
	if req.Tags != nil {
		project.Tags = model.Tags(*req.Tags)
	}
	if req.LiveLink != nil {
		project.LiveLink = *req.LiveLink
	}
	if req.GithubLink != nil {
		project.GithubLink = *req.GithubLink
	}
	if req.SpotifyLink != nil {
		project.SpotifyLink = *req.SpotifyLink
	}
	if req.YoutubeLink != nil {
		project.YoutubeLink = *req.YoutubeLink
	}
	if req.Order != nil {
		project.Order = *req.Order
	}

	if err := s.repo.Save(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, id string) error {
	project, err := s.GetProjectByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, project.ID)
}
