package service

import (
	"context"

	"github.com/microcosm-cc/bluemonday"

	"portfolio-api/internal/dto"
	"portfolio-api/internal/model"
	"portfolio-api/internal/repository"
)

type ContactService interface {
	SubmitMessage(ctx context.Context, req dto.ContactRequest) error
}

type contactService struct {
	repo      repository.ContactRepository
	sanitizer *bluemonday.Policy
}

func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *contactService) SubmitMessage(ctx context.Context, req dto.ContactRequest) error {
	message := &model.ContactMessage{
		Name:    s.sanitizer.Sanitize(req.Name),
		Email:   s.sanitizer.Sanitize(req.Email),
		Subject: s.sanitizer.Sanitize(req.Subject),
		Message: s.sanitizer.Sanitize(req.Message),
	}
	return s.repo.Create(ctx, message)
}
