package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"portfolio-api/internal/dto"
	"portfolio-api/internal/model"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/token"
	"portfolio-api/pkg/apperror"
)

const minPasswordLength = 6

type AuthService interface {
	Register(ctx context.Context, input dto.RegisterRequest) error
	Login(ctx context.Context, input dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	repo   repository.UserRepository
	tokens *token.Service
}

func NewAuthService(repo repository.UserRepository, tokens *token.Service) AuthService {
	return &authService{repo: repo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, input dto.RegisterRequest) error {
	if input.Username == "" || input.Password == "" {
		return apperror.BadRequest("Please provide username and password")
	}
	if len(input.Password) < minPasswordLength {
		return apperror.BadRequest("Password must be at least 6 characters")
	}

	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return apperror.Conflict("User already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Username:     input.Username,
		PasswordHash: string(hashed),
		IsAdmin:      true,
	}

	return s.repo.Create(ctx, user)
}

func (s *authService) Login(ctx context.Context, input dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unauthorized("Invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	signed, _, err := s.tokens.Generate(user.ID, user.Username, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: signed}, nil
}
