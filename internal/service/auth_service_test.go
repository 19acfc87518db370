package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"portfolio-api/internal/dto"
	"portfolio-api/internal/model"
	"portfolio-api/internal/token"
	"portfolio-api/pkg/apperror"
)

func newAuthService(repo *MockUserRepository) AuthService {
	return NewAuthService(repo, token.NewService("test-secret", 5*time.Hour))
}

func TestRegister_Validation(t *testing.T) {
	svc := newAuthService(new(MockUserRepository))

	tests := []struct {
		name  string
		input dto.RegisterRequest
	}{
		{"missing username", dto.RegisterRequest{Password: "hunter22"}},
		{"missing password", dto.RegisterRequest{Username: "admin"}},
		{"short password", dto.RegisterRequest{Username: "admin", Password: "12345"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Register(context.Background(), tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperror.ErrBadRequest)
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newAuthService(repo)

	repo.On("FindByUsername", mock.Anything, "admin").
		Return(&model.User{ID: uuid.New(), Username: "admin"}, nil)

	err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "admin",
		Password: "hunter22",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrConflict)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newAuthService(repo)

	repo.On("FindByUsername", mock.Anything, "admin").
		Return(nil, gorm.ErrRecordNotFound)

	var created *model.User
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.User)
		}).
		Return(nil)

	err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "admin",
		Password: "hunter22",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, "hunter22", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("hunter22")))
	assert.True(t, created.IsAdmin)
}

func TestLogin_TokenCarriesIdentityClaims(t *testing.T) {
	repo := new(MockUserRepository)
	tokens := token.NewService("test-secret", 5*time.Hour)
	svc := NewAuthService(repo, tokens)

	hashed, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &model.User{
		ID:           uuid.New(),
		Username:     "admin",
		PasswordHash: string(hashed),
		IsAdmin:      true,
	}
	repo.On("FindByUsername", mock.Anything, "admin").Return(user, nil)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "admin",
		Password: "hunter22",
	})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := tokens.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.True(t, claims.IsAdmin)
	assert.WithinDuration(t, time.Now().Add(5*time.Hour), claims.ExpiresAt.Time, 10*time.Second)
}

func TestLogin_UnknownUser(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newAuthService(repo)

	repo.On("FindByUsername", mock.Anything, "ghost").
		Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "ghost",
		Password: "whatever1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newAuthService(repo)

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-pw"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo.On("FindByUsername", mock.Anything, "admin").
		Return(&model.User{ID: uuid.New(), Username: "admin", PasswordHash: string(hashed)}, nil)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Username: "admin",
		Password: "wrong-pw",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}
