package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portfolio-api/internal/dto"
	"portfolio-api/internal/model"
)

func TestSubmitMessage_StripsHTML(t *testing.T) {
	repo := new(MockContactRepository)
	svc := NewContactService(repo)

	var saved *model.ContactMessage
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*model.ContactMessage)
	}).Return(nil)

	err := svc.SubmitMessage(context.Background(), dto.ContactRequest{
		Name:    `<script>alert("hi")</script>Jane`,
		Email:   "jane@example.com",
		Subject: "Hello <b>there</b>",
		Message: `Check <a href="https://evil.example">this</a> out`,
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, "Jane", saved.Name)
	assert.Equal(t, "jane@example.com", saved.Email)
	assert.Equal(t, "Hello there", saved.Subject)
	assert.Equal(t, "Check this out", saved.Message)
}

func TestSubmitMessage_PropagatesRepoError(t *testing.T) {
	repo := new(MockContactRepository)
	svc := NewContactService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	err := svc.SubmitMessage(context.Background(), dto.ContactRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "Just checking in.",
	})
	assert.ErrorIs(t, err, assert.AnError)
}
