package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, userID, tokenHash string) error {
	args := m.Called(ctx, userID, tokenHash)
	return args.Error(0)
}

func (m *MockRepository) Lookup(ctx context.Context, tokenHash string) (string, error) {
	args := m.Called(ctx, tokenHash)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *MockRepository) DeleteForUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestService_Create_StoresHashNotToken(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	var storedHash string
	mockRepo.On("DeleteForUser", mock.Anything, "alice").Return(nil)
	mockRepo.On("Create", mock.Anything, "alice", mock.MatchedBy(func(hash string) bool {
		storedHash = hash
		return hash != ""
	})).Return(nil)

	token, err := service.Create(context.Background(), "alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, token, storedHash, "raw token must never hit the database")

	mockRepo.AssertExpectations(t)
}

// Creating a session replaces any previous one: the device has a single
// "current user" pointer.
func TestService_Create_ReplacesPreviousSession(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("DeleteForUser", mock.Anything, "alice").Return(nil)
	mockRepo.On("Create", mock.Anything, "alice", mock.AnythingOfType("string")).Return(nil)

	_, err := service.Create(context.Background(), "alice")
	assert.NoError(t, err)

	mockRepo.AssertCalled(t, "DeleteForUser", mock.Anything, "alice")
}

func TestService_Validate_RoundTrip(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	var storedHash string
	mockRepo.On("DeleteForUser", mock.Anything, "alice").Return(nil)
	mockRepo.On("Create", mock.Anything, "alice", mock.MatchedBy(func(hash string) bool {
		storedHash = hash
		return true
	})).Return(nil)

	token, err := service.Create(context.Background(), "alice")
	assert.NoError(t, err)

	mockRepo.On("Lookup", mock.Anything, storedHash).Return("alice", nil)

	userID, err := service.Validate(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, "alice", userID)
}

func TestService_Validate_UnknownToken(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Lookup", mock.Anything, mock.AnythingOfType("string")).
		Return("", errors.New("session not found"))

	_, err := service.Validate(context.Background(), "bogus")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestService_Destroy(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Delete", mock.Anything, mock.AnythingOfType("string")).Return(nil)

	assert.NoError(t, service.Destroy(context.Background(), "some-token"))
	mockRepo.AssertExpectations(t)
}
