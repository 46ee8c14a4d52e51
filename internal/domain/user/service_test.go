package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) Get(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context) ([]User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]User), args.Error(1)
}

func TestService_Register(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default(), bcrypt.MinCost)

	mockRepo.On("Get", mock.Anything, "alice").Return(nil, ErrUnknownUser)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
		return u.ID == "alice" && u.PasswordHash != "" && u.Friends != nil
	})).Return(nil)

	u, err := service.Register(context.Background(), "alice", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, "alice", u.ID)
	assert.NotEqual(t, "secret123", u.PasswordHash, "credential must not be stored in the clear")
	assert.Equal(t, []string{}, u.Friends)

	mockRepo.AssertExpectations(t)
}

func TestService_Register_DuplicateID(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default(), bcrypt.MinCost)

	mockRepo.On("Get", mock.Anything, "alice").Return(&User{ID: "alice"}, nil)

	_, err := service.Register(context.Background(), "alice", "secret123")
	assert.ErrorIs(t, err, ErrDuplicateID)

	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Register_EmptyCredential(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default(), bcrypt.MinCost)

	_, err := service.Register(context.Background(), "alice", "")
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = service.Register(context.Background(), "", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestService_Authenticate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default(), bcrypt.MinCost)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	assert.NoError(t, err)

	mockRepo.On("Get", mock.Anything, "alice").Return(&User{ID: "alice", PasswordHash: string(hash)}, nil)

	u, err := service.Authenticate(context.Background(), "alice", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, "alice", u.ID)
}

func TestService_Authenticate_WrongPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default(), bcrypt.MinCost)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	assert.NoError(t, err)

	mockRepo.On("Get", mock.Anything, "alice").Return(&User{ID: "alice", PasswordHash: string(hash)}, nil)

	_, err = service.Authenticate(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

// An unknown id reports the same error as a wrong credential so the caller
// cannot probe which accounts exist.
func TestService_Authenticate_UnknownUser(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default(), bcrypt.MinCost)

	mockRepo.On("Get", mock.Anything, "ghost").Return(nil, ErrUnknownUser)

	_, err := service.Authenticate(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestService_AddFriend(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default(), bcrypt.MinCost)

	mockRepo.On("Get", mock.Anything, "alice").Return(&User{ID: "alice", Friends: []string{}}, nil)
	mockRepo.On("Get", mock.Anything, "bob").Return(&User{ID: "bob", Friends: []string{}}, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *User) bool {
		return u.ID == "alice" && len(u.Friends) == 1 && u.Friends[0] == "bob"
	})).Return(nil)

	u, err := service.AddFriend(context.Background(), "alice", "bob")
	assert.NoError(t, err)
	assert.Equal(t, []string{"bob"}, u.Friends)

	// Only alice's list is written; bob's account is untouched.
	mockRepo.AssertNumberOfCalls(t, "Update", 1)
}

func TestService_AddFriend_Self(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default(), bcrypt.MinCost)

	mockRepo.On("Get", mock.Anything, "alice").Return(&User{ID: "alice"}, nil)

	_, err := service.AddFriend(context.Background(), "alice", "alice")
	assert.ErrorIs(t, err, ErrSelfFriend)
}

func TestService_AddFriend_Duplicate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default(), bcrypt.MinCost)

	mockRepo.On("Get", mock.Anything, "alice").Return(&User{ID: "alice", Friends: []string{"bob"}}, nil)

	_, err := service.AddFriend(context.Background(), "alice", "bob")
	assert.ErrorIs(t, err, ErrAlreadyFriend)
}

func TestService_AddFriend_UnknownTarget(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default(), bcrypt.MinCost)

	mockRepo.On("Get", mock.Anything, "alice").Return(&User{ID: "alice", Friends: []string{}}, nil)
	mockRepo.On("Get", mock.Anything, "ghost").Return(nil, ErrUnknownUser)

	_, err := service.AddFriend(context.Background(), "alice", "ghost")
	assert.ErrorIs(t, err, ErrUnknownUser)

	mockRepo.AssertNotCalled(t, "Update")
}

func TestService_AddFriend_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default(), bcrypt.MinCost)

	mockRepo.On("Get", mock.Anything, "alice").Return(nil, errors.New("database error"))

	_, err := service.AddFriend(context.Background(), "alice", "bob")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
}
