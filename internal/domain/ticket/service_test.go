package ticket

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Save(ctx context.Context, t *Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context) ([]Ticket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Ticket), args.Error(1)
}

func TestService_Save_FillsDefaults(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	tk := &Ticket{Image: "base64data"}
	id, err := service.Save(context.Background(), tk)

	assert.NoError(t, err)
	assert.Equal(t, tk.ID, id)
	assert.NotZero(t, tk.ID)
	assert.False(t, tk.CreatedAt.IsZero())
	assert.GreaterOrEqual(t, tk.Rotation, -10.0)
	assert.LessOrEqual(t, tk.Rotation, 10.0)
}

func TestService_Save_RequiresImage(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	_, err := service.Save(context.Background(), &Ticket{})
	assert.Error(t, err)

	mockRepo.AssertNotCalled(t, "Save")
}

func TestService_Save_KeepsExistingRotation(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	tk := &Ticket{ID: 7, Image: "base64data", Rotation: 3.5}
	_, err := service.Save(context.Background(), tk)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), tk.ID)
	assert.Equal(t, 3.5, tk.Rotation)
}

func TestService_Delete_MissingIDSucceeds(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Delete", mock.Anything, int64(404)).Return(nil)

	assert.NoError(t, service.Delete(context.Background(), 404))
}

func TestRandomRotation_Range(t *testing.T) {
	for i := 0; i < 100; i++ {
		r := RandomRotation()
		assert.GreaterOrEqual(t, r, -10.0)
		assert.LessOrEqual(t, r, 10.0)
	}
}
