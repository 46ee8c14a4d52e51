package record

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

func (m *MockRepository) Save(ctx context.Context, rec *Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Get(ctx context.Context, id int64) (*Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Record), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Record), args.Error(1)
}

func (m *MockRepository) ListByDate(ctx context.Context, date string) ([]Record, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Record), args.Error(1)
}

func TestService_Save_FillsDefaults(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(rec *Record) bool {
		return rec.ID != 0 && rec.OwnerID == "alice" && rec.SharedWith != nil
	})).Return(nil)

	rec := &Record{Date: "2025-03-01", Title: "movie night"}
	id, err := service.Save(context.Background(), rec, &Viewer{ID: "alice"})

	assert.NoError(t, err)
	assert.Equal(t, rec.ID, id)
	assert.Equal(t, "alice", rec.OwnerID)
	assert.Equal(t, []string{}, rec.SharedWith)

	mockRepo.AssertExpectations(t)
}

func TestService_Save_RequiresDate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	_, err := service.Save(context.Background(), &Record{Title: "no date"}, nil)

	assert.ErrorIs(t, err, ErrInvalidData)
	mockRepo.AssertNotCalled(t, "Save")
}

func TestService_Save_KeepsExistingOwner(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	rec := &Record{ID: 42, Date: "2025-03-01", OwnerID: "bob"}
	_, err := service.Save(context.Background(), rec, &Viewer{ID: "alice"})

	assert.NoError(t, err)
	assert.Equal(t, "bob", rec.OwnerID, "saving as alice must not steal bob's record")
}

func TestService_Save_NoViewerLeavesOwnerEmpty(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	rec := &Record{Date: "2025-03-01"}
	_, err := service.Save(context.Background(), rec, nil)

	assert.NoError(t, err)
	assert.Empty(t, rec.OwnerID)
}

func TestService_Save_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := service.Save(context.Background(), &Record{Date: "2025-03-01"}, nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestService_Delete_MissingIDSucceeds(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Delete", mock.Anything, int64(999)).Return(nil)

	err := service.Delete(context.Background(), 999)
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Refresh_FiltersSnapshot(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	all := []Record{
		{ID: 1, OwnerID: "alice"},
		{ID: 2, OwnerID: "bob"},
		{ID: 3, OwnerID: ""},
	}
	mockRepo.On("List", mock.Anything).Return(all, nil)

	visible, err := service.Refresh(context.Background(), &Viewer{ID: "alice"})
	assert.NoError(t, err)
	assert.Len(t, visible, 2)

	snapshot := service.Snapshot()
	assert.Equal(t, visible, snapshot)

	// The snapshot is a copy; mutating it must not leak back.
	snapshot[0].Title = "mutated"
	assert.Empty(t, service.Snapshot()[0].Title)
}

func TestService_Refresh_NilViewerEmptySnapshot(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("List", mock.Anything).Return([]Record{{ID: 1, OwnerID: "alice"}}, nil)

	visible, err := service.Refresh(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, visible)
}
