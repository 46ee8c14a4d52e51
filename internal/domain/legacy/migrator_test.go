package legacy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"darak/internal/domain/record"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Blob(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRepository) Commit(ctx context.Context, records []record.Record) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func TestMigrator_Migrate(t *testing.T) {
	mockRepo := new(MockRepository)
	migrator := NewMigrator(mockRepo, slog.Default())

	blob := []byte(`[
		{"id": 1700000000001, "date": "2023-11-14", "title": "old entry", "category": "movie"},
		{"id": 1700000000002, "date": "2023-11-15", "title": "another", "category": "book"}
	]`)

	mockRepo.On("Blob", mock.Anything).Return(blob, nil)
	mockRepo.On("Commit", mock.Anything, mock.MatchedBy(func(records []record.Record) bool {
		return len(records) == 2 &&
			records[0].ID == 1700000000001 &&
			records[0].OwnerID == "" &&
			records[0].SharedWith != nil
	})).Return(nil)

	n, err := migrator.Migrate(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, n)

	mockRepo.AssertExpectations(t)
}

// A second run finds no blob and does nothing; that is what makes the
// migration safe to run on every startup.
func TestMigrator_Migrate_AlreadyMigrated(t *testing.T) {
	mockRepo := new(MockRepository)
	migrator := NewMigrator(mockRepo, slog.Default())

	mockRepo.On("Blob", mock.Anything).Return(nil, nil)

	n, err := migrator.Migrate(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, n)

	mockRepo.AssertNotCalled(t, "Commit")
}

func TestMigrator_Migrate_MalformedBlobKept(t *testing.T) {
	mockRepo := new(MockRepository)
	migrator := NewMigrator(mockRepo, slog.Default())

	mockRepo.On("Blob", mock.Anything).Return([]byte(`not json at all`), nil)

	n, err := migrator.Migrate(context.Background())
	assert.ErrorIs(t, err, ErrParse)
	assert.Zero(t, n)

	// The blob must survive a parse failure for manual recovery.
	mockRepo.AssertNotCalled(t, "Commit")
}

func TestMigrator_Migrate_SkipsBadEntries(t *testing.T) {
	mockRepo := new(MockRepository)
	migrator := NewMigrator(mockRepo, slog.Default())

	blob := []byte(`[
		{"id": 1700000000001, "date": "2023-11-14", "category": "movie"},
		"this entry is a string, not an object",
		{"id": 1700000000003, "date": "2023-11-16", "category": "book"}
	]`)

	mockRepo.On("Blob", mock.Anything).Return(blob, nil)
	mockRepo.On("Commit", mock.Anything, mock.MatchedBy(func(records []record.Record) bool {
		return len(records) == 2
	})).Return(nil)

	n, err := migrator.Migrate(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMigrator_Migrate_AssignsMissingIDs(t *testing.T) {
	mockRepo := new(MockRepository)
	migrator := NewMigrator(mockRepo, slog.Default())

	blob := []byte(`[{"date": "2023-11-14", "category": "movie"}]`)

	mockRepo.On("Blob", mock.Anything).Return(blob, nil)
	mockRepo.On("Commit", mock.Anything, mock.MatchedBy(func(records []record.Record) bool {
		return len(records) == 1 && records[0].ID != 0
	})).Return(nil)

	n, err := migrator.Migrate(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}
