package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

type memKV struct {
	data map[string][]byte
}

func newMemKV() *memKV {
	return &memKV{data: map[string][]byte{}}
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memKV) Put(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func TestService_Categories_EmptyByDefault(t *testing.T) {
	service := NewService(newMemKV(), slog.Default())

	cats, err := service.Categories(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, cats)
}

func TestService_AddCategory(t *testing.T) {
	service := NewService(newMemKV(), slog.Default())
	ctx := context.Background()

	assert.NoError(t, service.AddCategory(ctx, "film"))
	assert.NoError(t, service.AddCategory(ctx, "play"))

	// Adding the same name again is a no-op, not an error.
	assert.NoError(t, service.AddCategory(ctx, "film"))

	cats, err := service.Categories(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"film", "play"}, cats)
}

func TestService_AddCategory_RequiresName(t *testing.T) {
	service := NewService(newMemKV(), slog.Default())
	assert.Error(t, service.AddCategory(context.Background(), ""))
}

func TestService_BucketList(t *testing.T) {
	service := NewService(newMemKV(), slog.Default())
	ctx := context.Background()

	item, err := service.AddBucketItem(ctx, "see the northern lights")
	assert.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.False(t, item.Done)

	assert.NoError(t, service.ToggleBucketItem(ctx, item.ID))

	items, err := service.BucketList(ctx)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.True(t, items[0].Done)

	assert.NoError(t, service.ToggleBucketItem(ctx, item.ID))
	items, _ = service.BucketList(ctx)
	assert.False(t, items[0].Done)
}

func TestService_ToggleBucketItem_Unknown(t *testing.T) {
	service := NewService(newMemKV(), slog.Default())
	assert.Error(t, service.ToggleBucketItem(context.Background(), 12345))
}

func TestService_Settings_RoundTrip(t *testing.T) {
	service := NewService(newMemKV(), slog.Default())
	ctx := context.Background()

	cfg, err := service.Settings(ctx)
	assert.NoError(t, err)
	assert.Equal(t, Settings{}, cfg)

	assert.NoError(t, service.SaveSettings(ctx, Settings{APIKey: "key", CX: "cx"}))

	cfg, err = service.Settings(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, "cx", cfg.CX)
}
