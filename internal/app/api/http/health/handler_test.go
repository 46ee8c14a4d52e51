package health

import (
	"context"
	"errors"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

type fakeStorage struct {
	err error
}

func (f *fakeStorage) Err() error { return f.err }

func TestHandler_healthCheck(t *testing.T) {
	handler := NewHandler(&fakeStorage{}, slog.Default(), huma.Middlewares{})

	output, err := handler.healthCheck(context.Background(), &Input{})

	assert.NoError(t, err)
	assert.Equal(t, "OK", output.Body.Status)
	assert.Equal(t, "ready", output.Body.Storage)
}

func TestHandler_healthCheck_DegradedStorage(t *testing.T) {
	handler := NewHandler(&fakeStorage{err: errors.New("storage unavailable")}, slog.Default(), huma.Middlewares{})

	output, err := handler.healthCheck(context.Background(), &Input{})

	assert.NoError(t, err)
	assert.Equal(t, "OK", output.Body.Status)
	assert.Equal(t, "storage unavailable", output.Body.Storage)
}
