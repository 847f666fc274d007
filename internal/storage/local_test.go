package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(Config{
		BasePath: t.TempDir(),
		BaseURL:  "http://localhost:8080/uploads",
	})
	require.NoError(t, err)
	return s
}

func TestLocalStorageSaveAndGet(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	err := s.Save(ctx, "resumes/user-1/cv.pdf", strings.NewReader("pdf bytes"), "application/pdf")
	require.NoError(t, err)

	exists, err := s.Exists(ctx, "resumes/user-1/cv.pdf")
	require.NoError(t, err)
	assert.True(t, exists)

	reader, err := s.Get(ctx, "resumes/user-1/cv.pdf")
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(data))
}

func TestLocalStorageDelete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "resumes/u/cv.pdf", strings.NewReader("x"), "application/pdf"))
	require.NoError(t, s.Delete(ctx, "resumes/u/cv.pdf"))

	exists, err := s.Exists(ctx, "resumes/u/cv.pdf")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting a missing file is not an error.
	assert.NoError(t, s.Delete(ctx, "resumes/u/cv.pdf"))
}

func TestLocalStorageGetURL(t *testing.T) {
	s := newTestStorage(t)

	url, err := s.GetURL(context.Background(), "resumes/u/cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/resumes/u/cv.pdf", url)
}
