package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	baseDir := t.TempDir()
	store := NewLocalStorage(baseDir)
	ctx := context.Background()

	assert.True(t, store.IsConfigured())

	content := "certidão de óbito em PDF"
	result, err := store.UploadReader(ctx, strings.NewReader(content), "cases/abc/certidao.pdf", "application/pdf", int64(len(content)))
	require.NoError(t, err)
	assert.Equal(t, "cases/abc/certidao.pdf", result.Key)
	assert.Equal(t, "certidao.pdf", result.FileName)
	assert.Equal(t, int64(len(content)), result.FileSize)
	assert.Equal(t, "application/pdf", result.MimeType)

	reader, contentType, err := store.Get(ctx, "cases/abc/certidao.pdf")
	require.NoError(t, err)
	defer reader.Close()
	assert.Equal(t, "application/pdf", contentType)

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))

	require.NoError(t, store.Delete(ctx, "cases/abc/certidao.pdf"))
	_, err = os.Stat(filepath.Join(baseDir, "cases/abc/certidao.pdf"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorageDeleteMissingFileIsNoop(t *testing.T) {
	store := NewLocalStorage(t.TempDir())

	err := store.Delete(context.Background(), "cases/missing/nothing.pdf")

	assert.NoError(t, err)
}

func TestLocalStorageGetContentTypeByExtension(t *testing.T) {
	baseDir := t.TempDir()
	store := NewLocalStorage(baseDir)
	ctx := context.Background()

	testCases := []struct {
		key      string
		expected string
	}{
		{key: "a/doc.PDF", expected: "application/pdf"},
		{key: "a/photo.jpeg", expected: "image/jpeg"},
		{key: "a/scan.png", expected: "image/png"},
		{key: "a/letter.docx", expected: "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{key: "a/raw.bin", expected: "application/octet-stream"},
	}

	for _, tc := range testCases {
		_, err := store.UploadReader(ctx, strings.NewReader("x"), tc.key, "application/octet-stream", 1)
		require.NoError(t, err)

		reader, contentType, err := store.Get(ctx, tc.key)
		require.NoError(t, err)
		reader.Close()
		assert.Equal(t, tc.expected, contentType, tc.key)
	}
}

func TestGenerateCaseFileKey(t *testing.T) {
	casoID := uuid.New().String()

	key := GenerateCaseFileKey(casoID, "Certidão de Óbito (2ª via).pdf")

	pattern := regexp.MustCompile(`^cases/` + regexp.QuoteMeta(casoID) + `/[0-9a-f]{8}_[A-Za-z0-9._-]+\.pdf$`)
	assert.Regexp(t, pattern, key)

	// The random prefix keeps same-named uploads from colliding
	other := GenerateCaseFileKey(casoID, "Certidão de Óbito (2ª via).pdf")
	assert.NotEqual(t, key, other)
}

func TestGenerateCaseFileKeyStripsDirectories(t *testing.T) {
	key := GenerateCaseFileKey("abc", "../../etc/passwd")

	assert.True(t, strings.HasPrefix(key, "cases/abc/"))
	assert.NotContains(t, key, "..")
}
