package usecase

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"portfolio-backend/internal/shared/errors"
	"portfolio-backend/internal/shared/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUploadUsecase(t *testing.T) (*UploadUsecase, string) {
	t.Helper()
	dir := t.TempDir()
	uc, err := NewUploadUsecase(dir, logger.NewLogger())
	require.NoError(t, err)
	return uc, dir
}

func TestSaveUpload_StoresAllowedImage(t *testing.T) {
	uc, dir := newTestUploadUsecase(t)

	result, err := uc.SaveUpload("photo.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(result.Filename, ".jpg"))
	assert.NotEqual(t, "photo.jpg", result.Filename)

	stored, err := os.ReadFile(filepath.Join(dir, result.Filename))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(stored))
}

func TestSaveUpload_UniqueNamesForSameOriginal(t *testing.T) {
	uc, _ := newTestUploadUsecase(t)

	first, err := uc.SaveUpload("logo.png", "image/png", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := uc.SaveUpload("logo.png", "image/png", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first.Filename, second.Filename)
}

func TestSaveUpload_RejectsDisallowedContentType(t *testing.T) {
	uc, dir := newTestUploadUsecase(t)

	_, err := uc.SaveUpload("notes.txt", "text/plain", strings.NewReader("nope"))
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Contains(t, err.Error(), "text/plain")

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestSaveUpload_ExtensionlessOriginalName(t *testing.T) {
	uc, _ := newTestUploadUsecase(t)

	result, err := uc.SaveUpload("avatar", "image/webp", strings.NewReader("webp"))
	require.NoError(t, err)
	assert.False(t, strings.Contains(result.Filename, "."))
}

func TestNewUploadUsecase_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewUploadUsecase(dir, logger.NewLogger())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
