package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "task-tracker-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG
var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("profile_image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["profile_image"][0]
}

func TestImageStore(t *testing.T) {
	dir := t.TempDir()
	store, err := NewImageStore(filepath.Join(dir, "uploads"), 1<<20)
	require.NoError(t, err)

	t.Run("saves png under public prefix", func(t *testing.T) {
		publicPath, err := store.Save(fileHeader(t, "avatar.txt", pngBytes))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(publicPath, PublicPrefix))
		assert.True(t, strings.HasSuffix(publicPath, ".png"))

		stored, err := os.ReadFile(filepath.Join(store.Dir(), strings.TrimPrefix(publicPath, PublicPrefix)))
		require.NoError(t, err)
		assert.Equal(t, pngBytes, stored)

		require.NoError(t, store.Remove(publicPath))
		_, err = os.Stat(filepath.Join(store.Dir(), strings.TrimPrefix(publicPath, PublicPrefix)))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("rejects non-image content", func(t *testing.T) {
		_, err := store.Save(fileHeader(t, "avatar.png", []byte("#!/bin/sh\necho hi\n")))
		assert.ErrorIs(t, err, apperrors.ErrUnsupportedImage)
	})

	t.Run("rejects oversized upload", func(t *testing.T) {
		small, err := NewImageStore(filepath.Join(dir, "small"), 10)
		require.NoError(t, err)
		_, err = small.Save(fileHeader(t, "avatar.png", pngBytes))
		assert.ErrorIs(t, err, apperrors.ErrImageTooLarge)
	})

	t.Run("remove ignores foreign paths", func(t *testing.T) {
		assert.NoError(t, store.Remove("https://example.com/avatar.png"))
		assert.NoError(t, store.Remove("/uploads/../secret"))
		assert.NoError(t, store.Remove("/uploads/missing.png"))
	})
}
