package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFile(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File[field][0]
}

func TestAllowed(t *testing.T) {
	u := NewUploader(t.TempDir(), 5, false)

	assert.True(t, u.Allowed("photo.png"))
	assert.True(t, u.Allowed("photo.JPG"))
	assert.True(t, u.Allowed("anim.webp"))
	assert.False(t, u.Allowed("report.pdf"))
	assert.False(t, u.Allowed("script.exe"))
	assert.False(t, u.Allowed("noext"))

	pdfOK := NewUploader(t.TempDir(), 5, true)
	assert.True(t, pdfOK.Allowed("report.pdf"))
}

func TestSave_DisallowedExtensionWritesNothing(t *testing.T) {
	dir := t.TempDir()
	u := NewUploader(dir, 5, false)

	fh := multipartFile(t, "image", "evil.exe", "nope")
	path, err := u.Save(fh, "complaints")
	assert.Error(t, err)
	assert.Empty(t, path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSave_StoresUnderSubdirWithUniqueName(t *testing.T) {
	dir := t.TempDir()
	u := NewUploader(dir, 5, false)

	fh := multipartFile(t, "image", "мое фото!.png", "data")

	first, err := u.Save(fh, "news")
	require.NoError(t, err)
	second, err := u.Save(fh, "news")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(first, ".png"))
	assert.Contains(t, first, "/news/")

	entries, err := os.ReadDir(filepath.Join(dir, "news"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestSave_RejectsOversizedFile(t *testing.T) {
	u := NewUploader(t.TempDir(), 5, false)
	fh := multipartFile(t, "image", "big.png", "x")
	fh.Size = 6 << 20

	_, err := u.Save(fh, "news")
	assert.Error(t, err)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "my_photo", sanitizeName("my photo.png"))
	assert.Equal(t, "file", sanitizeName("фото.png"))
	assert.Equal(t, "report-2025", sanitizeName("report-2025.pdf"))
}
