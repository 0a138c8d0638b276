package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// Uploader writes user-submitted files under a public directory.
type Uploader struct {
	Dir      string
	MaxSize  int64
	AllowPDF bool
}

func NewUploader(dir string, maxSizeMB int64, allowPDF bool) *Uploader {
	return &Uploader{Dir: dir, MaxSize: maxSizeMB << 20, AllowPDF: allowPDF}
}

// Allowed reports whether the file extension passes the allow-list.
func (u *Uploader) Allowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if u.AllowPDF && ext == ".pdf" {
		return true
	}
	return allowedExtensions[ext]
}

// Save stores one uploaded file under Dir/subdir and returns the public
// relative path. The stored name keeps the original extension and appends a
// random token, so two uploads of the same file never collide.
func (u *Uploader) Save(fileHeader *multipart.FileHeader, subdir string) (string, error) {
	if fileHeader.Size > u.MaxSize {
		return "", fmt.Errorf("файл %s превышает максимальный размер %dMB", fileHeader.Filename, u.MaxSize>>20)
	}

	if !u.Allowed(fileHeader.Filename) {
		return "", fmt.Errorf("файл %s имеет недопустимый формат", fileHeader.Filename)
	}

	dir := filepath.Join(u.Dir, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	name := fmt.Sprintf("%s_%s%s", sanitizeName(fileHeader.Filename), uuid.NewString()[:8], ext)
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	return "/" + filepath.ToSlash(dstPath), nil
}

func sanitizeName(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "_")
	if base == "" {
		base = "file"
	}
	if len(base) > 40 {
		base = base[:40]
	}
	return base
}
