// Package storage saves uploaded media files under a per-entity subfolder of
// the configured media root:
//
//	<media root>/rttm/<subfolder>/<yyyy>/<mm>/<uuid><ext>
//
// The rest of the system only keeps the returned relative path; what the
// file actually is stays opaque.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Media subfolders per entity kind
const (
	SubfolderBuilding   = "building"
	SubfolderRoom       = "room"
	SubfolderDeviceType = "device_type"
	SubfolderDevice     = "device"
)

// MediaStorage writes uploaded files below a single root directory
type MediaStorage struct {
	Root    string
	BaseURL string
}

// NewMediaStorage creates the storage rooted at <root>/rttm
func NewMediaStorage(root, baseURL string) *MediaStorage {
	return &MediaStorage{
		Root:    filepath.Join(root, "rttm"),
		BaseURL: baseURL,
	}
}

// Save stores an uploaded file and returns its path relative to the media
// root. The stored name is a fresh UUID so uploads can never collide or
// overwrite each other.
func (s *MediaStorage) Save(subfolder string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	now := time.Now()
	dir := filepath.Join(s.Root, subfolder, now.Format("2006"), now.Format("01"))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return path.Join("rttm", subfolder, now.Format("2006"), now.Format("01"), name), nil
}

// Delete removes a previously stored file. A missing file is not an error:
// the DB row is what matters, the file may already be gone.
func (s *MediaStorage) Delete(relPath string) error {
	full := filepath.Join(filepath.Dir(s.Root), filepath.Clean(relPath))
	if !strings.HasPrefix(full, filepath.Dir(s.Root)) {
		return fmt.Errorf("path %q escapes media root", relPath)
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// URL returns the public URL for a stored relative path
func (s *MediaStorage) URL(relPath string) string {
	return strings.TrimSuffix(s.BaseURL, "/") + "/" + relPath
}
