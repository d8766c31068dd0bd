package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/flyambition/flyambition-api/pkg/logger"
	"github.com/flyambition/flyambition-api/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// URLPrefix is where uploaded files are served; stored image paths are
// relative to the site root ("uploads/<name>") so clients can link them directly.
const URLPrefix = "/uploads"

// Store is a flat local directory that receives uploads and serves them back.
type Store struct {
	dir string
	now func() time.Time
}

// NewStore ensures dir exists and returns a store rooted there.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, now: time.Now}, nil
}

func (s *Store) Dir() string { return s.dir }

// Save writes the uploaded file under a millisecond-timestamp name keeping its
// extension, and returns the public path recorded on the document.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	stamp := s.now().UnixMilli()
	var (
		dst  *os.File
		name string
	)
	// same-millisecond uploads take the next free stamp
	for i := 0; i < 100; i++ {
		name = fmt.Sprintf("%d%s", stamp+int64(i), ext)
		dst, err = os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil || !errors.Is(err, os.ErrExist) {
			break
		}
	}
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("close upload file: %w", err)
	}
	return path.Join(strings.TrimPrefix(URLPrefix, "/"), name), nil
}

// Resolve maps a stored public path back to its file on disk. Only the base
// name is honoured so a stored value can never point outside the directory.
func (s *Store) Resolve(public string) string {
	base := path.Base(filepath.ToSlash(public))
	if base == "." || base == "/" || base == ".." {
		return ""
	}
	return filepath.Join(s.dir, base)
}

// RemoveBestEffort deletes a previously stored file. Failures are logged and
// counted, never returned.
func (s *Store) RemoveBestEffort(public string) {
	if public == "" {
		return
	}
	p := s.Resolve(public)
	if p == "" {
		logger.Warnf("image removal skipped: unusable path %q", public)
		metrics.ImageRemovals.WithLabelValues("skipped").Inc()
		return
	}
	if err := os.Remove(p); err != nil {
		logger.Warnf("image removal failed for %s: %v", p, err)
		metrics.ImageRemovals.WithLabelValues("error").Inc()
		return
	}
	logger.Debugf("removed image %s", p)
	metrics.ImageRemovals.WithLabelValues("ok").Inc()
}

// Register serves the directory statically under URLPrefix.
func (s *Store) Register(r gin.IRoutes) {
	r.Static(URLPrefix, s.dir)
}
