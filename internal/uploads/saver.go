// Package uploads validates and stores dish images on local disk.
package uploads

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/calmliming/menuflow/internal/apperr"
)

// MaxSize is the largest accepted image.
const MaxSize = 2 << 20

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Saver writes images under Dir and returns URLs below URLPrefix.
type Saver struct {
	Dir       string
	URLPrefix string

	nowFunc func() time.Time
}

func NewSaver(dir, urlPrefix string) *Saver {
	return &Saver{
		Dir:       dir,
		URLPrefix: strings.TrimSuffix(urlPrefix, "/"),
		nowFunc:   time.Now,
	}
}

// Save validates fh and stores it under a generated name.
func (s *Saver) Save(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", apperr.Validation("select an image file")
	}

	ext, ok := extensionFor(fh.Header.Get("Content-Type"))
	if !ok {
		return "", apperr.Validation("only JPG/PNG/GIF/WebP images are supported")
	}
	if fh.Size > MaxSize {
		return "", apperr.Validation("image must not exceed 2MB")
	}

	src, err := fh.Open()
	if err != nil {
		return "", apperr.Internal("open upload", err)
	}
	defer src.Close()

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", apperr.Internal("create upload dir", err)
	}

	name := s.fileName(ext)
	if err := writeFile(filepath.Join(s.Dir, name), src); err != nil {
		return "", apperr.Internal("write upload", err)
	}
	return path.Join(s.URLPrefix, name), nil
}

// fileName is "<unix millis>-<8 random hex chars><ext>".
func (s *Saver) fileName(ext string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d-%s%s", s.nowFunc().UnixMilli(), suffix, ext)
}

func extensionFor(contentType string) (string, bool) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", false
	}
	ext, ok := extensions[strings.ToLower(mediaType)]
	return ext, ok
}

func writeFile(dst string, src io.Reader) error {
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		os.Remove(dst)
		return err
	}
	return f.Close()
}
