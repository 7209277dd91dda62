package uploads

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/calmliming/menuflow/internal/apperr"
)

// fileHeader builds a multipart file header the way an HTTP form would.
func fileHeader(t *testing.T, contentType string, size int) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="dish"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(bytes.Repeat([]byte{0xAB}, size)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["file"][0]
}

func TestSave_StoresAllowedImage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	s := NewSaver(dir, "/uploads/")
	s.nowFunc = func() time.Time { return time.UnixMilli(1760000000000) }

	url, err := s.Save(fileHeader(t, "image/png", 500*1024))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !regexp.MustCompile(`^/uploads/1760000000000-[0-9a-f]{8}\.png$`).MatchString(url) {
		t.Fatalf("unexpected url %q", url)
	}
	info, err := os.Stat(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if info.Size() != 500*1024 {
		t.Fatalf("expected %d bytes, got %d", 500*1024, info.Size())
	}
}

func TestSave_Rejects(t *testing.T) {
	s := NewSaver(t.TempDir(), "/uploads")

	cases := []struct {
		name string
		fh   func(t *testing.T) *multipart.FileHeader
	}{
		{"missing file", func(t *testing.T) *multipart.FileHeader { return nil }},
		{"pdf", func(t *testing.T) *multipart.FileHeader { return fileHeader(t, "application/pdf", 10) }},
		{"svg", func(t *testing.T) *multipart.FileHeader { return fileHeader(t, "image/svg+xml", 10) }},
		{"oversized jpeg", func(t *testing.T) *multipart.FileHeader { return fileHeader(t, "image/jpeg", 3<<20) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Save(tc.fh(t))
			if apperr.KindOf(err) != apperr.KindValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	entries, _ := os.ReadDir(s.Dir)
	if len(entries) != 0 {
		t.Fatalf("rejected uploads must not be written, found %d files", len(entries))
	}
}

func TestExtensionFor(t *testing.T) {
	cases := map[string]string{
		"image/jpeg":                 ".jpg",
		"IMAGE/PNG":                  ".png",
		"image/gif":                  ".gif",
		"image/webp; charset=binary": ".webp",
	}
	for in, want := range cases {
		got, ok := extensionFor(in)
		if !ok || got != want {
			t.Fatalf("extensionFor(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
	if _, ok := extensionFor(""); ok {
		t.Fatal("empty content type must be rejected")
	}
}

func TestSave_MaxSizeBoundary(t *testing.T) {
	s := NewSaver(t.TempDir(), "/uploads")
	if _, err := s.Save(fileHeader(t, "image/gif", MaxSize)); err != nil {
		t.Fatalf("file of exactly MaxSize must be accepted: %v", err)
	}
}
