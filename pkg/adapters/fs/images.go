package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/aretw0/noir/pkg/core"
)

// ImageStore implements core.ImageStore. Each image is written once as
// <root>/images/<uuid>.<subtype> and never modified or deleted.
type ImageStore struct {
	dir    string
	config Config
	newID  func() string
}

// NewImageStore creates an image store. No I/O happens until a method is called.
func NewImageStore(config Config) *ImageStore {
	return &ImageStore{
		dir:    filepath.Join(config.Root, ImagesDir),
		config: config,
		newID:  uuid.NewString,
	}
}

// Initialize creates the images directory.
func (s *ImageStore) Initialize(ctx context.Context) error {
	return s.config.ensureDir(ctx, s.dir)
}

// Save writes data under a fresh name and returns it. On failure the name is "".
func (s *ImageStore) Save(ctx context.Context, data []byte, mimeType string) (string, error) {
	if s.config.ReadOnly {
		return "", core.ErrReadOnly
	}
	ext, err := Extension(mimeType)
	if err != nil {
		return "", err
	}

	name := s.newID() + "." + ext
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create images directory: %w", err)
	}
	if err := writeFileAtomic(s.Path(name), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write image %s: %w", name, err)
	}

	s.config.logger().Debug("image saved", "name", name, "bytes", len(data))
	return name, nil
}

// Path joins name onto the images directory. Only the base name is used, so
// the result always stays inside Root.
func (s *ImageStore) Path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}

// Root returns the images directory.
func (s *ImageStore) Root() string {
	return s.dir
}

// Extension derives a file extension from the subtype of a media type:
// "image/png" -> "png", "image/svg+xml; charset=utf-8" -> "svg+xml".
func Extension(mimeType string) (string, error) {
	base, _, _ := strings.Cut(mimeType, ";")
	_, sub, ok := strings.Cut(strings.TrimSpace(base), "/")
	sub = strings.ToLower(strings.TrimSpace(sub))
	if !ok || sub == "" || strings.ContainsAny(sub, `/\`) || strings.Contains(sub, "..") {
		return "", fmt.Errorf("%w: %q", core.ErrInvalidMediaType, mimeType)
	}
	return sub, nil
}

var _ core.ImageStore = (*ImageStore)(nil)
var _ core.Initializer = (*ImageStore)(nil)
