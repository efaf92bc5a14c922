package camera

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/mmcdole/dexcam/internal/domain"
)

// FileCamera stands in for a device camera on hosts that have none.
// Each still capture copies a source image into the photos directory.
type FileCamera struct {
	permission domain.Permission
	source     string
	photosDir  string
	logger     *slog.Logger
}

// NewFileCamera creates a camera that answers permission requests with
// permission ("granted" or "denied") and copies source on capture.
func NewFileCamera(permission, source, photosDir string, logger *slog.Logger) *FileCamera {
	if logger == nil {
		logger = slog.Default()
	}
	perm := domain.PermissionDenied
	if strings.EqualFold(permission, string(domain.PermissionGranted)) {
		perm = domain.PermissionGranted
	}
	return &FileCamera{permission: perm, source: source, photosDir: photosDir, logger: logger}
}

func (c *FileCamera) RequestPermission(ctx context.Context) (domain.Permission, error) {
	return c.permission, nil
}

// TakePhoto copies the source image to <photosDir>/<uuid><ext> and returns that path.
func (c *FileCamera) TakePhoto(ctx context.Context, opts domain.PhotoOptions) (string, error) {
	if c.permission != domain.PermissionGranted {
		return "", domain.ErrPermissionDenied
	}
	if c.source == "" {
		return "", fmt.Errorf("no camera source image configured")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	src, err := os.Open(c.source)
	if err != nil {
		return "", fmt.Errorf("failed to open source image: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(c.photosDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create photos directory: %w", err)
	}

	ext := filepath.Ext(c.source)
	if ext == "" {
		ext = ".jpg"
	}
	path := filepath.Join(c.photosDir, uuid.NewString()+ext)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create photo: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write photo: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to write photo: %w", err)
	}

	c.logger.Debug("photo taken", "path", path, "flash", opts.Flash)
	return path, nil
}
