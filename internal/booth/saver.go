package booth

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// maxSuffix bounds the search for a free filename.
const maxSuffix = 10000

// Saver stores a finished print and returns where it went.
type Saver interface {
	Save(ctx context.Context, name string, img image.Image) (string, error)
}

// DirSaver writes prints into a directory. An existing file is never
// overwritten: photo-strip.png becomes photo-strip-1.png, and so on.
type DirSaver struct {
	Dir string
}

// Save encodes img in the format implied by name's extension.
func (d DirSaver) Save(ctx context.Context, name string, img image.Image) (string, error) {
	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return "", err
	}
	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 0; i < maxSuffix; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s-%d%s", base, i, ext)
		}
		path := filepath.Join(dir, candidate)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		if err := imaging.Encode(f, img, format); err != nil {
			f.Close()
			os.Remove(path)
			return "", fmt.Errorf("encode %s: %w", candidate, err)
		}
		if err := f.Close(); err != nil {
			os.Remove(path)
			return "", err
		}
		return path, nil
	}
	return "", fmt.Errorf("no free filename for %s in %s", name, dir)
}
