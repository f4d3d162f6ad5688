package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"path"
	"strings"
)

// FSSource serves assets from a file system, typically the embedded copy of the site.
type FSSource struct {
	fsys fs.FS
}

func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

func (s *FSSource) Open(_ context.Context, name string) (*Asset, error) {
	name = strings.TrimPrefix(name, "/")
	if !fs.ValidPath(name) || name == "." {
		return nil, ErrAssetNotFound
	}

	f, err := s.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("open asset %s: %w", name, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat asset %s: %w", name, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, ErrAssetNotFound
	}

	asset := &Asset{
		Body:        f,
		ContentType: contentTypeFor(name),
		Size:        info.Size(),
	}
	if mod := info.ModTime(); !mod.IsZero() {
		asset.LastModified = &mod
	}
	return asset, nil
}

func contentTypeFor(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
