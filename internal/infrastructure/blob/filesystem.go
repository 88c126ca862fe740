package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FilesystemSink writes each document to a file under root.
type FilesystemSink struct {
	root string
}

// NewFilesystemSink creates root if needed.
func NewFilesystemSink(root string) (*FilesystemSink, error) {
	if root == "" {
		root = "./backups"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create backup dir: %w", err)
	}
	return &FilesystemSink{root: root}, nil
}

func (s *FilesystemSink) Driver() Driver { return DriverFilesystem }

// Put writes through a temp file and rename so a reader never sees a partial
// document.
func (s *FilesystemSink) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	clean, err := sanitizeKey(key)
	if err != nil {
		return "", err
	}
	path := filepath.Join(s.root, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return "", err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return path, nil
}
