// Package blob writes opaque documents (snapshots) to a local directory or an
// S3-compatible bucket.
package blob

import (
	"context"
	"fmt"
	"strings"
)

// Driver identifies a sink backend.
type Driver string

const (
	DriverFilesystem Driver = "fs"
	DriverS3         Driver = "s3"
)

// Sink stores a document under key and returns where it ended up.
type Sink interface {
	Driver() Driver
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// sanitizeKey keeps keys relative and inside the sink root.
func sanitizeKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("empty key")
	}
	if strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid key contains '..'")
	}
	if strings.HasPrefix(key, "/") {
		return "", fmt.Errorf("invalid absolute key")
	}
	return key, nil
}
