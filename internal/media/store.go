// Package media is the object-storage boundary: a blob goes in under a
// name, a publicly resolvable URL comes out.
package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const pathPrefix = "products/"

type ObjectStore interface {
	Upload(ctx context.Context, name string, r io.Reader) (string, error)
	ResolveURL(handle string) string
}

// FSStore keeps objects in a local directory and serves them under a
// configured base URL.
type FSStore struct {
	dir     string
	baseURL string
}

func NewFSStore(dir, baseURL string) (*FSStore, error) {
	if err := os.MkdirAll(filepath.Join(dir, pathPrefix), 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &FSStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Upload stores the blob under the stable prefix plus the original file
// name. A repeated name overwrites the previous blob: last upload wins.
func (s *FSStore) Upload(ctx context.Context, name string, r io.Reader) (string, error) {
	handle := pathPrefix + filepath.Base(name)
	f, err := os.Create(filepath.Join(s.dir, filepath.FromSlash(handle)))
	if err != nil {
		return "", fmt.Errorf("create object: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write object: %w", err)
	}
	return handle, nil
}

func (s *FSStore) ResolveURL(handle string) string {
	return s.baseURL + "/" + handle
}
