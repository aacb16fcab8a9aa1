// Package fs provides the filesystem adapters for scanning and
// probing host library directories.
package fs

import (
	"io/fs"
	"os"
	"path/filepath"

	"go.nixgl.dev/glhost/internal/core/domain"
	"go.nixgl.dev/glhost/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Prober = (*Prober)(nil)

// Prober reads file metadata and directory listings for snapshot
// revalidation.
type Prober struct{}

// NewProber creates a new Prober.
func NewProber() *Prober {
	return &Prober{}
}

// Identify reads the metadata identity of the file at path. Symlinks
// are followed, so a link's identity is its target's metadata under
// the link's own name.
func (p *Prober) Identify(path string) (domain.LibraryIdentity, error) {
	return identify(path)
}

// ListDir returns the base names of the regular files and symlinks
// directly inside dir, in lexical order. Entries whose metadata cannot
// be read are skipped; no identity can be formed without metadata.
func (p *Prober) ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list directory"), "path", dir)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil || info.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

func identify(path string) (domain.LibraryIdentity, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.LibraryIdentity{}, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	if info.IsDir() {
		return domain.LibraryIdentity{}, zerr.With(zerr.New("not a regular file"), "path", path)
	}
	return identityFromInfo(path, info), nil
}

func identityFromInfo(path string, info fs.FileInfo) domain.LibraryIdentity {
	return domain.LibraryIdentity{
		Name:             filepath.Base(path),
		Fullpath:         path,
		LastModification: info.ModTime().UnixNano(),
		Size:             info.Size(),
	}
}
