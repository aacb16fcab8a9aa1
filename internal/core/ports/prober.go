package ports

import "go.nixgl.dev/glhost/internal/core/domain"

// Prober performs the cheap filesystem probes used to revalidate a
// cached snapshot without a full scan.
//
//go:generate go run go.uber.org/mock/mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type Prober interface {
	// Identify reads the current metadata identity of a single file.
	// It fails if the file is gone or its metadata cannot be read.
	Identify(path string) (domain.LibraryIdentity, error)

	// ListDir returns the base names of the regular files and symlinks
	// directly inside dir. A missing or unreadable directory is an
	// error; callers decide whether that counts as zero contents.
	ListDir(dir string) ([]string, error)
}
