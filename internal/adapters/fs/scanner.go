package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"go.nixgl.dev/glhost/internal/core/domain"
	"go.nixgl.dev/glhost/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

var _ ports.Scanner = (*Scanner)(nil)

// Scanner implements ports.Scanner over the real filesystem.
type Scanner struct {
	logger ports.Logger
}

// NewScanner creates a new Scanner.
func NewScanner(logger ports.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// Scan produces a snapshot of the given directories in their
// configured order. Directories are scanned concurrently; the result
// is assembled back into configured order, so parallelism never
// changes observable output.
func (s *Scanner) Scan(ctx context.Context, dirs []string) (*domain.Snapshot, error) {
	entries := make([]domain.HostLibraryPath, len(dirs))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, dir := range dirs {
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			entries[i] = s.scanDir(dir)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return domain.NewSnapshot(dirs, entries), nil
}

// scanDir lists the immediate entries of one directory and classifies
// them. Driver libraries do not live in nested subdirectories, so the
// listing is non-recursive. A missing or unreadable directory
// contributes an empty entry; host systems legitimately lack some of
// the probed locations.
func (s *Scanner) scanDir(dir string) domain.HostLibraryPath {
	result := domain.HostLibraryPath{Fullpath: dir}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Debug(fmt.Sprintf("skipping unreadable directory %s: %v", dir, err))
		return result
	}

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		cat, ok := domain.Classify(entry.Name())
		if !ok {
			continue
		}
		fullpath, err := filepath.Abs(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		// Stat follows symlinks: a link to a library is recorded under
		// its own name with the target's metadata.
		info, err := os.Stat(fullpath)
		if err != nil || info.IsDir() {
			// No identity can be formed without metadata.
			continue
		}
		result.Libraries = append(result.Libraries, domain.Library{
			Category:        cat,
			LibraryIdentity: identityFromInfo(fullpath, info),
		})
	}

	// ReadDir already sorts lexically; keep the invariant explicit so
	// snapshot diffing stays meaningful if the enumeration changes.
	sort.Slice(result.Libraries, func(i, j int) bool {
		return result.Libraries[i].Fullpath < result.Libraries[j].Fullpath
	})
	return result
}
