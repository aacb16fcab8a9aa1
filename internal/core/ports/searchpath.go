package ports

// SearchPathProvider supplies the ordered host directories to scan for
// driver libraries. The resolution engine treats the result as an
// opaque ordered sequence of absolute paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=searchpath.go -destination=mocks/mock_searchpath.go -package=mocks
type SearchPathProvider interface {
	// LibraryDirs returns the candidate directories in search
	// precedence order. Only existing directories are included.
	LibraryDirs() []string
}
