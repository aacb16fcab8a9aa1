package domain

// LibraryIdentity identifies one on-disk shared library without
// reading its contents. Identity is a metadata heuristic: a file
// rewritten with identical size and modification time is not detected
// as changed. Content hashing was deliberately rejected to keep
// revalidation proportional to a stat per file.
type LibraryIdentity struct {
	// Name is the library file's base name, e.g. "libGL.so.1". It is
	// not unique across directories.
	Name string `json:"name"`
	// Fullpath is the absolute path of the file, unique per scan.
	Fullpath string `json:"fullpath"`
	// LastModification is the file's mtime in nanoseconds since the
	// Unix epoch, read at scan time.
	LastModification int64 `json:"last_modification"`
	// Size is the file's length in bytes, read at scan time.
	Size int64 `json:"size"`
}

// SameRevision reports whether two identities denote the same library
// revision: fullpath, modification time, and size all match.
func (l LibraryIdentity) SameRevision(o LibraryIdentity) bool {
	return l.Fullpath == o.Fullpath &&
		l.LastModification == o.LastModification &&
		l.Size == o.Size
}

// Library tags a resolved identity with its functional category.
type Library struct {
	Category Category `json:"category"`
	LibraryIdentity
}

// HostLibraryPath is the scan result for one configured host
// directory. It is immutable after construction and superseded
// wholesale by the next scan pass.
type HostLibraryPath struct {
	// Fullpath is the directory that was scanned.
	Fullpath string `json:"fullpath"`
	// Libraries holds every classified library found directly in the
	// directory, sorted by fullpath. Unclassified files are dropped at
	// scan time, not stored.
	Libraries []Library `json:"libraries"`
}

// ByCategory returns the identities of the given category, preserving
// the entry's internal order.
func (p HostLibraryPath) ByCategory(cat Category) []LibraryIdentity {
	var ids []LibraryIdentity
	for _, lib := range p.Libraries {
		if lib.Category == cat {
			ids = append(ids, lib.LibraryIdentity)
		}
	}
	return ids
}

// HasCategory reports whether the directory holds at least one library
// of the given category.
func (p HostLibraryPath) HasCategory(cat Category) bool {
	for _, lib := range p.Libraries {
		if lib.Category == cat {
			return true
		}
	}
	return false
}
