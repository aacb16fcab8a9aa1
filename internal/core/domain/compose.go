package domain

// ComposeSearchPath returns the distinct directories, in snapshot
// order, that contain at least one library of any requested category.
// Directories shared between categories appear once, at their
// first-seen position. An empty result is not an error; the launcher
// decides whether running without a category is acceptable.
func ComposeSearchPath(s *Snapshot, categories ...Category) []string {
	var dirs []string
	seen := make(map[string]bool)
	for _, entry := range s.Entries {
		if seen[entry.Fullpath] {
			continue
		}
		for _, cat := range categories {
			if entry.HasCategory(cat) {
				dirs = append(dirs, entry.Fullpath)
				seen[entry.Fullpath] = true
				break
			}
		}
	}
	return dirs
}
