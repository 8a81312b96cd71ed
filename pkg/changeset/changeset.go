package changeset

// ChangeSet is the ordered set of repo-relative file paths touched between
// two refs. Paths are slash-separated and case sensitive, in the diff's
// natural order with the first occurrence winning.
type ChangeSet []string

func New(paths ...string) ChangeSet {
	cs := make(ChangeSet, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))

	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		cs = append(cs, p)
	}

	return cs
}

func (cs ChangeSet) Contains(path string) bool {
	for _, p := range cs {
		if p == path {
			return true
		}
	}

	return false
}
