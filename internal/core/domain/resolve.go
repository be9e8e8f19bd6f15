package domain

import "strings"

// normaliseName prepares a standard name for comparison:
// lowercase, trimmed, trailing ".pdf" stripped.
func normaliseName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	return strings.TrimSuffix(n, ".pdf")
}

// ResolveCitation finds the stored standard a citation refers to.
//
// First pass is an exact match on the normalised full name. Second pass
// collects every standard whose normalised name is a substring of the
// normalised citation name or vice versa, then picks the candidate whose
// original name length is closest to the original citation string's length.
// The length tie-break is a heuristic favouring the closest-length name,
// not necessarily the most specific match; it is kept as documented
// behaviour.
//
// Returns ErrNotFound if no candidate survives either pass.
func ResolveCitation(standardName string, standards []Standard) (*Standard, error) {
	want := normaliseName(standardName)
	if want == "" {
		return nil, ErrNotFound
	}

	for i := range standards {
		if normaliseName(standards[i].Name) == want {
			return &standards[i], nil
		}
	}

	var best *Standard
	bestDiff := -1
	for i := range standards {
		have := normaliseName(standards[i].Name)
		if have == "" {
			continue
		}
		if !strings.Contains(have, want) && !strings.Contains(want, have) {
			continue
		}
		diff := len(standards[i].Name) - len(standardName)
		if diff < 0 {
			diff = -diff
		}
		if best == nil || diff < bestDiff {
			best = &standards[i]
			bestDiff = diff
		}
	}

	if best == nil {
		return nil, ErrNotFound
	}
	return best, nil
}
