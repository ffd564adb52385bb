package model

import "strings"

// lookupName finds s among names (case-insensitive) and returns its index.
func lookupName(s string, names []string) (int, bool) {
	s = strings.TrimSpace(s)
	for i, name := range names {
		if strings.EqualFold(s, name) {
			return i, true
		}
	}
	return 0, false
}
