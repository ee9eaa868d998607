// Package textutil holds track-name matching helpers shared by the CLI.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// NormalizeName trims a track name and collapses internal whitespace runs to
// single spaces, so names copied from shell arguments match names parsed
// from project files.
func NormalizeName(name string) string {
	var sb strings.Builder
	prevSpace := false
	for _, r := range strings.TrimSpace(name) {
		if unicode.IsSpace(r) {
			if !prevSpace {
				sb.WriteByte(' ')
				prevSpace = true
			}
			continue
		}
		sb.WriteRune(r)
		prevSpace = false
	}
	return sb.String()
}

// FoldEqual reports whether two names are equal under Unicode case folding.
// Used as the fallback when an exact track-name lookup misses.
func FoldEqual(a, b string) bool {
	folder := cases.Fold()
	return folder.String(a) == folder.String(b)
}
