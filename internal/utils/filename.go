package utils

import "strings"

// SanitizeFilename strips characters that are unsafe in download filenames,
// replacing separators and reserved punctuation with a dash.
func SanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"', ':', '*', '?', '<', '>', '|':
			return '-'
		}
		if r < 0x20 {
			return -1
		}
		return r
	}, name)
}
