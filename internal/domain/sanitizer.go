package domain

import (
	"strings"

	"golang.org/x/net/html"
)

// SanitizeOptions controls Sanitize. The zero value strips control characters
// and blank edge lines and leaves entities alone.
type SanitizeOptions struct {
	KeepControl      bool
	KeepBlankEdges   bool
	UnescapeEntities bool
}

// Sanitize normalizes a code body taken from a clone report.
//
// Control characters 0x00-0x08, 0x0B, 0x0C and 0x0E-0x1F are removed, CRLF
// and lone CR become LF, and fully blank leading and trailing lines are
// dropped. Interior lines are never touched. Without entity decoding the
// result is a fixed point: sanitizing it again changes nothing.
func Sanitize(code string, opts SanitizeOptions) string {
	if code == "" {
		return code
	}

	s := code
	if opts.UnescapeEntities {
		s = html.UnescapeString(s)
	}

	if !opts.KeepControl {
		s = strings.Map(dropIllegalControl, s)
	}

	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	if !opts.KeepBlankEdges {
		s = trimBlankEdgeLines(s)
	}

	return s
}

func dropIllegalControl(r rune) rune {
	switch {
	case r <= 0x08, r == 0x0B, r == 0x0C:
		return -1
	case r >= 0x0E && r <= 0x1F:
		return -1
	}

	return r
}

func trimBlankEdgeLines(s string) string {
	lines := strings.Split(s, "\n")

	first := 0
	for first < len(lines) && strings.TrimSpace(lines[first]) == "" {
		first++
	}

	last := len(lines)
	for last > first && strings.TrimSpace(lines[last-1]) == "" {
		last--
	}

	return strings.Join(lines[first:last], "\n")
}
