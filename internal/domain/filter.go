package domain

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	m "clonex.dev/pkg/clonex/internal/model"
)

// FilterMode selects how test code is removed from clone groups.
type FilterMode string

const (
	// DropGroupIfAnyTest drops a whole group when one fragment is test code.
	DropGroupIfAnyTest FilterMode = "drop_group_if_any_test"
	// DropOnlyTestSources removes test fragments and keeps the rest.
	DropOnlyTestSources FilterMode = "drop_only_test_sources"
)

// DefaultMaxClones is the group size at which groups are dropped.
const DefaultMaxClones = 20

var (
	testDirPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(^|/)src/test(/|/java/|/resources/|$)`),
		regexp.MustCompile(`(^|/)src/it(/|$)`),
		regexp.MustCompile(`(^|/)src/integration-test(/|$)`),
		regexp.MustCompile(`(^|/)test(/|$)`),
		regexp.MustCompile(`(^|/)tests(/|$)`),
	}
	testFilePatterns = []*regexp.Regexp{
		regexp.MustCompile(`Test\.java$`),
		regexp.MustCompile(`Tests\.java$`),
		regexp.MustCompile(`TestCase\.java$`),
		regexp.MustCompile(`IT\.java$`),
		regexp.MustCompile(`ITCase\.java$`),
		regexp.MustCompile(`IntegrationTest\.java$`),
	}
)

// ParseFilterMode validates a mode name.
func ParseFilterMode(s string) (FilterMode, error) {
	switch mode := FilterMode(strings.TrimSpace(s)); mode {
	case DropGroupIfAnyTest, DropOnlyTestSources:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", m.ErrInvalidMode, s)
	}
}

// IsTestPath reports whether a fragment path lives in a test directory or has
// a test file name.
func IsTestPath(p string) bool {
	norm := strings.ReplaceAll(p, `\`, "/")

	for _, re := range testDirPatterns {
		if re.MatchString(norm) {
			return true
		}
	}

	base := path.Base(norm)
	for _, re := range testFilePatterns {
		if re.MatchString(base) {
			return true
		}
	}

	return false
}

// FilterVerdict tells what a GroupFilter did with a group.
type FilterVerdict int

const (
	// Kept means the group is written, possibly with fewer fragments.
	Kept FilterVerdict = iota
	// DroppedBySize means the declared group size reached the limit.
	DroppedBySize
	// DroppedByTest means test code caused the group to be dropped.
	DroppedByTest
)

// GroupFilter drops oversized groups and test code.
type GroupFilter struct {
	MaxClones int
	Mode      FilterMode
}

// Apply decides the fate of group. In DropOnlyTestSources mode test fragments
// are removed in place and their number returned; a group left empty is
// dropped. The declared nclones is never rewritten.
func (f GroupFilter) Apply(group *m.ClassGroup) (FilterVerdict, int) {
	if f.MaxClones > 0 && group.NClones >= f.MaxClones {
		return DroppedBySize, 0
	}

	switch f.Mode {
	case DropOnlyTestSources:
		kept := group.Sources[:0]
		removed := 0

		for _, src := range group.Sources {
			if IsTestPath(src.File) {
				removed++
				continue
			}

			kept = append(kept, src)
		}

		group.Sources = kept

		if removed > 0 && len(kept) == 0 {
			return DroppedByTest, removed
		}

		return Kept, removed
	default:
		for _, src := range group.Sources {
			if IsTestPath(src.File) {
				return DroppedByTest, 0
			}
		}

		return Kept, 0
	}
}
