package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "clonex.dev/pkg/clonex/internal/model"
)

func TestIsTestPath(t *testing.T) {
	tests := map[string]bool{
		"proj/src/test/java/a/Foo.java":      true,
		"proj/src/it/a/Foo.java":             true,
		"proj/src/integration-test/Foo.java": true,
		"proj/test/Foo.java":                 true,
		"tests/Foo.java":                     true,
		"proj/src/main/java/FooTest.java":    true,
		"proj/src/main/java/FooTests.java":   true,
		"proj/src/main/java/FooIT.java":      true,
		"proj/src/main/java/FooITCase.java":  true,
		`proj\src\test\Foo.java`:             true,
		"proj/src/main/java/Foo.java":        false,
		"proj/src/main/java/Testing.java":    false,
		"proj/contest/Foo.java":              false,
		"":                                   false,
	}

	for in, want := range tests {
		assert.Equal(t, want, IsTestPath(in), "path %q", in)
	}
}

func TestParseFilterMode(t *testing.T) {
	mode, err := ParseFilterMode("drop_only_test_sources")
	require.NoError(t, err)
	assert.Equal(t, DropOnlyTestSources, mode)

	mode, err = ParseFilterMode(" drop_group_if_any_test ")
	require.NoError(t, err)
	assert.Equal(t, DropGroupIfAnyTest, mode)

	_, err = ParseFilterMode("all")
	require.ErrorIs(t, err, m.ErrInvalidMode)
}

func groupWith(nclones int, files ...string) *m.ClassGroup {
	g := &m.ClassGroup{ClassID: 1, NClones: nclones}
	for _, f := range files {
		g.Sources = append(g.Sources, m.SourceFragment{File: f})
	}

	return g
}

func TestGroupFilter_Apply(t *testing.T) {
	tests := []struct {
		name        string
		filter      GroupFilter
		group       *m.ClassGroup
		wantVerdict FilterVerdict
		wantRemoved int
		wantSources int
	}{
		{
			name:        "too large",
			filter:      GroupFilter{MaxClones: 20, Mode: DropGroupIfAnyTest},
			group:       groupWith(20, "a/A.java"),
			wantVerdict: DroppedBySize,
			wantSources: 1,
		},
		{
			name:        "size limit disabled",
			filter:      GroupFilter{MaxClones: 0, Mode: DropGroupIfAnyTest},
			group:       groupWith(500, "a/A.java"),
			wantVerdict: Kept,
			wantSources: 1,
		},
		{
			name:        "any test drops group",
			filter:      GroupFilter{MaxClones: 20, Mode: DropGroupIfAnyTest},
			group:       groupWith(2, "a/A.java", "src/test/ATest.java"),
			wantVerdict: DroppedByTest,
			wantSources: 2,
		},
		{
			name:        "only test sources removed",
			filter:      GroupFilter{MaxClones: 20, Mode: DropOnlyTestSources},
			group:       groupWith(3, "a/A.java", "src/test/ATest.java", "b/B.java"),
			wantVerdict: Kept,
			wantRemoved: 1,
			wantSources: 2,
		},
		{
			name:        "all sources are tests",
			filter:      GroupFilter{MaxClones: 20, Mode: DropOnlyTestSources},
			group:       groupWith(2, "src/test/ATest.java", "tests/B.java"),
			wantVerdict: DroppedByTest,
			wantRemoved: 2,
			wantSources: 0,
		},
		{
			name:        "clean group",
			filter:      GroupFilter{MaxClones: 20, Mode: DropOnlyTestSources},
			group:       groupWith(2, "a/A.java", "b/B.java"),
			wantVerdict: Kept,
			wantSources: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			declared := tt.group.NClones
			verdict, removed := tt.filter.Apply(tt.group)

			assert.Equal(t, tt.wantVerdict, verdict)
			assert.Equal(t, tt.wantRemoved, removed)
			assert.Len(t, tt.group.Sources, tt.wantSources)
			assert.Equal(t, declared, tt.group.NClones)
		})
	}
}
