package controller

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "clonex.dev/pkg/clonex/internal/model"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	return cmd, out, errOut
}

func sampleConvertStats() m.ConvertStats {
	totals := m.GroupTotals{}
	totals.Add(5)
	totals.Add(0)

	return m.ConvertStats{
		Mode:            m.ModeClass,
		Rows:            2,
		Fragments:       4,
		Totals:          totals,
		AvgAll:          totals.AverageAll(),
		AvgNonZero:      totals.AverageNonZero(),
		Mismatch:        true,
		FirstMismatchID: 12,
	}
}

func TestSimpleUI_DisplayConvertStats(t *testing.T) {
	cmd, out, errOut := newTestCommand()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.DisplayConvertStats(context.Background(), sampleConvertStats(), "clones.jsonl"))

	text := out.String()
	assert.Contains(t, text, "classes parsed")
	assert.Contains(t, text, "nclones total")
	assert.Contains(t, text, "2.500")
	assert.Contains(t, text, "5.000")
	assert.Contains(t, text, "first seen at class 12")
	assert.Contains(t, text, "wrote 2 row(s) -> clones.jsonl")
	assert.Empty(t, errOut.String())
}

func TestSimpleUI_SummaryGoesToStderrForStdout(t *testing.T) {
	cmd, out, errOut := newTestCommand()
	ui := NewSimpleUI(cmd)

	stats := m.ConvertStats{Mode: m.ModeSource, Rows: 3, Fragments: 3, FellBack: true}
	require.NoError(t, ui.DisplayConvertStats(context.Background(), stats, m.StdioPath))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "fell back to source mode")
	assert.NotContains(t, errOut.String(), "classes parsed")
}

func TestSimpleUI_DisplayAnnotateStats(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)

	stats := m.AnnotateStats{Lines: 3, Skipped: 1, Annotated: 4, Unresolved: 2}
	stats.Totals.Add(2)
	stats.Totals.Add(2)

	require.NoError(t, ui.DisplayAnnotateStats(context.Background(), stats, "annotated.jsonl"))
	assert.Contains(t, out.String(), "fragments annotated")
	assert.Contains(t, out.String(), "unresolved source files")
	assert.Contains(t, out.String(), "wrote 2 clone groups -> annotated.jsonl")
}

func TestSimpleUI_DisplayFilterStats(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)

	stats := m.FilterStats{Input: 10, DroppedBySize: 2, DroppedByTest: 3, Kept: 5}
	require.NoError(t, ui.DisplayFilterStats(context.Background(), stats, 20, "filtered.jsonl"))
	assert.Contains(t, out.String(), "dropped (size >= 20)")
	assert.Contains(t, out.String(), "kept groups")
	assert.Contains(t, out.String(), "output written: filtered.jsonl")
}

func TestSimpleUI_DisplayGroups(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)

	stats := sampleConvertStats()
	groups := []m.ClassGroup{{
		ClassID:    3,
		NClones:    2,
		Similarity: 87.5,
		Sources: []m.SourceFragment{
			{File: "a/Foo.java", Range: m.NewLineRange(1, 4), NLines: 4, QualifiedName: "p.Foo.bar()"},
			{File: "a/Baz.java", Range: m.NewLineRange(7, 8), NLines: 2},
		},
	}}

	require.NoError(t, ui.DisplayGroups(context.Background(), groups, &stats))

	text := out.String()
	assert.Contains(t, text, "2 classes, 5 declared clones")
	assert.Contains(t, text, "p.Foo.bar()")
	assert.Contains(t, text, "a/Baz.java:7-8")
	assert.Contains(t, text, "87.5")
}

func TestSimpleUI_DisplayGroups_Empty(t *testing.T) {
	cmd, out, _ := newTestCommand()

	require.NoError(t, NewSimpleUI(cmd).DisplayGroups(context.Background(), nil, nil))
	assert.Contains(t, out.String(), "no clone groups found")
}

func TestSimpleUI_CanceledContext(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewSimpleUI(cmd).DisplayGroups(ctx, nil, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestFragmentLabel(t *testing.T) {
	assert.Equal(t, "p.A.b()", FragmentLabel(m.SourceFragment{File: "A.java", QualifiedName: "p.A.b()"}))
	assert.Equal(t, "A.java:2-3", FragmentLabel(m.SourceFragment{File: "A.java", Range: m.NewLineRange(2, 3)}))
	assert.Equal(t, "A.java", FragmentLabel(m.SourceFragment{File: "A.java"}))
}

func TestNewUI(t *testing.T) {
	cmd, _, _ := newTestCommand()

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.False(t, IsTTY(&bytes.Buffer{}))
}
