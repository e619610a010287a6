package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "clonex.dev/pkg/clonex/internal/model"
)

// SimpleUI implements UI with plain tables on the command's writers.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayConvertStats prints the statistics of a convert run.
func (s *SimpleUI) DisplayConvertStats(ctx context.Context, stats m.ConvertStats, output m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w := s.summaryWriter(output)

	if stats.FellBack {
		s.fprintf(w, "no <class> blocks detected; fell back to source mode\n")
	}

	if stats.Mismatch {
		s.fprintf(w, "warning: some classes report nclones != parsed count (first seen at class %d)\n", stats.FirstMismatchID)
	}

	rows := [][]string{{"mode", string(stats.Mode)}}
	if stats.Mode == m.ModeClass {
		rows = append(rows,
			[]string{"classes parsed", strconv.Itoa(stats.Totals.Groups)},
			[]string{"nclones total", strconv.Itoa(stats.Totals.DeclaredClones)},
			[]string{"nclones avg (all classes)", formatAverage(stats.AvgAll)},
			[]string{"nclones avg (classes with nclones)", formatAverage(stats.AvgNonZero)},
		)
	}

	rows = append(rows,
		[]string{"fragments parsed", strconv.Itoa(stats.Fragments)},
		[]string{"rows written", strconv.Itoa(stats.Rows)},
	)

	s.fprintf(w, "%s", renderStatsTable(rows))
	s.fprintf(w, "wrote %d row(s) -> %s\n", stats.Rows, output)

	return nil
}

// DisplayAnnotateStats prints the statistics of an annotate run.
func (s *SimpleUI) DisplayAnnotateStats(ctx context.Context, stats m.AnnotateStats, output m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w := s.summaryWriter(output)

	rows := [][]string{
		{"classes parsed", strconv.Itoa(stats.Totals.Groups)},
		{"nclones total", strconv.Itoa(stats.Totals.DeclaredClones)},
		{"nclones avg (all classes)", formatAverage(stats.Totals.AverageAll())},
		{"nclones avg (classes with nclones)", formatAverage(stats.Totals.AverageNonZero())},
		{"fragments annotated", strconv.Itoa(stats.Annotated)},
		{"unresolved source files", strconv.Itoa(stats.Unresolved)},
		{"malformed lines skipped", strconv.Itoa(stats.Skipped)},
	}

	s.fprintf(w, "%s", renderStatsTable(rows))
	s.fprintf(w, "wrote %d clone groups -> %s\n", stats.Totals.Groups, output)

	return nil
}

// DisplayFilterStats prints the statistics of a filter run.
func (s *SimpleUI) DisplayFilterStats(ctx context.Context, stats m.FilterStats, maxClones int, output m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w := s.summaryWriter(output)

	rows := [][]string{
		{"input groups", strconv.Itoa(stats.Input)},
		{"malformed lines", strconv.Itoa(stats.Malformed)},
		{fmt.Sprintf("dropped (size >= %d)", maxClones), strconv.Itoa(stats.DroppedBySize)},
		{"dropped (test related)", strconv.Itoa(stats.DroppedByTest)},
		{"test sources removed", strconv.Itoa(stats.DroppedSources)},
		{"kept groups", strconv.Itoa(stats.Kept)},
	}

	s.fprintf(w, "%s", renderStatsTable(rows))
	s.fprintf(w, "output written: %s\n", output)

	return nil
}

// DisplayGroups prints one table row per fragment.
func (s *SimpleUI) DisplayGroups(ctx context.Context, groups []m.ClassGroup, stats *m.ConvertStats) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w := s.cmd.OutOrStdout()

	if stats != nil {
		s.fprintf(w, "%s\n", statsHeadline(*stats))
	}

	if len(groups) == 0 {
		s.fprintf(w, "no clone groups found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Class", "NClones", "Similarity", "Fragment", "Lines"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
	})

	fragments := 0

	for _, group := range groups {
		for i, src := range group.Sources {
			classCol, nclonesCol, simCol := "", "", ""
			if i == 0 {
				classCol = strconv.Itoa(group.ClassID)
				nclonesCol = strconv.Itoa(group.NClones)
				simCol = formatSimilarity(group.Similarity)
			}

			table.Append([]string{classCol, nclonesCol, simCol, FragmentLabel(src), strconv.Itoa(src.NLines)})
			fragments++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d groups", len(groups)), "", "",
		fmt.Sprintf("%d fragments", fragments), "",
	})
	table.Render()

	s.fprintf(w, "\n%s", tableBuffer.String())

	return nil
}

// FragmentLabel names a fragment by its qualified name, or by file and range
// when it has not been annotated.
func FragmentLabel(src m.SourceFragment) string {
	if src.QualifiedName != "" {
		return src.QualifiedName
	}

	if src.Range.IsEmpty() {
		return src.File
	}

	return src.File + ":" + src.Range.String()
}

func statsHeadline(stats m.ConvertStats) string {
	return fmt.Sprintf("%d classes, %d declared clones (avg %s, %s over classes with nclones)",
		stats.Totals.Groups, stats.Totals.DeclaredClones,
		formatAverage(stats.AvgAll), formatAverage(stats.AvgNonZero))
}

func renderStatsTable(rows [][]string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Stat", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	table.AppendBulk(rows)
	table.Render()

	return tableBuffer.String()
}

func formatAverage(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func formatSimilarity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// summaryWriter keeps summaries off stdout when records are streamed there.
func (s *SimpleUI) summaryWriter(output m.Path) io.Writer {
	if output.IsStdio() {
		return s.cmd.ErrOrStderr()
	}

	return s.cmd.OutOrStdout()
}

func (s *SimpleUI) fprintf(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, format, args...)
}
