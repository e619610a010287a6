// Package domain implements clone-report conversion, qualified-name
// annotation and record filtering.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"clonex.dev/pkg/clonex/internal/adapter"
	"clonex.dev/pkg/clonex/internal/controller"
	m "clonex.dev/pkg/clonex/internal/model"
)

// ConvertArgs contains the arguments for converting a report to JSONL.
type ConvertArgs struct {
	Report   m.Path
	Output   m.Path
	Stats    m.Path
	Mode     m.ConvertMode
	Sanitize SanitizeOptions
}

// AnnotateArgs contains the arguments for adding qualified names.
type AnnotateArgs struct {
	Input        m.Path
	Output       m.Path
	ProjectsRoot m.Path
}

// FilterArgs contains the arguments for filtering clone groups.
type FilterArgs struct {
	Input     m.Path
	Output    m.Path
	MaxClones int
	Mode      FilterMode
}

// ViewArgs contains the arguments for browsing a JSONL file.
type ViewArgs struct {
	Input m.Path
	Stats m.Path
	Limit int
}

// Workflow runs the clonex passes. Each pass reads one input, streams records
// one at a time and writes one output.
type Workflow interface {
	Convert(ctx context.Context, args ConvertArgs) error
	Annotate(ctx context.Context, args AnnotateArgs) error
	Filter(ctx context.Context, args FilterArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.RecordStore
	adapter.StatsStore
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	recordStore adapter.RecordStore,
	statsStore adapter.StatsStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		RecordStore:     recordStore,
		StatsStore:      statsStore,
		UI:              ui,
	}
}

// Convert reads the whole report before creating any output, so a missing or
// unreadable report leaves nothing behind.
func (w *workflow) Convert(ctx context.Context, args ConvertArgs) error {
	if args.Mode != m.ModeClass && args.Mode != m.ModeSource {
		return fmt.Errorf("%w: %q", m.ErrInvalidMode, args.Mode)
	}

	text, err := w.ReadText(args.Report)
	if err != nil {
		slog.Error("Failed to read report", "report", args.Report, "error", err)
		return fmt.Errorf("read report: %w", err)
	}

	out, err := w.Create(args.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	defer func() {
		_ = out.Close()
	}()

	stats, err := NewConverter(args.Sanitize).Convert(text, args.Mode, out)
	if err != nil {
		return fmt.Errorf("convert %s: %w", args.Report, err)
	}

	if err := out.Commit(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if args.Stats != "" {
		if err := w.SaveStats(args.Stats, stats); err != nil {
			return err
		}
	}

	return w.DisplayConvertStats(ctx, stats, args.Output)
}

// Annotate adds qualified_name to every fragment of every group line. Lines
// that are not groups are copied as they are; malformed lines are skipped.
func (w *workflow) Annotate(ctx context.Context, args AnnotateArgs) error {
	cache := adapter.NewSourceCache(w.SourceFSAdapter, args.ProjectsRoot)
	annotator := NewAnnotator(cache)

	out, err := w.createAfterInputCheck(args.Input, args.Output)
	if err != nil {
		return err
	}

	defer func() {
		_ = out.Close()
	}()

	var stats m.AnnotateStats

	err = w.Scan(args.Input, func(lineNo int, line []byte) error {
		stats.Lines++

		decoded, err := DecodeGroupLine(line)
		if err != nil {
			stats.Skipped++
			slog.Warn("skipping malformed line", "input", args.Input, "line", lineNo, "error", err)

			return nil
		}

		if decoded.Group == nil {
			return out.WriteRaw(line)
		}

		stats.Totals.Add(decoded.DeclaredOrParsed())
		stats.Annotated += annotator.AnnotateGroup(decoded.Group)

		return out.Write(decoded.Group)
	})
	if err != nil {
		return fmt.Errorf("annotate %s: %w", args.Input, err)
	}

	if err := out.Commit(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	stats.Unresolved = cache.Misses()
	slog.Info("annotation finished",
		"groups", stats.Totals.Groups,
		"fragments", stats.Annotated,
		"source_files", cache.Len(),
		"unresolved", stats.Unresolved)

	return w.DisplayAnnotateStats(ctx, stats, args.Output)
}

// Filter drops oversized groups and test code.
func (w *workflow) Filter(ctx context.Context, args FilterArgs) error {
	filter := GroupFilter{MaxClones: args.MaxClones, Mode: args.Mode}

	out, err := w.createAfterInputCheck(args.Input, args.Output)
	if err != nil {
		return err
	}

	defer func() {
		_ = out.Close()
	}()

	var stats m.FilterStats

	err = w.Scan(args.Input, func(lineNo int, line []byte) error {
		stats.Input++

		decoded, err := DecodeGroupLine(line)
		if err != nil {
			stats.Malformed++
			slog.Warn("skipping malformed line", "input", args.Input, "line", lineNo, "error", err)

			return nil
		}

		if decoded.Group == nil {
			stats.Kept++
			return out.WriteRaw(line)
		}

		verdict, removed := filter.Apply(decoded.Group)
		stats.DroppedSources += removed

		switch verdict {
		case DroppedBySize:
			stats.DroppedBySize++
			return nil
		case DroppedByTest:
			stats.DroppedByTest++
			return nil
		case Kept:
		}

		stats.Kept++

		if removed == 0 {
			return out.WriteRaw(line)
		}

		return out.Write(decoded.Group)
	})
	if err != nil {
		return fmt.Errorf("filter %s: %w", args.Input, err)
	}

	if err := out.Commit(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return w.DisplayFilterStats(ctx, stats, args.MaxClones, args.Output)
}

// errStopScan ends a scan early once enough groups were collected.
var errStopScan = errors.New("stop scan")

// View loads groups (at most Limit when positive) and hands them to the UI.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	var groups []m.ClassGroup

	err := w.Scan(args.Input, func(lineNo int, line []byte) error {
		decoded, err := DecodeGroupLine(line)
		if err != nil {
			slog.Warn("skipping malformed line", "input", args.Input, "line", lineNo, "error", err)
			return nil
		}

		if decoded.Group == nil {
			return nil
		}

		groups = append(groups, *decoded.Group)
		if args.Limit > 0 && len(groups) >= args.Limit {
			return errStopScan
		}

		return nil
	})
	if err != nil && !errors.Is(err, errStopScan) {
		return fmt.Errorf("view %s: %w", args.Input, err)
	}

	var stats *m.ConvertStats

	if args.Stats != "" {
		loaded, err := w.LoadConvertStats(args.Stats)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		stats = &loaded
	}

	return w.DisplayGroups(ctx, groups, stats)
}

// createAfterInputCheck refuses to create output when a file input is
// missing, so a failed pass never leaves an empty output behind.
func (w *workflow) createAfterInputCheck(input, output m.Path) (adapter.RecordWriter, error) {
	if !input.IsStdio() {
		if _, err := w.FileInfo(input); err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
	}

	out, err := w.Create(output)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}

	return out, nil
}
