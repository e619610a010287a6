// Package controller provides output adapters for displaying clonex results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "clonex.dev/pkg/clonex/internal/model"
)

// UI defines how run summaries and records are shown to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayConvertStats(ctx context.Context, stats m.ConvertStats, output m.Path) error
	DisplayAnnotateStats(ctx context.Context, stats m.AnnotateStats, output m.Path) error
	DisplayFilterStats(ctx context.Context, stats m.FilterStats, maxClones int, output m.Path) error
	DisplayGroups(ctx context.Context, groups []m.ClassGroup, stats *m.ConvertStats) error
}

// NewUI picks the interactive TUI when stdout is a terminal and plain text
// otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
