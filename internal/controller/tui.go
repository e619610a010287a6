package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "clonex.dev/pkg/clonex/internal/model"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	groupStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
	unknownMarker = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// TUI shows summaries like SimpleUI and browses records in a pager.
type TUI struct {
	*SimpleUI
	programOptions []tea.ProgramOption
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		programOptions: []tea.ProgramOption{
			tea.WithOutput(cmd.OutOrStdout()),
			tea.WithAltScreen(),
		},
	}
}

// DisplayGroups opens a scrollable view of the groups until the user quits.
func (t *TUI) DisplayGroups(ctx context.Context, groups []m.ClassGroup, stats *m.ConvertStats) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)

	program := tea.NewProgram(newGroupPager(groups, stats), options...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}

	return nil
}

const (
	pagerHeaderHeight = 2
	pagerFooterHeight = 2
)

// groupPager is the Bubble Tea model behind `clonex view`.
type groupPager struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
	quitting bool
}

func newGroupPager(groups []m.ClassGroup, stats *m.ConvertStats) groupPager {
	title := fmt.Sprintf("clonex · %d clone groups", len(groups))
	if stats != nil {
		title += " · " + statsHeadline(*stats)
	}

	return groupPager{
		title:   title,
		content: renderGroups(groups),
	}
}

func (p groupPager) Init() tea.Cmd {
	return nil
}

func (p groupPager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - pagerHeaderHeight - pagerFooterHeight
		if height < 1 {
			height = 1
		}

		if !p.ready {
			p.viewport = viewport.New(msg.Width, height)
			p.viewport.SetContent(p.content)
			p.ready = true
		} else {
			p.viewport.Width = msg.Width
			p.viewport.Height = height
		}

		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			p.quitting = true
			return p, tea.Quit
		case "g", "home":
			p.viewport.GotoTop()
			return p, nil
		case "G", "end":
			p.viewport.GotoBottom()
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

func (p groupPager) View() string {
	if !p.ready {
		return "loading..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(p.title))
	b.WriteString("\n\n")
	b.WriteString(p.viewport.View())
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n", faintStyle.Render(fmt.Sprintf(
		"%3.f%% | ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit",
		p.viewport.ScrollPercent()*100)))

	return b.String()
}

// renderGroups lays out one header line per group followed by its fragments.
func renderGroups(groups []m.ClassGroup) string {
	if len(groups) == 0 {
		return "  no clone groups found\n"
	}

	var b strings.Builder

	for _, group := range groups {
		b.WriteString(groupStyle.Render(fmt.Sprintf("class %d", group.ClassID)))
		fmt.Fprintf(&b, "  nclones=%d parsed=%d similarity=%s\n",
			group.NClones, len(group.Sources), formatSimilarity(group.Similarity))

		for _, src := range group.Sources {
			label := FragmentLabel(src)
			if strings.Contains(label, m.UnknownMethod) {
				label = unknownMarker.Render(label)
			}

			fmt.Fprintf(&b, "    %s %s\n", label, faintStyle.Render(fmt.Sprintf("(%d lines)", src.NLines)))
		}

		b.WriteString("\n")
	}

	return b.String()
}
