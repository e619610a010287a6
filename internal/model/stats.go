package model

// GroupTotals accumulates declared clone counts over a stream of groups.
type GroupTotals struct {
	Groups           int `yaml:"groups"`
	GroupsWithClones int `yaml:"groups_with_clones"`
	DeclaredClones   int `yaml:"declared_clones"`
	ClonesInNonEmpty int `yaml:"declared_clones_nonzero"`
}

// Add records one group with the given declared clone count.
func (t *GroupTotals) Add(nclones int) {
	t.Groups++
	t.DeclaredClones += nclones

	if nclones > 0 {
		t.GroupsWithClones++
		t.ClonesInNonEmpty += nclones
	}
}

// AverageAll is the mean declared clone count over all groups.
func (t GroupTotals) AverageAll() float64 {
	if t.Groups == 0 {
		return 0
	}

	return float64(t.DeclaredClones) / float64(t.Groups)
}

// AverageNonZero is the mean declared clone count over groups with nclones > 0.
func (t GroupTotals) AverageNonZero() float64 {
	if t.GroupsWithClones == 0 {
		return 0
	}

	return float64(t.ClonesInNonEmpty) / float64(t.GroupsWithClones)
}

// ConvertMode selects how a report is turned into records.
type ConvertMode string

const (
	// ModeClass writes one record per clone class with its fragments.
	ModeClass ConvertMode = "class"
	// ModeSource writes one flat record per fragment.
	ModeSource ConvertMode = "source"
)

// ConvertStats summarises a report conversion.
type ConvertStats struct {
	Mode            ConvertMode `yaml:"mode"`
	FellBack        bool        `yaml:"fell_back"`
	Rows            int         `yaml:"rows"`
	Fragments       int         `yaml:"fragments"`
	Totals          GroupTotals `yaml:"totals"`
	AvgAll          float64     `yaml:"nclones_avg_all"`
	AvgNonZero      float64     `yaml:"nclones_avg_nonzero"`
	Mismatch        bool        `yaml:"nclones_mismatch"`
	FirstMismatchID int         `yaml:"first_mismatch_classid,omitempty"`
}

// AnnotateStats summarises an annotation pass.
type AnnotateStats struct {
	Lines      int         `yaml:"lines"`
	Skipped    int         `yaml:"skipped"`
	Annotated  int         `yaml:"annotated_fragments"`
	Unresolved int         `yaml:"unresolved_files"`
	Totals     GroupTotals `yaml:"totals"`
}

// FilterStats summarises a filter pass.
type FilterStats struct {
	Input          int `yaml:"input"`
	Malformed      int `yaml:"malformed"`
	DroppedBySize  int `yaml:"dropped_size"`
	DroppedByTest  int `yaml:"dropped_test"`
	DroppedSources int `yaml:"dropped_sources"`
	Kept           int `yaml:"kept"`
}
