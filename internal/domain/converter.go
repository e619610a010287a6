package domain

import (
	"fmt"
	"log/slog"

	m "clonex.dev/pkg/clonex/internal/model"
)

// RecordSink receives records one at a time as they are built.
type RecordSink interface {
	Write(record any) error
}

// MismatchReporter owns the run-wide "declared vs parsed" warning. Only the
// first divergence is logged; later ones are ignored.
type MismatchReporter struct {
	warned       bool
	firstClassID int
}

// Check compares the declared count of a group with the fragments actually
// parsed. Groups that declare no count are not checked. It returns true only
// when this call emitted the warning.
func (r *MismatchReporter) Check(classID, declared, parsed int) bool {
	if r.warned || declared == 0 || declared == parsed {
		return false
	}

	r.warned = true
	r.firstClassID = classID

	slog.Warn("some classes report nclones != parsed count",
		"first_classid", classID, "nclones", declared, "parsed", parsed)

	return true
}

// Warned reports whether a mismatch has been seen.
func (r *MismatchReporter) Warned() bool { return r.warned }

// FirstClassID is the class that triggered the warning, 0 if none did.
func (r *MismatchReporter) FirstClassID() int { return r.firstClassID }

// Converter turns report text into clone records.
type Converter struct {
	extractor *Extractor
	sanitize  SanitizeOptions
}

// NewConverter returns a Converter that cleans code bodies with opts.
func NewConverter(opts SanitizeOptions) *Converter {
	return &Converter{
		extractor: NewExtractor(),
		sanitize:  opts,
	}
}

// BuildFragment turns a source block into a fragment with sanitized code.
func (c *Converter) BuildFragment(block SourceBlock) m.SourceFragment {
	return m.NewSourceFragment(
		block.File(),
		block.StartLine(),
		block.EndLine(),
		block.PCID(),
		Sanitize(block.Body, c.sanitize),
	)
}

// BuildGroup turns a class block into a group, scanning only its own body for
// fragments.
func (c *Converter) BuildGroup(block ClassBlock) (m.ClassGroup, error) {
	group := m.ClassGroup{
		ClassID:    block.ClassID(),
		NClones:    block.NClones(),
		Similarity: block.Similarity(),
		Sources:    []m.SourceFragment{},
	}

	_, err := c.extractor.ScanSources(block.Body, func(src SourceBlock) error {
		group.Sources = append(group.Sources, c.BuildFragment(src))
		return nil
	})
	if err != nil {
		return m.ClassGroup{}, err
	}

	return group, nil
}

// Convert streams every record found in text into sink. In class mode a
// report without class blocks falls back to flat source records.
func (c *Converter) Convert(text string, mode m.ConvertMode, sink RecordSink) (m.ConvertStats, error) {
	switch mode {
	case m.ModeClass:
		if c.extractor.HasClasses(text) {
			return c.convertClasses(text, sink)
		}

		slog.Info("no <class> blocks detected; falling back to source mode")

		stats, err := c.convertSources(text, sink)
		stats.FellBack = true

		return stats, err
	case m.ModeSource:
		return c.convertSources(text, sink)
	default:
		return m.ConvertStats{}, fmt.Errorf("%w: %q", m.ErrInvalidMode, mode)
	}
}

func (c *Converter) convertClasses(text string, sink RecordSink) (m.ConvertStats, error) {
	slog.Info("parsing <class> blocks into one row per class")

	stats := m.ConvertStats{Mode: m.ModeClass}

	var mismatch MismatchReporter

	_, err := c.extractor.ScanClasses(text, func(block ClassBlock) error {
		group, err := c.BuildGroup(block)
		if err != nil {
			return err
		}

		stats.Totals.Add(group.NClones)
		stats.Fragments += len(group.Sources)
		mismatch.Check(group.ClassID, group.NClones, len(group.Sources))

		if err := sink.Write(group); err != nil {
			return fmt.Errorf("write class %d: %w", group.ClassID, err)
		}

		stats.Rows++

		return nil
	})

	stats.AvgAll = stats.Totals.AverageAll()
	stats.AvgNonZero = stats.Totals.AverageNonZero()
	stats.Mismatch = mismatch.Warned()
	stats.FirstMismatchID = mismatch.FirstClassID()

	slog.Info("class conversion finished",
		"classes", stats.Totals.Groups,
		"nclones_total", stats.Totals.DeclaredClones,
		"nclones_avg_all", stats.AvgAll,
		"nclones_avg_nonzero", stats.AvgNonZero)

	return stats, err
}

func (c *Converter) convertSources(text string, sink RecordSink) (m.ConvertStats, error) {
	slog.Info("parsing <source> blocks into one row per source")

	stats := m.ConvertStats{Mode: m.ModeSource}

	_, err := c.extractor.ScanSources(text, func(block SourceBlock) error {
		fragment := c.BuildFragment(block)

		if err := sink.Write(fragment); err != nil {
			return fmt.Errorf("write source %s: %w", fragment.File, err)
		}

		stats.Fragments++
		stats.Rows++

		return nil
	})

	return stats, err
}
