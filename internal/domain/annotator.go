package domain

import (
	"encoding/json"
	"fmt"

	m "clonex.dev/pkg/clonex/internal/model"
)

// SourceLoader returns the text of a source file referenced by a record.
type SourceLoader interface {
	Load(path string) (string, bool)
}

// Annotator assigns qualified names to fragments. All file access goes
// through the loader it was built with.
type Annotator struct {
	sources SourceLoader
}

// NewAnnotator returns an Annotator reading files through sources.
func NewAnnotator(sources SourceLoader) *Annotator {
	return &Annotator{sources: sources}
}

// QualifiedName computes package.Class.method(params) for a fragment. The
// package comes from the whole source file, the method from the fragment
// code. A file that cannot be read only loses the package prefix.
func (a *Annotator) QualifiedName(fragment m.SourceFragment) string {
	var pkg string
	if text, ok := a.sources.Load(fragment.File); ok {
		pkg, _ = PackageName(text)
	}

	sig, _ := ParseMethodHeader(fragment.Code)

	return ComposeQualifiedName(pkg, ClassNameFromPath(fragment.File), sig)
}

// AnnotateGroup fills in missing qualified names and returns how many were
// computed. Names already present are kept.
func (a *Annotator) AnnotateGroup(group *m.ClassGroup) int {
	annotated := 0

	for i := range group.Sources {
		if group.Sources[i].QualifiedName != "" {
			continue
		}

		group.Sources[i].QualifiedName = a.QualifiedName(group.Sources[i])
		annotated++
	}

	return annotated
}

// GroupLine is one decoded JSONL line. Group is nil for objects without a
// "sources" array; those are passed through untouched.
type GroupLine struct {
	Group           *m.ClassGroup
	DeclaresNClones bool
}

// DecodeGroupLine decodes a JSONL line and reports whether it is a clone
// group. Lines that are not JSON objects, or groups whose fields have the
// wrong types, wrap m.ErrMalformedRecord.
func DecodeGroupLine(line []byte) (GroupLine, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(line, &fields); err != nil {
		return GroupLine{}, fmt.Errorf("%w: %w", m.ErrMalformedRecord, err)
	}

	rawSources, ok := fields["sources"]
	if !ok || !isJSONArray(rawSources) {
		return GroupLine{}, nil
	}

	var group m.ClassGroup
	if err := json.Unmarshal(line, &group); err != nil {
		return GroupLine{}, fmt.Errorf("%w: %w", m.ErrMalformedRecord, err)
	}

	_, declares := fields["nclones"]
	if declares {
		declares = isJSONNumber(fields["nclones"])
	}

	return GroupLine{Group: &group, DeclaresNClones: declares}, nil
}

// DeclaredOrParsed is the group's declared count, or the number of fragments
// when the record carries no numeric nclones.
func (l GroupLine) DeclaredOrParsed() int {
	if l.Group == nil {
		return 0
	}

	if l.DeclaresNClones {
		return l.Group.NClones
	}

	return len(l.Group.Sources)
}

func isJSONArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '[':
			return true
		default:
			return false
		}
	}

	return false
}

func isJSONNumber(raw json.RawMessage) bool {
	var n json.Number
	return json.Unmarshal(raw, &n) == nil && n != ""
}
