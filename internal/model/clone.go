// Package model defines the records produced and consumed by clonex.
package model

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var lineRangePattern = regexp.MustCompile(`^(-?\d+)-(-?\d+)$`)

// UnknownClass is used when a fragment has no file path to derive a class from.
const UnknownClass = "UnknownClass"

// UnknownMethod is used when no method header could be recognised.
const UnknownMethod = "<unknown>"

// ClassGroup is one clone class reported by the detector.
//
// A group decoded from JSON remembers its original members. Encoding it again
// writes those members back unchanged, in their original order, except for
// sources, which always come from Sources.
type ClassGroup struct {
	ClassID    int              `json:"classid"`
	NClones    int              `json:"nclones"`
	Similarity float64          `json:"similarity"`
	Sources    []SourceFragment `json:"sources"`

	raw rawObject
}

type plainClassGroup ClassGroup

// MarshalJSON implements json.Marshaler.
func (g ClassGroup) MarshalJSON() ([]byte, error) {
	if !g.raw.decoded() {
		return marshalVerbatim(plainClassGroup(g))
	}

	sources := g.Sources
	if sources == nil {
		sources = []SourceFragment{}
	}

	encoded, err := marshalVerbatim(sources)
	if err != nil {
		return nil, err
	}

	return g.raw.encode(rawMember{key: "sources", value: encoded})
}

// UnmarshalJSON implements json.Unmarshaler. Numeric fields accept any JSON
// number; fractional counts are truncated.
func (g *ClassGroup) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}

	raw, err := decodeRawObject(data)
	if err != nil {
		return fmt.Errorf("clone group: %w", err)
	}

	var wire struct {
		ClassID    *json.Number     `json:"classid"`
		NClones    *json.Number     `json:"nclones"`
		Similarity *json.Number     `json:"similarity"`
		Sources    []SourceFragment `json:"sources"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	classID, err := numberToInt(wire.ClassID)
	if err != nil {
		return fmt.Errorf("classid: %w", err)
	}

	nclones, err := numberToInt(wire.NClones)
	if err != nil {
		return fmt.Errorf("nclones: %w", err)
	}

	similarity, err := numberToFloat(wire.Similarity)
	if err != nil {
		return fmt.Errorf("similarity: %w", err)
	}

	*g = ClassGroup{
		ClassID:    classID,
		NClones:    nclones,
		Similarity: similarity,
		Sources:    wire.Sources,
		raw:        raw,
	}

	return nil
}

// SourceFragment is one code instance inside a clone class. In source mode it
// is also written on its own as a flat record.
//
// Like ClassGroup, a decoded fragment re-encodes its original members. Only
// a non-empty QualifiedName is written over them.
type SourceFragment struct {
	File          string    `json:"file"`
	Range         LineRange `json:"range"`
	NLines        int       `json:"nlines"`
	PCID          *string   `json:"pcid"`
	Code          string    `json:"code"`
	QualifiedName string    `json:"qualified_name,omitempty"`

	raw rawObject
}

type plainSourceFragment SourceFragment

// MarshalJSON implements json.Marshaler.
func (f SourceFragment) MarshalJSON() ([]byte, error) {
	if !f.raw.decoded() {
		return marshalVerbatim(plainSourceFragment(f))
	}

	if f.QualifiedName == "" {
		return f.raw.encode()
	}

	name, err := marshalVerbatim(f.QualifiedName)
	if err != nil {
		return nil, err
	}

	return f.raw.encode(rawMember{key: "qualified_name", value: name})
}

// UnmarshalJSON implements json.Unmarshaler. A numeric pcid is kept as its
// decimal text.
func (f *SourceFragment) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}

	raw, err := decodeRawObject(data)
	if err != nil {
		return fmt.Errorf("source fragment: %w", err)
	}

	var wire struct {
		File          string          `json:"file"`
		Range         LineRange       `json:"range"`
		NLines        *json.Number    `json:"nlines"`
		PCID          json.RawMessage `json:"pcid"`
		Code          string          `json:"code"`
		QualifiedName string          `json:"qualified_name"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	nlines, err := numberToInt(wire.NLines)
	if err != nil {
		return fmt.Errorf("nlines: %w", err)
	}

	pcid, err := decodePCID(wire.PCID)
	if err != nil {
		return fmt.Errorf("pcid: %w", err)
	}

	*f = SourceFragment{
		File:          wire.File,
		Range:         wire.Range,
		NLines:        nlines,
		PCID:          pcid,
		Code:          wire.Code,
		QualifiedName: wire.QualifiedName,
		raw:           raw,
	}

	return nil
}

func decodePCID(data json.RawMessage) (*string, error) {
	if len(data) == 0 || isJSONNull(data) {
		return nil, nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return &s, nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}

	text := n.String()

	return &text, nil
}

// NewSourceFragment builds a fragment whose range and line count are derived
// from the given bounds.
func NewSourceFragment(file string, start, end int, pcid *string, code string) SourceFragment {
	lr := NewLineRange(start, end)

	return SourceFragment{
		File:   file,
		Range:  lr,
		NLines: lr.NLines(),
		PCID:   pcid,
		Code:   code,
	}
}

// LineRange is an inclusive line span, normally 1-based. The zero value is the empty
// range and serializes as "".
type LineRange struct {
	start int
	end   int
}

// NewLineRange returns a range only when both bounds are set and end >= start.
func NewLineRange(start, end int) LineRange {
	if start == 0 || end == 0 || end < start {
		return LineRange{}
	}

	return LineRange{start: start, end: end}
}

// IsEmpty reports whether the range carries no bounds.
func (r LineRange) IsEmpty() bool {
	return r.start == 0
}

// Start returns the first line, 0 when empty.
func (r LineRange) Start() int { return r.start }

// End returns the last line, 0 when empty.
func (r LineRange) End() int { return r.end }

// NLines returns the number of lines covered by the range.
func (r LineRange) NLines() int {
	if r.IsEmpty() {
		return 0
	}

	return r.end - r.start + 1
}

func (r LineRange) String() string {
	if r.IsEmpty() {
		return ""
	}

	return fmt.Sprintf("%d-%d", r.start, r.end)
}

// MarshalJSON encodes the range as "S-E" or "".
func (r LineRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON accepts "S-E", "" and null. Anything else decodes to the
// empty range.
func (r *LineRange) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("line range: %w", err)
	}

	*r = ParseLineRange(derefString(s))

	return nil
}

// ParseLineRange parses "S-E". Either bound may be negative, so "-5-3" reads
// back as start -5 and end 3. Malformed input yields the empty range.
func ParseLineRange(s string) LineRange {
	match := lineRangePattern.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return LineRange{}
	}

	start, err := strconv.Atoi(match[1])
	if err != nil {
		return LineRange{}
	}

	end, err := strconv.Atoi(match[2])
	if err != nil {
		return LineRange{}
	}

	return NewLineRange(start, end)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
