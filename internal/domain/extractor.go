package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Report blocks are matched on tag names only. Attribute lists are recovered
// with a separate flat key="value" scan so unquoted junk, odd spacing and
// attributes split over several lines do not break extraction.
var (
	classBlockPattern  = regexp.MustCompile(`(?is)<class\b([^>]*)>(.*?)</class>`)
	sourceBlockPattern = regexp.MustCompile(`(?is)<source\b([^>]*)>(.*?)</source>`)
	attributePattern   = regexp.MustCompile(`([A-Za-z_:][\w:.-]*)\s*=\s*"([^"]*)"`)
)

// Attributes holds the key="value" pairs recovered from a tag. A repeated key
// keeps its last value.
type Attributes map[string]string

// ParseAttributes recovers every key="value" pair from raw tag text.
func ParseAttributes(raw string) Attributes {
	attrs := Attributes{}
	for _, match := range attributePattern.FindAllStringSubmatch(raw, -1) {
		attrs[match[1]] = match[2]
	}

	return attrs
}

// Lookup returns the value of the first key that is present, even if empty.
func (a Attributes) Lookup(keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := a[key]; ok {
			return v, true
		}
	}

	return "", false
}

// FirstNonEmpty returns the first non-empty value among keys.
func (a Attributes) FirstNonEmpty(keys ...string) string {
	for _, key := range keys {
		if v := a[key]; v != "" {
			return v
		}
	}

	return ""
}

// Int parses the first present key as an integer, falling back to def.
func (a Attributes) Int(def int, keys ...string) int {
	v, ok := a.Lookup(keys...)
	if !ok {
		return def
	}

	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}

	return n
}

// Float parses the first present key as a finite float, falling back to def.
func (a Attributes) Float(def float64, keys ...string) float64 {
	v, ok := a.Lookup(keys...)
	if !ok {
		return def
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}

	return f
}

// ClassBlock is one <class>...</class> span of a report.
type ClassBlock struct {
	Attrs Attributes
	Body  string
}

// ClassID returns the class identifier, accepting "id" as an alias.
func (b ClassBlock) ClassID() int { return b.Attrs.Int(0, "classid", "id") }

// NClones returns the declared number of fragments.
func (b ClassBlock) NClones() int { return b.Attrs.Int(0, "nclones") }

// Similarity returns the declared similarity.
func (b ClassBlock) Similarity() float64 { return b.Attrs.Float(0, "similarity") }

// SourceBlock is one <source>...</source> span of a report.
type SourceBlock struct {
	Attrs Attributes
	Body  string
}

// File returns the fragment path, accepting "srcfile" when "file" is absent
// or empty.
func (b SourceBlock) File() string { return b.Attrs.FirstNonEmpty("file", "srcfile") }

// StartLine returns the first line of the fragment, 0 when unknown.
func (b SourceBlock) StartLine() int { return b.Attrs.Int(0, "startline") }

// EndLine returns the last line of the fragment, 0 when unknown.
func (b SourceBlock) EndLine() int { return b.Attrs.Int(0, "endline") }

// PCID returns the pcid attribute or nil when the tag has none.
func (b SourceBlock) PCID() *string {
	v, ok := b.Attrs.Lookup("pcid")
	if !ok {
		return nil
	}

	return &v
}

// Extractor finds class and source blocks in report text. Outer class blocks
// are located first; source blocks are then searched only inside each class
// body, so a source outside any class is never attached to one.
type Extractor struct{}

// NewExtractor returns an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ScanClasses calls fn for every class block in order and returns how many
// were visited. Scanning stops at the first error returned by fn.
func (e *Extractor) ScanClasses(text string, fn func(ClassBlock) error) (int, error) {
	return scanBlocks(classBlockPattern, text, func(attrs, body string) error {
		return fn(ClassBlock{Attrs: ParseAttributes(attrs), Body: body})
	})
}

// HasClasses reports whether text contains at least one class block.
func (e *Extractor) HasClasses(text string) bool {
	return classBlockPattern.MatchString(text)
}

// ScanSources calls fn for every source block in text, which is either a whole
// report or a single class body.
func (e *Extractor) ScanSources(text string, fn func(SourceBlock) error) (int, error) {
	return scanBlocks(sourceBlockPattern, text, func(attrs, body string) error {
		return fn(SourceBlock{Attrs: ParseAttributes(attrs), Body: body})
	})
}

// scanBlocks walks non-overlapping matches one at a time so only the current
// block is materialised.
func scanBlocks(pattern *regexp.Regexp, text string, fn func(attrs, body string) error) (int, error) {
	count := 0
	offset := 0

	for offset <= len(text) {
		loc := pattern.FindStringSubmatchIndex(text[offset:])
		if loc == nil {
			break
		}

		attrs := submatch(text[offset:], loc, 1)
		body := submatch(text[offset:], loc, 2)

		if err := fn(attrs, body); err != nil {
			return count, err
		}

		count++

		if loc[1] == 0 {
			offset++
		} else {
			offset += loc[1]
		}
	}

	return count, nil
}

func submatch(s string, loc []int, group int) string {
	start, end := loc[2*group], loc[2*group+1]
	if start < 0 {
		return ""
	}

	return s[start:end]
}
