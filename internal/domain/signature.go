package domain

import (
	"path"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	m "clonex.dev/pkg/clonex/internal/model"
)

var (
	packageDeclPattern = regexp.MustCompile(`(?m)^\s*package\s+([\w.]+)\s*;`)
	typeDeclPattern    = regexp.MustCompile(`\b(?:class|interface|enum|record)\s+[A-Za-z_$][\w$]*`)
)

// controlKeywords look like calls in a header ("if (", "new Foo(") but never
// name the declared method.
var controlKeywords = map[string]struct{}{
	"if": {}, "for": {}, "while": {}, "switch": {}, "catch": {}, "new": {},
	"return": {}, "throw": {}, "case": {}, "do": {}, "try": {}, "assert": {},
	"synchronized": {}, "else": {},
}

// MethodSignature is the method name and normalized parameter list recovered
// from a code header.
type MethodSignature struct {
	Name   string
	Params string
}

// UnknownSignature is returned when no method name can be found.
var UnknownSignature = MethodSignature{Name: m.UnknownMethod}

func (s MethodSignature) String() string {
	return s.Name + "(" + s.Params + ")"
}

// ParseMethodHeader finds the declared method in the text before the first
// opening brace. Every identifier directly followed by "(" is a candidate;
// control keywords are skipped and the last remaining candidate wins, which
// lets return types and annotations with arguments precede the name.
//
// When the text before the brace is only a type declaration ("class Foo"),
// the search moves on to the type body.
//
// This is a heuristic, not a grammar: multi-line generics or lambdas in the
// header can produce a wrong name.
func ParseMethodHeader(code string) (MethodSignature, bool) {
	for code != "" {
		header, body, found := strings.Cut(code, "{")
		if sig, ok := parseHeader(header); ok {
			return sig, true
		}

		if !found || !typeDeclPattern.MatchString(header) {
			break
		}

		code = body
	}

	return UnknownSignature, false
}

func parseHeader(header string) (MethodSignature, bool) {
	name, open := "", -1
	for _, c := range headerCalls(header) {
		if _, skip := controlKeywords[c.name]; skip {
			continue
		}

		name, open = c.name, c.open
	}

	if name == "" {
		return UnknownSignature, false
	}

	sig := MethodSignature{Name: name}
	if closeIdx := matchParen(header, open); closeIdx >= 0 {
		sig.Params = normalizeParams(header[open+1 : closeIdx])
	}

	return sig, true
}

type headerCall struct {
	name string
	open int
}

// headerCalls lists every `identifier (` occurrence left to right. The scan
// resumes after each matched "(" so arguments are scanned too.
func headerCalls(header string) []headerCall {
	var calls []headerCall

	i := 0
	for i < len(header) {
		r, size := utf8.DecodeRuneInString(header[i:])
		if !isIdentStart(r) {
			i += size
			continue
		}

		start := i
		i += size

		for i < len(header) {
			r, size = utf8.DecodeRuneInString(header[i:])
			if !isIdentPart(r) {
				break
			}

			i += size
		}

		end := i

		j := i
		for j < len(header) {
			r, size = utf8.DecodeRuneInString(header[j:])
			if !unicode.IsSpace(r) {
				break
			}

			j += size
		}

		if j < len(header) && header[j] == '(' {
			calls = append(calls, headerCall{name: header[start:end], open: j})
			i = j + 1
		}
	}

	return calls
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

// matchParen returns the index of the ")" that closes the "(" at open, or -1
// when the parentheses never balance.
func matchParen(s string, open int) int {
	depth := 0

	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// normalizeParams collapses whitespace runs and puts exactly one space after
// every comma.
func normalizeParams(params string) string {
	params = strings.Join(strings.Fields(params), " ")
	if params == "" {
		return ""
	}

	parts := strings.Split(params, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	return strings.Join(parts, ", ")
}

// PackageName returns the first `package a.b.c;` declaration in a source file.
func PackageName(source string) (string, bool) {
	match := packageDeclPattern.FindStringSubmatch(source)
	if match == nil {
		return "", false
	}

	return match[1], true
}

// ClassNameFromPath derives the class name from a file's base name without
// its extension. Both slash styles are accepted since reports may come from
// another platform.
func ClassNameFromPath(filePath string) string {
	p := strings.ReplaceAll(filePath, `\`, "/")
	if strings.TrimRight(p, "/") == "" {
		return m.UnknownClass
	}

	base := path.Base(p)
	if ext := path.Ext(base); ext != base {
		base = strings.TrimSuffix(base, ext)
	}

	if base == "" || base == "." {
		return m.UnknownClass
	}

	return base
}

// ComposeQualifiedName joins package, class and signature with dots. An empty
// package is left out.
func ComposeQualifiedName(pkg, class string, sig MethodSignature) string {
	if pkg == "" {
		return class + "." + sig.String()
	}

	return pkg + "." + class + "." + sig.String()
}
