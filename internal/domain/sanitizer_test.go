package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts SanitizeOptions
		want string
	}{
		{"empty", "", SanitizeOptions{}, ""},
		{"blank edges", "\n\n  code here  \n\n", SanitizeOptions{}, "  code here  "},
		{"interior blank kept", "a\n\n\nb\n", SanitizeOptions{}, "a\n\n\nb"},
		{"crlf and cr", "a\r\nb\rc", SanitizeOptions{}, "a\nb\nc"},
		{"control chars", "a\x00b\x07c\x0bd\x0ce\x1ff\tg", SanitizeOptions{}, "abcdef\tg"},
		{"keep control", "a\x01b", SanitizeOptions{KeepControl: true}, "a\x01b"},
		{"keep edges", "\n x \n", SanitizeOptions{KeepBlankEdges: true}, "\n x \n"},
		{"unescape", "if (a &lt; b &amp;&amp; c) {}", SanitizeOptions{UnescapeEntities: true}, "if (a < b && c) {}"},
		{"no unescape by default", "a &lt; b", SanitizeOptions{}, "a &lt; b"},
		{"only blank lines", "\n \n\t\n", SanitizeOptions{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in, tt.opts))
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"\r\n\r\n  int x = 1;\r\n\x00  return x;\r\n\r\n",
		"\n\n  code here  \n\n",
		"plain",
		"\x1b[0m colored \x1b[0m",
	}

	for _, in := range inputs {
		once := Sanitize(in, SanitizeOptions{})
		assert.Equal(t, once, Sanitize(once, SanitizeOptions{}), "input %q", in)
	}
}
