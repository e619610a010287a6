package model

// Path represents a file system path.
type Path string

// StdioPath stands for standard input or output wherever a path is accepted.
const StdioPath Path = "-"

// IsStdio reports whether p refers to stdin/stdout.
func (p Path) IsStdio() bool {
	return p == StdioPath
}
