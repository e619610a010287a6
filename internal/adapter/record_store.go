package adapter

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "clonex.dev/pkg/clonex/internal/model"
)

const (
	recordBufferSize = 64 * 1024
	outputDirPerm    = 0o750
	outputFilePerm   = 0o644
)

// RecordWriter writes one JSON object per line. Commit makes the output
// visible; Close without Commit discards it.
type RecordWriter interface {
	Write(record any) error
	WriteRaw(line []byte) error
	Commit() error
	Close() error
}

// LineFunc receives a non-blank JSONL line with its 1-based line number.
type LineFunc func(lineNo int, line []byte) error

// RecordStore opens JSONL record streams.
type RecordStore interface {
	// Create opens a writer for path. "-" writes to stdout.
	Create(path m.Path) (RecordWriter, error)
	// Scan calls fn for each non-blank line of path. "-" reads stdin.
	Scan(path m.Path, fn LineFunc) error
}

// LocalRecordStore is the filesystem-backed RecordStore.
type LocalRecordStore struct {
	stdin  io.Reader
	stdout io.Writer
}

// NewRecordStore returns a RecordStore bound to the process stdio.
func NewRecordStore() *LocalRecordStore {
	return &LocalRecordStore{stdin: os.Stdin, stdout: os.Stdout}
}

// NewRecordStoreWithStdio returns a RecordStore using the given streams for "-".
func NewRecordStoreWithStdio(stdin io.Reader, stdout io.Writer) *LocalRecordStore {
	return &LocalRecordStore{stdin: stdin, stdout: stdout}
}

// Create opens a JSONL writer. File output goes to a temporary file in the
// destination directory and is renamed into place on Commit.
func (s *LocalRecordStore) Create(path m.Path) (RecordWriter, error) {
	if path.IsStdio() {
		return newJSONLWriter(nopCommitCloser{s.stdout}, nil), nil
	}

	dest := string(path)
	dir := filepath.Dir(dest)

	if err := os.MkdirAll(dir, outputDirPerm); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".clonex-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("create temp output: %w", err)
	}

	_ = os.Chmod(tmp.Name(), outputFilePerm)

	return newJSONLWriter(tmp, &atomicTarget{tmp: tmp, dest: dest}), nil
}

// Scan streams lines without a length limit. Blank lines are skipped.
func (s *LocalRecordStore) Scan(path m.Path, fn LineFunc) error {
	var r io.Reader

	if path.IsStdio() {
		r = s.stdin
	} else {
		// #nosec G304 - user supplied input path
		f, err := os.Open(string(path))
		if err != nil {
			return err
		}

		defer func() {
			_ = f.Close()
		}()

		r = f
	}

	br := bufio.NewReaderSize(r, recordBufferSize)

	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			if trimmed := bytes.TrimSpace(line); len(trimmed) > 0 {
				if cbErr := fn(lineNo, trimmed); cbErr != nil {
					return cbErr
				}
			}
		}

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("read %s line %d: %w", path, lineNo, err)
		}
	}
}

type nopCommitCloser struct {
	io.Writer
}

func (nopCommitCloser) Close() error { return nil }

type atomicTarget struct {
	tmp  *os.File
	dest string
}

type jsonlWriter struct {
	closer    io.Closer
	buf       *bufio.Writer
	enc       *json.Encoder
	target    *atomicTarget
	committed bool
	closed    bool
}

func newJSONLWriter(w io.WriteCloser, target *atomicTarget) *jsonlWriter {
	buf := bufio.NewWriterSize(w, recordBufferSize)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	return &jsonlWriter{closer: w, buf: buf, enc: enc, target: target}
}

// Write encodes record as a single line.
func (w *jsonlWriter) Write(record any) error {
	return w.enc.Encode(record)
}

// WriteRaw copies an already encoded line.
func (w *jsonlWriter) WriteRaw(line []byte) error {
	if _, err := w.buf.Write(line); err != nil {
		return err
	}

	return w.buf.WriteByte('\n')
}

// Commit flushes and, for file output, renames the temp file into place.
func (w *jsonlWriter) Commit() error {
	if err := w.buf.Flush(); err != nil {
		return err
	}

	if w.target == nil {
		w.committed = true
		return nil
	}

	if err := w.target.tmp.Sync(); err != nil {
		return err
	}

	if err := w.target.tmp.Close(); err != nil {
		return err
	}

	w.closed = true

	if err := os.Rename(w.target.tmp.Name(), w.target.dest); err != nil {
		_ = os.Remove(w.target.tmp.Name())
		return fmt.Errorf("replace %s: %w", w.target.dest, err)
	}

	w.committed = true

	return nil
}

// Close releases the writer. Uncommitted file output is removed.
func (w *jsonlWriter) Close() error {
	if w.target == nil {
		if !w.committed {
			_ = w.buf.Flush()
		}

		return w.closer.Close()
	}

	var err error
	if !w.closed {
		err = w.closer.Close()
		w.closed = true
	}

	if !w.committed {
		_ = os.Remove(w.target.tmp.Name())
	}

	return err
}
