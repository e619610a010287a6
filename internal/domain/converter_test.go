package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "clonex.dev/pkg/clonex/internal/model"
)

// memorySink keeps every record as the JSON line it would be written as.
type memorySink struct {
	lines []string
	err   error
}

func (s *memorySink) Write(record any) error {
	if s.err != nil {
		return s.err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	s.lines = append(s.lines, string(data))

	return nil
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	buf := &bytes.Buffer{}
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	return buf
}

const mismatchReport = `<clones>
<class classid="4" nclones="5" similarity="75">
<source file="a/A.java" startline="1" endline="2" pcid="1">a();</source>
<source file="a/B.java" startline="3" endline="4" pcid="2">b();</source>
<source file="a/C.java" startline="5" endline="6" pcid="3">c();</source>
</class>
<class classid="9" nclones="7" similarity="60">
<source file="a/D.java" startline="1" endline="1">d();</source>
</class>
<class classid="10" nclones="0" similarity="50">
<source file="a/E.java" startline="1" endline="1">e();</source>
</class>
</clones>`

func TestConverter_ClassMode(t *testing.T) {
	logs := captureLogs(t)
	sink := &memorySink{}

	stats, err := NewConverter(SanitizeOptions{}).Convert(mismatchReport, m.ModeClass, sink)
	require.NoError(t, err)

	require.Len(t, sink.lines, 3)
	assert.Equal(t, 3, stats.Rows)
	assert.Equal(t, 5, stats.Fragments)
	assert.False(t, stats.FellBack)

	var first m.ClassGroup
	require.NoError(t, json.Unmarshal([]byte(sink.lines[0]), &first))
	assert.Equal(t, 5, first.NClones)
	assert.Len(t, first.Sources, 3)

	assert.Equal(t, 1, strings.Count(logs.String(), "some classes report nclones != parsed count"))
	assert.True(t, stats.Mismatch)
	assert.Equal(t, 4, stats.FirstMismatchID)

	assert.Equal(t, 3, stats.Totals.Groups)
	assert.Equal(t, 12, stats.Totals.DeclaredClones)
	assert.Equal(t, 2, stats.Totals.GroupsWithClones)
	assert.InDelta(t, 4.0, stats.AvgAll, 1e-9)
	assert.InDelta(t, 6.0, stats.AvgNonZero, 1e-9)
}

func TestConverter_FallsBackToSources(t *testing.T) {
	report := `<source file="x/A.java" startline="2" endline="3" pcid="p1">
  foo();
</source>
<source file="x/B.java" startline="0" endline="3">bar();</source>`

	sink := &memorySink{}

	stats, err := NewConverter(SanitizeOptions{}).Convert(report, m.ModeClass, sink)
	require.NoError(t, err)
	assert.True(t, stats.FellBack)
	assert.Equal(t, m.ModeSource, stats.Mode)
	require.Len(t, sink.lines, 2)

	assert.JSONEq(t,
		`{"file":"x/A.java","range":"2-3","nlines":2,"pcid":"p1","code":"  foo();"}`,
		sink.lines[0])
	assert.JSONEq(t,
		`{"file":"x/B.java","range":"","nlines":0,"pcid":null,"code":"bar();"}`,
		sink.lines[1])
}

func TestConverter_SourceModeIgnoresClasses(t *testing.T) {
	sink := &memorySink{}

	stats, err := NewConverter(SanitizeOptions{}).Convert(mismatchReport, m.ModeSource, sink)
	require.NoError(t, err)
	assert.Len(t, sink.lines, 5)
	assert.Equal(t, 5, stats.Rows)
	assert.False(t, stats.FellBack)
}

func TestConverter_RecordsRoundTrip(t *testing.T) {
	sink := &memorySink{}

	_, err := NewConverter(SanitizeOptions{}).Convert(mismatchReport, m.ModeClass, sink)
	require.NoError(t, err)

	for _, line := range sink.lines {
		var group m.ClassGroup
		require.NoError(t, json.Unmarshal([]byte(line), &group))

		again, err := json.Marshal(group)
		require.NoError(t, err)

		var reparsed m.ClassGroup
		require.NoError(t, json.Unmarshal(again, &reparsed))

		opts := cmp.Options{
			cmp.AllowUnexported(m.LineRange{}),
			cmpopts.IgnoreUnexported(m.ClassGroup{}, m.SourceFragment{}),
		}
		if diff := cmp.Diff(group, reparsed, opts); diff != "" {
			t.Errorf("round trip mismatch (-first +second):\n%s", diff)
		}

		assert.Equal(t, line, string(again))
	}
}

func TestConverter_EmptyClassHasEmptySources(t *testing.T) {
	sink := &memorySink{}

	_, err := NewConverter(SanitizeOptions{}).Convert(`<class classid="1" nclones="0"></class>`, m.ModeClass, sink)
	require.NoError(t, err)
	require.Len(t, sink.lines, 1)
	assert.JSONEq(t, `{"classid":1,"nclones":0,"similarity":0,"sources":[]}`, sink.lines[0])
}

func TestConverter_SinkError(t *testing.T) {
	sinkErr := errors.New("disk full")

	_, err := NewConverter(SanitizeOptions{}).Convert(mismatchReport, m.ModeClass, &memorySink{err: sinkErr})
	require.ErrorIs(t, err, sinkErr)
}

func TestConverter_InvalidMode(t *testing.T) {
	_, err := NewConverter(SanitizeOptions{}).Convert(mismatchReport, m.ConvertMode("tree"), &memorySink{})
	require.ErrorIs(t, err, m.ErrInvalidMode)
}

func TestMismatchReporter(t *testing.T) {
	captureLogs(t)

	var r MismatchReporter
	assert.False(t, r.Check(1, 0, 3), "groups without a declared count are not checked")
	assert.False(t, r.Check(2, 3, 3))
	assert.True(t, r.Check(3, 5, 3))
	assert.False(t, r.Check(4, 9, 1))
	assert.True(t, r.Warned())
	assert.Equal(t, 3, r.FirstClassID())
}
