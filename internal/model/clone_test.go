package model

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineRange(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		end       int
		wantEmpty bool
		wantStr   string
		wantLines int
	}{
		{"regular", 10, 20, false, "10-20", 11},
		{"single line", 7, 7, false, "7-7", 1},
		{"missing start", 0, 5, true, "", 0},
		{"missing end", 5, 0, true, "", 0},
		{"reversed", 9, 3, true, "", 0},
		{"negative start", -5, 3, false, "-5-3", 9},
		{"both negative", -7, -2, false, "-7--2", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewLineRange(tt.start, tt.end)
			assert.Equal(t, tt.wantEmpty, r.IsEmpty())
			assert.Equal(t, tt.wantStr, r.String())
			assert.Equal(t, tt.wantLines, r.NLines())
		})
	}
}

func TestParseLineRange(t *testing.T) {
	assert.Equal(t, NewLineRange(3, 8), ParseLineRange("3-8"))
	assert.Equal(t, NewLineRange(3, 8), ParseLineRange(" 3-8 "))
	assert.True(t, ParseLineRange("").IsEmpty())
	assert.True(t, ParseLineRange("3").IsEmpty())
	assert.True(t, ParseLineRange("a-b").IsEmpty())
	assert.True(t, ParseLineRange("8-3").IsEmpty())
	assert.True(t, ParseLineRange("3-").IsEmpty())
	assert.True(t, ParseLineRange("3-4-5").IsEmpty())
}

func TestParseLineRange_NegativeBounds(t *testing.T) {
	for _, r := range []LineRange{NewLineRange(-5, 3), NewLineRange(-7, -2), NewLineRange(1, 1)} {
		back := ParseLineRange(r.String())
		assert.Equal(t, r, back, r.String())
		assert.Equal(t, r.NLines(), back.NLines())
	}
}

func TestSourceFragment_NegativeRangeSurvivesJSON(t *testing.T) {
	f := NewSourceFragment("A.java", -5, 3, nil, "")
	data, err := json.Marshal(f)
	require.NoError(t, err)

	var back SourceFragment
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "-5-3", back.Range.String())
	assert.Equal(t, 9, back.NLines)

	again, err := json.Marshal(back)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))
}

func TestLineRange_JSON(t *testing.T) {
	data, err := json.Marshal(NewLineRange(1, 4))
	require.NoError(t, err)
	assert.JSONEq(t, `"1-4"`, string(data))

	data, err = json.Marshal(LineRange{})
	require.NoError(t, err)
	assert.JSONEq(t, `""`, string(data))

	var r LineRange
	require.NoError(t, json.Unmarshal([]byte(`"12-15"`), &r))
	assert.Equal(t, 12, r.Start())
	assert.Equal(t, 15, r.End())

	require.NoError(t, json.Unmarshal([]byte(`null`), &r))
	assert.True(t, r.IsEmpty())

	require.Error(t, json.Unmarshal([]byte(`42`), &r))
}

func TestNewSourceFragment(t *testing.T) {
	pcid := "77"
	f := NewSourceFragment("a/B.java", 2, 4, &pcid, "x();")

	assert.Equal(t, "2-4", f.Range.String())
	assert.Equal(t, 3, f.NLines)
	require.NotNil(t, f.PCID)
	assert.Equal(t, "77", *f.PCID)

	empty := NewSourceFragment("a/B.java", 0, 4, nil, "")
	assert.True(t, empty.Range.IsEmpty())
	assert.Equal(t, 0, empty.NLines)
}

func TestClassGroup_JSONShape(t *testing.T) {
	group := ClassGroup{
		ClassID:    5,
		NClones:    2,
		Similarity: 87.5,
		Sources: []SourceFragment{
			NewSourceFragment("x/Y.java", 1, 2, nil, "if (a < b) {}"),
		},
	}

	data, err := json.Marshal(group)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"classid": 5,
		"nclones": 2,
		"similarity": 87.5,
		"sources": [
			{"file": "x/Y.java", "range": "1-2", "nlines": 2, "pcid": null, "code": "if (a < b) {}"}
		]
	}`, string(data))

	group.Sources[0].QualifiedName = "Y.foo()"
	data, err = json.Marshal(group)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"qualified_name":"Y.foo()"`)
}

func TestClassGroup_DecodedKeepsUnknownMembers(t *testing.T) {
	line := `{"classid":1,"extra":"keep","nclones":5.0,"similarity":90,"sources":[` +
		`{"file":"A.java","range":"-5-3","nlines":9,"pcid":7,"code":"x","file_base":"A"}]}`

	var group ClassGroup
	require.NoError(t, json.Unmarshal([]byte(line), &group))
	assert.Equal(t, 1, group.ClassID)
	assert.Equal(t, 5, group.NClones)
	assert.InDelta(t, 90.0, group.Similarity, 1e-9)
	require.Len(t, group.Sources, 1)
	assert.Equal(t, 9, group.Sources[0].Range.NLines())
	require.NotNil(t, group.Sources[0].PCID)
	assert.Equal(t, "7", *group.Sources[0].PCID)

	data, err := json.Marshal(group)
	require.NoError(t, err)
	assert.Equal(t, line, string(data))

	group.Sources[0].QualifiedName = "A.x()"
	data, err = json.Marshal(group)
	require.NoError(t, err)
	assert.Equal(t, `{"classid":1,"extra":"keep","nclones":5.0,"similarity":90,"sources":[`+
		`{"file":"A.java","range":"-5-3","nlines":9,"pcid":7,"code":"x","file_base":"A","qualified_name":"A.x()"}]}`,
		string(data))
}

func TestClassGroup_EncodesCodeVerbatim(t *testing.T) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	group := ClassGroup{
		ClassID: 1,
		Sources: []SourceFragment{NewSourceFragment("A.java", 1, 1, nil, "if (a < b && c) {}")},
	}
	require.NoError(t, enc.Encode(group))
	assert.Contains(t, buf.String(), `"code":"if (a < b && c) {}"`)

	var decoded ClassGroup
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	buf.Reset()
	require.NoError(t, enc.Encode(decoded))
	assert.Contains(t, buf.String(), `"code":"if (a < b && c) {}"`)
}

func TestClassGroup_DecodeErrors(t *testing.T) {
	var group ClassGroup
	require.Error(t, json.Unmarshal([]byte(`{"classid":"x","sources":[]}`), &group))
	require.Error(t, json.Unmarshal([]byte(`{"sources":["not an object"]}`), &group))
	require.Error(t, json.Unmarshal([]byte(`[1,2]`), &group))
	require.NoError(t, json.Unmarshal([]byte(`{"classid":"4","sources":[]}`), &group))
	assert.Equal(t, 4, group.ClassID)
}

func TestGroupTotals(t *testing.T) {
	var totals GroupTotals
	for _, n := range []int{4, 0, 2} {
		totals.Add(n)
	}

	assert.Equal(t, 3, totals.Groups)
	assert.Equal(t, 2, totals.GroupsWithClones)
	assert.Equal(t, 6, totals.DeclaredClones)
	assert.InDelta(t, 2.0, totals.AverageAll(), 1e-9)
	assert.InDelta(t, 3.0, totals.AverageNonZero(), 1e-9)

	var empty GroupTotals
	assert.Zero(t, empty.AverageAll())
	assert.Zero(t, empty.AverageNonZero())
}

func TestPath_IsStdio(t *testing.T) {
	assert.True(t, StdioPath.IsStdio())
	assert.False(t, Path("out.jsonl").IsStdio())
}
