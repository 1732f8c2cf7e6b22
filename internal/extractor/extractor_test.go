package extractor

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/hylite/internal/lexer"
)

func extractAll(t *testing.T, src string, lang lexer.Language) []Annotation {
	t.Helper()
	ex := FromLexer(lexer.New(strings.NewReader(src), lang))

	var anns []Annotation
	for {
		ann, ok := ex.Next()
		if !ok {
			break
		}
		anns = append(anns, ann)
	}
	require.NoError(t, ex.Err())
	return anns
}

func TestExtract_LineComment(t *testing.T) {
	anns := extractAll(t, "int x; // hylite foo: bar: some text\n", lexer.C)

	assert.Equal(t, []Annotation{{Line: 1, Text: "hylite foo: bar: some text"}}, anns)
}

func TestExtract_TriggerAcceptance(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"colon", "hylite: anon", []string{"hylite: anon"}},
		{"space", "hylite x", []string{"hylite x"}},
		{"tab", "hylite\tx", []string{"hylite\tx"}},
		{"end of fragment", "see hylite", []string{"hylite"}},
		{"plural rejected", "hylites are nice", nil},
		{"suffix rejected then later accepted", "hylitey then hylite z", []string{"hylite z"}},
		{"back to back", "hylitehylite q", []string{"hylite q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anns := extractAll(t, "# "+tt.line+"\n", lexer.Ruby)
			var got []string
			for _, a := range anns {
				got = append(got, a.Text)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract_GroupedThenTrailing(t *testing.T) {
	anns := extractAll(t, "(hylite grp: a: stuff) trailing hylite x\n", lexer.Text)

	assert.Equal(t, []Annotation{
		{Line: 1, Text: "hylite grp: a: stuff"},
		{Line: 1, Text: "hylite x"},
	}, anns)
}

func TestExtract_SeveralGroupedOnOneLine(t *testing.T) {
	anns := extractAll(t, "// [hylite a: x] and {hylite b: y} and <hylite c>\n", lexer.Java)

	assert.Equal(t, []Annotation{
		{Line: 1, Text: "hylite a: x"},
		{Line: 1, Text: "hylite b: y"},
		{Line: 1, Text: "hylite c"},
	}, anns)
}

func TestExtract_UnicodeGroups(t *testing.T) {
	src := "# «hylite a» “hylite b” ⌈hylite c⌉ 【hylite d】\n"
	anns := extractAll(t, src, lexer.YAML)

	var got []string
	for _, a := range anns {
		got = append(got, a.Text)
	}
	assert.Equal(t, []string{"hylite a", "hylite b", "hylite c", "hylite d"}, got)
}

func TestExtract_CloserBeforeTriggerIgnored(t *testing.T) {
	anns := extractAll(t, "// f(x) (hylite g: h)\n", lexer.C)

	assert.Equal(t, []Annotation{{Line: 1, Text: "hylite g: h"}}, anns)
}

func TestExtract_BlockCommentJoin(t *testing.T) {
	anns := extractAll(t, "/* hylite y:\n more text */\n", lexer.C)

	assert.Equal(t, []Annotation{{Line: 1, Text: "hylite y:  more text"}}, anns)
}

func TestExtract_BlockCommentThreeLines(t *testing.T) {
	src := "/*\n * hylite doc: api:\n * first\n * second */ int x;\n"
	anns := extractAll(t, src, lexer.Java)

	assert.Equal(t, []Annotation{{Line: 2, Text: "hylite doc: api: * first  * second"}}, anns)
}

func TestExtract_UngroupedBlockToEOF(t *testing.T) {
	anns := extractAll(t, "/* hylite open:\nstill going", lexer.C)

	assert.Equal(t, []Annotation{{Line: 1, Text: "hylite open: still going"}}, anns)
}

func TestExtract_GroupedAcrossLines(t *testing.T) {
	src := "/* (hylite g: a:\n  more words) after (hylite h)\n*/\n"
	anns := extractAll(t, src, lexer.C)

	assert.Equal(t, []Annotation{
		{Line: 1, Text: "hylite g: a: more words"},
		{Line: 2, Text: "hylite h"},
	}, anns)
}

func TestExtract_GroupedUnclosedInTerminatedComment(t *testing.T) {
	anns := extractAll(t, "// (hylite broken: a: no closer\n// hylite next\n", lexer.C)

	assert.Equal(t, []Annotation{
		{Line: 1, Text: "hylite broken: a: no closer"},
		{Line: 2, Text: "hylite next"},
	}, anns)
}

func TestExtract_GroupedUnclosedUntilCommentEnd(t *testing.T) {
	src := "<!-- (hylite page: layout:\nkeep going\nend -->\n<!-- hylite other -->\n"
	anns := extractAll(t, src, lexer.HTML)

	assert.Equal(t, []Annotation{
		{Line: 1, Text: "hylite page: layout: keep going end"},
		{Line: 4, Text: "hylite other"},
	}, anns)
}

func TestExtract_GroupedUnclosedToEOF(t *testing.T) {
	anns := extractAll(t, "/* [hylite dangling\nline two", lexer.C)

	assert.Equal(t, []Annotation{{Line: 1, Text: "hylite dangling line two"}}, anns)
}

func TestExtract_PlainTextGroupedUnclosed(t *testing.T) {
	anns := extractAll(t, "(hylite t: x\nhylite u\n", lexer.Text)

	assert.Equal(t, []Annotation{
		{Line: 1, Text: "hylite t: x"},
		{Line: 2, Text: "hylite u"},
	}, anns)
}

func TestExtract_IgnoresCode(t *testing.T) {
	anns := extractAll(t, "hylite(x); // nothing here\n", lexer.C)

	assert.Empty(t, anns)
}

func TestExtract_ExhaustedStaysExhausted(t *testing.T) {
	ex := FromLexer(lexer.New(strings.NewReader("// hylite once\n"), lexer.C))

	_, ok := ex.Next()
	require.True(t, ok)
	_, ok = ex.Next()
	assert.False(t, ok)
	_, ok = ex.Next()
	assert.False(t, ok)
}

type stubSource struct {
	frags []lexer.Fragment
	err   error
}

func (s *stubSource) Next() (lexer.Fragment, bool) {
	if len(s.frags) == 0 {
		return lexer.Fragment{}, false
	}
	f := s.frags[0]
	s.frags = s.frags[1:]
	return f, true
}

func (s *stubSource) Err() error {
	return s.err
}

func TestExtract_PropagatesSourceError(t *testing.T) {
	src := &stubSource{
		frags: []lexer.Fragment{{Line: 3, Text: "hylite partial", Terminated: false}},
		err:   errors.New("read failed"),
	}
	ex := New(src, true)

	ann, ok := ex.Next()
	require.True(t, ok)
	assert.Equal(t, Annotation{Line: 3, Text: "hylite partial"}, ann)

	_, ok = ex.Next()
	assert.False(t, ok)
	assert.EqualError(t, ex.Err(), "read failed")
}
