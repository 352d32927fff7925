package csvx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRows_Simple(t *testing.T) {
	rows := ParseRows("a,b,c\nd,e,f")
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"a", "b", "c"}, rows[0])
	assert.Equal(t, []string{"d", "e", "f"}, rows[1])
}

func TestParseRows_CRLFAndTrailingNewline(t *testing.T) {
	rows := ParseRows("a,b\r\nc,d\r\n")
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"a", "b"}, rows[0])
	assert.Equal(t, []string{"c", "d"}, rows[1])
}

func TestParseRows_QuotedFields(t *testing.T) {
	rows := ParseRows(`a,"b,c","say ""hi"""`)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"a", "b,c", `say "hi"`}, rows[0])
}

func TestParseRows_EmbeddedLineBreaks(t *testing.T) {
	rows := ParseRows("\"line1\nline2\",x\n\"a\r\nb\",y")
	require.Len(t, rows, 2)
	assert.Equal(t, "line1\nline2", rows[0][0])
	assert.Equal(t, "a\r\nb", rows[1][0])
}

func TestParseRows_BlankRowHandling(t *testing.T) {
	rows := ParseRows("a,b\n\n\nc,d\n")
	require.Len(t, rows, 2)

	// a row of empty cells survives when it has more than one field
	rows = ParseRows(",\n")
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"", ""}, rows[0])
}

func TestParseRows_EmptyInput(t *testing.T) {
	assert.Empty(t, ParseRows(""))
}

func TestParseRows_TrailingCRAtEOF(t *testing.T) {
	// \r before a \n is a row separator; a bare \r ending the input is data
	rows := ParseRows("a\r\nb\r")
	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0][0])
	assert.Equal(t, "b\r", rows[1][0])

	parsed := ParseRows(GenerateRows([][]any{{"a\r"}}))
	require.Len(t, parsed, 1)
	assert.Equal(t, "a\r", parsed[0][0])
}

func TestParseRows_LeadingBOM(t *testing.T) {
	rows := ParseRows("\uFEFFa,b")
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"a", "b"}, rows[0])
}

func TestParseRows_CJKContent(t *testing.T) {
	rows := ParseRows("問題,\"選択肢、全角読点\"\n漢字,かな")
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"問題", "選択肢、全角読点"}, rows[0])
	assert.Equal(t, []string{"漢字", "かな"}, rows[1])
}

func TestGenerateRows_TypedCells(t *testing.T) {
	out := GenerateRows([][]any{
		{"a", 1, 2.5, true, false, nil},
	})
	assert.Equal(t, "a,1,2.5,true,false,", out)
}

func TestGenerateRows_QuotesOnlyWhenNeeded(t *testing.T) {
	out := GenerateRows([][]any{
		{"plain", "with,comma", "with\nnewline", `with"quote`},
	})
	assert.Equal(t, "plain,\"with,comma\",\"with\nnewline\",\"with\"\"quote\"", out)
}

func TestGenerateRows_SeparatorsAndEmpty(t *testing.T) {
	out := GenerateRows([][]any{{"a"}, {"b"}})
	assert.Equal(t, "a\r\nb", out, "CRLF between rows, none trailing")

	assert.Equal(t, "", GenerateRows(nil))
}

func TestRoundTrip(t *testing.T) {
	rows := [][]any{
		{"a,b", `say "hi"`, "multi\nline", "日本語、テスト"},
		{1, 2.5, true, nil},
		{"", "x", "", ""},
	}

	parsed := ParseRows(GenerateRows(rows))
	require.Len(t, parsed, len(rows))
	for i, row := range rows {
		require.Len(t, parsed[i], len(row))
		for j, cell := range row {
			assert.Equal(t, FormatCell(cell), parsed[i][j], "row %d cell %d", i, j)
		}
	}
}
