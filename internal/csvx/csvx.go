// Package csvx is the portal's CSV codec: a pragmatic RFC 4180 variant
// shared by bulk import and the statistics exports. It differs from
// encoding/csv where the portal's file format does: fully blank lines are
// dropped instead of surfacing as one-cell rows, stray quotes never abort a
// parse, output always uses CRLF row separators, and generation takes typed
// cells (nil, bool, numbers) rather than preformatted strings.
package csvx

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRows splits text into rows of string cells. Fields wrapped in double
// quotes may contain commas and line breaks; a doubled quote inside a quoted
// field is one literal quote. Rows that are entirely empty (a blank line)
// are skipped; rows with more than one field, or one non-blank field, are
// kept even when individual cells are blank. A leading BOM is tolerated.
func ParseRows(text string) [][]string {
	text = strings.TrimPrefix(text, "\uFEFF")

	rows := [][]string{}
	var row []string
	var field strings.Builder
	inQuotes := false

	endField := func() {
		row = append(row, field.String())
		field.Reset()
	}
	endRow := func(afterNewline bool) {
		s := field.String()
		if afterNewline {
			// strip the \r of a \r\n row separator; a bare \r at end of
			// input is cell data
			s = strings.TrimSuffix(s, "\r")
		}
		field.Reset()
		row = append(row, s)
		if len(row) > 1 || row[0] != "" {
			rows = append(rows, row)
		}
		row = nil
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if inQuotes {
			if ch != '"' {
				field.WriteRune(ch)
				continue
			}
			if i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++
			} else {
				inQuotes = false
			}
			continue
		}
		switch ch {
		case '"':
			inQuotes = true
		case ',':
			endField()
		case '\n':
			endRow(true)
		default:
			field.WriteRune(ch)
		}
	}
	if field.Len() > 0 || len(row) > 0 {
		endRow(false)
	}
	return rows
}

// GenerateRows serializes rows with comma separators and CRLF between rows,
// no trailing separator. Cells: nil → empty, bool and numbers → their
// literal text, strings quoted only when they contain a comma, a quote or a
// line break. Round-tripping through ParseRows reproduces every cell's
// FormatCell text.
func GenerateRows(rows [][]any) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = escape(FormatCell(cell))
		}
		lines[i] = strings.Join(cells, ",")
	}
	return strings.Join(lines, "\r\n")
}

// FormatCell renders one typed cell as its CSV text, before quoting.
func FormatCell(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case bool:
		return strconv.FormatBool(c)
	case int:
		return strconv.Itoa(c)
	case int64:
		return strconv.FormatInt(c, 10)
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func escape(s string) string {
	if strings.ContainsAny(s, ",\"\n\r") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
