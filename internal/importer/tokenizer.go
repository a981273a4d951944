package importer

import "strings"

// Tokenize splits raw CSV text into rows of trimmed fields. It accepts
// comma and semicolon delimiters (mixed use is fine), treats "\n" and
// "\r\n" as row breaks, and honours double-quote quoting with "" as an
// escaped quote. A bare \r not followed by \n is ordinary whitespace.
// Rows whose fields are all empty are dropped. Malformed quoting is
// accepted leniently; Tokenize never fails.
func Tokenize(text string) [][]string {
	var (
		rows   [][]string
		row    []string
		field  strings.Builder
		quoted bool
	)

	endField := func() {
		row = append(row, strings.TrimSpace(field.String()))
		field.Reset()
	}
	endRow := func() {
		endField()
		for _, f := range row {
			if f != "" {
				rows = append(rows, row)
				break
			}
		}
		row = nil
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if quoted {
			if c == '"' {
				if i+1 < len(runes) && runes[i+1] == '"' {
					field.WriteRune('"')
					i++
					continue
				}
				quoted = false
				continue
			}
			field.WriteRune(c)
			continue
		}
		switch c {
		case '"':
			quoted = true
		case ',', ';':
			endField()
		case '\n':
			endRow()
		case '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				endRow()
				i++
			} else {
				field.WriteRune(c)
			}
		default:
			field.WriteRune(c)
		}
	}
	endRow()

	return rows
}
