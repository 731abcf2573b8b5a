package ingest

import (
	"strings"
)

// SplitLine splits one CSV line on commas, honoring double-quote-enclosed
// fields and escaped "" quotes. A naive strings.Split breaks on any field
// containing a literal comma, which race names regularly do.
func SplitLine(line string) []string {
	var (
		fields  []string
		current strings.Builder
		quoted  bool
	)
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"':
			if quoted && i+1 < len(runes) && runes[i+1] == '"' {
				current.WriteRune('"')
				i++
			} else {
				quoted = !quoted
			}
		case ch == ',' && !quoted:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}

// ParseCSV splits decoded text into a header row and data rows. Lines are
// split on CR/LF, blank lines dropped; the first non-blank line is the
// header. Data rows too short to carry meaningful fields are skipped.
func ParseCSV(text string) (headers []string, rows [][]string) {
	var lines []string
	for _, l := range strings.FieldsFunc(text, func(r rune) bool { return r == '\r' || r == '\n' }) {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return nil, nil
	}

	headers = SplitLine(lines[0])
	for i, h := range headers {
		// Some exports mangle the date header with encoding artifacts;
		// anything containing 日付 is the date column.
		if strings.Contains(h, "日付") {
			headers[i] = "日付"
		}
	}

	minFields := len(headers)
	if minFields > 5 {
		minFields = 5
	}
	for _, l := range lines[1:] {
		values := SplitLine(l)
		if len(values) >= minFields {
			rows = append(rows, values)
		}
	}
	return headers, rows
}
