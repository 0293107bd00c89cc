package results

import (
	"strings"
)

// EncodeCSV renders normalized rows under the fixed header as CSV text.
// Every data field is wrapped in double quotes with embedded quotes
// doubled; the header row uses the plain column names.
func EncodeCSV(rows [][]string) string {
	var b strings.Builder
	b.WriteString(strings.Join(Headers(), ","))
	for _, row := range rows {
		b.WriteByte('\n')
		for i, field := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
	}
	b.WriteByte('\n')
	return b.String()
}
