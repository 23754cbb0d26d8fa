package diag

import (
	"fmt"
	"io"
	"strings"
)

// FormatShort renders one line per diagnostic (and per note when
// includeNotes is set): "<severity> <ID> <low..high> <message>".
func FormatShort(diags []Diagnostic, includeNotes bool) string {
	var sb strings.Builder
	for i, d := range diags {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%s %s %s %s", strings.ToLower(d.Severity.String()), d.Code.ID(), d.Primary, oneLine(d.Message))
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			fmt.Fprintf(&sb, "\nnote %s %s %s", d.Code.ID(), n.Span, oneLine(n.Msg))
		}
	}
	return sb.String()
}

// Write prints the bag in FormatShort form followed by a newline.
func Write(w io.Writer, b *Bag) error {
	if b == nil || b.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(w, FormatShort(b.Items(), true)+"\n")
	return err
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
