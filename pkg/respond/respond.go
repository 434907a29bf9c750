package respond

import (
	"fmt"
	"io"
	"strings"
)

// Lines writes each line followed by a newline in a single write.
func Lines(w io.Writer, lines []string) error {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Error writes message as one diagnostic line.
func Error(w io.Writer, message string) {
	fmt.Fprintln(w, lineBreaks.Replace(message))
}
