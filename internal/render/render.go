// Package render turns a report into the plain-text lines printed by the CLI.
package render

import (
	"strings"
	"unicode/utf8"

	"github.com/BuzzLyutic/task-report/internal/model"
)

// Lines renders both sections: a title, an '=' underline as long as the title,
// one "date name" line per entry with its comment indented underneath, and a
// trailing blank line.
func Lines(r model.Report, indent int) []string {
	margin := strings.Repeat(" ", indent)
	lines := section(nil, r.Urgent, margin)
	return section(lines, r.Pending, margin)
}

func section(lines []string, s model.Section, margin string) []string {
	lines = append(lines, s.Title, strings.Repeat("=", utf8.RuneCountInString(s.Title)))
	for _, e := range s.Entries {
		lines = append(lines, e.Due.String()+" "+e.Name)
		if e.Comment != "" {
			lines = append(lines, margin+e.Comment)
		}
	}
	return append(lines, "")
}
