package respond

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "report",
			lines: []string{"Title", "=====", "2026-10-22 Fix bug", ""},
			want:  "Title\n=====\n2026-10-22 Fix bug\n\n",
		},
		{
			name:  "no lines",
			lines: nil,
			want:  "",
		},
		{
			name:  "utf-8 untouched",
			lines: []string{"          ¿listo? ✓"},
			want:  "          ¿listo? ✓\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Lines(&buf, tt.lines))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLines_WriteError(t *testing.T) {
	assert.Error(t, Lines(failingWriter{}, []string{"x"}))
}

func TestError(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "single line",
			message: "cannot read tasks.xlsx",
			want:    "cannot read tasks.xlsx\n",
		},
		{
			name:    "line breaks replaced",
			message: "data error:\n  cell D3:\r\nunrecognized date",
			want:    "data error:   cell D3: unrecognized date\n",
		},
		{
			name:    "inner spaces kept",
			message: "cannot read /tmp/no  such\ttasks.xlsx",
			want:    "cannot read /tmp/no  such\ttasks.xlsx\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Error(&buf, tt.message)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
