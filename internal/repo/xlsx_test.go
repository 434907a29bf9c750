package repo

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-report/internal/model"
	"github.com/BuzzLyutic/task-report/internal/testutil"
)

var defaultLayout = Layout{Name: "B", Status: "C", Due: "D", Owner: "E", Comment: "I"}

func newRepo(t *testing.T, path string) *XLSXRepo {
	t.Helper()
	r, err := NewXLSXRepo(Source{
		Path:       path,
		Sheet:      "Tasks",
		HeaderRows: 1,
		Layout:     defaultLayout,
	}, zap.NewNop())
	require.NoError(t, err)
	return r
}

func TestXLSXRepo_List(t *testing.T) {
	due := time.Date(2026, time.October, 22, 0, 0, 0, 0, time.UTC)
	path := testutil.WriteWorkbook(t, "Tasks", []testutil.Row{
		{Name: "Fix bug", Status: "In progress", Due: due, Owner: "alice", Comment: "blocked"},
		{Status: "In progress", Due: due, Owner: "alice", Comment: "row without name"},
		{Name: "Write docs", Owner: "bob"},
		{Name: "Revisar señal", Status: "Pending", Due: "2026-11-02", Owner: "josé", Comment: "¿listo? ✓"},
	})

	tasks, err := newRepo(t, path).List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	assert.Equal(t, "Fix bug", tasks[0].Name())
	assert.Equal(t, "In progress", tasks[0].Status())
	assert.Equal(t, "alice", tasks[0].Owner())
	assert.Equal(t, "blocked", tasks[0].Comment())
	d, ok := tasks[0].Due()
	require.True(t, ok)
	assert.Equal(t, model.Date{Year: 2026, Month: time.October, Day: 22}, d)

	assert.Equal(t, "Write docs", tasks[1].Name())
	assert.Empty(t, tasks[1].Status())
	assert.Empty(t, tasks[1].Comment())
	_, ok = tasks[1].Due()
	assert.False(t, ok)

	assert.Equal(t, "Revisar señal", tasks[2].Name())
	assert.Equal(t, "josé", tasks[2].Owner())
	assert.Equal(t, "¿listo? ✓", tasks[2].Comment())
	d, ok = tasks[2].Due()
	require.True(t, ok)
	assert.Equal(t, "2026-11-02", d.String())
}

func TestXLSXRepo_List_HeaderOnly(t *testing.T) {
	path := testutil.WriteWorkbook(t, "Tasks", nil)

	tasks, err := newRepo(t, path).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestXLSXRepo_List_Errors(t *testing.T) {
	notXLSX := filepath.Join(t.TempDir(), "tasks.xlsx")
	require.NoError(t, os.WriteFile(notXLSX, []byte("Task,Status\n"), 0o600))

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{
			name:    "missing file",
			path:    filepath.Join(t.TempDir(), "missing.xlsx"),
			wantErr: ErrorResource,
		},
		{
			name:    "not a workbook",
			path:    notXLSX,
			wantErr: ErrorResource,
		},
		{
			name:    "no Tasks sheet",
			path:    testutil.WriteWorkbook(t, "Backlog", []testutil.Row{{Name: "Fix bug"}}),
			wantErr: ErrorResource,
		},
		{
			name: "bad due date",
			path: testutil.WriteWorkbook(t, "Tasks", []testutil.Row{
				{Name: "Fix bug", Due: "2026-10-22"},
				{Name: "Ship it", Due: "next friday"},
			}),
			wantErr: ErrorData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := newRepo(t, tt.path).List(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, tasks)
		})
	}
}

func TestXLSXRepo_List_BadDateNamesCell(t *testing.T) {
	path := testutil.WriteWorkbook(t, "Tasks", []testutil.Row{
		{Name: "Fix bug", Due: "2026-10-22"},
		{Name: "Ship it", Due: "soon"},
	})

	_, err := newRepo(t, path).List(context.Background())
	require.ErrorIs(t, err, ErrorData)
	assert.Contains(t, err.Error(), "D3")
}

func TestXLSXRepo_List_Canceled(t *testing.T) {
	path := testutil.WriteWorkbook(t, "Tasks", []testutil.Row{{Name: "Fix bug"}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRepo(t, path).List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewXLSXRepo_InvalidLayout(t *testing.T) {
	layout := defaultLayout
	layout.Comment = "9"

	_, err := NewXLSXRepo(Source{Sheet: "Tasks", Layout: layout}, zap.NewNop())
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	cols, err := resolve(defaultLayout)
	require.NoError(t, err)
	assert.Equal(t, columns{name: 1, status: 2, due: 3, owner: 4, comment: 8}, cols)
}

func TestParseDue(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		date1904 bool
		want     *model.Date
		wantErr  bool
	}{
		{name: "empty", raw: ""},
		{name: "serial", raw: "46317", want: &model.Date{Year: 2026, Month: time.October, Day: 22}},
		{name: "serial with time", raw: "46317.75", want: &model.Date{Year: 2026, Month: time.October, Day: 22}},
		{name: "iso text", raw: "2026-10-22", want: &model.Date{Year: 2026, Month: time.October, Day: 22}},
		{name: "serial 1904 system", raw: "44855", date1904: true, want: &model.Date{Year: 2026, Month: time.October, Day: 22}},
		{name: "garbage", raw: "mañana", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDue(tt.raw, tt.date1904)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
