package repo

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-report/internal/model"
)

var (
	ErrorResource = errors.New("resource error")
	ErrorData     = errors.New("data error")
)

// Layout names the column letter of every field read from the sheet.
type Layout struct {
	Name    string
	Status  string
	Due     string
	Owner   string
	Comment string
}

// Source describes where the tasks live in a workbook.
type Source struct {
	Path       string
	Sheet      string
	HeaderRows int
	Layout     Layout
}

type columns struct {
	name, status, due, owner, comment int
}

// XLSXRepo reads tasks from an .xlsx workbook.
type XLSXRepo struct {
	src    Source
	cols   columns
	logger *zap.Logger
}

func NewXLSXRepo(src Source, logger *zap.Logger) (*XLSXRepo, error) {
	cols, err := resolve(src.Layout)
	if err != nil {
		return nil, err
	}
	return &XLSXRepo{
		src:    src,
		cols:   cols,
		logger: logger,
	}, nil
}

// resolve turns column letters into zero-based indices once, up front.
func resolve(l Layout) (columns, error) {
	var c columns
	for _, f := range []struct {
		letter string
		dst    *int
	}{
		{l.Name, &c.name},
		{l.Status, &c.status},
		{l.Due, &c.due},
		{l.Owner, &c.owner},
		{l.Comment, &c.comment},
	} {
		n, err := excelize.ColumnNameToNumber(f.letter)
		if err != nil {
			return columns{}, fmt.Errorf("column %q: %w", f.letter, err)
		}
		*f.dst = n - 1
	}
	return c, nil
}

func (r *XLSXRepo) List(ctx context.Context) ([]model.Task, error) {
	f, err := excelize.OpenFile(r.src.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrorResource, r.src.Path, err)
	}
	defer f.Close()

	if !slices.Contains(f.GetSheetList(), r.src.Sheet) {
		return nil, fmt.Errorf("%w: %s has no sheet %q", ErrorResource, r.src.Path, r.src.Sheet)
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	rows, err := f.Rows(r.src.Sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", ErrorResource, r.src.Sheet, err)
	}
	defer rows.Close()

	var tasks []model.Task
	for row := 1; rows.Next(); row++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// Raw values keep date cells as serial numbers instead of locale-formatted text.
		cells, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("%w: read row %d: %v", ErrorResource, row, err)
		}
		if row <= r.src.HeaderRows {
			continue
		}

		task, ok, err := r.scan(cells, row, date1904)
		if err != nil {
			return nil, err
		}
		if !ok {
			r.logger.Debug("skipping row without task name", zap.Int("row", row))
			continue
		}
		tasks = append(tasks, task)
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", ErrorResource, r.src.Sheet, err)
	}

	r.logger.Debug("tasks extracted",
		zap.String("path", r.src.Path),
		zap.Int("rows", len(tasks)),
	)
	return tasks, nil
}

func (r *XLSXRepo) scan(cells []string, row int, date1904 bool) (model.Task, bool, error) {
	name := cell(cells, r.cols.name)
	if name == "" {
		return model.Task{}, false, nil
	}

	due, err := parseDue(cell(cells, r.cols.due), date1904)
	if err != nil {
		addr, _ := excelize.CoordinatesToCellName(r.cols.due+1, row)
		return model.Task{}, false, fmt.Errorf("%w: cell %s: %v", ErrorData, addr, err)
	}

	task, err := model.NewTask(model.TaskFields{
		Name:    name,
		Status:  cell(cells, r.cols.status),
		Owner:   cell(cells, r.cols.owner),
		Due:     due,
		Comment: cell(cells, r.cols.comment),
	})
	return task, err == nil, err
}

// Rows come back trimmed after the last non-empty cell.
func cell(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

// parseDue reads a date-typed cell (a serial number) or an ISO date written as text.
func parseDue(raw string, date1904 bool) (*model.Date, error) {
	if raw == "" {
		return nil, nil
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, date1904)
		if err != nil {
			return nil, err
		}
		d := model.DateOf(t)
		return &d, nil
	}
	d, err := model.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
