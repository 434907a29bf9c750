package model

import "errors"

var ErrEmptyName = errors.New("task name is empty")

// TaskFields carries the raw values of one spreadsheet row.
type TaskFields struct {
	Name    string
	Status  string
	Owner   string
	Due     *Date
	Comment string
}

// Task is a single row of the task sheet. It has no mutators; build it with NewTask.
type Task struct {
	name    string
	status  string
	owner   string
	due     Date
	hasDue  bool
	comment string
}

func NewTask(f TaskFields) (Task, error) {
	if f.Name == "" {
		return Task{}, ErrEmptyName
	}
	t := Task{
		name:    f.Name,
		status:  f.Status,
		owner:   f.Owner,
		comment: f.Comment,
	}
	if f.Due != nil {
		t.due, t.hasDue = *f.Due, true
	}
	return t, nil
}

func (t Task) Name() string    { return t.name }
func (t Task) Status() string  { return t.status }
func (t Task) Owner() string   { return t.owner }
func (t Task) Comment() string { return t.comment }

// Due reports the due date and whether the row had one.
func (t Task) Due() (Date, bool) {
	return t.due, t.hasDue
}

// DaysToComplete is the number of days from today until the due date.
// It is negative for overdue tasks and undefined (ok == false) without a due date.
func (t Task) DaysToComplete(today Date) (days int, ok bool) {
	if !t.hasDue {
		return 0, false
	}
	return t.due.DaysSince(today), true
}

type TaskFilter struct {
	Owner string
}
