package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-report/internal/model"
	"github.com/BuzzLyutic/task-report/internal/repo"
)

var (
	ErrValidation = errors.New("validation error")
)

const (
	UrgentTitle  = "Tareas que deben terminar en una semana"
	PendingTitle = "Otras tareas pendientes"
)

// Rules holds the literals and threshold used to classify tasks.
type Rules struct {
	InProgressStatus string
	FinishedStatus   string
	UrgentDays       int
}

func DefaultRules() Rules {
	return Rules{
		InProgressStatus: "In progress",
		FinishedStatus:   "Finished",
		UrgentDays:       7,
	}
}

type ReportService struct {
	repo   repo.TaskRepository
	rules  Rules
	logger *zap.Logger
	now    func() time.Time
}

func NewReportService(repo repo.TaskRepository, rules Rules, logger *zap.Logger) *ReportService {
	return &ReportService{
		repo:   repo,
		rules:  rules,
		logger: logger,
		now:    time.Now,
	}
}

// Build splits the owner's tasks into urgent and other pending sections,
// each ordered by due date.
func (s *ReportService) Build(ctx context.Context, filter model.TaskFilter) (model.Report, error) {
	if err := s.validate(filter); err != nil {
		return model.Report{}, err
	}

	tasks, err := s.repo.List(ctx)
	if err != nil {
		return model.Report{}, err
	}

	today := model.DateOf(s.now())
	var urgent, pending []model.Task
	for _, t := range tasks {
		if t.Owner() != filter.Owner {
			continue
		}
		if _, ok := t.Due(); !ok {
			if t.Status() != s.rules.FinishedStatus {
				s.logger.Debug("task has no due date, left out of report",
					zap.String("task", t.Name()),
					zap.String("status", t.Status()),
				)
			}
			continue
		}
		// A task is checked against both sections independently.
		if s.isUrgent(t, today) {
			urgent = append(urgent, t)
		}
		if s.isPending(t, today) {
			pending = append(pending, t)
		}
	}

	s.logger.Debug("report built",
		zap.String("owner", filter.Owner),
		zap.Int("tasks", len(tasks)),
		zap.Int("urgent", len(urgent)),
		zap.Int("pending", len(pending)),
	)

	return model.Report{
		Urgent:  section(UrgentTitle, urgent),
		Pending: section(PendingTitle, pending),
	}, nil
}

// Overdue tasks count as urgent.
func (s *ReportService) isUrgent(t model.Task, today model.Date) bool {
	dtc, ok := t.DaysToComplete(today)
	return ok && t.Status() == s.rules.InProgressStatus && dtc < s.rules.UrgentDays
}

func (s *ReportService) isPending(t model.Task, today model.Date) bool {
	dtc, ok := t.DaysToComplete(today)
	return ok && t.Status() != s.rules.FinishedStatus && dtc >= s.rules.UrgentDays
}

func (s *ReportService) validate(filter model.TaskFilter) error {
	if strings.TrimSpace(filter.Owner) == "" {
		return fmt.Errorf("%w: username is empty", ErrValidation)
	}
	return nil
}

// section sorts by due date, keeping extraction order for equal dates.
func section(title string, tasks []model.Task) model.Section {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, _ := tasks[i].Due()
		b, _ := tasks[j].Due()
		return a.Before(b)
	})

	entries := make([]model.Entry, 0, len(tasks))
	for _, t := range tasks {
		due, _ := t.Due()
		entries = append(entries, model.Entry{
			Due:     due,
			Name:    t.Name(),
			Comment: t.Comment(),
		})
	}
	return model.Section{Title: title, Entries: entries}
}
