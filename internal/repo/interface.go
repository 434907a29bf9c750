package repo

import (
	"context"

	"github.com/BuzzLyutic/task-report/internal/model"
)

// TaskRepository yields task records in source order.
type TaskRepository interface {
	List(ctx context.Context) ([]model.Task, error)
}
