package handler

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-report/internal/model"
	"github.com/BuzzLyutic/task-report/internal/render"
	"github.com/BuzzLyutic/task-report/internal/repo"
	"github.com/BuzzLyutic/task-report/internal/service"
	"github.com/BuzzLyutic/task-report/pkg/respond"
)

type ReportHandler struct {
	service *service.ReportService
	indent  int
	logger  *zap.Logger
}

func NewReportHandler(srv *service.ReportService, indent int, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: srv,
		indent:  indent,
		logger:  logger,
	}
}

// Report writes the owner's report to stdout. On failure nothing reaches
// stdout and a single diagnostic line goes to stderr.
func (h *ReportHandler) Report(ctx context.Context, stdout, stderr io.Writer, owner string) error {
	report, err := h.service.Build(ctx, model.TaskFilter{Owner: owner})
	if err != nil {
		h.handleErrors(stderr, err)
		return err
	}

	if err := respond.Lines(stdout, render.Lines(report, h.indent)); err != nil {
		err = fmt.Errorf("writing report: %w", err)
		h.handleErrors(stderr, err)
		return err
	}
	return nil
}

func (h *ReportHandler) handleErrors(w io.Writer, err error) {
	switch {
	case errors.Is(err, repo.ErrorResource):
		h.logger.Debug("spreadsheet unavailable", zap.Error(err))
	case errors.Is(err, repo.ErrorData):
		h.logger.Debug("spreadsheet has invalid data", zap.Error(err))
	case errors.Is(err, service.ErrValidation):
		h.logger.Debug("invalid request", zap.Error(err))
	default:
		h.logger.Debug("report failed", zap.Error(err))
	}
	respond.Error(w, err.Error())
}
