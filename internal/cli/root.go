package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/BuzzLyutic/task-report/internal/config"
	"github.com/BuzzLyutic/task-report/internal/handler"
	"github.com/BuzzLyutic/task-report/internal/repo"
	"github.com/BuzzLyutic/task-report/internal/service"
	"github.com/BuzzLyutic/task-report/pkg/respond"
)

// errReported marks failures whose diagnostic was already written.
var errReported = errors.New("reported")

type options struct {
	filename string
	username string
	config   string
	verbose  bool
}

// Execute runs the root command and returns the process exit code.
func Execute(version string) int {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	cmd.Version = version
	return run(cmd, os.Stderr)
}

func run(cmd *cobra.Command, stderr io.Writer) int {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "taskreport",
		Short: "Print a user's urgent and pending tasks from an xlsx task sheet",
		Long: `taskreport reads the "Tasks" sheet of an Excel workbook and prints the tasks
owned by one user: those due within a week (overdue included) and the
remaining unfinished ones, each list ordered by due date.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.filename, "filename", "f", "", "excel file (must be xlsx format)")
	flags.StringVarP(&opts.username, "username", "u", "", "owner whose tasks are reported")
	flags.StringVarP(&opts.config, "config", "c", "", "YAML config file (must exist when given)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging to stderr")
	_ = cmd.MarkFlagRequired("filename")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func runReport(cmd *cobra.Command, opts options, stdout, stderr io.Writer) error {
	fail := func(err error) error {
		respond.Error(stderr, err.Error())
		return errReported
	}

	if !isRegularFile(opts.filename) {
		return fail(fmt.Errorf("cannot read %s", opts.filename))
	}

	cfg, err := config.Load(opts.config)
	if err != nil {
		return fail(err)
	}

	logger, err := newLogger(cfg.LogLevel, opts.verbose, stderr)
	if err != nil {
		return fail(err)
	}
	defer logger.Sync()

	taskRepo, err := repo.NewXLSXRepo(repo.Source{
		Path:       opts.filename,
		Sheet:      cfg.Sheet,
		HeaderRows: cfg.HeaderRows,
		Layout: repo.Layout{
			Name:    cfg.Columns.Name,
			Status:  cfg.Columns.Status,
			Due:     cfg.Columns.Due,
			Owner:   cfg.Columns.Owner,
			Comment: cfg.Columns.Comment,
		},
	}, logger)
	if err != nil {
		return fail(fmt.Errorf("config: %w", err))
	}

	reportService := service.NewReportService(taskRepo, service.Rules{
		InProgressStatus: cfg.InProgressStatus,
		FinishedStatus:   cfg.FinishedStatus,
		UrgentDays:       cfg.UrgentDays,
	}, logger)
	reportHandler := handler.NewReportHandler(reportService, cfg.CommentIndent, logger)

	if err := reportHandler.Report(cmd.Context(), stdout, stderr, opts.username); err != nil {
		return errReported
	}
	return nil
}

// newLogger builds a JSON logger on stderr so stdout carries only the report.
func newLogger(level string, verbose bool, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		lvl,
	)
	return zap.New(core), nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
