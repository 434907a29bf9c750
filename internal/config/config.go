package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

var ErrInvalid = errors.New("invalid config")

// Columns maps task fields to spreadsheet column letters.
type Columns struct {
	Name    string `mapstructure:"name"`
	Status  string `mapstructure:"status"`
	Due     string `mapstructure:"due"`
	Owner   string `mapstructure:"owner"`
	Comment string `mapstructure:"comment"`
}

type Config struct {
	Sheet            string  `mapstructure:"sheet"`
	HeaderRows       int     `mapstructure:"header_rows"`
	Columns          Columns `mapstructure:"columns"`
	InProgressStatus string  `mapstructure:"in_progress_status"`
	FinishedStatus   string  `mapstructure:"finished_status"`
	UrgentDays       int     `mapstructure:"urgent_days"`
	CommentIndent    int     `mapstructure:"comment_indent"`
	LogLevel         string  `mapstructure:"log_level"`
}

func Default() Config {
	return Config{
		Sheet:      "Tasks",
		HeaderRows: 1,
		Columns: Columns{
			Name:    "B",
			Status:  "C",
			Due:     "D",
			Owner:   "E",
			Comment: "I",
		},
		InProgressStatus: "In progress",
		FinishedStatus:   "Finished",
		UrgentDays:       7,
		CommentIndent:    10,
		LogLevel:         "info",
	}
}

// Load reads a YAML config file over Default(). An empty path yields Default();
// a path that does not exist is an error.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	// Keys absent from the file keep their Default() values.
	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Sheet == "":
		return fmt.Errorf("%w: sheet is empty", ErrInvalid)
	case c.HeaderRows < 0:
		return fmt.Errorf("%w: header_rows must not be negative", ErrInvalid)
	case c.UrgentDays < 0:
		return fmt.Errorf("%w: urgent_days must not be negative", ErrInvalid)
	case c.CommentIndent < 0:
		return fmt.Errorf("%w: comment_indent must not be negative", ErrInvalid)
	}
	return nil
}
