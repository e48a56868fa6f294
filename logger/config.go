package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/philipp01105/pipelog/appender"
	"github.com/philipp01105/pipelog/core"
	"github.com/philipp01105/pipelog/filter"
	"github.com/philipp01105/pipelog/formatter"
)

// Config describes a logger in a form that can be decoded from JSON, YAML
// or TOML.
type Config struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Level string `json:"level,omitempty" yaml:"level,omitempty" toml:"level,omitempty"`
	// Formatter is the default for appenders that do not set their own
	Formatter *FormatterConfig `json:"formatter,omitempty" yaml:"formatter,omitempty" toml:"formatter,omitempty"`
	Appenders []AppenderConfig `json:"appenders" yaml:"appenders" toml:"appenders"`
}

// FormatterConfig selects a formatter by type ("simple" or "json")
type FormatterConfig struct {
	Type            string `json:"type" yaml:"type" toml:"type"`
	TimestampFormat string `json:"timestamp_format,omitempty" yaml:"timestamp_format,omitempty" toml:"timestamp_format,omitempty"`
}

// FilterConfig selects a filter by type ("keyword" or "level")
type FilterConfig struct {
	Type string `json:"type" yaml:"type" toml:"type"`
	// keyword
	Keywords        []string `json:"keywords,omitempty" yaml:"keywords,omitempty" toml:"keywords,omitempty"`
	CaseInsensitive bool     `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty" toml:"case_insensitive,omitempty"`
	// level
	Level string `json:"level,omitempty" yaml:"level,omitempty" toml:"level,omitempty"`
}

// AppenderConfig describes one appender. Only the fields of the selected
// type are read.
type AppenderConfig struct {
	Type      string           `json:"type" yaml:"type" toml:"type"`
	Formatter *FormatterConfig `json:"formatter,omitempty" yaml:"formatter,omitempty" toml:"formatter,omitempty"`
	Filters   []FilterConfig   `json:"filters,omitempty" yaml:"filters,omitempty" toml:"filters,omitempty"`

	// console, colored_console: "stdout" (default) or "stderr"
	Stream string `json:"stream,omitempty" yaml:"stream,omitempty" toml:"stream,omitempty"`
	// colored_console
	Color string `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`

	// file
	FilePath string `json:"file_path,omitempty" yaml:"file_path,omitempty" toml:"file_path,omitempty"`

	// sqlite
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty" toml:"db_path,omitempty"`

	// mysql
	Host     string `json:"host,omitempty" yaml:"host,omitempty" toml:"host,omitempty"`
	Port     int    `json:"port,omitempty" yaml:"port,omitempty" toml:"port,omitempty"`
	User     string `json:"user,omitempty" yaml:"user,omitempty" toml:"user,omitempty"`
	Password string `json:"password,omitempty" yaml:"password,omitempty" toml:"password,omitempty"`
	Database string `json:"database,omitempty" yaml:"database,omitempty" toml:"database,omitempty"`

	// sqlite, mysql
	TableName string `json:"table_name,omitempty" yaml:"table_name,omitempty" toml:"table_name,omitempty"`

	// composite
	Appenders []AppenderConfig `json:"appenders,omitempty" yaml:"appenders,omitempty" toml:"appenders,omitempty"`
}

// FromConfig builds a logger from cfg and registers it in the global
// registry.
func FromConfig(cfg Config) (*Logger, error) {
	return Global().FromConfig(cfg)
}

// FromConfig builds a logger from cfg and registers it in r. Appenders
// created before a later entry fails are closed again.
func (r *Registry) FromConfig(cfg Config) (*Logger, error) {
	b := r.NewBuilder().SetName(cfg.Name)

	if cfg.Level != "" {
		level, err := core.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", core.ErrConfiguration, err)
		}
		b.SetLevel(level)
	}

	if cfg.Formatter != nil {
		f, err := newFormatter(*cfg.Formatter)
		if err != nil {
			return nil, err
		}
		b.SetFormatter(f)
	}

	if cfg.Name == "" {
		return nil, fmt.Errorf("%w: logger name must be set", core.ErrConfiguration)
	}

	var built []appender.Appender
	for i, ac := range cfg.Appenders {
		a, err := newAppender(ac)
		if err != nil {
			closeAll(built)
			return nil, fmt.Errorf("appender %d: %w", i, err)
		}
		built = append(built, a)
		b.AddAppender(a)
	}

	l, err := b.Build()
	if err != nil {
		closeAll(built)
		return nil, err
	}
	return l, nil
}

func closeAll(as []appender.Appender) {
	for _, a := range as {
		_ = a.Close()
	}
}

func newFormatter(fc FormatterConfig) (formatter.Formatter, error) {
	return formatter.New(fc.Type, formatter.Config{TimestampFormat: fc.TimestampFormat})
}

func newFilter(fc FilterConfig) (filter.Filter, error) {
	var (
		f   filter.Filter
		err error
	)
	switch normalizeType(fc.Type, "filter") {
	case "keyword":
		var opts []filter.KeywordOption
		if fc.CaseInsensitive {
			opts = append(opts, filter.CaseInsensitive())
		}
		f, err = filter.NewKeywordFilter(fc.Keywords, opts...)
	case "level":
		if fc.Level == "" {
			return nil, fmt.Errorf("%w: level filter requires a level", core.ErrConfiguration)
		}
		var level core.Level
		level, err = core.ParseLevel(fc.Level)
		if err == nil {
			f, err = filter.NewLevelFilter(level)
		}
	default:
		return nil, fmt.Errorf("%w: unknown filter type %q", core.ErrConfiguration, fc.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrConfiguration, err)
	}
	return f, nil
}

func newAppender(ac AppenderConfig) (appender.Appender, error) {
	filters := make([]filter.Filter, 0, len(ac.Filters))
	for _, fc := range ac.Filters {
		f, err := newFilter(fc)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}

	var f formatter.Formatter
	if ac.Formatter != nil {
		var err error
		if f, err = newFormatter(*ac.Formatter); err != nil {
			return nil, err
		}
	}

	switch normalizeType(ac.Type, "appender") {
	case "console":
		w, err := stream(ac.Stream)
		if err != nil {
			return nil, err
		}
		return appender.NewConsole(appender.ConsoleConfig{Writer: w, Formatter: f, Filters: filters}), nil

	case "colored_console", "coloredconsole":
		w, err := stream(ac.Stream)
		if err != nil {
			return nil, err
		}
		c, err := appender.ParseColor(ac.Color)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", core.ErrConfiguration, err)
		}
		return appender.NewColoredConsole(appender.ColoredConsoleConfig{
			ConsoleConfig: appender.ConsoleConfig{Writer: w, Formatter: f, Filters: filters},
			Color:         c,
		})

	case "file":
		if ac.FilePath == "" {
			return nil, fmt.Errorf("%w: file appender requires file_path", core.ErrConfiguration)
		}
		return appender.NewFile(appender.FileConfig{Path: ac.FilePath, Formatter: f, Filters: filters})

	case "sqlite":
		if ac.DBPath == "" {
			return nil, fmt.Errorf("%w: sqlite appender requires db_path", core.ErrConfiguration)
		}
		return appender.NewSQLite(appender.SQLiteConfig{Path: ac.DBPath, Table: ac.TableName, Filters: filters})

	case "mysql":
		return appender.NewMySQL(appender.MySQLConfig{
			Host:     ac.Host,
			Port:     ac.Port,
			User:     ac.User,
			Password: ac.Password,
			Database: ac.Database,
			Table:    ac.TableName,
			Filters:  filters,
		})

	case "composite":
		children := make([]appender.Appender, 0, len(ac.Appenders))
		for i, cc := range ac.Appenders {
			child, err := newAppender(cc)
			if err != nil {
				closeAll(children)
				return nil, fmt.Errorf("child %d: %w", i, err)
			}
			children = append(children, child)
		}
		comp := appender.NewComposite(children, filters...)
		if f != nil {
			comp.SetFormatter(f)
		}
		return comp, nil

	default:
		return nil, fmt.Errorf("%w: unknown appender type %q", core.ErrConfiguration, ac.Type)
	}
}

// normalizeType maps "FileAppender", "file_appender" and "file" to "file".
func normalizeType(t, suffix string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	t = strings.TrimSuffix(t, suffix)
	return strings.TrimSuffix(t, "_")
}

func stream(name string) (*os.File, error) {
	switch strings.ToLower(name) {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return nil, fmt.Errorf("%w: unknown stream %q", core.ErrConfiguration, name)
	}
}
