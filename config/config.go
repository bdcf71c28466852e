// Package config loads persistence settings from YAML and opens sessions
// from them.
//
//	dialect: postgres
//	dsn: postgres://localhost/app?sslmode=disable
//	driver: pgx
//	debug: true
//	slow_threshold: 200ms
//	log_level: debug
package config

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/syssam/persist/dialect"
	"github.com/syssam/persist/dialect/all"
)

// Defaults applied to missing settings.
const (
	DefaultDialect       = dialect.H2
	DefaultSlowThreshold = 100 * time.Millisecond
)

// Config holds the persistence settings.
type Config struct {
	// Dialect is the dialect name, one of all.Names or an alias.
	Dialect string `yaml:"dialect"`
	// DSN is the database/sql data source name.
	DSN string `yaml:"dsn"`
	// Driver overrides the database/sql driver of the dialect, for example
	// "pgx" instead of "postgres".
	Driver string `yaml:"driver"`
	// Debug logs every executed statement.
	Debug bool `yaml:"debug"`
	// SlowThreshold enables statement statistics and logs statements
	// slower than the threshold. Negative disables statistics.
	SlowThreshold time.Duration `yaml:"slow_threshold"`
	// LogLevel is the minimum slog level: debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

// Option configures a Config built in code.
type Option func(*Config)

// WithDialect sets the dialect name.
func WithDialect(name string) Option {
	return func(c *Config) { c.Dialect = name }
}

// WithDSN sets the data source name.
func WithDSN(dsn string) Option {
	return func(c *Config) { c.DSN = dsn }
}

// WithDriver overrides the database/sql driver name.
func WithDriver(name string) Option {
	return func(c *Config) { c.Driver = name }
}

// WithDebug enables statement logging.
func WithDebug() Option {
	return func(c *Config) { c.Debug = true }
}

// WithSlowThreshold sets the slow statement threshold.
func WithSlowThreshold(d time.Duration) Option {
	return func(c *Config) { c.SlowThreshold = d }
}

// WithLogLevel sets the minimum log level.
func WithLogLevel(level string) Option {
	return func(c *Config) { c.LogLevel = level }
}

// New returns a validated Config with defaults applied before opts.
func New(opts ...Option) (*Config, error) {
	c := &Config{}
	for _, opt := range opts {
		opt(c)
	}
	return c.finish()
}

// Load reads the YAML configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML configuration. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	return c.finish()
}

func (c *Config) finish() (*Config, error) {
	if c.Dialect == "" {
		c.Dialect = DefaultDialect
	}
	if c.SlowThreshold == 0 {
		c.SlowThreshold = DefaultSlowThreshold
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	var errs []error
	d, err := all.Get(c.Dialect)
	if err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	} else if d.Name() != dialect.H2 && c.DSN == "" {
		errs = append(errs, fmt.Errorf("config: dsn is required for dialect %q", c.Dialect))
	}
	if c.Driver != "" && !slices.Contains(sql.Drivers(), c.Driver) {
		errs = append(errs, fmt.Errorf("config: unknown driver %q", c.Driver))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level returns the configured slog level.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: invalid log_level %q", c.LogLevel)
	}
	return l, nil
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	l, err := c.Level()
	if err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}
