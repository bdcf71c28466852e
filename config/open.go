package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/syssam/persist/dialect"
	"github.com/syssam/persist/dialect/all"
	"github.com/syssam/persist/dialect/sql"
	"github.com/syssam/persist/query"
	"github.com/syssam/persist/session"
)

// ErrNoDriver is returned by Open for dialects without a database/sql driver.
var ErrNoDriver = errors.New("config: dialect has no database driver")

// Open opens a session for the configuration. The connection is verified
// with a ping before returning.
func Open(ctx context.Context, c *Config, logger *slog.Logger) (*session.Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	d, err := all.Get(c.Dialect)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if d.Name() == dialect.H2 {
		return nil, fmt.Errorf("%w: %s", ErrNoDriver, d.Name())
	}
	driverName := c.Driver
	if driverName == "" {
		driverName = sql.DriverName(d.Name())
	}
	drv, err := sql.OpenDriver(d.Name(), driverName, c.DSN)
	if err != nil {
		return nil, err
	}
	if err := drv.Ping(ctx); err != nil {
		drv.Close()
		return nil, fmt.Errorf("config: ping %s: %w", d.Name(), err)
	}
	var wrapped dialect.Driver = drv
	if c.SlowThreshold > 0 {
		wrapped = sql.NewStatsDriver(wrapped,
			sql.WithSlowThreshold(c.SlowThreshold),
			sql.WithSlowQueryLog(logger),
		)
	}
	if c.Debug {
		wrapped = sql.NewDebugDriver(wrapped, logger)
	}
	logger.InfoContext(ctx, "persist: session opened", slog.String("dialect", d.Name()))
	return session.New(wrapped, query.New(d), session.WithLogger(logger)), nil
}
