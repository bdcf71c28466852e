// Package sql implements dialect.Driver on top of database/sql.
//
// Statements produced by the sqlgen package carry their values as inline
// literals, so they are executed with nil arguments:
//
//	drv, err := sql.Open(dialect.Postgres, dsn)
//	if err != nil {
//	    return err
//	}
//	err = drv.Exec(ctx, "drop table users", nil, nil)
//
// StatsDriver and DebugDriver wrap any dialect.Driver with statement
// statistics and debug logging.
package sql
