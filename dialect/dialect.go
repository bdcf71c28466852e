package dialect

import (
	"context"

	"github.com/syssam/persist/schema"
)

// Dialect names.
const (
	H2       = "h2"
	Postgres = "postgres"
	MySQL    = "mysql"
	SQLite   = "sqlite3"
)

// Dialect renders dialect-specific SQL fragments from entity metadata.
// Implementations hold no mutable state and are safe for concurrent use.
type Dialect interface {
	// Name returns the dialect name.
	Name() string
	// Tokens returns the structural keywords and punctuation of the dialect.
	Tokens() Tokens
	// ColumnClause renders the create-table fragment of a column, including
	// its trailing separator.
	ColumnClause(c *schema.EntityColumn) (string, error)
	// PrimaryKeyClause renders the primary-key fragment for the id column.
	PrimaryKeyClause(c *schema.EntityColumn) string
	// Literal renders v as a literal of the column's host type.
	Literal(c *schema.EntityColumn, v any) (string, error)
}

// ExecQuerier wraps the 2 database operations.
type ExecQuerier interface {
	// Exec executes a query that does not return records. For example, in SQL, INSERT or UPDATE.
	// It scans the result into the pointer v. For SQL drivers, it is dialect/sql.Result.
	Exec(ctx context.Context, query string, args, v any) error
	// Query executes a query that returns rows, typically a SELECT in SQL.
	// It scans the result into the pointer v. For SQL drivers, it is *dialect/sql.Rows.
	Query(ctx context.Context, query string, args, v any) error
}

// Driver is the interface that wraps all necessary operations for executing
// generated statements.
type Driver interface {
	ExecQuerier
	// Tx starts and returns a new transaction.
	Tx(context.Context) (Tx, error)
	// Close closes the underlying connection.
	Close() error
	// Dialect returns the dialect name of the driver.
	Dialect() string
}

// Tx wraps the Exec and Query operations in transaction.
type Tx interface {
	ExecQuerier
	Commit() error
	Rollback() error
}
