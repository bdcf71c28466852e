// Package dialect provides the database dialect abstraction for persist.
//
// A Dialect renders the database-specific fragments of a statement from
// generic entity metadata: the column clause and the primary-key clause of a
// create-table statement, and literal values. Statement assembly itself lives
// in package sqlgen and works with any Dialect.
//
// # Supported Dialects
//
//   - H2: the reference dialect, "generated by default as identity" keys
//   - Postgres: PostgreSQL, same identity syntax as H2
//   - MySQL: MySQL/MariaDB, auto_increment keys
//   - SQLite: SQLite, integer primary keys alias the rowid
//
// Each dialect is identified by a constant string:
//
//	dialect.H2       = "h2"
//	dialect.Postgres = "postgres"
//	dialect.MySQL    = "mysql"
//	dialect.SQLite   = "sqlite3"
//
// # Type Mapping
//
// Every dialect owns a TypeTable built once at construction. The table maps
// host types to column types and is never mutated afterwards; a host type
// missing from the table fails with an UnsupportedTypeError:
//
//	types := dialect.NewTypeTable("fake",
//	    dialect.ColumnType{Type: field.TypeInt64, Name: "bigint"},
//	    dialect.ColumnType{Type: field.TypeString, Name: "varchar", Ext: dialect.SizeExt},
//	)
//	d := dialect.New("fake", types)
//
// # Driver Interface
//
// The package also defines the Driver interface implemented by dialect/sql:
//
//	type Driver interface {
//	    ExecQuerier
//	    Tx(ctx context.Context) (Tx, error)
//	    Close() error
//	    Dialect() string
//	}
//
// # Sub-packages
//
//   - dialect/h2, dialect/postgres, dialect/mysql, dialect/sqlite: dialects
//   - dialect/all: lookup of dialects by name
//   - dialect/sql: database/sql backed Driver
package dialect
