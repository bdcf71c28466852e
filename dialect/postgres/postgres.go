// Package postgres provides the PostgreSQL dialect.
package postgres

import (
	"github.com/syssam/persist/dialect"
	"github.com/syssam/persist/schema/field"
)

// NewTypeTable returns the PostgreSQL type mapping table.
func NewTypeTable() *dialect.TypeTable {
	return dialect.NewTypeTable(dialect.Postgres,
		dialect.ColumnType{Type: field.TypeBool, Name: "boolean"},
		dialect.ColumnType{Type: field.TypeInt, Name: "integer"},
		dialect.ColumnType{Type: field.TypeInt8, Name: "smallint"},
		dialect.ColumnType{Type: field.TypeInt16, Name: "smallint"},
		dialect.ColumnType{Type: field.TypeInt32, Name: "integer"},
		dialect.ColumnType{Type: field.TypeInt64, Name: "bigint"},
		dialect.ColumnType{Type: field.TypeFloat32, Name: "real"},
		dialect.ColumnType{Type: field.TypeFloat64, Name: "double precision"},
		dialect.ColumnType{Type: field.TypeString, Name: "varchar", Ext: dialect.SizeExt},
		dialect.ColumnType{Type: field.TypeTime, Name: "timestamp"},
		dialect.ColumnType{Type: field.TypeUUID, Name: "uuid"},
	)
}

// New returns the PostgreSQL dialect. Identity columns use the SQL standard
// syntax shared with H2.
func New() *dialect.Base {
	return dialect.New(dialect.Postgres, NewTypeTable())
}
