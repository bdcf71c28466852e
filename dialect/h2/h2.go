// Package h2 provides the H2 dialect.
package h2

import (
	"github.com/syssam/persist/dialect"
	"github.com/syssam/persist/schema/field"
)

// NewTypeTable returns the H2 type mapping table.
func NewTypeTable() *dialect.TypeTable {
	return dialect.NewTypeTable(dialect.H2,
		dialect.ColumnType{Type: field.TypeBool, Name: "boolean"},
		dialect.ColumnType{Type: field.TypeInt, Name: "integer"},
		dialect.ColumnType{Type: field.TypeInt8, Name: "smallint"},
		dialect.ColumnType{Type: field.TypeInt16, Name: "smallint"},
		dialect.ColumnType{Type: field.TypeInt32, Name: "integer"},
		dialect.ColumnType{Type: field.TypeInt64, Name: "bigint"},
		dialect.ColumnType{Type: field.TypeFloat32, Name: "real"},
		dialect.ColumnType{Type: field.TypeFloat64, Name: "double"},
		dialect.ColumnType{Type: field.TypeString, Name: "varchar", Ext: dialect.SizeExt},
		dialect.ColumnType{Type: field.TypeTime, Name: "timestamp"},
		dialect.ColumnType{Type: field.TypeUUID, Name: "uuid"},
	)
}

// New returns the H2 dialect. Generated keys render as
// "generated by default as <strategy>".
func New() *dialect.Base {
	return dialect.New(dialect.H2, NewTypeTable())
}
