// Package mysql provides the MySQL dialect.
package mysql

import (
	"github.com/syssam/persist/dialect"
	"github.com/syssam/persist/schema/field"
)

// NewTypeTable returns the MySQL type mapping table.
func NewTypeTable() *dialect.TypeTable {
	return dialect.NewTypeTable(dialect.MySQL,
		dialect.ColumnType{Type: field.TypeBool, Name: "boolean"},
		dialect.ColumnType{Type: field.TypeInt, Name: "int"},
		dialect.ColumnType{Type: field.TypeInt8, Name: "smallint"},
		dialect.ColumnType{Type: field.TypeInt16, Name: "smallint"},
		dialect.ColumnType{Type: field.TypeInt32, Name: "int"},
		dialect.ColumnType{Type: field.TypeInt64, Name: "bigint"},
		dialect.ColumnType{Type: field.TypeFloat32, Name: "float"},
		dialect.ColumnType{Type: field.TypeFloat64, Name: "double"},
		dialect.ColumnType{Type: field.TypeString, Name: "varchar", Ext: dialect.SizeExt},
		dialect.ColumnType{Type: field.TypeTime, Name: "datetime"},
		dialect.ColumnType{Type: field.TypeUUID, Name: "char(36)"},
	)
}

// New returns the MySQL dialect. Generated keys render as auto_increment and
// backslashes in string literals are escaped.
func New() *dialect.Base {
	return dialect.New(dialect.MySQL, NewTypeTable(),
		dialect.WithGeneration(dialect.AutoIncrement),
		dialect.WithEscaper(dialect.EscapeQuotesAndBackslashes),
	)
}
