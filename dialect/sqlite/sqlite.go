// Package sqlite provides the SQLite dialect.
package sqlite

import (
	"github.com/syssam/persist/dialect"
	"github.com/syssam/persist/schema/field"
)

// NewTypeTable returns the SQLite type mapping table. All integer types map
// to "integer", so that an integer primary key aliases the rowid.
func NewTypeTable() *dialect.TypeTable {
	return dialect.NewTypeTable(dialect.SQLite,
		dialect.ColumnType{Type: field.TypeBool, Name: "boolean"},
		dialect.ColumnType{Type: field.TypeInt, Name: "integer"},
		dialect.ColumnType{Type: field.TypeInt8, Name: "integer"},
		dialect.ColumnType{Type: field.TypeInt16, Name: "integer"},
		dialect.ColumnType{Type: field.TypeInt32, Name: "integer"},
		dialect.ColumnType{Type: field.TypeInt64, Name: "integer"},
		dialect.ColumnType{Type: field.TypeFloat32, Name: "real"},
		dialect.ColumnType{Type: field.TypeFloat64, Name: "real"},
		dialect.ColumnType{Type: field.TypeString, Name: "varchar", Ext: dialect.SizeExt},
		dialect.ColumnType{Type: field.TypeTime, Name: "timestamp"},
		dialect.ColumnType{Type: field.TypeUUID, Name: "text"},
	)
}

// New returns the SQLite dialect. Generated keys render no clause; the
// database assigns rowid values to integer primary keys.
func New() *dialect.Base {
	return dialect.New(dialect.SQLite, NewTypeTable(),
		dialect.WithGeneration(dialect.NoGeneration),
	)
}
