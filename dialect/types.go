package dialect

import (
	"strconv"

	"github.com/syssam/persist"
	"github.com/syssam/persist/schema"
	"github.com/syssam/persist/schema/field"
)

// ColumnType is the database column type of a host type.
type ColumnType struct {
	Type field.Type
	Name string
	// Ext renders the type-specific suffix of variable-width types, e.g. the
	// length of a varchar. Nil for fixed-width types.
	Ext func(c *schema.EntityColumn) string
}

// Sized reports if the column type is variable-width.
func (t ColumnType) Sized() bool {
	return t.Ext != nil
}

// Render returns the type name with its extension, if any.
func (t ColumnType) Render(c *schema.EntityColumn) string {
	if t.Ext == nil {
		return t.Name
	}
	return t.Name + t.Ext(c)
}

// SizeExt renders the declared size of the column, e.g. "(20)".
func SizeExt(c *schema.EntityColumn) string {
	return "(" + strconv.FormatInt(c.Size(), 10) + ")"
}

// TypeTable maps host types to column types. It is built once and read-only
// afterwards.
type TypeTable struct {
	dialect string
	types   map[field.Type]ColumnType
}

// NewTypeTable returns a type table for the given dialect. Later entries
// override earlier ones for the same host type.
func NewTypeTable(dialect string, types ...ColumnType) *TypeTable {
	t := &TypeTable{dialect: dialect, types: make(map[field.Type]ColumnType, len(types))}
	for _, ct := range types {
		t.types[ct.Type] = ct
	}
	return t
}

// Resolve returns the column type of the given host type.
func (t *TypeTable) Resolve(typ field.Type) (ColumnType, error) {
	ct, ok := t.types[typ]
	if !ok {
		return ColumnType{}, persist.NewUnsupportedTypeError(t.dialect, typ.String())
	}
	return ct, nil
}

// Types returns the mapped host types in enumeration order.
func (t *TypeTable) Types() []field.Type {
	var ts []field.Type
	for _, typ := range field.Types() {
		if _, ok := t.types[typ]; ok {
			ts = append(ts, typ)
		}
	}
	return ts
}

// Len returns the number of mapped host types.
func (t *TypeTable) Len() int {
	return len(t.types)
}
