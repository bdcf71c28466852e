package schema

import (
	"github.com/syssam/persist"
	"github.com/syssam/persist/schema/field"
)

// EntityColumn describes one mapped field.
type EntityColumn struct {
	Name       string
	Field      *field.Descriptor
	ID         bool
	Generation GenerationType
}

// Column returns a regular column for the given field descriptor.
func Column(fd *field.Descriptor) *EntityColumn {
	return &EntityColumn{Name: fd.Column(), Field: fd}
}

// ID returns a primary-key column for the given field descriptor.
func ID(fd *field.Descriptor, gen GenerationType) *EntityColumn {
	return &EntityColumn{Name: fd.Column(), Field: fd, ID: true, Generation: gen}
}

// Type returns the host type of the column.
func (c *EntityColumn) Type() field.Type {
	if c.Field == nil {
		return field.TypeInvalid
	}
	return c.Field.Type
}

// Generated reports if the column value is generated by the database.
func (c *EntityColumn) Generated() bool {
	return c.Generation != GenerationNone
}

// NotNull reports if the field carries an explicit non-nullable constraint.
func (c *EntityColumn) NotNull() bool {
	return c.Field != nil && c.Field.NotNull
}

// Size returns the declared maximum length of the column.
func (c *EntityColumn) Size() int64 {
	if c.Field == nil {
		return field.DefaultSize
	}
	return c.Field.MaxLen()
}

// Value extracts the column value from the given entity instance.
func (c *EntityColumn) Value(entity any) (any, error) {
	if c.Field == nil || c.Field.Value == nil {
		return nil, persist.NewMalformedMetadataError("", c.Name, "column has no value accessor")
	}
	return c.Field.Value(entity)
}

// EntityData describes one mapped type.
type EntityData struct {
	Name    string // Mapped type name, used as a label in errors.
	Table   string
	Columns []*EntityColumn
}

// New returns validated entity metadata for the given table.
func New(table string, columns ...*EntityColumn) (*EntityData, error) {
	e := &EntityData{Name: table, Table: table, Columns: columns}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Label returns the entity label used in errors.
func (e *EntityData) Label() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Table
}

// ColumnNames returns the column names in declaration order.
func (e *EntityData) ColumnNames() []string {
	names := make([]string, len(e.Columns))
	for i, c := range e.Columns {
		names[i] = c.Name
	}
	return names
}

// PrimaryKey returns the single id column of the entity.
func (e *EntityData) PrimaryKey() (*EntityColumn, error) {
	var (
		pk    *EntityColumn
		count int
	)
	for _, c := range e.Columns {
		if c != nil && c.ID {
			pk = c
			count++
		}
	}
	if count != 1 {
		return nil, persist.NewMissingPrimaryKeyError(e.Table, count)
	}
	return pk, nil
}

// Column returns the column with the given name.
func (e *EntityData) Column(name string) (*EntityColumn, bool) {
	for _, c := range e.Columns {
		if c != nil && c.Name == name {
			return c, true
		}
	}
	return nil, false
}
