package sqlgen

import (
	"github.com/syssam/persist/dialect"
	"github.com/syssam/persist/schema"
)

// CreateQuery generates create-table statements for one dialect.
type CreateQuery struct{ dialect dialect.Dialect }

// NewCreateQuery returns a CreateQuery bound to the given dialect.
func NewCreateQuery(d dialect.Dialect) *CreateQuery { return &CreateQuery{dialect: d} }

// Generate returns the create-table statement of the entity.
func (q *CreateQuery) Generate(e *schema.EntityData) (string, error) { return Create(q.dialect, e) }

// DropQuery generates drop-table statements for one dialect.
type DropQuery struct{ dialect dialect.Dialect }

// NewDropQuery returns a DropQuery bound to the given dialect.
func NewDropQuery(d dialect.Dialect) *DropQuery { return &DropQuery{dialect: d} }

// Generate returns the drop-table statement of the entity.
func (q *DropQuery) Generate(e *schema.EntityData) (string, error) { return Drop(q.dialect, e) }

// InsertQuery generates insert statements for one dialect.
type InsertQuery struct{ dialect dialect.Dialect }

// NewInsertQuery returns an InsertQuery bound to the given dialect.
func NewInsertQuery(d dialect.Dialect) *InsertQuery { return &InsertQuery{dialect: d} }

// Generate returns the insert statement of the entity instance.
func (q *InsertQuery) Generate(e *schema.EntityData, entity any) (string, error) {
	return Insert(q.dialect, e, entity)
}

// FindAllQuery generates select-all statements for one dialect.
type FindAllQuery struct{ dialect dialect.Dialect }

// NewFindAllQuery returns a FindAllQuery bound to the given dialect.
func NewFindAllQuery(d dialect.Dialect) *FindAllQuery { return &FindAllQuery{dialect: d} }

// Generate returns the select-all statement of the entity.
func (q *FindAllQuery) Generate(e *schema.EntityData) (string, error) { return FindAll(q.dialect, e) }

// FindByIDQuery generates select-by-id statements for one dialect.
type FindByIDQuery struct{ dialect dialect.Dialect }

// NewFindByIDQuery returns a FindByIDQuery bound to the given dialect.
func NewFindByIDQuery(d dialect.Dialect) *FindByIDQuery { return &FindByIDQuery{dialect: d} }

// Generate returns the select-by-id statement of the entity.
func (q *FindByIDQuery) Generate(e *schema.EntityData, id any) (string, error) {
	return FindByID(q.dialect, e, id)
}
