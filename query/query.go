// Package query provides the single entry point through which the
// persistence layer obtains SQL for mapped entities.
package query

import (
	"github.com/syssam/persist/dialect"
	"github.com/syssam/persist/schema"
	"github.com/syssam/persist/sqlgen"
)

// Generator is the statement generation contract consumed by the execution
// layer. It does not depend on the dialect in use.
type Generator interface {
	Create(e *schema.EntityData) (string, error)
	Drop(e *schema.EntityData) (string, error)
	Insert(e *schema.EntityData, entity any) (string, error)
	FindAll(e *schema.EntityData) (string, error)
	FindByID(e *schema.EntityData, id any) (string, error)
}

// Query holds one generator of each statement kind, bound to one dialect.
// It is immutable and safe for concurrent use.
type Query struct {
	dialect  dialect.Dialect
	create   *sqlgen.CreateQuery
	drop     *sqlgen.DropQuery
	insert   *sqlgen.InsertQuery
	findAll  *sqlgen.FindAllQuery
	findByID *sqlgen.FindByIDQuery
}

// New returns a Query bound to the given dialect.
func New(d dialect.Dialect) *Query {
	return &Query{
		dialect:  d,
		create:   sqlgen.NewCreateQuery(d),
		drop:     sqlgen.NewDropQuery(d),
		insert:   sqlgen.NewInsertQuery(d),
		findAll:  sqlgen.NewFindAllQuery(d),
		findByID: sqlgen.NewFindByIDQuery(d),
	}
}

// Dialect returns the name of the bound dialect.
func (q *Query) Dialect() string {
	return q.dialect.Name()
}

// Create returns the create-table statement of the entity.
func (q *Query) Create(e *schema.EntityData) (string, error) {
	return q.create.Generate(e)
}

// Drop returns the drop-table statement of the entity.
func (q *Query) Drop(e *schema.EntityData) (string, error) {
	return q.drop.Generate(e)
}

// Insert returns the insert statement of the entity instance.
func (q *Query) Insert(e *schema.EntityData, entity any) (string, error) {
	return q.insert.Generate(e, entity)
}

// FindAll returns the select statement of all rows of the entity.
func (q *Query) FindAll(e *schema.EntityData) (string, error) {
	return q.findAll.Generate(e)
}

// FindByID returns the select statement of the row with the given id.
func (q *Query) FindByID(e *schema.EntityData, id any) (string, error) {
	return q.findByID.Generate(e, id)
}

var _ Generator = (*Query)(nil)
