// Package sqlgen assembles complete SQL statements from entity metadata and
// the fragments rendered by a dialect.
//
// Every generator is a pure function of its inputs: it validates the
// metadata, renders the statement in a single pass and returns either the
// whole statement or an error, never a partial string.
//
//	d := h2.New()
//	sqlgen.Create(d, users)   // create table users (id bigint generated by default as identity, name varchar(20) not null, primary key (id))
//	sqlgen.Drop(d, users)     // drop table users
//	sqlgen.FindAll(d, users)  // select id, name from users
//	sqlgen.FindByID(d, users, 5)
//	sqlgen.Insert(d, users, &User{ID: 5, Name: "Ann"})
package sqlgen

import (
	"strings"

	"github.com/syssam/persist/dialect"
	"github.com/syssam/persist/schema"
)

// Create returns the create-table statement of the entity:
//
//	<create-prefix> <table> (<column clause>...<primary-key clause>)
func Create(d dialect.Dialect, e *schema.EntityData) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	pk, err := e.PrimaryKey()
	if err != nil {
		return "", err
	}
	tok := d.Tokens()
	var sb strings.Builder
	sb.WriteString(tok.CreateTable)
	sb.WriteString(tok.Space)
	sb.WriteString(e.Table)
	sb.WriteString(tok.Space)
	sb.WriteString(tok.OpenParen)
	for _, c := range e.Columns {
		clause, err := d.ColumnClause(c)
		if err != nil {
			return "", err
		}
		sb.WriteString(clause)
	}
	sb.WriteString(d.PrimaryKeyClause(pk))
	sb.WriteString(tok.CloseParen)
	return sb.String(), nil
}

// Drop returns the drop-table statement of the entity.
func Drop(d dialect.Dialect, e *schema.EntityData) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	tok := d.Tokens()
	return tok.DropTable + tok.Space + e.Table, nil
}

// Insert returns the insert statement of the given entity instance. Values
// are extracted through the column accessors, in column order.
func Insert(d dialect.Dialect, e *schema.EntityData, entity any) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	values := make([]string, len(e.Columns))
	for i, c := range e.Columns {
		v, err := c.Value(entity)
		if err != nil {
			return "", err
		}
		if values[i], err = d.Literal(c, v); err != nil {
			return "", err
		}
	}
	tok := d.Tokens()
	var sb strings.Builder
	sb.WriteString(tok.InsertInto)
	sb.WriteString(tok.Space)
	sb.WriteString(e.Table)
	sb.WriteString(tok.Space)
	sb.WriteString(tok.OpenParen)
	sb.WriteString(strings.Join(e.ColumnNames(), tok.Separator()))
	sb.WriteString(tok.CloseParen)
	sb.WriteString(tok.Space)
	sb.WriteString(tok.Values)
	sb.WriteString(tok.Space)
	sb.WriteString(tok.OpenParen)
	sb.WriteString(strings.Join(values, tok.Separator()))
	sb.WriteString(tok.CloseParen)
	return sb.String(), nil
}

// FindAll returns the select statement of all rows, listing the columns in
// declaration order.
func FindAll(d dialect.Dialect, e *schema.EntityData) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	return selectFrom(d.Tokens(), e), nil
}

// FindByID returns the select statement of the row with the given id. The
// id literal follows the host type of the id column.
func FindByID(d dialect.Dialect, e *schema.EntityData, id any) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	pk, err := e.PrimaryKey()
	if err != nil {
		return "", err
	}
	lit, err := d.Literal(pk, id)
	if err != nil {
		return "", err
	}
	tok := d.Tokens()
	return selectFrom(tok, e) + tok.Space + tok.Where + tok.Space + pk.Name + tok.Space + tok.Equals + tok.Space + lit, nil
}

func selectFrom(tok dialect.Tokens, e *schema.EntityData) string {
	return tok.Select + tok.Space + strings.Join(e.ColumnNames(), tok.Separator()) + tok.Space + tok.From + tok.Space + e.Table
}
