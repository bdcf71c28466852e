// Package session executes generated statements through a dialect.Driver and
// maps result rows back onto Go structs.
//
//	drv, _ := sql.Open(dialect.Postgres, dsn)
//	s := session.New(drv, query.New(postgres.New()))
//	if err := s.CreateTable(ctx, User{}); err != nil {
//	    return err
//	}
//	err := s.Insert(ctx, &User{ID: 1, Name: "Ann"})
//
//	var u User
//	err = s.FindByID(ctx, &u, 1)
package session

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/syssam/persist"
	"github.com/syssam/persist/dialect"
	"github.com/syssam/persist/dialect/sql"
	"github.com/syssam/persist/query"
	"github.com/syssam/persist/schema"
	"github.com/syssam/persist/schema/load"
)

// Operation names used in logs and errors.
const (
	OpCreate   = "create"
	OpDrop     = "drop"
	OpInsert   = "insert"
	OpFindAll  = "find_all"
	OpFindByID = "find_by_id"
)

// Session runs the statements of a query.Generator against a driver.
// It is safe for concurrent use if the driver is.
type Session struct {
	drv dialect.Driver
	gen query.Generator
	reg *load.Registry
	log *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for statement logging.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRegistry sets the registry used to resolve struct metadata.
func WithRegistry(r *load.Registry) Option {
	return func(s *Session) {
		if r != nil {
			s.reg = r
		}
	}
}

// New returns a Session executing the statements of gen on drv.
func New(drv dialect.Driver, gen query.Generator, opts ...Option) *Session {
	s := &Session{
		drv: drv,
		gen: gen,
		reg: load.NewRegistry(),
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Driver returns the underlying driver.
func (s *Session) Driver() dialect.Driver { return s.drv }

// Close closes the underlying driver.
func (s *Session) Close() error { return s.drv.Close() }

// entity resolves the metadata of v: either *schema.EntityData itself, or
// a struct value, pointer or type registered on first use.
func (s *Session) entity(v any) (*schema.EntityData, error) {
	if e, ok := v.(*schema.EntityData); ok {
		return e, nil
	}
	return s.reg.Entity(v)
}

// CreateTable creates the table of v, a struct value or *schema.EntityData.
func (s *Session) CreateTable(ctx context.Context, v any) error {
	e, err := s.entity(v)
	if err != nil {
		return err
	}
	stmt, err := s.gen.Create(e)
	if err != nil {
		return err
	}
	return s.exec(ctx, e, OpCreate, stmt)
}

// DropTable drops the table of v, a struct value or *schema.EntityData.
func (s *Session) DropTable(ctx context.Context, v any) error {
	e, err := s.entity(v)
	if err != nil {
		return err
	}
	stmt, err := s.gen.Drop(e)
	if err != nil {
		return err
	}
	return s.exec(ctx, e, OpDrop, stmt)
}

// Insert inserts one row holding the field values of v.
func (s *Session) Insert(ctx context.Context, v any) error {
	e, err := s.entity(v)
	if err != nil {
		return err
	}
	return s.InsertRow(ctx, e, v)
}

// InsertRow inserts one row of e, reading the values from row through the
// column accessors. It serves entities whose rows are not structs, such as
// those loaded from YAML.
func (s *Session) InsertRow(ctx context.Context, e *schema.EntityData, row any) error {
	stmt, err := s.gen.Insert(e, row)
	if err != nil {
		return err
	}
	return s.exec(ctx, e, OpInsert, stmt)
}

// FindByID loads the row with the given id into dst, a pointer to struct.
// It fails with NotFoundError if no row matches and NotSingularError if more
// than one does.
func (s *Session) FindByID(ctx context.Context, dst, id any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("persist: FindByID expects a non-nil pointer to struct, got %T", dst)
	}
	e, err := s.reg.EntityOf(rv.Type())
	if err != nil {
		return err
	}
	stmt, err := s.gen.FindByID(e, id)
	if err != nil {
		return err
	}
	var count int
	err = s.query(ctx, e, OpFindByID, stmt, func(rows *sql.Rows) error {
		for rows.Next() {
			count++
			if count > 1 {
				continue
			}
			if err := scanRow(rows, e, rv.Elem()); err != nil {
				return err
			}
		}
		return nil
	})
	switch {
	case err != nil:
		return err
	case count == 0:
		return persist.NewNotFoundErrorWithID(e.Label(), id)
	case count > 1:
		return persist.NewNotSingularErrorWithCount(e.Label(), count)
	}
	return nil
}

// FindAll loads every row of the table into dst, a pointer to a slice of
// structs or of struct pointers. The slice is replaced, not appended to.
func (s *Session) FindAll(ctx context.Context, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("persist: FindAll expects a non-nil pointer to slice, got %T", dst)
	}
	slice := rv.Elem()
	elem := slice.Type().Elem()
	ptr := elem.Kind() == reflect.Pointer
	base := elem
	if ptr {
		base = elem.Elem()
	}
	if base.Kind() != reflect.Struct {
		return fmt.Errorf("persist: FindAll expects a slice of structs, got %T", dst)
	}
	e, err := s.reg.EntityOf(base)
	if err != nil {
		return err
	}
	stmt, err := s.gen.FindAll(e)
	if err != nil {
		return err
	}
	out := reflect.MakeSlice(slice.Type(), 0, 0)
	err = s.query(ctx, e, OpFindAll, stmt, func(rows *sql.Rows) error {
		for rows.Next() {
			item := reflect.New(base)
			if err := scanRow(rows, e, item.Elem()); err != nil {
				return err
			}
			if ptr {
				out = reflect.Append(out, item)
			} else {
				out = reflect.Append(out, item.Elem())
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	slice.Set(out)
	return nil
}

func (s *Session) exec(ctx context.Context, e *schema.EntityData, op, stmt string) error {
	s.log.DebugContext(ctx, "persist: exec",
		slog.String("op", op),
		slog.String("entity", e.Label()),
		slog.String("query", stmt),
	)
	if err := s.drv.Exec(ctx, stmt, nil, nil); err != nil {
		return persist.NewMutationError(e.Label(), op, err)
	}
	return nil
}

// query runs stmt and passes the rows to fn. The rows are always closed and
// iteration errors reported.
func (s *Session) query(ctx context.Context, e *schema.EntityData, op, stmt string, fn func(*sql.Rows) error) (rerr error) {
	s.log.DebugContext(ctx, "persist: query",
		slog.String("op", op),
		slog.String("entity", e.Label()),
		slog.String("query", stmt),
	)
	rows := &sql.Rows{}
	if err := s.drv.Query(ctx, stmt, nil, rows); err != nil {
		return persist.NewQueryError(e.Label(), op, err)
	}
	defer func() {
		if err := rows.Close(); err != nil && rerr == nil {
			rerr = persist.NewQueryError(e.Label(), op, err)
		}
	}()
	if err := fn(rows); err != nil {
		return persist.NewQueryError(e.Label(), op, err)
	}
	if err := rows.Err(); err != nil {
		return persist.NewQueryError(e.Label(), op, err)
	}
	return nil
}
