package sqlgen_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/persist"
	"github.com/syssam/persist/dialect"
	"github.com/syssam/persist/dialect/h2"
	"github.com/syssam/persist/dialect/mysql"
	"github.com/syssam/persist/dialect/postgres"
	"github.com/syssam/persist/dialect/sqlite"
	"github.com/syssam/persist/schema"
	"github.com/syssam/persist/schema/field"
	"github.com/syssam/persist/sqlgen"
)

type user struct {
	ID   int64
	Name string
}

func users(t *testing.T) *schema.EntityData {
	t.Helper()
	e, err := schema.New("users",
		schema.ID(field.Int64("id").
			Accessor(func(v any) (any, error) { return v.(*user).ID, nil }).
			Descriptor(), schema.GenerationIdentity),
		schema.Column(field.String("name").Size(20).NotNull().
			Accessor(func(v any) (any, error) { return v.(*user).Name, nil }).
			Descriptor()),
	)
	require.NoError(t, err)
	return e
}

func TestH2Users(t *testing.T) {
	t.Parallel()

	d, e := h2.New(), users(t)

	create, err := sqlgen.Create(d, e)
	require.NoError(t, err)
	assert.Equal(t, "create table users (id bigint generated by default as identity, name varchar(20) not null, primary key (id))", create)

	drop, err := sqlgen.Drop(d, e)
	require.NoError(t, err)
	assert.Equal(t, "drop table users", drop)

	findAll, err := sqlgen.FindAll(d, e)
	require.NoError(t, err)
	assert.Equal(t, "select id, name from users", findAll)

	findByID, err := sqlgen.FindByID(d, e, 5)
	require.NoError(t, err)
	assert.Equal(t, "select id, name from users where id = 5", findByID)

	insert, err := sqlgen.Insert(d, e, &user{ID: 5, Name: "Ann"})
	require.NoError(t, err)
	assert.Equal(t, "insert into users (id, name) values (5, 'Ann')", insert)
}

func TestCreateDialects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dialect dialect.Dialect
		want    string
	}{
		{postgres.New(), "create table users (id bigint generated by default as identity, name varchar(20) not null, primary key (id))"},
		{mysql.New(), "create table users (id bigint auto_increment, name varchar(20) not null, primary key (id))"},
		{sqlite.New(), "create table users (id integer, name varchar(20) not null, primary key (id))"},
	}
	for _, tt := range tests {
		t.Run(tt.dialect.Name(), func(t *testing.T) {
			t.Parallel()
			got, err := sqlgen.Create(tt.dialect, users(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateColumnCount(t *testing.T) {
	t.Parallel()

	cols := []*schema.EntityColumn{schema.ID(field.Int64("id").Descriptor(), schema.GenerationNone)}
	for _, name := range []string{"a", "b", "c", "d"} {
		cols = append(cols, schema.Column(field.String(name).Descriptor()))
	}
	e, err := schema.New("wide", cols...)
	require.NoError(t, err)

	got, err := sqlgen.Create(h2.New(), e)
	require.NoError(t, err)
	body := strings.TrimSuffix(strings.TrimPrefix(got, "create table wide ("), ")")
	parts := strings.Split(body, ", ")
	require.Len(t, parts, len(cols)+1)
	for i, c := range cols {
		assert.True(t, strings.HasPrefix(parts[i], c.Name+" "), parts[i])
	}
	assert.Equal(t, "primary key (id)", parts[len(cols)])
	assert.Equal(t, 1, strings.Count(got, "primary key"))
	assert.Equal(t, "id bigint not null", parts[0])
}

func TestColumnOrder(t *testing.T) {
	t.Parallel()

	e, err := schema.New("items",
		schema.Column(field.String("zeta").Descriptor()),
		schema.ID(field.Int64("id").Descriptor(), schema.GenerationNone),
		schema.Column(field.Bool("alpha").Descriptor()),
	)
	require.NoError(t, err)
	d := h2.New()

	create, err := sqlgen.Create(d, e)
	require.NoError(t, err)
	assert.Equal(t, "create table items (zeta varchar(255), id bigint not null, alpha boolean, primary key (id))", create)

	findAll, err := sqlgen.FindAll(d, e)
	require.NoError(t, err)
	assert.Equal(t, "select zeta, id, alpha from items", findAll)

	drop, err := sqlgen.Drop(d, e)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(drop, " "+e.Table))
	assert.Contains(t, create, "create table "+e.Table+" (")
}

func TestFindByIDLiteral(t *testing.T) {
	t.Parallel()

	e, err := schema.New("tags", schema.ID(field.String("code").Size(8).Descriptor(), schema.GenerationNone))
	require.NoError(t, err)

	got, err := sqlgen.FindByID(h2.New(), e, "it's")
	require.NoError(t, err)
	assert.Equal(t, "select code from tags where code = 'it''s'", got)

	_, err = sqlgen.FindByID(h2.New(), e, 5)
	assert.True(t, persist.IsInvalidValue(err))
}

func TestInsertNullAndMaps(t *testing.T) {
	t.Parallel()

	get := func(name string) field.Accessor {
		return func(v any) (any, error) { return v.(map[string]any)[name], nil }
	}
	e, err := schema.New("notes",
		schema.ID(field.Int64("id").Accessor(get("id")).Descriptor(), schema.GenerationNone),
		schema.Column(field.String("body").Accessor(get("body")).Descriptor()),
		schema.Column(field.Bool("pinned").Accessor(get("pinned")).Descriptor()),
		schema.Column(field.Float64("score").Accessor(get("score")).Descriptor()),
	)
	require.NoError(t, err)

	got, err := sqlgen.Insert(h2.New(), e, map[string]any{"id": int64(1), "pinned": true, "score": 0.5})
	require.NoError(t, err)
	assert.Equal(t, "insert into notes (id, body, pinned, score) values (1, null, true, 0.5)", got)
}

func TestInsertErrors(t *testing.T) {
	t.Parallel()

	e := users(t)
	_, err := sqlgen.Insert(h2.New(), e, &user{ID: 1, Name: "x"})
	require.NoError(t, err)

	boom := errors.New("boom")
	failing, err := schema.New("t",
		schema.ID(field.Int64("id").Accessor(func(any) (any, error) { return nil, boom }).Descriptor(), schema.GenerationNone),
	)
	require.NoError(t, err)
	_, err = sqlgen.Insert(h2.New(), failing, struct{}{})
	assert.ErrorIs(t, err, boom)

	noAccessor, err := schema.New("t", schema.ID(field.Int64("id").Descriptor(), schema.GenerationNone))
	require.NoError(t, err)
	_, err = sqlgen.Insert(h2.New(), noAccessor, struct{}{})
	assert.True(t, persist.IsMalformedMetadata(err))
}

func TestGeneratorsRejectBadMetadata(t *testing.T) {
	t.Parallel()

	noPK := &schema.EntityData{Table: "t", Columns: []*schema.EntityColumn{
		schema.Column(field.String("name").Descriptor()),
	}}
	dup := &schema.EntityData{Table: "t", Columns: []*schema.EntityColumn{
		schema.ID(field.Int64("id").Descriptor(), schema.GenerationNone),
		schema.Column(field.String("id").Descriptor()),
	}}
	d := h2.New()
	generators := map[string]func(*schema.EntityData) (string, error){
		"create":   func(e *schema.EntityData) (string, error) { return sqlgen.Create(d, e) },
		"drop":     func(e *schema.EntityData) (string, error) { return sqlgen.Drop(d, e) },
		"insert":   func(e *schema.EntityData) (string, error) { return sqlgen.Insert(d, e, nil) },
		"findAll":  func(e *schema.EntityData) (string, error) { return sqlgen.FindAll(d, e) },
		"findByID": func(e *schema.EntityData) (string, error) { return sqlgen.FindByID(d, e, 1) },
	}
	for name, gen := range generators {
		got, err := gen(noPK)
		assert.True(t, persist.IsMissingPrimaryKey(err), name)
		assert.Empty(t, got, name)

		got, err = gen(dup)
		assert.True(t, persist.IsMalformedMetadata(err), name)
		assert.Empty(t, got, name)
	}
}

func TestCreateUnsupportedType(t *testing.T) {
	t.Parallel()

	types := dialect.NewTypeTable("fake", dialect.ColumnType{Type: field.TypeInt64, Name: "bigint"})
	d := dialect.New("fake", types)
	e, err := schema.New("events",
		schema.ID(field.Int64("id").Descriptor(), schema.GenerationNone),
		schema.Column(field.Time("at").Descriptor()),
	)
	require.NoError(t, err)

	got, err := sqlgen.Create(d, e)
	assert.Empty(t, got)
	var ute *persist.UnsupportedTypeError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, "fake", ute.Dialect)
	assert.Equal(t, "at", ute.Column)
}

func TestBoundQueries(t *testing.T) {
	t.Parallel()

	d, e := h2.New(), users(t)
	create, err := sqlgen.NewCreateQuery(d).Generate(e)
	require.NoError(t, err)
	want, _ := sqlgen.Create(d, e)
	assert.Equal(t, want, create)

	drop, err := sqlgen.NewDropQuery(d).Generate(e)
	require.NoError(t, err)
	assert.Equal(t, "drop table users", drop)

	insert, err := sqlgen.NewInsertQuery(d).Generate(e, &user{ID: 2, Name: "Bo"})
	require.NoError(t, err)
	assert.Equal(t, "insert into users (id, name) values (2, 'Bo')", insert)

	findAll, err := sqlgen.NewFindAllQuery(d).Generate(e)
	require.NoError(t, err)
	assert.Equal(t, "select id, name from users", findAll)

	findByID, err := sqlgen.NewFindByIDQuery(d).Generate(e, int64(2))
	require.NoError(t, err)
	assert.Equal(t, "select id, name from users where id = 2", findByID)
}
