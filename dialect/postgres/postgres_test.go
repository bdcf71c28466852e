package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/persist/dialect"
	"github.com/syssam/persist/dialect/postgres"
	"github.com/syssam/persist/schema"
	"github.com/syssam/persist/schema/field"
)

func TestTypeTableExhaustive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, field.Types(), postgres.NewTypeTable().Types())
}

func TestColumnClause(t *testing.T) {
	t.Parallel()

	d := postgres.New()
	assert.Equal(t, dialect.Postgres, d.Name())

	tests := []struct {
		column *schema.EntityColumn
		want   string
	}{
		{schema.ID(field.Int64("id").Descriptor(), schema.GenerationIdentity), "id bigint generated by default as identity, "},
		{schema.ID(field.UUID("id").Descriptor(), schema.GenerationNone), "id uuid not null, "},
		{schema.Column(field.Float64("score").Descriptor()), "score double precision, "},
		{schema.Column(field.String("name").Size(64).Descriptor()), "name varchar(64), "},
	}
	for _, tt := range tests {
		got, err := d.ColumnClause(tt.column)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	lit, err := d.Literal(schema.Column(field.String("s").Descriptor()), `a\b`)
	require.NoError(t, err)
	assert.Equal(t, `'a\b'`, lit)
}
