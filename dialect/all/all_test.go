package all_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/persist/dialect"
	"github.com/syssam/persist/dialect/all"
)

func TestGet(t *testing.T) {
	t.Parallel()

	for _, name := range all.Names() {
		d, err := all.Get(name)
		require.NoError(t, err)
		assert.Equal(t, name, d.Name())
	}

	d, err := all.Get("sqlite")
	require.NoError(t, err)
	assert.Equal(t, dialect.SQLite, d.Name())

	d, err = all.Get("postgresql")
	require.NoError(t, err)
	assert.Equal(t, dialect.Postgres, d.Name())

	_, err = all.Get("oracle")
	assert.EqualError(t, err, `dialect: unknown dialect "oracle"`)
}

func TestNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{dialect.H2, dialect.MySQL, dialect.Postgres, dialect.SQLite}, all.Names())
}
