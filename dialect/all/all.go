// Package all provides lookup of the bundled dialects by name.
package all

import (
	"fmt"
	"sort"

	"github.com/syssam/persist/dialect"
	"github.com/syssam/persist/dialect/h2"
	"github.com/syssam/persist/dialect/mysql"
	"github.com/syssam/persist/dialect/postgres"
	"github.com/syssam/persist/dialect/sqlite"
)

var constructors = map[string]func() *dialect.Base{
	dialect.H2:       h2.New,
	dialect.Postgres: postgres.New,
	dialect.MySQL:    mysql.New,
	dialect.SQLite:   sqlite.New,
	"sqlite":         sqlite.New,
	"postgresql":     postgres.New,
}

// Get returns a new dialect by name. Besides the dialect constants, the
// aliases "sqlite" and "postgresql" are accepted.
func Get(name string) (dialect.Dialect, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("dialect: unknown dialect %q", name)
	}
	return ctor(), nil
}

// Names returns the canonical dialect names, sorted.
func Names() []string {
	names := []string{dialect.H2, dialect.Postgres, dialect.MySQL, dialect.SQLite}
	sort.Strings(names)
	return names
}
