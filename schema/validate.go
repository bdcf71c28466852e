package schema

import (
	"github.com/syssam/persist"
)

// Validate checks the structural rules of the entity metadata and returns
// every violation found, aggregated:
//
//   - the table name is not empty and there is at least one column
//   - every column has a name, a field descriptor and a valid host type
//   - column names are unique
//   - exactly one column is the primary key
//
// Structural violations are reported as MalformedMetadataError, the key
// count as MissingPrimaryKeyError.
func (e *EntityData) Validate() error {
	var errs []error
	if e.Table == "" {
		errs = append(errs, persist.NewMalformedMetadataError(e.Label(), "", "empty table name"))
	}
	if len(e.Columns) == 0 {
		errs = append(errs, persist.NewMalformedMetadataError(e.Table, "", "no columns"))
	}
	seen := make(map[string]bool, len(e.Columns))
	for _, c := range e.Columns {
		switch {
		case c == nil:
			errs = append(errs, persist.NewMalformedMetadataError(e.Table, "", "nil column"))
			continue
		case c.Name == "":
			errs = append(errs, persist.NewMalformedMetadataError(e.Table, "", "empty column name"))
		case seen[c.Name]:
			errs = append(errs, persist.NewMalformedMetadataError(e.Table, c.Name, "duplicate column name"))
		}
		seen[c.Name] = true
		if c.Field == nil {
			errs = append(errs, persist.NewMalformedMetadataError(e.Table, c.Name, "column has no field descriptor"))
		} else if !c.Field.Type.Valid() {
			errs = append(errs, persist.NewMalformedMetadataError(e.Table, c.Name, "column has no valid host type"))
		}
	}
	if _, err := e.PrimaryKey(); err != nil && len(e.Columns) > 0 {
		errs = append(errs, err)
	}
	return persist.NewAggregateError(errs...)
}
