// Package load builds entity metadata from tagged Go structs and from YAML
// definitions.
//
// Struct fields are mapped through the "persist" tag:
//
//	type User struct {
//	    ID    int64  `persist:"id,pk,generated=identity"`
//	    Name  string `persist:",size=20,notnull"`
//	    Email *string
//	    Cache string `persist:"-"`
//	}
//
// Column names default to the snake_case field name, table names to the
// pluralized snake_case type name unless the type implements Tabler.
// Reflection happens once, at load time; the resulting descriptors carry
// precomputed accessors.
package load
