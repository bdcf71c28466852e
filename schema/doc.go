// Package schema holds the metadata model of mapped entities.
//
// An EntityData describes one mapped type: its table name and its columns
// in declaration order. Exactly one column is the primary key:
//
//	users, err := schema.New("users",
//	    schema.ID(field.Int64("id").Descriptor(), schema.GenerationIdentity),
//	    schema.Column(field.String("name").Size(20).NotNull().Descriptor()),
//	)
//
// Metadata is built once per mapped type, usually by package load, and is
// never mutated afterwards. Every statement generator validates it before
// rendering; see Validate for the list of checked rules.
package schema
