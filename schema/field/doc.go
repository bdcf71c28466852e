// Package field provides host types and fluent builders for describing the
// fields of a mapped entity.
//
// A field is described once, when its entity is registered, and the
// resulting Descriptor is read-only afterwards:
//
//	field.Int64("id")                     // bigint in most dialects
//	field.String("name").Size(20).NotNull() // varchar(20) not null
//	field.Time("created_at")
//	field.UUID("token")
//
// # Host Types
//
// Every descriptor carries a Type. Dialects resolve it through their type
// mapping table; a Type missing from that table is reported as an
// unsupported type rather than silently defaulted.
//
// Types fall into three literal families:
//
//   - Numeric: int, int8, int16, int32, int64, float32, float64 (unquoted)
//   - Bool: rendered as true/false (unquoted)
//   - Textual: string, time, uuid (single-quoted)
//
// # Value Extraction
//
// A descriptor may carry an Accessor that extracts the field value from an
// entity instance. Accessors are built by the loader when the entity is
// registered, so statement generation never inspects entities on its own:
//
//	fd := field.String("name").
//	    Accessor(func(v any) (any, error) { return v.(*User).Name, nil }).
//	    Descriptor()
package field
