package field

// DefaultSize is the length rendered for variable-width columns that do not
// declare one.
const DefaultSize int64 = 255

// Accessor extracts a field value from an entity instance. It returns an
// untyped nil for absent (nil pointer) values.
type Accessor func(entity any) (any, error)

// Descriptor describes a single entity field.
type Descriptor struct {
	Name       string   // Field name (Go struct field name, or the column name for hand-built fields).
	StorageKey string   // Column name override.
	Type       Type     // Host type.
	Size       int64    // Declared maximum length; zero means DefaultSize.
	NotNull    bool     // Explicit non-nullable constraint.
	Index      []int    // Struct field index path, set by the loader.
	Value      Accessor // Value extraction, optional.
}

// Column returns the column name of the field.
func (d *Descriptor) Column() string {
	if d.StorageKey != "" {
		return d.StorageKey
	}
	return d.Name
}

// MaxLen returns the declared size or DefaultSize.
func (d *Descriptor) MaxLen() int64 {
	if d.Size > 0 {
		return d.Size
	}
	return DefaultSize
}

// Builder is a fluent builder for field descriptors.
type Builder struct {
	desc *Descriptor
}

func newBuilder(name string, t Type) *Builder {
	return &Builder{desc: &Descriptor{Name: name, Type: t}}
}

// Bool returns a new bool field builder.
func Bool(name string) *Builder { return newBuilder(name, TypeBool) }

// Int returns a new int field builder.
func Int(name string) *Builder { return newBuilder(name, TypeInt) }

// Int8 returns a new int8 field builder.
func Int8(name string) *Builder { return newBuilder(name, TypeInt8) }

// Int16 returns a new int16 field builder.
func Int16(name string) *Builder { return newBuilder(name, TypeInt16) }

// Int32 returns a new int32 field builder.
func Int32(name string) *Builder { return newBuilder(name, TypeInt32) }

// Int64 returns a new int64 field builder.
func Int64(name string) *Builder { return newBuilder(name, TypeInt64) }

// Float32 returns a new float32 field builder.
func Float32(name string) *Builder { return newBuilder(name, TypeFloat32) }

// Float64 returns a new float64 field builder.
func Float64(name string) *Builder { return newBuilder(name, TypeFloat64) }

// String returns a new string field builder.
func String(name string) *Builder { return newBuilder(name, TypeString) }

// Time returns a new time.Time field builder.
func Time(name string) *Builder { return newBuilder(name, TypeTime) }

// UUID returns a new uuid.UUID field builder.
func UUID(name string) *Builder { return newBuilder(name, TypeUUID) }

// Of returns a new field builder of the given type.
func Of(name string, t Type) *Builder { return newBuilder(name, t) }

// Size sets the maximum length of a variable-width field.
func (b *Builder) Size(n int64) *Builder {
	b.desc.Size = n
	return b
}

// NotNull marks the field as explicitly non-nullable.
func (b *Builder) NotNull() *Builder {
	b.desc.NotNull = true
	return b
}

// StorageKey overrides the column name of the field.
func (b *Builder) StorageKey(key string) *Builder {
	b.desc.StorageKey = key
	return b
}

// Accessor sets the value extraction function.
func (b *Builder) Accessor(fn Accessor) *Builder {
	b.desc.Value = fn
	return b
}

// Index sets the struct field index path.
func (b *Builder) Index(index ...int) *Builder {
	b.desc.Index = index
	return b
}

// Descriptor returns the built descriptor.
func (b *Builder) Descriptor() *Descriptor {
	return b.desc
}
