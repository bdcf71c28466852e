package load

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"

	"github.com/syssam/persist"
	"github.com/syssam/persist/schema"
	"github.com/syssam/persist/schema/field"
)

// TagName is the struct tag key read by the loader.
const TagName = "persist"

// Tabler is implemented by types that name their own table.
type Tabler interface {
	TableName() string
}

// Entity returns the metadata of the given struct value or pointer to struct.
func Entity(v any) (*schema.EntityData, error) {
	if v == nil {
		return nil, fmt.Errorf("load: nil entity")
	}
	return EntityOf(reflect.TypeOf(v))
}

// EntityOf returns the metadata of the given struct type or pointer to
// struct type.
func EntityOf(rt reflect.Type) (*schema.EntityData, error) {
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("load: expected struct type, got %s", rt)
	}
	e := &schema.EntityData{Name: rt.Name(), Table: tableName(rt)}
	if err := addColumns(e, rt, rt, nil); err != nil {
		return nil, err
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func tableName(rt reflect.Type) string {
	if t, ok := reflect.Zero(rt).Interface().(Tabler); ok {
		return t.TableName()
	}
	if t, ok := reflect.New(rt).Interface().(Tabler); ok {
		return t.TableName()
	}
	if rt.Name() == "" {
		return ""
	}
	return inflect.Pluralize(snake(rt.Name()))
}

// addColumns appends the columns of rt to e. Anonymous struct fields without
// a tag are flattened.
func addColumns(e *schema.EntityData, root, rt reflect.Type, prefix []int) error {
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		tag, tagged := sf.Tag.Lookup(TagName)
		if tag == "-" || !sf.IsExported() {
			continue
		}
		index := append(append([]int(nil), prefix...), i)
		if sf.Anonymous && !tagged && sf.Type.Kind() == reflect.Struct {
			if _, ok := field.TypeOf(sf.Type); !ok {
				if err := addColumns(e, root, sf.Type, index); err != nil {
					return err
				}
				continue
			}
		}
		c, err := newColumn(root, sf, tag, index)
		if err != nil {
			return err
		}
		e.Columns = append(e.Columns, c)
	}
	return nil
}

// tagOptions is the parsed form of a persist tag.
type tagOptions struct {
	column     string
	pk         bool
	notNull    bool
	size       int64
	generation schema.GenerationType
}

func parseTag(tag string) (tagOptions, error) {
	var opts tagOptions
	parts := strings.Split(tag, ",")
	opts.column = strings.TrimSpace(parts[0])
	for _, p := range parts[1:] {
		key, value, _ := strings.Cut(strings.TrimSpace(p), "=")
		switch key {
		case "":
		case "pk", "id":
			opts.pk = true
		case "notnull":
			opts.notNull = true
		case "size":
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil || n <= 0 {
				return opts, fmt.Errorf("load: invalid size %q", value)
			}
			opts.size = n
		case "generated":
			g, err := schema.ParseGenerationType(value)
			if err != nil {
				return opts, err
			}
			if g == schema.GenerationNone {
				g = schema.GenerationIdentity
			}
			opts.generation = g
		default:
			return opts, fmt.Errorf("load: unknown tag option %q", key)
		}
	}
	return opts, nil
}

func newColumn(root reflect.Type, sf reflect.StructField, tag string, index []int) (*schema.EntityColumn, error) {
	typ, ok := field.TypeOf(sf.Type)
	if !ok {
		ute := persist.NewUnsupportedTypeError("", sf.Type.String())
		ute.Column = sf.Name
		return nil, ute
	}
	opts, err := parseTag(tag)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", root.Name(), sf.Name, err)
	}
	if opts.column == "" {
		opts.column = snake(sf.Name)
	}
	fd := field.Of(sf.Name, typ).
		StorageKey(opts.column).
		Size(opts.size).
		Index(index...).
		Accessor(structAccessor(root, index, typ)).
		Descriptor()
	fd.NotNull = opts.notNull
	return &schema.EntityColumn{
		Name:       opts.column,
		Field:      fd,
		ID:         opts.pk,
		Generation: opts.generation,
	}, nil
}

// structAccessor returns an accessor reading the field at index from values
// of root (or pointers to it). Integer, float, bool and string kinds are
// returned as int64, float64, bool and string respectively, so named types
// such as `type Age int` render like their underlying type.
func structAccessor(root reflect.Type, index []int, typ field.Type) field.Accessor {
	return func(entity any) (any, error) {
		rv := reflect.ValueOf(entity)
		for rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return nil, fmt.Errorf("load: nil %s entity", root.Name())
			}
			rv = rv.Elem()
		}
		if rv.Type() != root {
			return nil, fmt.Errorf("load: expected %s entity, got %T", root, entity)
		}
		fv := rv.FieldByIndex(index)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				return nil, nil
			}
			fv = fv.Elem()
		}
		switch {
		case typ.Integer():
			return fv.Int(), nil
		case typ.Float():
			return fv.Float(), nil
		case typ == field.TypeBool:
			return fv.Bool(), nil
		case typ == field.TypeString:
			return fv.String(), nil
		}
		return fv.Interface(), nil
	}
}

// snake converts a Go identifier to snake_case, keeping acronyms together:
// "UserID" becomes "user_id" and "HTTPCode" becomes "http_code".
func snake(s string) string {
	var (
		b    strings.Builder
		last int
	)
	runes := []rune(s)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (nextLower && last != i-1 && unicode.IsLetter(prev)) {
				b.WriteByte('_')
				last = i
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
