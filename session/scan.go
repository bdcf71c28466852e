package session

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/syssam/persist"
	"github.com/syssam/persist/dialect"
	"github.com/syssam/persist/dialect/sql"
	"github.com/syssam/persist/schema"
	"github.com/syssam/persist/schema/field"
)

// timeLayouts are tried in order when a driver returns times as text.
var timeLayouts = []string{
	time.RFC3339Nano,
	dialect.TimeLayout,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999",
	time.DateOnly,
}

// scanRow scans the current row into the struct value dst. The row columns
// are expected in the declaration order of e.
func scanRow(rows *sql.Rows, e *schema.EntityData, dst reflect.Value) error {
	values := make([]any, len(e.Columns))
	dest := make([]any, len(e.Columns))
	for i := range values {
		dest[i] = &values[i]
	}
	if err := rows.Scan(dest...); err != nil {
		return err
	}
	for i, c := range e.Columns {
		if len(c.Field.Index) == 0 {
			return persist.NewMalformedMetadataError(e.Table, c.Name, "column has no struct field index")
		}
		if err := assign(dst.FieldByIndex(c.Field.Index), c, values[i]); err != nil {
			return err
		}
	}
	return nil
}

// assign stores the driver value src into the struct field fv. Nil sets the
// zero value, which is a nil pointer for pointer fields.
func assign(fv reflect.Value, c *schema.EntityColumn, src any) error {
	if src == nil {
		fv.SetZero()
		return nil
	}
	if fv.Kind() == reflect.Pointer {
		v := reflect.New(fv.Type().Elem())
		if err := assign(v.Elem(), c, src); err != nil {
			return err
		}
		fv.Set(v)
		return nil
	}
	typ := c.Type()
	invalid := func() error {
		return &persist.InvalidValueError{Column: c.Name, Type: typ.String(), Value: src}
	}
	switch {
	case typ.Integer():
		n, err := toInt(src)
		if err != nil || fv.OverflowInt(n) {
			return invalid()
		}
		fv.SetInt(n)
	case typ.Float():
		f, err := toFloat(src)
		if err != nil || fv.OverflowFloat(f) {
			return invalid()
		}
		fv.SetFloat(f)
	case typ == field.TypeBool:
		b, err := toBool(src)
		if err != nil {
			return invalid()
		}
		fv.SetBool(b)
	case typ == field.TypeString:
		switch s := src.(type) {
		case string:
			fv.SetString(s)
		case []byte:
			fv.SetString(string(s))
		default:
			return invalid()
		}
	case typ == field.TypeTime:
		t, err := toTime(src)
		if err != nil {
			return invalid()
		}
		fv.Set(reflect.ValueOf(t))
	case typ == field.TypeUUID:
		u, err := toUUID(src)
		if err != nil {
			return invalid()
		}
		fv.Set(reflect.ValueOf(u))
	default:
		return persist.NewUnsupportedTypeError("", typ.String())
	}
	return nil
}

func toInt(src any) (int64, error) {
	switch v := src.(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("fractional value %v", v)
		}
		return int64(v), nil
	case []byte:
		return strconv.ParseInt(string(v), 10, 64)
	case string:
		return strconv.ParseInt(v, 10, 64)
	}
	return 0, fmt.Errorf("unexpected type %T", src)
}

func toFloat(src any) (float64, error) {
	switch v := src.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case []byte:
		return strconv.ParseFloat(string(v), 64)
	case string:
		return strconv.ParseFloat(v, 64)
	}
	return 0, fmt.Errorf("unexpected type %T", src)
}

func toBool(src any) (bool, error) {
	switch v := src.(type) {
	case bool:
		return v, nil
	case int64:
		return v != 0, nil
	case []byte:
		return strconv.ParseBool(string(v))
	case string:
		return strconv.ParseBool(v)
	}
	return false, fmt.Errorf("unexpected type %T", src)
}

func toTime(src any) (time.Time, error) {
	var s string
	switch v := src.(type) {
	case time.Time:
		return v, nil
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return time.Time{}, fmt.Errorf("unexpected type %T", src)
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}

func toUUID(src any) (uuid.UUID, error) {
	switch v := src.(type) {
	case uuid.UUID:
		return v, nil
	case [16]byte:
		return uuid.UUID(v), nil
	case []byte:
		if len(v) == 16 {
			return uuid.FromBytes(v)
		}
		return uuid.ParseBytes(v)
	case string:
		return uuid.Parse(v)
	}
	return uuid.Nil, fmt.Errorf("unexpected type %T", src)
}
