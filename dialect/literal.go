package dialect

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/syssam/persist"
	"github.com/syssam/persist/schema"
	"github.com/syssam/persist/schema/field"
)

// TimeLayout is the layout of time literals.
const TimeLayout = "2006-01-02 15:04:05.999999999"

// Escaper escapes the contents of a quoted string literal.
type Escaper func(string) string

// EscapeQuotes doubles single quotes, as standard SQL requires.
func EscapeQuotes(s string) string {
	if !strings.Contains(s, "'") {
		return s
	}
	return strings.ReplaceAll(s, "'", "''")
}

// EscapeQuotesAndBackslashes escapes both single quotes (by doubling) and
// backslashes, for databases that treat backslash as an escape character.
func EscapeQuotesAndBackslashes(s string) string {
	if !strings.ContainsAny(s, `'\`) {
		return s
	}
	// Backslashes first, then single quotes.
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", "''")
	return s
}

// FormatLiteral renders v as a literal of the column's host type. Textual
// types are single-quoted, numeric and bool types are not, and nil renders
// as null.
func FormatLiteral(c *schema.EntityColumn, v any, esc Escaper) (string, error) {
	if v == nil {
		return "null", nil
	}
	if esc == nil {
		esc = EscapeQuotes
	}
	t := c.Type()
	invalid := func() (string, error) {
		return "", persist.NewInvalidValueError(c.Name, t.String(), v)
	}
	switch {
	case t.Integer():
		if s, ok := formatInt(v); ok {
			return s, nil
		}
		return invalid()
	case t.Float():
		switch x := v.(type) {
		case float32:
			if f := float64(x); math.IsNaN(f) || math.IsInf(f, 0) {
				return invalid()
			}
			return strconv.FormatFloat(float64(x), 'g', -1, 32), nil
		case float64:
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return invalid()
			}
			return strconv.FormatFloat(x, 'g', -1, 64), nil
		}
		if s, ok := formatInt(v); ok {
			return s, nil
		}
		return invalid()
	case t == field.TypeBool:
		if b, ok := v.(bool); ok {
			return strconv.FormatBool(b), nil
		}
		return invalid()
	case t == field.TypeString:
		if s, ok := v.(string); ok {
			return quote(esc(s)), nil
		}
		return invalid()
	case t == field.TypeTime:
		if tm, ok := v.(time.Time); ok {
			return quote(tm.Format(TimeLayout)), nil
		}
		return invalid()
	case t == field.TypeUUID:
		switch x := v.(type) {
		case uuid.UUID:
			return quote(x.String()), nil
		case string:
			u, err := uuid.Parse(x)
			if err != nil {
				return invalid()
			}
			return quote(u.String()), nil
		}
		return invalid()
	}
	return "", persist.NewUnsupportedTypeError("", t.String())
}

func formatInt(v any) (string, bool) {
	switch x := v.(type) {
	case int:
		return strconv.FormatInt(int64(x), 10), true
	case int8:
		return strconv.FormatInt(int64(x), 10), true
	case int16:
		return strconv.FormatInt(int64(x), 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint:
		return strconv.FormatUint(uint64(x), 10), true
	case uint8:
		return strconv.FormatUint(uint64(x), 10), true
	case uint16:
		return strconv.FormatUint(uint64(x), 10), true
	case uint32:
		return strconv.FormatUint(uint64(x), 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	}
	return "", false
}

func quote(s string) string {
	return "'" + s + "'"
}
