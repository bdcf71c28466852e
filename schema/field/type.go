package field

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Type is a host field type, used as the key of dialect type tables.
type Type uint8

// List of host types.
const (
	TypeInvalid Type = iota
	TypeBool
	TypeInt
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeFloat32
	TypeFloat64
	TypeString
	TypeTime
	TypeUUID
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeBool:    "bool",
	TypeInt:     "int",
	TypeInt8:    "int8",
	TypeInt16:   "int16",
	TypeInt32:   "int32",
	TypeInt64:   "int64",
	TypeFloat32: "float32",
	TypeFloat64: "float64",
	TypeString:  "string",
	TypeTime:    "time.Time",
	TypeUUID:    "uuid.UUID",
}

// String returns the Go name of the type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// Valid reports if the type is one of the known host types.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Integer reports if the type is an integer type.
func (t Type) Integer() bool {
	return t >= TypeInt && t <= TypeInt64
}

// Float reports if the type is a floating-point type.
func (t Type) Float() bool {
	return t == TypeFloat32 || t == TypeFloat64
}

// Numeric reports if the type is an integer or floating-point type.
func (t Type) Numeric() bool {
	return t.Integer() || t.Float()
}

// Textual reports if literals of this type are rendered quoted.
func (t Type) Textual() bool {
	return t == TypeString || t == TypeTime || t == TypeUUID
}

// Types returns all valid host types in enumeration order.
func Types() []Type {
	ts := make([]Type, 0, endTypes-1)
	for t := TypeInvalid + 1; t < endTypes; t++ {
		ts = append(ts, t)
	}
	return ts
}

var (
	timeType = reflect.TypeOf(time.Time{})
	uuidType = reflect.TypeOf(uuid.UUID{})
)

// TypeOf returns the host type of the given Go type. Pointer types resolve to
// their element type. The second result is false for unsupported Go types.
func TypeOf(rt reflect.Type) (Type, bool) {
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	switch rt {
	case timeType:
		return TypeTime, true
	case uuidType:
		return TypeUUID, true
	}
	switch rt.Kind() {
	case reflect.Bool:
		return TypeBool, true
	case reflect.Int:
		return TypeInt, true
	case reflect.Int8:
		return TypeInt8, true
	case reflect.Int16:
		return TypeInt16, true
	case reflect.Int32:
		return TypeInt32, true
	case reflect.Int64:
		return TypeInt64, true
	case reflect.Float32:
		return TypeFloat32, true
	case reflect.Float64:
		return TypeFloat64, true
	case reflect.String:
		return TypeString, true
	}
	return TypeInvalid, false
}

// ParseType returns the host type with the given name. Besides the Go names
// returned by String, "time" and "uuid" are accepted.
func ParseType(name string) (Type, bool) {
	switch name {
	case "time":
		return TypeTime, true
	case "uuid":
		return TypeUUID, true
	}
	for t := TypeInvalid + 1; t < endTypes; t++ {
		if typeNames[t] == name {
			return t, true
		}
	}
	return TypeInvalid, false
}
