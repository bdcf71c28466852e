package load

import (
	"reflect"
	"sync"

	"github.com/syssam/persist/schema"
)

// Registry caches entity metadata per Go type. It is safe for concurrent use.
type Registry struct {
	entities sync.Map // reflect.Type => *schema.EntityData
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Entity returns the metadata of the type of v, loading it on first use.
func (r *Registry) Entity(v any) (*schema.EntityData, error) {
	if v == nil {
		return Entity(v)
	}
	return r.EntityOf(reflect.TypeOf(v))
}

// EntityOf returns the metadata of the given struct type, loading it on first
// use. Pointer types share the entry of their element type.
func (r *Registry) EntityOf(rt reflect.Type) (*schema.EntityData, error) {
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if e, ok := r.entities.Load(rt); ok {
		return e.(*schema.EntityData), nil
	}
	e, err := EntityOf(rt)
	if err != nil {
		return nil, err
	}
	actual, _ := r.entities.LoadOrStore(rt, e)
	return actual.(*schema.EntityData), nil
}

// Len returns the number of cached entities.
func (r *Registry) Len() int {
	var n int
	r.entities.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}
