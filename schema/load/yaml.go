package load

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/syssam/persist/schema"
	"github.com/syssam/persist/schema/field"
)

type (
	// File is the YAML form of a set of entity definitions.
	//
	//	entities:
	//	  - name: User
	//	    table: users
	//	    columns:
	//	      - {name: id, type: int64, id: true, generated: identity}
	//	      - {name: name, type: string, size: 20, not_null: true}
	File struct {
		Entities []Definition `yaml:"entities"`
	}
	// Definition is the YAML form of one entity.
	Definition struct {
		Name    string             `yaml:"name"`
		Table   string             `yaml:"table"`
		Columns []ColumnDefinition `yaml:"columns"`
	}
	// ColumnDefinition is the YAML form of one column.
	ColumnDefinition struct {
		Name      string `yaml:"name"`
		Type      string `yaml:"type"`
		Size      int64  `yaml:"size,omitempty"`
		NotNull   bool   `yaml:"not_null,omitempty"`
		ID        bool   `yaml:"id,omitempty"`
		Generated string `yaml:"generated,omitempty"`
	}
)

// YAML decodes entity definitions from r. Entities loaded this way read
// their values from map[string]any instances keyed by column name.
func YAML(r io.Reader) ([]*schema.EntityData, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("load: decoding yaml: %w", err)
	}
	entities := make([]*schema.EntityData, 0, len(f.Entities))
	for _, def := range f.Entities {
		e, err := def.Entity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, nil
}

// YAMLFile decodes entity definitions from the named file.
func YAMLFile(path string) ([]*schema.EntityData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	defer f.Close()
	return YAML(f)
}

// Entity returns the validated metadata of the definition.
func (d Definition) Entity() (*schema.EntityData, error) {
	e := &schema.EntityData{Name: d.Name, Table: d.Table}
	if e.Name == "" {
		e.Name = d.Table
	}
	for _, cd := range d.Columns {
		typ, ok := field.ParseType(cd.Type)
		if !ok {
			return nil, fmt.Errorf("load: entity %q column %q: unknown type %q", e.Label(), cd.Name, cd.Type)
		}
		gen, err := schema.ParseGenerationType(cd.Generated)
		if err != nil {
			return nil, fmt.Errorf("load: entity %q column %q: %w", e.Label(), cd.Name, err)
		}
		fd := field.Of(cd.Name, typ).Size(cd.Size).Accessor(mapAccessor(cd.Name)).Descriptor()
		fd.NotNull = cd.NotNull
		e.Columns = append(e.Columns, &schema.EntityColumn{
			Name:       cd.Name,
			Field:      fd,
			ID:         cd.ID,
			Generation: gen,
		})
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func mapAccessor(name string) field.Accessor {
	return func(entity any) (any, error) {
		switch m := entity.(type) {
		case map[string]any:
			return m[name], nil
		case nil:
			return nil, fmt.Errorf("load: nil entity")
		default:
			return nil, fmt.Errorf("load: expected map[string]any entity, got %T", entity)
		}
	}
}
