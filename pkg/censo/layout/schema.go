package layout

import (
	"fmt"
	"slices"
)

// Schema is the ordered field list of one record type.
type Schema struct {
	Type   RecordType
	Fields []FieldRule

	byName map[string]int
}

// FieldCount is the number of pipe-separated fields a line of this type carries.
func (s *Schema) FieldCount() int { return len(s.Fields) }

// Field returns the rule at a 1-based position.
func (s *Schema) Field(position int) (FieldRule, bool) {
	if position < 1 || position > len(s.Fields) {
		return FieldRule{}, false
	}
	return s.Fields[position-1], true
}

// Lookup returns the rule with the given name.
func (s *Schema) Lookup(name string) (FieldRule, bool) {
	i, ok := s.byName[name]
	if !ok {
		return FieldRule{}, false
	}
	return s.Fields[i], true
}

// Name returns the field name at a 1-based position, or "" when out of range.
func (s *Schema) Name(position int) string {
	if r, ok := s.Field(position); ok {
		return r.Name
	}
	return ""
}

var registry [numRecordTypes]*Schema

// register validates a table and installs it. Any inconsistency is a
// programming error in the tables and panics during package initialisation.
func register(rt RecordType, fields []FieldRule) *Schema {
	if registry[rt] != nil {
		panic(fmt.Sprintf("layout: schema for %s registered twice", rt))
	}
	s := &Schema{Type: rt, Fields: fields, byName: make(map[string]int, len(fields))}
	for i, r := range fields {
		if r.Position != i+1 {
			panic(fmt.Sprintf("layout: %s field %q has position %d, want %d", rt, r.Name, r.Position, i+1))
		}
		if r.Name == "" {
			panic(fmt.Sprintf("layout: %s field at position %d has no name", rt, r.Position))
		}
		if _, dup := s.byName[r.Name]; dup {
			panic(fmt.Sprintf("layout: %s field name %q is not unique", rt, r.Name))
		}
		if r.ExactLength > 0 && (r.MinLength > 0 || r.MaxLength > 0) {
			panic(fmt.Sprintf("layout: %s field %q mixes exact and bounded length", rt, r.Name))
		}
		s.byName[r.Name] = i
	}
	if len(fields) == 0 || fields[0].Name != "record_type" {
		panic(fmt.Sprintf("layout: %s schema must start with record_type", rt))
	}
	for _, r := range fields {
		if r.When != nil {
			s.resolve(r)
		}
	}
	registry[rt] = s
	return s
}

func (s *Schema) resolve(r FieldRule) {
	c := r.When
	idx, ok := s.byName[c.Field]
	if !ok {
		panic(fmt.Sprintf("layout: %s field %q depends on unknown field %q", s.Type, r.Name, c.Field))
	}
	if idx == r.Index() {
		panic(fmt.Sprintf("layout: %s field %q depends on itself", s.Type, r.Name))
	}
	c.index, c.andIndex = idx, -1
	if c.AndField != "" {
		andIdx, ok := s.byName[c.AndField]
		if !ok {
			panic(fmt.Sprintf("layout: %s field %q depends on unknown field %q", s.Type, r.Name, c.AndField))
		}
		c.andIndex = andIdx
	}
	if len(c.In) == 0 || (c.AndField != "" && len(c.AndIn) == 0) {
		panic(fmt.Sprintf("layout: %s field %q has an empty condition", s.Type, r.Name))
	}
	c.resolved = true
}

func init() {
	for rt := School; rt < numRecordTypes; rt++ {
		if registry[rt] == nil {
			panic(fmt.Sprintf("layout: no schema registered for %s", rt))
		}
	}
}

// SchemaFor returns the schema of a record type.
func SchemaFor(rt RecordType) (*Schema, bool) {
	if rt == Unrecognized || rt >= numRecordTypes {
		return nil, false
	}
	return registry[rt], true
}

// FieldsFor returns the ordered field rules of a record type. The returned
// slice is a copy; the registry itself never changes after initialisation.
func FieldsFor(rt RecordType) []FieldRule {
	s, ok := SchemaFor(rt)
	if !ok {
		return nil
	}
	return slices.Clone(s.Fields)
}

// FieldCount returns the expected field count of a record type, or 0 when unknown.
func FieldCount(rt RecordType) int {
	s, ok := SchemaFor(rt)
	if !ok {
		return 0
	}
	return s.FieldCount()
}

// FieldName returns the field name at a 1-based position of a record type.
func FieldName(rt RecordType, position int) string {
	s, ok := SchemaFor(rt)
	if !ok {
		return ""
	}
	return s.Name(position)
}
