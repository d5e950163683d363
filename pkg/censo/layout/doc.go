// Package layout is the field schema registry of the school census file.
//
// Every record type has a static table of FieldRule values, one per
// pipe-separated position. Positions are declared as constants so the typed
// record structs, the business rules and the tables all refer to the same
// numbers; the tables are checked when the package is initialised and a
// mismatch (gap, duplicate name, dangling conditional) panics at start-up.
//
// # Usage
//
//	rules := layout.FieldsFor(layout.ManagerBond)
//	for _, r := range rules {
//	    fmt.Println(r.Position, r.Name, r.Description)
//	}
//
// Conditional requirements name sibling fields and are resolved to split
// indices once, so evaluating them never does a name lookup:
//
//	r, _ := schema.Field(layout.SchoolYearStart)
//	required := r.Required || r.When.Holds(fields)
package layout
