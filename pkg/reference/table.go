package reference

import (
	"context"
	"errors"
	"fmt"
)

// Table names one reference table.
type Table uint8

const (
	Municipality Table = iota + 1
	KnowledgeArea
	Step
	ComplementaryActivity
)

var tableNames = map[Table]string{
	Municipality:          "municipality",
	KnowledgeArea:         "knowledge_area",
	Step:                  "step",
	ComplementaryActivity: "complementary_activity",
}

// String implements fmt.Stringer.
func (t Table) String() string {
	if n, ok := tableNames[t]; ok {
		return n
	}
	return fmt.Sprintf("table(%d)", uint8(t))
}

// Tables returns every table in declaration order.
func Tables() []Table {
	return []Table{Municipality, KnowledgeArea, Step, ComplementaryActivity}
}

// ParseTable maps a table name ("municipality", "step", ...) to its Table.
func ParseTable(name string) (Table, error) {
	for t, n := range tableNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown reference table %q", name)
}

// ErrTableNotLoaded is returned when a store has no data for a table. The
// engine skips the check rather than reporting every code as invalid.
var ErrTableNotLoaded = errors.New("reference table not loaded")

// Lookup answers whether a code exists in a reference table. Implementations
// may be slow (database, network) and must be safe for concurrent use.
type Lookup interface {
	IsValidCode(ctx context.Context, table Table, code string) (bool, error)
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc func(ctx context.Context, table Table, code string) (bool, error)

// IsValidCode calls f.
func (f LookupFunc) IsValidCode(ctx context.Context, table Table, code string) (bool, error) {
	return f(ctx, table, code)
}
