package crossref

import (
	"fmt"
	"strings"
)

// BondKind names one of the running key sets of pass 2.
type BondKind int

const (
	ManagerBonds BondKind = iota
	ProfessionalBonds
	Enrollments
	RegularEnrollments
	Situations
)

func (k BondKind) String() string {
	switch k {
	case ManagerBonds:
		return "manager_bonds"
	case ProfessionalBonds:
		return "professional_bonds"
	case Enrollments:
		return "enrollments"
	case RegularEnrollments:
		return "regular_enrollments"
	case Situations:
		return "situations"
	}
	return fmt.Sprintf("bond_kind(%d)", int(k))
}

// BondAccumulator records which bonds pass 2 has already seen. It is the
// only state pass 2 mutates and it has a single writer: lines must be
// observed in file order so "duplicate of line N" always names the same N.
type BondAccumulator struct {
	seen map[BondKind]map[string]int
}

// NewBondAccumulator creates an empty accumulator.
func NewBondAccumulator() *BondAccumulator {
	return &BondAccumulator{seen: make(map[BondKind]map[string]int)}
}

// Seed marks keys as already bonded before the file is read, for example
// bonds accepted in an earlier submission. Seeded keys report line 0.
func (a *BondAccumulator) Seed(kind BondKind, keys ...string) {
	set := a.set(kind)
	for _, k := range keys {
		if _, ok := set[k]; !ok {
			set[k] = 0
		}
	}
}

// Observe records key at line. When the key was already present it returns
// the line that first declared it and true, leaving the accumulator as is.
func (a *BondAccumulator) Observe(kind BondKind, key string, line int) (int, bool) {
	set := a.set(kind)
	if first, ok := set[key]; ok {
		return first, true
	}
	set[key] = line
	return line, false
}

// Len returns the number of keys recorded for kind.
func (a *BondAccumulator) Len(kind BondKind) int { return len(a.seen[kind]) }

func (a *BondAccumulator) set(kind BondKind) map[string]int {
	s, ok := a.seen[kind]
	if !ok {
		s = make(map[string]int)
		a.seen[kind] = s
	}
	return s
}

func bondKey(parts ...string) string { return strings.Join(parts, "|") }
