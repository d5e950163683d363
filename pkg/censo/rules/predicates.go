package rules

import (
	"strconv"
	"strings"
	"time"

	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/field"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
)

// The predicates below are shared by every record type. Each one reports
// through the checker and never stops evaluation.

// atLeastOne fails when no position in the run holds "1". The diagnostic is
// attached to the first position.
func (c *checker) atLeastOne(positions []int, rule, what string) bool {
	if c.anyOne(positions...) {
		return true
	}
	if len(positions) > 0 && c.allSet(positions...) {
		c.fail(positions[0], rule, "at least one %s must be marked", what)
	}
	return false
}

// atMostOne fails on every position after the first that holds sentinel.
func (c *checker) atMostOne(positions []int, sentinel, rule, what string) {
	first := 0
	for _, p := range positions {
		if c.get(p) != sentinel {
			continue
		}
		if first == 0 {
			first = p
			continue
		}
		c.fail(p, rule, "only one %s may be marked; %s is already marked", what, c.desc(first))
	}
}

// groupRequired is atLeastOne over a layout group, counting its None flag.
func (c *checker) groupRequired(g layout.Group) {
	c.atLeastOne(g.Span(), g.Name+"_required", strings.ReplaceAll(g.Name, "_", " ")+" option")
}

// noneExclusive fails when a group's None flag is marked together with any
// other member of the group.
func (c *checker) noneExclusive(g layout.Group) {
	if g.None == 0 || !c.one(g.None) {
		return
	}
	if c.anyOne(g.Positions()...) {
		c.fail(g.None, g.Name+"_none_exclusive", "%s cannot be marked together with other %s options",
			c.desc(g.None), strings.ReplaceAll(g.Name, "_", " "))
	}
}

// noDuplicates fails on every non-empty value that repeats an earlier slot.
func (c *checker) noDuplicates(positions []int, rule string) {
	seen := make(map[string]int, len(positions))
	for _, p := range positions {
		v := c.get(p)
		if v == "" {
			continue
		}
		if first, dup := seen[v]; dup {
			c.fail(p, rule, "value %q repeats %s", v, c.desc(first))
			continue
		}
		seen[v] = p
	}
}

// requireAll is the two-sided conditional block where every dependent field
// is required when trigger holds and must be empty when it does not.
func (c *checker) requireAll(trigger bool, positions []int, required, notAllowed, cond string) {
	for _, p := range positions {
		switch {
		case trigger && !c.set(p):
			c.fail(p, required, "%s is required when %s", c.desc(p), cond)
		case !trigger && c.set(p):
			c.fail(p, notAllowed, "%s must be empty unless %s", c.desc(p), cond)
		}
	}
}

// requireAny is the two-sided conditional block where at least one dependent
// field is required when trigger holds and all must be empty when it does
// not.
func (c *checker) requireAny(trigger bool, positions []int, required, notAllowed, cond string) {
	if trigger {
		if !c.anySet(positions...) {
			c.fail(positions[0], required, "%s is required when %s", c.desc(positions[0]), cond)
		}
		return
	}
	for _, p := range positions {
		if c.set(p) {
			c.fail(p, notAllowed, "%s must be empty unless %s", c.desc(p), cond)
		}
	}
}

// incompatible fails when both flags are "1". The diagnostic is attached to b.
func (c *checker) incompatible(a, b int, rule string) {
	if c.one(a) && c.one(b) {
		c.fail(b, rule, "%s cannot be marked together with %s", c.desc(b), c.desc(a))
	}
}

// notEqual fails when both fields are set and hold the same value.
func (c *checker) notEqual(a, b int, rule string) {
	if c.set(a) && c.set(b) && c.get(a) == c.get(b) {
		c.fail(b, rule, "%s must differ from %s", c.desc(b), c.desc(a))
	}
}

func (c *checker) anyOne(positions ...int) bool {
	for _, p := range positions {
		if c.one(p) {
			return true
		}
	}
	return false
}

func (c *checker) anySet(positions ...int) bool {
	for _, p := range positions {
		if c.set(p) {
			return true
		}
	}
	return false
}

// allSet reports whether every position has a value. Group predicates stay
// quiet while members are missing, since required_field already covers them.
func (c *checker) allSet(positions ...int) bool {
	for _, p := range positions {
		if !c.set(p) {
			return false
		}
	}
	return true
}

// number parses a count field; ok is false when the field is empty or not an
// integer, which the field validator already reports.
func (c *checker) number(p int) (int, bool) {
	v := c.get(p)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c *checker) date(p int) (time.Time, bool) {
	return field.ParseDate(c.get(p))
}
