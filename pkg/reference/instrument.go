package reference

import (
	"context"
	"errors"
	"time"
)

// Lookup outcomes reported to an Observer.
const (
	OutcomeValid     = "valid"
	OutcomeInvalid   = "invalid"
	OutcomeNotLoaded = "not_loaded"
	OutcomeError     = "error"
)

// Observer receives one call per lookup. The metrics collector implements it.
type Observer interface {
	RecordReferenceLookup(table, outcome string, duration time.Duration)
}

type instrumented struct {
	next Lookup
	obs  Observer
}

// Instrument reports every lookup made through next to obs. A nil observer
// returns next unchanged.
func Instrument(next Lookup, obs Observer) Lookup {
	if obs == nil {
		return next
	}
	return &instrumented{next: next, obs: obs}
}

func (l *instrumented) IsValidCode(ctx context.Context, table Table, code string) (bool, error) {
	start := time.Now()
	valid, err := l.next.IsValidCode(ctx, table, code)

	outcome := OutcomeInvalid
	switch {
	case errors.Is(err, ErrTableNotLoaded):
		outcome = OutcomeNotLoaded
	case err != nil:
		outcome = OutcomeError
	case valid:
		outcome = OutcomeValid
	}
	l.obs.RecordReferenceLookup(table.String(), outcome, time.Since(start))
	return valid, err
}
