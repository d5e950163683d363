package history

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/validator"
)

// Run is the stored summary of one validation. Diagnostics are not kept,
// only how many times each rule fired.
type Run struct {
	ID               string         `json:"id"`
	FileName         string         `json:"fileName"`
	SchemaVersion    string         `json:"schemaVersion"`
	Phase            string         `json:"phase,omitempty"`
	SHA256           string         `json:"sha256,omitempty"`
	Valid            bool           `json:"valid"`
	Errors           int            `json:"errors"`
	Warnings         int            `json:"warnings"`
	TotalRecords     int            `json:"totalRecords"`
	ProcessedRecords int            `json:"processedRecords"`
	DurationMs       int64          `json:"durationMs"`
	RuleCounts       map[string]int `json:"ruleCounts,omitempty"`
	ValidatedAt      time.Time      `json:"validatedAt"`
}

// NewRun summarises a result under a fresh run ID.
func NewRun(res *validator.Result, at time.Time) *Run {
	m := res.FileMetadata
	run := &Run{
		ID:               uuid.New().String(),
		FileName:         m.FileName,
		SchemaVersion:    m.SchemaVersion,
		Phase:            string(m.Phase),
		SHA256:           m.SHA256,
		Valid:            res.IsValid,
		Errors:           len(res.Errors),
		Warnings:         len(res.Warnings),
		TotalRecords:     res.TotalRecords,
		ProcessedRecords: res.ProcessedRecords,
		DurationMs:       res.ProcessingTimeMs,
		RuleCounts:       make(map[string]int),
		ValidatedAt:      at.UTC(),
	}
	for _, d := range res.Errors {
		run.RuleCounts[d.RuleName]++
	}
	for _, d := range res.Warnings {
		run.RuleCounts[d.RuleName]++
	}
	return run
}

// TopRules returns up to n rule names by descending count, ties by name.
func (r *Run) TopRules(n int) []string {
	names := make([]string, 0, len(r.RuleCounts))
	for name := range r.RuleCounts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ci, cj := r.RuleCounts[names[i]], r.RuleCounts[names[j]]
		if ci != cj {
			return ci > cj
		}
		return names[i] < names[j]
	})
	if n > 0 && len(names) > n {
		names = names[:n]
	}
	return names
}

// Query filters runs. Zero values do not filter.
type Query struct {
	FileName string
	SHA256   string
	Since    time.Time
	Until    time.Time
	// Valid, when set, keeps only valid (true) or invalid (false) runs.
	Valid *bool
	// Limit defaults to 100.
	Limit int
}

// Store persists validation runs.
type Store interface {
	Record(ctx context.Context, run *Run) error
	Get(ctx context.Context, id string) (*Run, error)
	// List returns matching runs, newest first.
	List(ctx context.Context, q Query) ([]*Run, error)
	// DeleteBefore removes runs validated before t.
	DeleteBefore(ctx context.Context, t time.Time) (int64, error)
	Count(ctx context.Context) (int64, error)
	// Ping reports whether the store is usable.
	Ping(ctx context.Context) error
	Close() error
}
