package history

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	censoErrors "github.com/oyurisousa/validador-censo-sub000/pkg/censo/errors"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/validator"
)

var base = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(&SQLiteConfig{
		Path:    filepath.Join(t.TempDir(), "history.db"),
		WALMode: true,
	})
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func stores(t *testing.T) map[string]Store {
	return map[string]Store{
		"sqlite": newTestSQLiteStore(t),
		"memory": NewMemoryStore(),
	}
}

func sampleResult(name string, valid bool) *validator.Result {
	res := &validator.Result{
		IsValid:          valid,
		Errors:           []censoErrors.ValidationError{},
		Warnings:         []censoErrors.ValidationError{{RuleName: censoErrors.RuleDirectorMissing, Severity: censoErrors.SeverityWarning}},
		TotalRecords:     10,
		ProcessedRecords: 10,
		ProcessingTimeMs: 3,
		FileMetadata: validator.FileMetadata{
			FileName:      name,
			SchemaVersion: "2025",
			Phase:         layout.PhaseInitial,
			SHA256:        "abc123",
		},
	}
	if !valid {
		res.Errors = []censoErrors.ValidationError{
			{RuleName: censoErrors.RuleRequiredField, Severity: censoErrors.SeverityError},
			{RuleName: censoErrors.RuleRequiredField, Severity: censoErrors.SeverityError},
			{RuleName: censoErrors.RuleFileEndRecord, Severity: censoErrors.SeverityError},
		}
	}
	return res
}

func TestNewRun(t *testing.T) {
	run := NewRun(sampleResult("a.txt", false), base)

	if run.ID == "" || len(run.ID) != 36 {
		t.Errorf("ID = %q, want a UUID", run.ID)
	}
	if run.Valid || run.Errors != 3 || run.Warnings != 1 || run.Phase != "initial" {
		t.Errorf("run = %+v", run)
	}
	want := map[string]int{
		censoErrors.RuleRequiredField:   2,
		censoErrors.RuleFileEndRecord:   1,
		censoErrors.RuleDirectorMissing: 1,
	}
	if !reflect.DeepEqual(run.RuleCounts, want) {
		t.Errorf("RuleCounts = %v", run.RuleCounts)
	}
	if got := run.TopRules(2); !reflect.DeepEqual(got, []string{censoErrors.RuleRequiredField, censoErrors.RuleDirectorMissing}) {
		t.Errorf("TopRules = %v", got)
	}
	if NewRun(sampleResult("a.txt", true), base).ID == run.ID {
		t.Error("run IDs must be unique")
	}
}

func TestStore_RecordAndGet(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			run := NewRun(sampleResult("a.txt", false), base)
			if err := s.Record(ctx, run); err != nil {
				t.Fatalf("Record: %v", err)
			}

			got, err := s.Get(ctx, run.ID)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if !reflect.DeepEqual(got, run) {
				t.Errorf("Get = %+v\nwant  %+v", got, run)
			}

			if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get(missing) err = %v", err)
			}
			if err := s.Record(ctx, &Run{}); err == nil {
				t.Error("a run without ID must be rejected")
			}
		})
	}
}

func TestStore_List(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			for i, valid := range []bool{true, false, true} {
				run := NewRun(sampleResult("a.txt", valid), base.Add(time.Duration(i)*time.Hour))
				if i == 2 {
					run.FileName = "b.txt"
				}
				if err := s.Record(ctx, run); err != nil {
					t.Fatal(err)
				}
			}

			all, err := s.List(ctx, Query{})
			if err != nil {
				t.Fatal(err)
			}
			if len(all) != 3 || !all[0].ValidatedAt.After(all[1].ValidatedAt) {
				t.Fatalf("List = %+v", all)
			}

			invalid := false
			tests := []struct {
				name string
				q    Query
				want int
			}{
				{"by file", Query{FileName: "a.txt"}, 2},
				{"invalid only", Query{Valid: &invalid}, 1},
				{"since", Query{Since: base.Add(time.Hour)}, 2},
				{"until", Query{Until: base.Add(time.Hour)}, 1},
				{"limit", Query{Limit: 1}, 1},
				{"by checksum", Query{SHA256: "abc123"}, 3},
			}
			for _, tt := range tests {
				got, err := s.List(ctx, tt.q)
				if err != nil {
					t.Fatal(err)
				}
				if len(got) != tt.want {
					t.Errorf("%s: got %d runs, want %d", tt.name, len(got), tt.want)
				}
			}
		})
	}
}

type pruneCounter struct{ total int64 }

func (c *pruneCounter) RecordHistoryPruned(n int64) { c.total += n }

func TestPruner(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			now := base.AddDate(0, 0, 100)
			for _, age := range []int{1, 30, 91, 200} {
				if err := s.Record(ctx, NewRun(sampleResult("a.txt", true), now.AddDate(0, 0, -age))); err != nil {
					t.Fatal(err)
				}
			}

			obs := &pruneCounter{}
			p := NewPruner(s, RetentionConfig{RetentionDays: 90}).
				WithClock(func() time.Time { return now }).
				WithObserver(obs)
			deleted, err := p.Prune(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if deleted != 2 {
				t.Errorf("deleted = %d, want 2", deleted)
			}
			if obs.total != 2 {
				t.Errorf("observer saw %d, want 2", obs.total)
			}
			if n, _ := s.Count(ctx); n != 2 {
				t.Errorf("Count = %d, want 2", n)
			}
		})
	}

	t.Run("unlimited retention", func(t *testing.T) {
		s := NewMemoryStore()
		s.Record(ctx, NewRun(sampleResult("a.txt", true), base.AddDate(-5, 0, 0)))
		if deleted, err := NewPruner(s, RetentionConfig{}).Prune(ctx); deleted != 0 || err != nil {
			t.Errorf("Prune = %d, %v", deleted, err)
		}
	})
}

func TestScheduler(t *testing.T) {
	t.Run("invalid schedule", func(t *testing.T) {
		s := NewScheduler(NewPruner(NewMemoryStore(), RetentionConfig{RetentionDays: 1, PruneSchedule: "every day"}))
		if err := s.Start(context.Background()); err == nil {
			t.Error("expected an error for an invalid cron expression")
		}
		if s.IsRunning() {
			t.Error("scheduler must not run after a failed start")
		}
	})

	t.Run("empty schedule", func(t *testing.T) {
		s := NewScheduler(NewPruner(NewMemoryStore(), RetentionConfig{RetentionDays: 1}))
		if err := s.Start(context.Background()); err != nil {
			t.Fatal(err)
		}
		if s.IsRunning() || s.NextRun() != nil {
			t.Error("an empty schedule must not start anything")
		}
	})

	t.Run("start and stop", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		s := NewScheduler(NewPruner(NewMemoryStore(), RetentionConfig{RetentionDays: 1, PruneSchedule: "0 3 * * *"}))
		if err := s.Start(ctx); err != nil {
			t.Fatal(err)
		}
		if !s.IsRunning() || s.NextRun() == nil {
			t.Fatal("scheduler should be running with one entry")
		}
		s.Stop()
		if s.IsRunning() {
			t.Error("scheduler still running after Stop")
		}
	})
}

func TestStorageError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError("sqlite", "record", cause)
	if !errors.Is(err, cause) {
		t.Error("StorageError must unwrap to its cause")
	}
	if err.Error() != "storage error [backend=sqlite, operation=record]: disk full" {
		t.Errorf("Error() = %q", err.Error())
	}
}
