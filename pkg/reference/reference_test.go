package reference

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewDefaultMemoryStore()

	tests := []struct {
		name    string
		table   Table
		code    string
		want    bool
		wantErr error
	}{
		{"known stage", Step, "14", true, nil},
		{"unknown stage", Step, "99", false, nil},
		{"knowledge area", KnowledgeArea, "1", true, nil},
		{"municipality not loaded", Municipality, "3550308", false, ErrTableNotLoaded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.IsValidCode(ctx, tt.table, tt.code)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("IsValidCode(%s, %s) = %v, want %v", tt.table, tt.code, got, tt.want)
			}
		})
	}

	s.Replace(Step, []string{"1"})
	if got := s.Codes(Step); !reflect.DeepEqual(got, []string{"1"}) {
		t.Errorf("Codes after Replace = %v", got)
	}
	if _, ok := s.Count()[Municipality]; ok {
		t.Error("Count should not list tables never loaded")
	}
}

func TestParseTable(t *testing.T) {
	for _, table := range Tables() {
		got, err := ParseTable(table.String())
		if err != nil || got != table {
			t.Errorf("ParseTable(%q) = %v, %v", table.String(), got, err)
		}
	}
	if _, err := ParseTable("country"); err == nil {
		t.Error("expected an error for an unknown table")
	}
	if got := Table(42).String(); got != "table(42)" {
		t.Errorf("String = %q", got)
	}
}

func TestSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.yaml")
	data := `version: "2025"
tables:
  municipality: ["3550308", " 3304557 ", ""]
  step: ["14"]
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	seed, err := LoadSeedFile(path)
	if err != nil {
		t.Fatalf("LoadSeedFile: %v", err)
	}
	if got := seed.Tables["municipality"]; !reflect.DeepEqual(got, []string{"3550308", "3304557"}) {
		t.Errorf("municipality = %v", got)
	}

	store := NewMemoryStore()
	counts, err := seed.Apply(context.Background(), store)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if counts[Municipality] != 2 || counts[Step] != 1 {
		t.Errorf("counts = %v", counts)
	}
	if ok, _ := store.IsValidCode(context.Background(), Municipality, "3304557"); !ok {
		t.Error("imported code should be valid")
	}
}

func TestParseSeed_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "tables: [unclosed"},
		{"no tables", "version: \"2025\"\n"},
		{"unknown table", "tables:\n  country: [\"076\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSeed([]byte(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

type countingLookup struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (c *countingLookup) IsValidCode(_ context.Context, _ Table, code string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return code == "ok", c.err
}

func TestCachedLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("hits after first miss", func(t *testing.T) {
		next := &countingLookup{}
		c := NewCachedLookup(next, 0, 0)
		defer c.Close()

		for i := 0; i < 3; i++ {
			if ok, err := c.IsValidCode(ctx, Step, "ok"); !ok || err != nil {
				t.Fatalf("IsValidCode = %v, %v", ok, err)
			}
		}
		if next.calls != 1 {
			t.Errorf("next called %d times, want 1", next.calls)
		}
		if hits, misses := c.Stats(); hits != 2 || misses != 1 {
			t.Errorf("Stats = %d hits, %d misses", hits, misses)
		}
	})

	t.Run("errors are not cached", func(t *testing.T) {
		next := &countingLookup{err: ErrTableNotLoaded}
		c := NewCachedLookup(next, 0, 0)
		defer c.Close()

		for i := 0; i < 2; i++ {
			if _, err := c.IsValidCode(ctx, Municipality, "x"); !errors.Is(err, ErrTableNotLoaded) {
				t.Fatalf("err = %v", err)
			}
		}
		if next.calls != 2 || c.Size() != 0 {
			t.Errorf("calls = %d size = %d", next.calls, c.Size())
		}
	})

	t.Run("bounded size", func(t *testing.T) {
		c := NewCachedLookup(&countingLookup{}, 0, 2)
		defer c.Close()

		for _, code := range []string{"a", "b", "c", "d"} {
			c.IsValidCode(ctx, Step, code)
		}
		if c.Size() != 2 {
			t.Errorf("Size = %d, want 2", c.Size())
		}
		c.Purge()
		if c.Size() != 0 {
			t.Errorf("Size after Purge = %d", c.Size())
		}
	})

	t.Run("expired entries are refetched", func(t *testing.T) {
		next := &countingLookup{}
		c := NewCachedLookup(next, time.Millisecond, 0)
		defer c.Close()

		c.IsValidCode(ctx, Step, "ok")
		time.Sleep(5 * time.Millisecond)
		c.IsValidCode(ctx, Step, "ok")
		if next.calls != 2 {
			t.Errorf("next called %d times, want 2", next.calls)
		}
	})
}

type outcomes map[string]int

func (o outcomes) RecordReferenceLookup(table, outcome string, _ time.Duration) {
	o[table+"/"+outcome]++
}

func TestInstrument(t *testing.T) {
	ctx := context.Background()
	if l := Instrument(NewMemoryStore(), nil); l == nil {
		t.Fatal("Instrument with a nil observer must return the lookup")
	}

	obs := outcomes{}
	l := Instrument(NewDefaultMemoryStore(), obs)
	l.IsValidCode(ctx, Step, "14")
	l.IsValidCode(ctx, Step, "99")
	l.IsValidCode(ctx, Municipality, "3550308")
	l.IsValidCode(ctx, Step, "14")

	want := outcomes{"step/valid": 2, "step/invalid": 1, "municipality/not_loaded": 1}
	if !reflect.DeepEqual(obs, want) {
		t.Errorf("outcomes = %v, want %v", obs, want)
	}

	failing := Instrument(LookupFunc(func(context.Context, Table, string) (bool, error) {
		return false, errors.New("connection reset")
	}), obs)
	failing.IsValidCode(ctx, KnowledgeArea, "1")
	if obs["knowledge_area/error"] != 1 {
		t.Errorf("outcomes = %v", obs)
	}
}
