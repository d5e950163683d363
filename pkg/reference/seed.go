package reference

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Seed is the YAML form of reference tables:
//
//	version: "2025"
//	tables:
//	  municipality: ["3550308", "3304557"]
//	  complementary_activity: ["11002", "13301"]
type Seed struct {
	Version string              `yaml:"version"`
	Tables  map[string][]string `yaml:"tables"`
}

// Importer replaces the content of a table. MemoryStore and the SQLite store
// implement it.
type Importer interface {
	Import(ctx context.Context, table Table, codes []string) error
}

// LoadSeedFile reads and parses a seed file.
func LoadSeedFile(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed parses seed YAML. Unknown table names are rejected; codes are
// trimmed and empty entries dropped.
func ParseSeed(data []byte) (*Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse seed YAML: %w", err)
	}
	if len(s.Tables) == 0 {
		return nil, fmt.Errorf("seed defines no tables")
	}
	for name, codes := range s.Tables {
		if _, err := ParseTable(name); err != nil {
			return nil, err
		}
		clean := codes[:0]
		for _, c := range codes {
			if c = strings.TrimSpace(c); c != "" {
				clean = append(clean, c)
			}
		}
		s.Tables[name] = clean
	}
	return &s, nil
}

// Apply imports every table of the seed, in name order.
func (s *Seed) Apply(ctx context.Context, dst Importer) (map[Table]int, error) {
	names := make([]string, 0, len(s.Tables))
	for name := range s.Tables {
		names = append(names, name)
	}
	sort.Strings(names)

	counts := make(map[Table]int, len(names))
	for _, name := range names {
		table, err := ParseTable(name)
		if err != nil {
			return counts, err
		}
		if err := dst.Import(ctx, table, s.Tables[name]); err != nil {
			return counts, fmt.Errorf("import %s: %w", table, err)
		}
		counts[table] = len(s.Tables[name])
	}
	return counts, nil
}

// Import implements Importer.
func (s *MemoryStore) Import(_ context.Context, table Table, codes []string) error {
	s.Replace(table, codes)
	return nil
}
