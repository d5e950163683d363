package gitseed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/oyurisousa/validador-censo-sub000/pkg/config"
	"github.com/oyurisousa/validador-censo-sub000/pkg/reference"
)

// createSeedRepo creates a repository with one commit holding files.
func createSeedRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatalf("failed to get worktree: %v", err)
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
		if _, err := worktree.Add(name); err != nil {
			t.Fatalf("failed to add %s: %v", name, err)
		}
	}
	_, err = worktree.Commit("reference tables", &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatalf("failed to commit: %v", err)
	}
	return dir
}

func TestNew(t *testing.T) {
	if _, err := New(config.GitSeedConfig{}); err == nil {
		t.Error("New() without repository should error")
	}

	s, err := New(config.GitSeedConfig{Repository: "https://example.com/tables.git"})
	if err != nil {
		t.Fatal(err)
	}
	if s.cfg.Branch != config.DefaultGitSeedBranch || s.cfg.Path != config.DefaultGitSeedPath {
		t.Errorf("defaults not applied: %+v", s.cfg)
	}
	if s.auth() != nil {
		t.Error("no token should mean no auth")
	}

	s, _ = New(config.GitSeedConfig{Repository: "https://example.com/tables.git", Token: "secret"})
	if s.auth() == nil {
		t.Error("token should produce basic auth")
	}
}

func TestFetch(t *testing.T) {
	dir := createSeedRepo(t, map[string]string{
		"tables/censo.yaml": "version: \"2025\"\ntables:\n  municipality: [\"3550308\", \"3304557\"]\n",
		"broken.yaml":       "tables:\n  planets: [\"earth\"]\n",
	})

	t.Run("reads the seed at head", func(t *testing.T) {
		s, err := New(config.GitSeedConfig{Repository: dir, Branch: "master", Path: "tables/censo.yaml"})
		if err != nil {
			t.Fatal(err)
		}
		got, err := s.Fetch(context.Background())
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if len(got.Commit) != 40 || got.Author != "Test User" {
			t.Errorf("provenance = %+v", got)
		}

		store := reference.NewMemoryStore()
		counts, err := got.Seed.Apply(context.Background(), store)
		if err != nil {
			t.Fatal(err)
		}
		if counts[reference.Municipality] != 2 {
			t.Errorf("counts = %v", counts)
		}
		if ok, _ := store.IsValidCode(context.Background(), reference.Municipality, "3304557"); !ok {
			t.Error("imported code not found")
		}
	})

	tests := []struct {
		name    string
		cfg     config.GitSeedConfig
		wantErr string
	}{
		{"missing file", config.GitSeedConfig{Repository: dir, Branch: "master", Path: "nope.yaml"}, "not found"},
		{"unknown branch", config.GitSeedConfig{Repository: dir, Branch: "release", Path: "tables/censo.yaml"}, "clone"},
		{"unknown table", config.GitSeedConfig{Repository: dir, Branch: "master", Path: "broken.yaml"}, "broken.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.cfg)
			if err != nil {
				t.Fatal(err)
			}
			_, err = s.Fetch(context.Background())
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Fetch() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
