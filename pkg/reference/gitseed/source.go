// Package gitseed reads reference-table seed files from a Git repository,
// so the tables can be versioned and reviewed like any other change.
package gitseed

import (
	"context"
	"errors"
	"fmt"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/storage/memory"

	"github.com/oyurisousa/validador-censo-sub000/pkg/config"
	"github.com/oyurisousa/validador-censo-sub000/pkg/reference"
)

// Fetched is a seed read from a repository together with where it came from.
type Fetched struct {
	Seed   *reference.Seed
	Commit string
	Author string
	When   time.Time
}

// Source fetches one file from one branch of a repository.
type Source struct {
	cfg config.GitSeedConfig
}

// New creates a source. The repository URL is required.
func New(cfg config.GitSeedConfig) (*Source, error) {
	if cfg.Repository == "" {
		return nil, fmt.Errorf("repository URL cannot be empty")
	}
	if cfg.Branch == "" {
		cfg.Branch = config.DefaultGitSeedBranch
	}
	if cfg.Path == "" {
		cfg.Path = config.DefaultGitSeedPath
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = config.DefaultGitSeedTimeout
	}
	return &Source{cfg: cfg}, nil
}

// Fetch clones the branch into memory and parses the seed file at its head.
// Nothing is written to disk.
func (s *Source) Fetch(ctx context.Context) (*Fetched, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	repo, err := gogit.CloneContext(ctx, memory.NewStorage(), nil, &gogit.CloneOptions{
		URL:           s.cfg.Repository,
		ReferenceName: plumbing.NewBranchReferenceName(s.cfg.Branch),
		SingleBranch:  true,
		Auth:          s.auth(),
	})
	if err != nil {
		return nil, fmt.Errorf("clone %s@%s: %w", s.cfg.Repository, s.cfg.Branch, err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("read commit %s: %w", head.Hash(), err)
	}

	file, err := commit.File(s.cfg.Path)
	if errors.Is(err, object.ErrFileNotFound) {
		return nil, fmt.Errorf("%s not found at %s", s.cfg.Path, head.Hash())
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.cfg.Path, err)
	}
	contents, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.cfg.Path, err)
	}

	seed, err := reference.ParseSeed([]byte(contents))
	if err != nil {
		return nil, fmt.Errorf("%s at %s: %w", s.cfg.Path, head.Hash(), err)
	}
	return &Fetched{
		Seed:   seed,
		Commit: head.Hash().String(),
		Author: commit.Author.Name,
		When:   commit.Author.When,
	}, nil
}

// auth returns HTTP basic auth carrying the token; the user name is
// ignored by token-based hosts.
func (s *Source) auth() transport.AuthMethod {
	if s.cfg.Token == "" {
		return nil
	}
	return &http.BasicAuth{Username: "git", Password: s.cfg.Token}
}
