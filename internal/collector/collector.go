// Package collector snapshots repository metadata: it fans out over an
// owner's repositories, fetches branches, tags, and languages for each, and
// persists the result.
package collector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/repolens/repolens/repos"
)

const (
	DefaultMaxConcurrentFetches = 4
	DefaultCollectTimeout       = 5 * time.Minute

	// One page is enough for a snapshot run; traversal is out of scope
	// for the binding and deliberately not reimplemented here.
	listPageSize = 100
)

var (
	ErrListFailed = errors.New("list repositories failed")
	ErrSaveFailed = errors.New("save snapshot failed")
)

// Snapshot is the persisted record of one repository at collection time.
type Snapshot struct {
	ID            uuid.UUID
	Owner         string
	Name          string
	DefaultBranch string
	Private       bool
	Branches      []string
	Tags          []string
	Languages     map[string]int64
	CollectedAt   time.Time
}

// RepoAPI is the slice of the repositories binding the collector uses.
type RepoAPI interface {
	List(ctx context.Context, user string, opt *repos.RepoListOptions) ([]repos.Repository, error)
	Branches(ctx context.Context, owner, repo string, opt *repos.ListOptions) ([]repos.Branch, error)
	Tags(ctx context.Context, owner, repo string, opt *repos.ListOptions) ([]repos.Tag, error)
	Languages(ctx context.Context, owner, repo string) (repos.Languages, error)
}

// SnapshotStore persists snapshots.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, snap Snapshot) error
}

// Collector orchestrates one snapshot run.
type Collector struct {
	api      RepoAPI
	store    SnapshotStore
	logger   *slog.Logger
	fetchSem *semaphore.Weighted
	timeout  time.Duration
}

// Option is a functional option for configuring a Collector.
type Option func(*settings)

type settings struct {
	timeout       time.Duration
	maxConcurrent int64
}

// WithTimeout sets the deadline for a whole run. Zero or negative values
// are ignored and the default is used.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithMaxConcurrent bounds how many repositories are fetched at once.
// Zero or negative values are ignored and the default is used.
func WithMaxConcurrent(n int64) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxConcurrent = n
		}
	}
}

// New creates a Collector with the given dependencies.
func New(api RepoAPI, store SnapshotStore, logger *slog.Logger, opts ...Option) *Collector {
	s := settings{
		timeout:       DefaultCollectTimeout,
		maxConcurrent: DefaultMaxConcurrentFetches,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		api:      api,
		store:    store,
		logger:   logger,
		fetchSem: semaphore.NewWeighted(s.maxConcurrent),
		timeout:  s.timeout,
	}
}

// Run snapshots every repository owned by owner. Repositories are fetched
// concurrently under the semaphore; a failure on one repository aborts the
// run and reports the first error.
func (c *Collector) Run(ctx context.Context, owner string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	list, err := c.api.List(ctx, owner, &repos.RepoListOptions{
		ListOptions: repos.ListOptions{PerPage: listPageSize},
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrListFailed, err)
	}
	c.logger.Info("collecting snapshots", "owner", owner, "repositories", len(list))

	errc := make(chan error, len(list))
	for _, repo := range list {
		if err := c.fetchSem.Acquire(ctx, 1); err != nil {
			return 0, err
		}
		go func(repo repos.Repository) {
			defer c.fetchSem.Release(1)
			errc <- c.snapshot(ctx, repo)
		}(repo)
	}

	var firstErr error
	collected := 0
	for range list {
		if err := <-errc; err != nil {
			cancel()
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		collected++
	}
	return collected, firstErr
}

func (c *Collector) snapshot(ctx context.Context, repo repos.Repository) error {
	owner, name := repo.Owner.Login, repo.Name

	branches, err := c.api.Branches(ctx, owner, name, &repos.ListOptions{PerPage: listPageSize})
	if err != nil {
		return fmt.Errorf("branches %s/%s: %w", owner, name, err)
	}
	tags, err := c.api.Tags(ctx, owner, name, &repos.ListOptions{PerPage: listPageSize})
	if err != nil {
		return fmt.Errorf("tags %s/%s: %w", owner, name, err)
	}
	languages, err := c.api.Languages(ctx, owner, name)
	if err != nil {
		return fmt.Errorf("languages %s/%s: %w", owner, name, err)
	}

	snap := Snapshot{
		ID:            uuid.New(),
		Owner:         owner,
		Name:          name,
		DefaultBranch: repo.DefaultBranch,
		Private:       repo.Private,
		Branches:      branchNames(branches),
		Tags:          tagNames(tags),
		Languages:     languages,
		CollectedAt:   time.Now().UTC(),
	}
	if err := c.store.SaveSnapshot(ctx, snap); err != nil {
		return fmt.Errorf("%w: %s/%s: %w", ErrSaveFailed, owner, name, err)
	}

	c.logger.Info("snapshot saved",
		"owner", owner,
		"repo", name,
		"branches", len(snap.Branches),
		"tags", len(snap.Tags),
	)
	return nil
}

func branchNames(branches []repos.Branch) []string {
	names := make([]string, 0, len(branches))
	for _, b := range branches {
		names = append(names, b.Name)
	}
	return names
}

func tagNames(tags []repos.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names
}
