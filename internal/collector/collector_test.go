package collector

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repolens/repolens/repos"
)

type fakeAPI struct {
	repos     []repos.Repository
	listErr   error
	branchErr error
}

func (f *fakeAPI) List(_ context.Context, _ string, _ *repos.RepoListOptions) ([]repos.Repository, error) {
	return f.repos, f.listErr
}

func (f *fakeAPI) Branches(_ context.Context, _, _ string, _ *repos.ListOptions) ([]repos.Branch, error) {
	if f.branchErr != nil {
		return nil, f.branchErr
	}
	return []repos.Branch{{Name: "main"}, {Name: "dev"}}, nil
}

func (f *fakeAPI) Tags(_ context.Context, _, _ string, _ *repos.ListOptions) ([]repos.Tag, error) {
	return []repos.Tag{{Name: "v1.0.0"}}, nil
}

func (f *fakeAPI) Languages(_ context.Context, _, _ string) (repos.Languages, error) {
	return repos.Languages{"Go": 1024}, nil
}

type memStore struct {
	mu    sync.Mutex
	saved []Snapshot
	err   error
}

func (s *memStore) SaveSnapshot(_ context.Context, snap Snapshot) error {
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, snap)
	return nil
}

func testRepos(names ...string) []repos.Repository {
	list := make([]repos.Repository, 0, len(names))
	for _, name := range names {
		list = append(list, repos.Repository{
			Name:          name,
			Owner:         repos.User{Login: "octocat"},
			DefaultBranch: "main",
		})
	}
	return list
}

func TestCollectorRun(t *testing.T) {
	t.Run("snapshots every repository", func(t *testing.T) {
		api := &fakeAPI{repos: testRepos("alpha", "beta", "gamma")}
		store := &memStore{}

		c := New(api, store, nil, WithMaxConcurrent(2))
		collected, err := c.Run(context.Background(), "octocat")

		require.NoError(t, err)
		assert.Equal(t, 3, collected)
		require.Len(t, store.saved, 3)

		snap := store.saved[0]
		assert.Equal(t, "octocat", snap.Owner)
		assert.Equal(t, []string{"main", "dev"}, snap.Branches)
		assert.Equal(t, []string{"v1.0.0"}, snap.Tags)
		assert.Equal(t, int64(1024), snap.Languages["Go"])
		assert.NotEqual(t, store.saved[0].ID, store.saved[1].ID)
	})

	t.Run("list failure aborts the run", func(t *testing.T) {
		api := &fakeAPI{listErr: errors.New("boom")}
		store := &memStore{}

		c := New(api, store, nil)
		_, err := c.Run(context.Background(), "octocat")
		require.ErrorIs(t, err, ErrListFailed)
		assert.Empty(t, store.saved)
	})

	t.Run("fetch failure surfaces as the run error", func(t *testing.T) {
		api := &fakeAPI{
			repos:     testRepos("alpha"),
			branchErr: errors.New("rate limited"),
		}
		store := &memStore{}

		c := New(api, store, nil)
		_, err := c.Run(context.Background(), "octocat")
		require.Error(t, err)
		assert.Empty(t, store.saved)
	})

	t.Run("store failure is wrapped with the save sentinel", func(t *testing.T) {
		api := &fakeAPI{repos: testRepos("alpha")}
		store := &memStore{err: errors.New("disk full")}

		c := New(api, store, nil)
		_, err := c.Run(context.Background(), "octocat")
		require.ErrorIs(t, err, ErrSaveFailed)
	})

	t.Run("empty owner listing is a successful no-op", func(t *testing.T) {
		c := New(&fakeAPI{}, &memStore{}, nil)
		collected, err := c.Run(context.Background(), "octocat")
		require.NoError(t, err)
		assert.Zero(t, collected)
	})
}
