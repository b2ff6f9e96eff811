// Package repos binds the repositories resource group. Every function here
// is a pure call site: it fixes a method and a path template, binds the
// path parameters, lowers its typed options into the shared values mapping,
// and hands the descriptor to the gitapi executor. All dispatch, decoding,
// and error normalization lives there, not here.
package repos

import (
	"context"
	"net/http"
	"strconv"

	"github.com/repolens/repolens/gitapi"
)

// Client exposes the repositories endpoints on top of a gitapi.Client.
type Client struct {
	api *gitapi.Client
}

// NewClient wraps api. The same underlying client may back any number of
// resource-group bindings concurrently.
func NewClient(api *gitapi.Client) *Client {
	return &Client{api: api}
}

// List lists a user's repositories.
func (c *Client) List(ctx context.Context, user string, opt *RepoListOptions) ([]Repository, error) {
	desc := gitapi.MustBuild(http.MethodGet, "users/{user}/repos",
		gitapi.Params{"user": user}, opt.values())
	var out []Repository
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAuthenticated lists the authenticated user's repositories.
func (c *Client) ListAuthenticated(ctx context.Context, opt *RepoListOptions) ([]Repository, error) {
	desc := gitapi.MustBuild(http.MethodGet, "user/repos", nil, opt.values())
	var out []Repository
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListOrg lists an organization's repositories.
func (c *Client) ListOrg(ctx context.Context, org string, opt *RepoListOptions) ([]Repository, error) {
	desc := gitapi.MustBuild(http.MethodGet, "orgs/{org}/repos",
		gitapi.Params{"org": org}, opt.values())
	var out []Repository
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single repository.
func (c *Client) Get(ctx context.Context, owner, repo string) (*Repository, error) {
	desc := gitapi.MustBuild(http.MethodGet, "repos/{owner}/{repo}",
		gitapi.Params{"owner": owner, "repo": repo}, nil)
	var out Repository
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create creates a repository for the authenticated user.
func (c *Client) Create(ctx context.Context, name string, opt *CreateOptions) (*Repository, error) {
	desc := gitapi.MustBuild(http.MethodPost, "user/repos", nil, opt.values(name))
	var out Repository
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateOrg creates a repository in an organization.
func (c *Client) CreateOrg(ctx context.Context, org, name string, opt *CreateOptions) (*Repository, error) {
	desc := gitapi.MustBuild(http.MethodPost, "orgs/{org}/repos",
		gitapi.Params{"org": org}, opt.values(name))
	var out Repository
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Edit updates a repository's settings.
func (c *Client) Edit(ctx context.Context, owner, repo string, opt *EditOptions) (*Repository, error) {
	desc := gitapi.MustBuild(http.MethodPost, "repos/{owner}/{repo}",
		gitapi.Params{"owner": owner, "repo": repo}, opt.values(repo))
	var out Repository
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete deletes a repository. Success is a 2xx with an empty body.
func (c *Client) Delete(ctx context.Context, owner, repo string) error {
	desc := gitapi.MustBuild(http.MethodDelete, "repos/{owner}/{repo}",
		gitapi.Params{"owner": owner, "repo": repo}, nil)
	return c.api.Do(ctx, desc, nil)
}

// Languages reports bytes of code per language.
func (c *Client) Languages(ctx context.Context, owner, repo string) (Languages, error) {
	desc := gitapi.MustBuild(http.MethodGet, "repos/{owner}/{repo}/languages",
		gitapi.Params{"owner": owner, "repo": repo}, nil)
	var out Languages
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Contributors lists a repository's contributors.
func (c *Client) Contributors(ctx context.Context, owner, repo string, opt *ContributorsOptions) ([]Contributor, error) {
	desc := gitapi.MustBuild(http.MethodGet, "repos/{owner}/{repo}/contributors",
		gitapi.Params{"owner": owner, "repo": repo}, opt.values())
	var out []Contributor
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Teams lists the teams with access to a repository.
func (c *Client) Teams(ctx context.Context, owner, repo string) ([]Team, error) {
	desc := gitapi.MustBuild(http.MethodGet, "repos/{owner}/{repo}/teams",
		gitapi.Params{"owner": owner, "repo": repo}, nil)
	var out []Team
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Tags lists a repository's tags.
func (c *Client) Tags(ctx context.Context, owner, repo string, opt *ListOptions) ([]Tag, error) {
	desc := gitapi.MustBuild(http.MethodGet, "repos/{owner}/{repo}/tags",
		gitapi.Params{"owner": owner, "repo": repo}, opt.values())
	var out []Tag
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Branches lists a repository's branches.
func (c *Client) Branches(ctx context.Context, owner, repo string, opt *ListOptions) ([]Branch, error) {
	desc := gitapi.MustBuild(http.MethodGet, "repos/{owner}/{repo}/branches",
		gitapi.Params{"owner": owner, "repo": repo}, opt.values())
	var out []Branch
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
