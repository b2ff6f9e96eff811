package repos

import (
	"context"
	"net/http"

	"github.com/repolens/repolens/gitapi"
)

// Keys lists a repository's deploy keys.
func (c *Client) Keys(ctx context.Context, owner, repo string) ([]Key, error) {
	desc := gitapi.MustBuild(http.MethodGet, "repos/{owner}/{repo}/keys",
		gitapi.Params{"owner": owner, "repo": repo}, nil)
	var out []Key
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Key fetches a single deploy key by ID.
func (c *Client) Key(ctx context.Context, owner, repo string, id int64) (*Key, error) {
	desc := gitapi.MustBuild(http.MethodGet, "repos/{owner}/{repo}/keys/{id}",
		gitapi.Params{"owner": owner, "repo": repo, "id": formatID(id)}, nil)
	var out Key
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateKey adds a deploy key to the repository.
func (c *Client) CreateKey(ctx context.Context, owner, repo, title, key string) (*Key, error) {
	desc := gitapi.MustBuild(http.MethodPost, "repos/{owner}/{repo}/keys",
		gitapi.Params{"owner": owner, "repo": repo},
		gitapi.Values{"title": title, "key": key})
	var out Key
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteKey removes a deploy key.
func (c *Client) DeleteKey(ctx context.Context, owner, repo string, id int64) error {
	desc := gitapi.MustBuild(http.MethodDelete, "repos/{owner}/{repo}/keys/{id}",
		gitapi.Params{"owner": owner, "repo": repo, "id": formatID(id)}, nil)
	return c.api.Do(ctx, desc, nil)
}
