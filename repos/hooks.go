package repos

import (
	"context"
	"net/http"

	"github.com/repolens/repolens/gitapi"
)

// Hooks lists a repository's webhooks.
func (c *Client) Hooks(ctx context.Context, owner, repo string) ([]Hook, error) {
	desc := gitapi.MustBuild(http.MethodGet, "repos/{owner}/{repo}/hooks",
		gitapi.Params{"owner": owner, "repo": repo}, nil)
	var out []Hook
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Hook fetches a single webhook by ID.
func (c *Client) Hook(ctx context.Context, owner, repo string, id int64) (*Hook, error) {
	desc := gitapi.MustBuild(http.MethodGet, "repos/{owner}/{repo}/hooks/{id}",
		gitapi.Params{"owner": owner, "repo": repo, "id": formatID(id)}, nil)
	var out Hook
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateHook installs a webhook. name identifies the hook service ("web"
// for plain webhooks); delivery settings go in opt.Config.
func (c *Client) CreateHook(ctx context.Context, owner, repo, name string, opt *HookOptions) (*Hook, error) {
	desc := gitapi.MustBuild(http.MethodPost, "repos/{owner}/{repo}/hooks",
		gitapi.Params{"owner": owner, "repo": repo}, opt.values(name))
	var out Hook
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EditHook updates a webhook's settings.
func (c *Client) EditHook(ctx context.Context, owner, repo string, id int64, opt *HookOptions) (*Hook, error) {
	desc := gitapi.MustBuild(http.MethodPost, "repos/{owner}/{repo}/hooks/{id}",
		gitapi.Params{"owner": owner, "repo": repo, "id": formatID(id)}, opt.values(""))
	var out Hook
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TestHook triggers a test delivery for the hook.
func (c *Client) TestHook(ctx context.Context, owner, repo string, id int64) error {
	desc := gitapi.MustBuild(http.MethodPost, "repos/{owner}/{repo}/hooks/{id}/test",
		gitapi.Params{"owner": owner, "repo": repo, "id": formatID(id)}, nil)
	return c.api.Do(ctx, desc, nil)
}

// DeleteHook removes a webhook.
func (c *Client) DeleteHook(ctx context.Context, owner, repo string, id int64) error {
	desc := gitapi.MustBuild(http.MethodDelete, "repos/{owner}/{repo}/hooks/{id}",
		gitapi.Params{"owner": owner, "repo": repo, "id": formatID(id)}, nil)
	return c.api.Do(ctx, desc, nil)
}
