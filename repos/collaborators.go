package repos

import (
	"context"
	"net/http"

	"github.com/repolens/repolens/gitapi"
)

// Collaborators lists a repository's collaborators.
func (c *Client) Collaborators(ctx context.Context, owner, repo string, opt *ListOptions) ([]User, error) {
	desc := gitapi.MustBuild(http.MethodGet, "repos/{owner}/{repo}/collaborators",
		gitapi.Params{"owner": owner, "repo": repo}, opt.values())
	var out []User
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// IsCollaborator reports whether user is a collaborator on the repository.
// The remote encodes the answer as 2xx-empty (yes) versus 404 (no); any
// other status is a failure, not a negative answer.
func (c *Client) IsCollaborator(ctx context.Context, owner, repo, user string) (bool, error) {
	desc := gitapi.MustBuild(http.MethodGet, "repos/{owner}/{repo}/collaborators/{user}",
		gitapi.Params{"owner": owner, "repo": repo, "user": user}, nil)
	return c.api.Check(ctx, desc)
}

// AddCollaborator grants user access to the repository.
func (c *Client) AddCollaborator(ctx context.Context, owner, repo, user string) error {
	desc := gitapi.MustBuild(http.MethodPut, "repos/{owner}/{repo}/collaborators/{user}",
		gitapi.Params{"owner": owner, "repo": repo, "user": user}, nil)
	return c.api.Do(ctx, desc, nil)
}

// RemoveCollaborator revokes user's access to the repository.
func (c *Client) RemoveCollaborator(ctx context.Context, owner, repo, user string) error {
	desc := gitapi.MustBuild(http.MethodDelete, "repos/{owner}/{repo}/collaborators/{user}",
		gitapi.Params{"owner": owner, "repo": repo, "user": user}, nil)
	return c.api.Do(ctx, desc, nil)
}
