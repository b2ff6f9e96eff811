package repos

import (
	"context"
	"net/http"

	"github.com/repolens/repolens/gitapi"
)

// Downloads lists a repository's downloads. Creation is not bound: the
// upload half of the legacy downloads API is dead on the remote side.
func (c *Client) Downloads(ctx context.Context, owner, repo string, opt *ListOptions) ([]Download, error) {
	desc := gitapi.MustBuild(http.MethodGet, "repos/{owner}/{repo}/downloads",
		gitapi.Params{"owner": owner, "repo": repo}, opt.values())
	var out []Download
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Download fetches a single download by ID.
func (c *Client) Download(ctx context.Context, owner, repo string, id int64) (*Download, error) {
	desc := gitapi.MustBuild(http.MethodGet, "repos/{owner}/{repo}/downloads/{id}",
		gitapi.Params{"owner": owner, "repo": repo, "id": formatID(id)}, nil)
	var out Download
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDownload deletes a download.
func (c *Client) DeleteDownload(ctx context.Context, owner, repo string, id int64) error {
	desc := gitapi.MustBuild(http.MethodDelete, "repos/{owner}/{repo}/downloads/{id}",
		gitapi.Params{"owner": owner, "repo": repo, "id": formatID(id)}, nil)
	return c.api.Do(ctx, desc, nil)
}
