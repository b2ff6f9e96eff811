package repos

import (
	"context"
	"net/http"

	"github.com/repolens/repolens/gitapi"
)

// Comments lists every commit comment in the repository.
func (c *Client) Comments(ctx context.Context, owner, repo string, opt *ListOptions) ([]CommitComment, error) {
	desc := gitapi.MustBuild(http.MethodGet, "repos/{owner}/{repo}/comments",
		gitapi.Params{"owner": owner, "repo": repo}, opt.values())
	var out []CommitComment
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CommitComments lists the comments on one commit.
func (c *Client) CommitComments(ctx context.Context, owner, repo, sha string) ([]CommitComment, error) {
	desc := gitapi.MustBuild(http.MethodGet, "repos/{owner}/{repo}/commits/{sha}/comments",
		gitapi.Params{"owner": owner, "repo": repo, "sha": sha}, nil)
	var out []CommitComment
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CommitComment fetches a single comment by ID.
func (c *Client) CommitComment(ctx context.Context, owner, repo string, id int64) (*CommitComment, error) {
	desc := gitapi.MustBuild(http.MethodGet, "repos/{owner}/{repo}/comments/{id}",
		gitapi.Params{"owner": owner, "repo": repo, "id": formatID(id)}, nil)
	var out CommitComment
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCommitComment comments on a commit. Diff anchoring (path, position,
// line) is optional and comes from opt.
func (c *Client) CreateCommitComment(ctx context.Context, owner, repo, sha, body string, opt *CommentOptions) (*CommitComment, error) {
	desc := gitapi.MustBuild(http.MethodPost, "repos/{owner}/{repo}/commits/{sha}/comments",
		gitapi.Params{"owner": owner, "repo": repo, "sha": sha}, opt.values(body))
	var out CommitComment
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EditCommitComment replaces a comment's body.
func (c *Client) EditCommitComment(ctx context.Context, owner, repo string, id int64, body string) (*CommitComment, error) {
	desc := gitapi.MustBuild(http.MethodPost, "repos/{owner}/{repo}/comments/{id}",
		gitapi.Params{"owner": owner, "repo": repo, "id": formatID(id)},
		gitapi.Values{"body": body})
	var out CommitComment
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCommitComment deletes a comment.
func (c *Client) DeleteCommitComment(ctx context.Context, owner, repo string, id int64) error {
	desc := gitapi.MustBuild(http.MethodDelete, "repos/{owner}/{repo}/comments/{id}",
		gitapi.Params{"owner": owner, "repo": repo, "id": formatID(id)}, nil)
	return c.api.Do(ctx, desc, nil)
}
