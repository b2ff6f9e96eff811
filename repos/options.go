package repos

import (
	"time"

	"github.com/repolens/repolens/gitapi"
)

// Option structs carry a named field per optional parameter; nil (or zero,
// for the paging fields) means "use the server default" and the key is not
// sent at all. Each struct lowers itself into the gitapi.Values mapping the
// request builder routes into the query string or the request body.

// ListOptions is the paging subset shared by listing endpoints. No
// traversal happens here: callers pick the page.
type ListOptions struct {
	Page    int
	PerPage int
}

func (o *ListOptions) values() gitapi.Values {
	if o == nil {
		return nil
	}
	v := gitapi.Values{}
	addInt(v, "page", o.Page)
	addInt(v, "per-page", o.PerPage)
	return v
}

// RepoListOptions filters repository listings.
type RepoListOptions struct {
	ListOptions
	Type      string // all, owner, public, private, member
	Sort      string // created, updated, pushed, full_name
	Direction string // asc, desc
}

func (o *RepoListOptions) values() gitapi.Values {
	if o == nil {
		return nil
	}
	v := o.ListOptions.values()
	addString(v, "type", o.Type)
	addString(v, "sort", o.Sort)
	addString(v, "direction", o.Direction)
	return v
}

// CreateOptions configures repository creation beyond the required name.
type CreateOptions struct {
	Description       *string
	Homepage          *string
	Private           *bool
	HasIssues         *bool
	HasWiki           *bool
	HasDownloads      *bool
	AutoInit          *bool
	GitignoreTemplate *string
	TeamID            *int64
}

func (o *CreateOptions) values(name string) gitapi.Values {
	v := gitapi.Values{"name": name}
	if o == nil {
		return v
	}
	setString(v, "description", o.Description)
	setString(v, "homepage", o.Homepage)
	setBool(v, "private", o.Private)
	setBool(v, "has-issues", o.HasIssues)
	setBool(v, "has-wiki", o.HasWiki)
	setBool(v, "has-downloads", o.HasDownloads)
	setBool(v, "auto-init", o.AutoInit)
	setString(v, "gitignore-template", o.GitignoreTemplate)
	setInt64(v, "team-id", o.TeamID)
	return v
}

// EditOptions configures a repository edit. Name defaults to the current
// repository name when unset, since the API treats it as required on edit.
type EditOptions struct {
	Name         *string
	Description  *string
	Homepage     *string
	Private      *bool
	HasIssues    *bool
	HasWiki      *bool
	HasDownloads *bool
	DefaultBranch *string
}

func (o *EditOptions) values(repo string) gitapi.Values {
	v := gitapi.Values{"name": repo}
	if o == nil {
		return v
	}
	if o.Name != nil {
		v["name"] = *o.Name
	}
	setString(v, "description", o.Description)
	setString(v, "homepage", o.Homepage)
	setBool(v, "private", o.Private)
	setBool(v, "has-issues", o.HasIssues)
	setBool(v, "has-wiki", o.HasWiki)
	setBool(v, "has-downloads", o.HasDownloads)
	setString(v, "default-branch", o.DefaultBranch)
	return v
}

// CommitsOptions filters the commits listing.
type CommitsOptions struct {
	ListOptions
	SHA    string // branch name or commit SHA to start from
	Path   string // only commits touching this path
	Author string
	Since  time.Time
	Until  time.Time
}

func (o *CommitsOptions) values() gitapi.Values {
	if o == nil {
		return nil
	}
	v := o.ListOptions.values()
	addString(v, "sha", o.SHA)
	addString(v, "path", o.Path)
	addString(v, "author", o.Author)
	if !o.Since.IsZero() {
		v["since"] = o.Since
	}
	if !o.Until.IsZero() {
		v["until"] = o.Until
	}
	return v
}

// CommentOptions anchors a new commit comment within the commit's diff.
// All fields are optional: a comment without them attaches to the commit
// as a whole. Line is sent only when set; the API documents it as required
// yet ignores it in practice, so it is not forced on callers.
type CommentOptions struct {
	Path     *string
	Position *int
	Line     *int
}

func (o *CommentOptions) values(body string) gitapi.Values {
	v := gitapi.Values{"body": body}
	if o == nil {
		return v
	}
	setString(v, "path", o.Path)
	setIntPtr(v, "position", o.Position)
	setIntPtr(v, "line", o.Line)
	return v
}

// ContributorsOptions controls the contributors listing.
type ContributorsOptions struct {
	ListOptions
	Anon bool // include anonymous contributors
}

func (o *ContributorsOptions) values() gitapi.Values {
	if o == nil {
		return nil
	}
	v := o.ListOptions.values()
	if o.Anon {
		v["anon"] = true
	}
	return v
}

// ForkOptions configures fork creation.
type ForkOptions struct {
	Organization string // fork into this organization instead of the user
}

func (o *ForkOptions) values() gitapi.Values {
	if o == nil {
		return nil
	}
	v := gitapi.Values{}
	addString(v, "organization", o.Organization)
	return v
}

// HookOptions configures webhook creation and edits.
type HookOptions struct {
	Events []string
	Active *bool
	Config map[string]any
}

func (o *HookOptions) values(name string) gitapi.Values {
	v := gitapi.Values{}
	if name != "" {
		v["name"] = name
	}
	if o == nil {
		return v
	}
	if len(o.Events) > 0 {
		v["events"] = o.Events
	}
	setBool(v, "active", o.Active)
	if len(o.Config) > 0 {
		v["config"] = o.Config
	}
	return v
}

func addString(v gitapi.Values, key, value string) {
	if value != "" {
		v[key] = value
	}
}

func addInt(v gitapi.Values, key string, value int) {
	if value > 0 {
		v[key] = value
	}
}

func setString(v gitapi.Values, key string, p *string) {
	if p != nil {
		v[key] = *p
	}
}

func setBool(v gitapi.Values, key string, p *bool) {
	if p != nil {
		v[key] = *p
	}
}

func setInt64(v gitapi.Values, key string, p *int64) {
	if p != nil {
		v[key] = *p
	}
}

func setIntPtr(v gitapi.Values, key string, p *int) {
	if p != nil {
		v[key] = *p
	}
}
