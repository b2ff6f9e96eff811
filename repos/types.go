package repos

import "time"

// User is the owner/author shape embedded across responses.
type User struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
	Type      string `json:"type"`
	SiteAdmin bool   `json:"site_admin"`
}

// Repository is the repositories resource.
type Repository struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	Owner           User      `json:"owner"`
	Description     string    `json:"description"`
	Homepage        string    `json:"homepage"`
	Private         bool      `json:"private"`
	Fork            bool      `json:"fork"`
	DefaultBranch   string    `json:"default_branch"`
	Language        string    `json:"language"`
	ForksCount      int       `json:"forks_count"`
	StargazersCount int       `json:"stargazers_count"`
	WatchersCount   int       `json:"watchers_count"`
	OpenIssuesCount int       `json:"open_issues_count"`
	HasIssues       bool      `json:"has_issues"`
	HasWiki         bool      `json:"has_wiki"`
	HasDownloads    bool      `json:"has_downloads"`
	HTMLURL         string    `json:"html_url"`
	CloneURL        string    `json:"clone_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	PushedAt        time.Time `json:"pushed_at"`
}

// CommitRef is the lightweight commit pointer carried by tags and branches.
type CommitRef struct {
	SHA string `json:"sha"`
	URL string `json:"url"`
}

// Branch is one entry of the branches listing.
type Branch struct {
	Name   string    `json:"name"`
	Commit CommitRef `json:"commit"`
}

// Tag is one entry of the tags listing.
type Tag struct {
	Name       string    `json:"name"`
	Commit     CommitRef `json:"commit"`
	ZipballURL string    `json:"zipball_url"`
	TarballURL string    `json:"tarball_url"`
}

// CommitIdentity is the name/email/date triple inside a git commit.
type CommitIdentity struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Date  time.Time `json:"date"`
}

// GitCommit is the raw git object nested in a repository commit.
type GitCommit struct {
	Message   string         `json:"message"`
	Author    CommitIdentity `json:"author"`
	Committer CommitIdentity `json:"committer"`
}

// Commit is one entry of the commits listing.
type Commit struct {
	SHA       string      `json:"sha"`
	Commit    GitCommit   `json:"commit"`
	Author    *User       `json:"author"`
	Committer *User       `json:"committer"`
	Parents   []CommitRef `json:"parents"`
	HTMLURL   string      `json:"html_url"`
}

// CommitComment is a comment attached to a commit, optionally anchored to
// a path/position within its diff.
type CommitComment struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	Path      string    `json:"path"`
	Position  int       `json:"position"`
	Line      int       `json:"line"`
	CommitID  string    `json:"commit_id"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Contributor is a user plus their contribution count. Anonymous entries
// carry a name/email instead of a login.
type Contributor struct {
	User
	Name          string `json:"name"`
	Email         string `json:"email"`
	Contributions int    `json:"contributions"`
}

// Team is one entry of a repository's teams listing.
type Team struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Permission string `json:"permission"`
}

// Download is one entry of the legacy downloads listing.
type Download struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Size          int64  `json:"size"`
	DownloadCount int    `json:"download_count"`
	ContentType   string `json:"content_type"`
	HTMLURL       string `json:"html_url"`
}

// Key is a deploy key.
type Key struct {
	ID       int64  `json:"id"`
	Key      string `json:"key"`
	Title    string `json:"title"`
	Verified bool   `json:"verified"`
}

// Hook is a repository webhook.
type Hook struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Active    bool           `json:"active"`
	Events    []string       `json:"events"`
	Config    map[string]any `json:"config"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Languages maps language name to bytes of code in that language.
type Languages map[string]int64
