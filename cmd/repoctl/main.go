package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/repolens/repolens/gitapi"
	"github.com/repolens/repolens/gitapi/transport"
	"github.com/repolens/repolens/internal/config"
	"github.com/repolens/repolens/repos"
)

func main() {
	token := flag.String("token", os.Getenv("GITHUB_TOKEN"), "GitHub token")
	apiURL := flag.String("api", os.Getenv("GITHUB_API_URL"), "API base URL override")
	flag.Parse()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg := &config.Config{Token: *token, APIBaseURL: *apiURL}
	client, err := newClient(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := dispatch(context.Background(), client, flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: repoctl [flags] <command> <args>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  get <owner/repo>                   Show a repository")
	fmt.Fprintln(os.Stderr, "  repos <owner>                      List a user's repositories")
	fmt.Fprintln(os.Stderr, "  branches <owner/repo>              List branches")
	fmt.Fprintln(os.Stderr, "  tags <owner/repo>                  List tags")
	fmt.Fprintln(os.Stderr, "  languages <owner/repo>             Show language byte counts")
	fmt.Fprintln(os.Stderr, "  commits <owner/repo>               List recent commits")
	fmt.Fprintln(os.Stderr, "  collaborator <owner/repo> <user>   Check collaborator membership")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  repoctl branches octocat/Hello-World")
	fmt.Fprintln(os.Stderr, "  repoctl collaborator octocat/Hello-World defunkt")
}

func newClient(cfg *config.Config) (*repos.Client, error) {
	var auth gitapi.Auth
	if cfg.Token != "" {
		auth = gitapi.TokenAuth{Token: cfg.Token}
	}
	api, err := gitapi.New(cfg.APIBaseURL,
		gitapi.WithHTTPClient(&http.Client{
			Transport: transport.NewRetry(nil, transport.DefaultRetryPolicy()),
		}),
		gitapi.WithAuth(auth),
	)
	if err != nil {
		return nil, err
	}
	return repos.NewClient(api), nil
}

func dispatch(ctx context.Context, client *repos.Client, command string, args []string) error {
	switch command {
	case "get":
		owner, repo, err := splitRepoArg(args)
		if err != nil {
			return err
		}
		repository, err := client.Get(ctx, owner, repo)
		if err != nil {
			return err
		}
		return printJSON(repository)

	case "repos":
		if len(args) < 1 {
			return fmt.Errorf("repos: owner argument is required")
		}
		list, err := client.List(ctx, args[0], &repos.RepoListOptions{
			Sort: "updated",
			ListOptions: repos.ListOptions{PerPage: 100},
		})
		if err != nil {
			return err
		}
		for _, r := range list {
			fmt.Printf("%s\t%s\n", r.FullName, r.Description)
		}
		return nil

	case "branches":
		owner, repo, err := splitRepoArg(args)
		if err != nil {
			return err
		}
		branches, err := client.Branches(ctx, owner, repo, &repos.ListOptions{PerPage: 100})
		if err != nil {
			return err
		}
		for _, b := range branches {
			fmt.Printf("%s\t%s\n", b.Commit.SHA, b.Name)
		}
		return nil

	case "tags":
		owner, repo, err := splitRepoArg(args)
		if err != nil {
			return err
		}
		tags, err := client.Tags(ctx, owner, repo, &repos.ListOptions{PerPage: 100})
		if err != nil {
			return err
		}
		for _, t := range tags {
			fmt.Printf("%s\t%s\n", t.Commit.SHA, t.Name)
		}
		return nil

	case "languages":
		owner, repo, err := splitRepoArg(args)
		if err != nil {
			return err
		}
		languages, err := client.Languages(ctx, owner, repo)
		if err != nil {
			return err
		}
		printLanguages(languages)
		return nil

	case "commits":
		owner, repo, err := splitRepoArg(args)
		if err != nil {
			return err
		}
		commits, err := client.Commits(ctx, owner, repo, &repos.CommitsOptions{
			ListOptions: repos.ListOptions{PerPage: 30},
		})
		if err != nil {
			return err
		}
		for _, c := range commits {
			subject, _, _ := strings.Cut(c.Commit.Message, "\n")
			fmt.Printf("%.8s\t%s\n", c.SHA, subject)
		}
		return nil

	case "collaborator":
		owner, repo, err := splitRepoArg(args)
		if err != nil {
			return err
		}
		if len(args) < 2 {
			return fmt.Errorf("collaborator: user argument is required")
		}
		ok, err := client.IsCollaborator(ctx, owner, repo, args[1])
		if err != nil {
			return err
		}
		fmt.Println(ok)
		return nil

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// splitRepoArg accepts "owner/repo", "github.com/owner/repo", or a full
// HTTPS URL, with an optional .git suffix.
func splitRepoArg(args []string) (owner, repo string, err error) {
	if len(args) < 1 {
		return "", "", fmt.Errorf("repository argument is required")
	}
	arg := args[0]
	arg = strings.TrimPrefix(arg, "https://")
	arg = strings.TrimPrefix(arg, "github.com/")
	arg = strings.TrimSuffix(arg, ".git")

	parts := strings.Split(arg, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q: expected owner/repo", args[0])
	}
	return parts[0], parts[1], nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printLanguages(languages repos.Languages) {
	type entry struct {
		name  string
		bytes int64
	}
	entries := make([]entry, 0, len(languages))
	for name, count := range languages {
		entries = append(entries, entry{name: name, bytes: count})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].bytes > entries[j].bytes })

	titler := cases.Title(language.English, cases.NoLower)
	for _, e := range entries {
		fmt.Printf("%-20s\t%d\n", titler.String(e.name), e.bytes)
	}
}
