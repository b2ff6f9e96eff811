package repos

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"
)

func TestCommits(t *testing.T) {
	t.Run("filters become query parameters", func(t *testing.T) {
		client, done := fixture(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/repos/octocat/Hello-World/commits" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			query := r.URL.Query()
			if query.Get("sha") != "topic" || query.Get("author") != "octocat" {
				t.Errorf("unexpected query: %s", r.URL.RawQuery)
			}
			if query.Get("since") != "2012-10-01T00:00:00Z" {
				t.Errorf("since = %q", query.Get("since"))
			}
			w.Write([]byte(`[{"sha": "abc123", "commit": {"message": "fix: things"}}]`))
		})
		defer done()

		commits, err := client.Commits(context.Background(), "octocat", "Hello-World", &CommitsOptions{
			SHA:    "topic",
			Author: "octocat",
			Since:  time.Date(2012, 10, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(commits) != 1 || commits[0].Commit.Message != "fix: things" {
			t.Errorf("unexpected commits: %+v", commits)
		}
	})

	t.Run("single commit by SHA", func(t *testing.T) {
		client, done := fixture(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/repos/octocat/Hello-World/commits/abc123" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			w.Write([]byte(`{"sha": "abc123"}`))
		})
		defer done()

		commit, err := client.Commit(context.Background(), "octocat", "Hello-World", "abc123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if commit.SHA != "abc123" {
			t.Errorf("unexpected commit: %+v", commit)
		}
	})
}

func TestCommitComments(t *testing.T) {
	t.Run("create sends body and optional anchors", func(t *testing.T) {
		client, done := fixture(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("unexpected method: %s", r.Method)
			}
			if r.URL.Path != "/repos/octocat/Hello-World/commits/abc123/comments" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["body"] != "nice work" || body["path"] != "README.md" {
				t.Errorf("unexpected body: %v", body)
			}
			if _, present := body["line"]; present {
				t.Error("line must not be sent when unset")
			}
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id": 99, "body": "nice work"}`))
		})
		defer done()

		path := "README.md"
		comment, err := client.CreateCommitComment(context.Background(),
			"octocat", "Hello-World", "abc123", "nice work", &CommentOptions{Path: &path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if comment.ID != 99 {
			t.Errorf("unexpected comment: %+v", comment)
		}
	})

	t.Run("edit replaces the body", func(t *testing.T) {
		client, done := fixture(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/repos/octocat/Hello-World/comments/99" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if body["body"] != "better" {
				t.Errorf("unexpected body: %v", body)
			}
			w.Write([]byte(`{"id": 99, "body": "better"}`))
		})
		defer done()

		comment, err := client.EditCommitComment(context.Background(), "octocat", "Hello-World", 99, "better")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if comment.Body != "better" {
			t.Errorf("unexpected comment: %+v", comment)
		}
	})

	t.Run("delete succeeds on empty 2xx", func(t *testing.T) {
		client, done := fixture(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete || r.URL.Path != "/repos/octocat/Hello-World/comments/99" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			w.WriteHeader(http.StatusNoContent)
		})
		defer done()

		if err := client.DeleteCommitComment(context.Background(), "octocat", "Hello-World", 99); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
