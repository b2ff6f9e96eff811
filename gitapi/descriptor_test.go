package gitapi

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestBuild(t *testing.T) {
	t.Run("GET routes options into the query", func(t *testing.T) {
		desc, err := Build(http.MethodGet, "repos/{owner}/{repo}/branches",
			Params{"owner": "octocat", "repo": "Hello-World"}, Values{"per-page": 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if desc.Path != "repos/octocat/Hello-World/branches" {
			t.Errorf("unexpected path: %s", desc.Path)
		}
		if desc.Body != nil {
			t.Error("GET descriptor must not carry a body")
		}
		if got := desc.Query.Get("per_page"); got != "100" {
			t.Errorf("per_page = %q", got)
		}
	})

	t.Run("POST routes options into the body", func(t *testing.T) {
		desc, err := Build(http.MethodPost, "repos/{owner}/{repo}",
			Params{"owner": "octocat", "repo": "Hello-World"}, Values{"has-wiki": false})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(desc.Query) != 0 {
			t.Error("POST descriptor must not carry query options")
		}
		data, err := json.Marshal(desc.Body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		if string(data) != `{"has_wiki":false}` {
			t.Errorf("unexpected body: %s", data)
		}
	})

	t.Run("PUT and DELETE route options into the body", func(t *testing.T) {
		for _, method := range []string{http.MethodPut, http.MethodDelete} {
			desc, err := Build(method, "repos/{owner}/{repo}",
				Params{"owner": "o", "repo": "r"}, Values{"page": 1})
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", method, err)
			}
			if desc.Body == nil {
				t.Errorf("%s: expected body", method)
			}
			if len(desc.Query) != 0 {
				t.Errorf("%s: unexpected query", method)
			}
		}
	})

	t.Run("no options means no payload", func(t *testing.T) {
		desc, err := Build(http.MethodGet, "repos/{owner}/{repo}/branches",
			Params{"owner": "octocat", "repo": "Hello-World"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if desc.Body != nil || len(desc.Query) != 0 {
			t.Error("expected empty payload")
		}
	})

	t.Run("parameter mismatch fails", func(t *testing.T) {
		_, err := Build(http.MethodGet, "repos/{owner}/{repo}", Params{"owner": "octocat"}, nil)
		if err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestMustBuild(t *testing.T) {
	t.Run("returns the descriptor on success", func(t *testing.T) {
		desc := MustBuild(http.MethodGet, "user/repos", nil, nil)
		if desc.Path != "user/repos" {
			t.Errorf("unexpected path: %s", desc.Path)
		}
	})

	t.Run("panics on parameter mismatch", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		MustBuild(http.MethodGet, "repos/{owner}/{repo}", Params{"owner": "octocat"}, nil)
	})
}
