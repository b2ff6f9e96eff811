package repos

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestWatching(t *testing.T) {
	t.Run("is-watching uses the authenticated membership path", func(t *testing.T) {
		client, done := fixture(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/user/watched/octocat/Hello-World" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			w.WriteHeader(http.StatusNotFound)
		})
		defer done()

		ok, err := client.IsWatching(context.Background(), "octocat", "Hello-World")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected false")
		}
	})

	t.Run("watch and unwatch are empty-body actions", func(t *testing.T) {
		var method string
		client, done := fixture(t, func(w http.ResponseWriter, r *http.Request) {
			method = r.Method
			w.WriteHeader(http.StatusNoContent)
		})
		defer done()

		if err := client.Watch(context.Background(), "octocat", "Hello-World"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if method != http.MethodPut {
			t.Errorf("watch method = %s", method)
		}
		if err := client.Unwatch(context.Background(), "octocat", "Hello-World"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if method != http.MethodDelete {
			t.Errorf("unwatch method = %s", method)
		}
	})
}

func TestCreateFork(t *testing.T) {
	client, done := fixture(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/repos/octocat/Hello-World/forks" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["organization"] != "my-org" {
			t.Errorf("unexpected body: %v", body)
		}
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{"id": 8, "fork": true}`))
	})
	defer done()

	fork, err := client.CreateFork(context.Background(), "octocat", "Hello-World",
		&ForkOptions{Organization: "my-org"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fork.ID != 8 || !fork.Fork {
		t.Errorf("unexpected fork: %+v", fork)
	}
}

func TestCreateHook(t *testing.T) {
	client, done := fixture(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/octocat/Hello-World/hooks" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["name"] != "web" {
			t.Errorf("name = %v", body["name"])
		}
		config, ok := body["config"].(map[string]any)
		if !ok || config["url"] != "https://example.com/hook" {
			t.Errorf("unexpected config: %v", body["config"])
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 12, "name": "web", "active": true}`))
	})
	defer done()

	active := true
	hook, err := client.CreateHook(context.Background(), "octocat", "Hello-World", "web", &HookOptions{
		Events: []string{"push"},
		Active: &active,
		Config: map[string]any{"url": "https://example.com/hook"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hook.ID != 12 || !hook.Active {
		t.Errorf("unexpected hook: %+v", hook)
	}
}
