package gitapi

import "net/http"

// Auth decorates an outgoing request with whatever credentials must
// accompany it. The executor treats this as an opaque step applied just
// before send; a nil Auth means anonymous calls.
type Auth interface {
	Apply(req *http.Request)
}

// TokenAuth authenticates with a bearer token.
type TokenAuth struct {
	Token string
}

func (a TokenAuth) Apply(req *http.Request) {
	if a.Token != "" {
		req.Header.Set("Authorization", "Bearer "+a.Token)
	}
}

// BasicAuth authenticates with a username and password (or a username and
// a personal access token used as the password).
type BasicAuth struct {
	Username string
	Password string
}

func (a BasicAuth) Apply(req *http.Request) {
	req.SetBasicAuth(a.Username, a.Password)
}
