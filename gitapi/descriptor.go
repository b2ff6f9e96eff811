package gitapi

import (
	"net/http"
	"net/url"
)

// Descriptor describes one API call: method, resolved path, and the options
// payload routed by method. A descriptor is built fresh per call, consumed
// by exactly one Do/Check, and never mutated after construction.
type Descriptor struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Build resolves template with params and routes opts according to method:
// GET calls carry them as query parameters, POST/PUT/DELETE calls carry
// them as the JSON request body. Build performs no I/O; the same inputs
// always produce the same descriptor.
func Build(method, template string, params Params, opts Values) (*Descriptor, error) {
	path, err := expandTemplate(template, params)
	if err != nil {
		return nil, err
	}
	desc := &Descriptor{Method: method, Path: path}
	if len(opts) == 0 {
		return desc, nil
	}
	if method == http.MethodGet {
		desc.Query = opts.Encode()
	} else {
		desc.Body = opts
	}
	return desc, nil
}

// MustBuild is Build for call sites with fixed templates, where a parameter
// mismatch can only be a bug in the call site itself. It panics instead of
// returning the error.
func MustBuild(method, template string, params Params, opts Values) *Descriptor {
	desc, err := Build(method, template, params, opts)
	if err != nil {
		panic(err)
	}
	return desc
}
