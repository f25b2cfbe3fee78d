/*
Copyright 2026 The httpfoundation Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package message

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/youjiaxing/httpfoundation/uri"
)

// Request is an immutable HTTP request value object. Build one with
// NewRequest, derive changed ones with the With* methods.
type Request struct {
	parts
	method string
	target string // explicit request-target override, "" means derive from the URI
	uri    *uri.Uri
}

// NewRequest returns a request for the given method and target URI with
// protocol version 1.1, an empty header bag (plus a Host header derived from
// the URI when it has one) and an empty body.
func NewRequest(method string, target *uri.Uri) (*Request, error) {
	if err := validateMethod(method); err != nil {
		return nil, err
	}
	if target == nil {
		target = &uri.Uri{}
	}
	r := &Request{
		parts:  newParts(),
		method: method,
		uri:    target,
	}
	if host := hostHeaderValue(target); host != "" {
		if err := r.parts.headers.Set("Host", host); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Method returns the HTTP method exactly as given; method names are
// case-sensitive.
func (r *Request) Method() string {
	return r.method
}

// URI returns the request's target URI.
func (r *Request) URI() *uri.Uri {
	return r.uri
}

// RequestTarget returns the request-target for the request line. An explicit
// override set with WithRequestTarget wins; otherwise the origin-form is
// composed from the URI's path and query, with "/" standing in for an empty
// path.
func (r *Request) RequestTarget() string {
	if r.target != "" {
		return r.target
	}
	path := r.uri.Path()
	if path == "" {
		path = "/"
	}
	return uri.ComposeComponents("", "", path, r.uri.Query(), "")
}

// WithMethod returns a request with the given method.
func (r *Request) WithMethod(method string) (*Request, error) {
	if err := validateMethod(method); err != nil {
		return nil, err
	}
	if method == r.method {
		return r, nil
	}
	clone := *r
	clone.method = method
	return &clone, nil
}

// WithRequestTarget returns a request whose request line uses the given
// target verbatim (e.g. "*" for OPTIONS, or an absolute-form target when
// talking to a proxy). An empty target restores derivation from the URI.
func (r *Request) WithRequestTarget(target string) (*Request, error) {
	for i := 0; i < len(target); i++ {
		switch target[i] {
		case ' ', '\r', '\n':
			return nil, errors.Errorf("request-target %q contains whitespace", target)
		}
	}
	if target == r.target {
		return r, nil
	}
	clone := *r
	clone.target = target
	return &clone, nil
}

// WithURI returns a request for a new target URI. Unless preserveHost is set
// and a Host header already exists, the Host header is rewritten from the new
// URI's host and port; a URI without a host leaves the header alone.
func (r *Request) WithURI(target *uri.Uri, preserveHost bool) (*Request, error) {
	if target == nil {
		return nil, errors.New("target URI must not be nil")
	}
	clone := *r
	clone.uri = target
	if preserveHost && r.parts.headers.Has("Host") {
		return &clone, nil
	}
	if host := hostHeaderValue(target); host != "" {
		p, err := r.parts.withHeader("Host", host)
		if err != nil {
			return nil, err
		}
		clone.parts = p
	}
	return &clone, nil
}

// WithProtocolVersion returns a request with the given protocol version.
func (r *Request) WithProtocolVersion(version string) (*Request, error) {
	p, err := r.parts.withProtocolVersion(version)
	if err != nil {
		return nil, err
	}
	clone := *r
	clone.parts = p
	return &clone, nil
}

// WithHeader returns a request where the named header holds exactly value.
func (r *Request) WithHeader(name, value string) (*Request, error) {
	p, err := r.parts.withHeader(name, value)
	if err != nil {
		return nil, err
	}
	clone := *r
	clone.parts = p
	return &clone, nil
}

// WithAddedHeader returns a request with value appended to the named header.
func (r *Request) WithAddedHeader(name, value string) (*Request, error) {
	p, err := r.parts.withAddedHeader(name, value)
	if err != nil {
		return nil, err
	}
	clone := *r
	clone.parts = p
	return &clone, nil
}

// WithoutHeader returns a request without the named header.
func (r *Request) WithoutHeader(name string) *Request {
	clone := *r
	clone.parts = r.parts.withoutHeader(name)
	return &clone
}

// WithBody returns a request with the given body stream.
func (r *Request) WithBody(body Stream) (*Request, error) {
	p, err := r.parts.withBody(body)
	if err != nil {
		return nil, err
	}
	clone := *r
	clone.parts = p
	return &clone, nil
}

// hostHeaderValue derives the Host header value from a URI: the host, plus
// ":port" when a non-default port is stored.
func hostHeaderValue(u *uri.Uri) string {
	host := u.Host()
	if host == "" {
		return ""
	}
	if port, ok := u.Port(); ok {
		host += ":" + strconv.Itoa(port)
	}
	return host
}

// validateMethod checks an HTTP method against the RFC 7230 token grammar.
func validateMethod(method string) error {
	if method == "" {
		return errors.New("method must not be empty")
	}
	for i := 0; i < len(method); i++ {
		if !isTokenByte(method[i]) {
			return errors.Errorf("method %q contains invalid character %q", method, method[i])
		}
	}
	return nil
}
