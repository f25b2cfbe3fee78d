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

// Package uri provides an immutable URI value object modeled on the generic
// syntax of RFC 3986.
//
// A Uri stores its seven components (scheme, user info, host, port, path,
// query, fragment) in normalized form: scheme and host are lowercase, path,
// query, fragment and user info are percent-encoded, and a port equal to the
// scheme's well-known default is never stored. Every mutation is
// copy-on-write: the With* methods filter and validate the new value, then
// return a fresh instance, so an already constructed Uri can be shared freely
// across goroutines.
//
// Key features include:
//   - Per-component filters with idempotent percent-encoding normalization.
//   - Cross-component invariant validation on every mutation (authority/path
//     consistency, scheme-less colon ambiguity, default-port elision).
//   - A pure ComposeComponents function for assembling reference strings,
//     reusable by message layers that build request targets.
//   - ToASCII conversion of internationalized hosts for on-wire use.
//   - JSON and YAML marshalling of the canonical string form.
package uri

import (
	"encoding/json"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Uri is an immutable URI reference. The zero value is the empty reference;
// use Parse or the With* methods to build non-empty instances. Uri holds no
// external resources and methods never mutate the receiver.
type Uri struct {
	scheme   string
	userInfo string
	host     string
	port     int // 0 means absent
	path     string
	query    string
	fragment string
}

// Parse splits a URI reference string along the RFC 3986 generic syntax,
// normalizes every component and validates the cross-component invariants.
// It returns an *InvalidArgumentError when the string cannot be split or any
// component is malformed.
func Parse(s string) (*Uri, error) {
	if s == "" {
		return &Uri{}, nil
	}

	c, err := splitReference(s)
	if err != nil {
		return nil, err
	}

	var u Uri
	if u.scheme, err = filterScheme(c.scheme); err != nil {
		return nil, err
	}
	u.userInfo = filterParsedUserInfo(c.userInfo)
	u.host = filterHost(c.host)
	if u.port, err = parsePort(c.port); err != nil {
		return nil, err
	}
	u.path = filterPath(c.path)
	u.query = filterQueryAndFragment(c.query)
	u.fragment = filterQueryAndFragment(c.fragment)

	u.removeDefaultPort()
	if err := u.validateState(); err != nil {
		return nil, err
	}
	return &u, nil
}

// MustParse is like Parse but panics on error. It is intended for
// package-level variables initialized from literals known to be valid.
func MustParse(s string) *Uri {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Scheme returns the scheme component, always lowercase, or "" when absent.
func (u *Uri) Scheme() string {
	return u.scheme
}

// UserInfo returns the percent-encoded user information component in
// "user[:password]" form, or "" when absent.
func (u *Uri) UserInfo() string {
	return u.userInfo
}

// Host returns the host component, always lowercase, or "" when absent.
func (u *Uri) Host() string {
	return u.host
}

// Port returns the port component and whether one is stored. A port equal to
// the scheme's well-known default is elided at mutation time and therefore
// reported as absent.
func (u *Uri) Port() (int, bool) {
	return u.port, u.port != 0
}

// Path returns the percent-encoded path component. It may be empty, absolute
// or rootless.
func (u *Uri) Path() string {
	return u.path
}

// Query returns the percent-encoded query component without the leading '?',
// or "" when absent.
func (u *Uri) Query() string {
	return u.query
}

// Fragment returns the percent-encoded fragment component without the leading
// '#', or "" when absent.
func (u *Uri) Fragment() string {
	return u.fragment
}

// Authority returns the "[user-info@]host[:port]" portion of the URI, or ""
// when the host is empty. A stored port is always appended: invariant
// enforcement guarantees it is never the scheme's default.
func (u *Uri) Authority() string {
	return composeAuthority(u.userInfo, u.host, u.port)
}

// composeAuthority builds "[user-info@]host[:port]"; it returns "" when the
// host is empty.
func composeAuthority(userInfo, host string, port int) string {
	if host == "" {
		return ""
	}
	var b strings.Builder
	if userInfo != "" {
		b.WriteString(userInfo)
		b.WriteByte('@')
	}
	b.WriteString(host)
	if port != 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(port))
	}
	return b.String()
}

// String returns the canonical RFC 3986, Section 4.1 reference form. It is a
// total operation: all invariants were checked at construction or mutation
// time, so conversion of a valid instance cannot fail.
func (u *Uri) String() string {
	return ComposeComponents(u.scheme, u.Authority(), u.path, u.query, u.fragment)
}

// Equal reports whether two URIs are component-wise identical. Either
// argument may be nil; two nils are equal.
func Equal(a, b *Uri) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// WithScheme returns a URI with the given scheme, lowercased. Changing the
// scheme re-runs default-port elision: a stored port that becomes the new
// scheme's default is dropped.
func (u *Uri) WithScheme(scheme string) (*Uri, error) {
	filtered, err := filterScheme(scheme)
	if err != nil {
		return nil, err
	}
	if filtered == u.scheme {
		return u, nil
	}
	clone := *u
	clone.scheme = filtered
	clone.removeDefaultPort()
	if err := clone.validateState(); err != nil {
		return nil, err
	}
	return &clone, nil
}

// WithUserInfo returns a URI with the given user information. The user and
// password are percent-encoded independently, so a ':' inside either is
// encoded rather than treated as the separator. An empty user removes the
// component entirely.
func (u *Uri) WithUserInfo(user, password string) (*Uri, error) {
	filtered := filterUserInfo(user)
	if filtered != "" && password != "" {
		filtered += ":" + filterUserInfo(password)
	}
	if filtered == u.userInfo {
		return u, nil
	}
	clone := *u
	clone.userInfo = filtered
	if err := clone.validateState(); err != nil {
		return nil, err
	}
	return &clone, nil
}

// WithHost returns a URI with the given host, lowercased. No DNS validation
// is performed. An empty host removes the authority, unless the scheme
// requires one (http/https), in which case the host falls back to
// "localhost".
func (u *Uri) WithHost(host string) (*Uri, error) {
	filtered := filterHost(host)
	if filtered == u.host {
		return u, nil
	}
	clone := *u
	clone.host = filtered
	if err := clone.validateState(); err != nil {
		return nil, err
	}
	return &clone, nil
}

// WithPort returns a URI with the given port. The port must be between 1 and
// 65535; a port equal to the scheme's well-known default is elided. Use
// WithoutPort to remove the port.
func (u *Uri) WithPort(port int) (*Uri, error) {
	filtered, err := filterPort(port)
	if err != nil {
		return nil, err
	}
	if filtered == u.port {
		return u, nil
	}
	clone := *u
	clone.port = filtered
	clone.removeDefaultPort()
	if err := clone.validateState(); err != nil {
		return nil, err
	}
	return &clone, nil
}

// WithoutPort returns a URI without a port component.
func (u *Uri) WithoutPort() (*Uri, error) {
	if u.port == 0 {
		return u, nil
	}
	clone := *u
	clone.port = 0
	if err := clone.validateState(); err != nil {
		return nil, err
	}
	return &clone, nil
}

// WithPath returns a URI with the given path, percent-encoded. A rootless
// path on a URI with an authority is corrected to an absolute one (see
// validateState); a path starting with "//" on a URI without an authority is
// rejected.
func (u *Uri) WithPath(path string) (*Uri, error) {
	filtered := filterPath(path)
	if filtered == u.path {
		return u, nil
	}
	clone := *u
	clone.path = filtered
	if err := clone.validateState(); err != nil {
		return nil, err
	}
	return &clone, nil
}

// WithQuery returns a URI with the given query, percent-encoded. The leading
// '?' must not be included. The query cannot violate any cross-component
// invariant, so no re-validation is needed.
func (u *Uri) WithQuery(query string) (*Uri, error) {
	filtered := filterQueryAndFragment(query)
	if filtered == u.query {
		return u, nil
	}
	clone := *u
	clone.query = filtered
	return &clone, nil
}

// WithFragment returns a URI with the given fragment, percent-encoded. The
// leading '#' must not be included.
func (u *Uri) WithFragment(fragment string) (*Uri, error) {
	filtered := filterQueryAndFragment(fragment)
	if filtered == u.fragment {
		return u, nil
	}
	clone := *u
	clone.fragment = filtered
	return &clone, nil
}

// MarshalJSON implements json.Marshaler, encoding the URI as its canonical
// string form.
func (u *Uri) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON implements json.Unmarshaler. It decodes a JSON string into a
// Uri, performing full validation in the process.
func (u *Uri) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler, encoding the URI as its canonical
// string form.
func (u *Uri) MarshalYAML() (any, error) {
	return u.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler with full validation.
func (u *Uri) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}
