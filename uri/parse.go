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

package uri

import "strings"

// components holds the raw, still unfiltered parts of a split URI reference.
type components struct {
	scheme    string
	userInfo  string
	host      string
	port      string
	path      string
	query     string
	fragment  string
	authority bool
}

// splitReference takes a URI reference string apart along the RFC 3986
// generic syntax without validating or decoding any component. The split is
// deliberately lenient (in the spirit of widely used generic splitters): the
// component filters decide afterwards what is acceptable. Only a string that
// cannot be taken apart at all is rejected here.
func splitReference(s string) (components, error) {
	var c components

	// Fragment first: everything after the first '#'.
	if rest, fragment, found := strings.Cut(s, "#"); found {
		s, c.fragment = rest, fragment
	}
	// Query: everything after the first '?' of what remains.
	if rest, query, found := strings.Cut(s, "?"); found {
		s, c.query = rest, query
	}

	// Scheme: a valid scheme token terminated by ':' before any '/'.
	if i := strings.IndexByte(s, ':'); i >= 0 && !strings.Contains(s[:i], "/") {
		if i == 0 {
			return components{}, errUnparsable
		}
		if isSchemeToken(s[:i]) {
			c.scheme, s = s[:i], s[i+1:]
		}
	}

	// Authority: introduced by "//", terminated by the next '/' or the end.
	if strings.HasPrefix(s, "//") {
		c.authority = true
		authority := s[2:]
		if i := strings.IndexByte(authority, '/'); i >= 0 {
			authority, s = authority[:i], authority[i:]
		} else {
			s = ""
		}
		c.userInfo, c.host, c.port = splitAuthority(authority)
	}

	c.path = s
	return c, nil
}

// splitAuthority parses an authority string into its userinfo, host and port
// components. The userinfo ends at the last '@' so that an unencoded '@'
// inside a password does not truncate the host. IPv6 and IPvFuture literals
// keep their enclosing brackets as part of the host.
func splitAuthority(authority string) (userInfo, host, port string) {
	hostPort := authority
	if i := strings.LastIndexByte(authority, '@'); i >= 0 {
		userInfo, hostPort = authority[:i], authority[i+1:]
	}

	if strings.HasPrefix(hostPort, "[") {
		end := strings.LastIndexByte(hostPort, ']')
		if end < 0 {
			return userInfo, hostPort, ""
		}
		host = hostPort[:end+1]
		if len(hostPort) > end+1 && hostPort[end+1] == ':' {
			port = hostPort[end+2:]
		}
		return userInfo, host, port
	}

	if i := strings.LastIndexByte(hostPort, ':'); i >= 0 {
		return userInfo, hostPort[:i], hostPort[i+1:]
	}
	return userInfo, hostPort, ""
}
