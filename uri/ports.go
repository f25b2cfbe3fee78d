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

// defaultPorts maps a lowercase scheme name to its well-known port. It is
// initialized once and never mutated afterwards; a canonical URI never
// carries a port equal to its scheme's entry here.
var defaultPorts = map[string]int{
	"http":   80,
	"https":  443,
	"ftp":    21,
	"gopher": 70,
	"nntp":   119,
	"news":   119,
	"telnet": 23,
	"tn3270": 23,
	"imap":   143,
	"pop":    110,
	"ldap":   389,
}

// DefaultPort returns the well-known port for a scheme, and whether the
// scheme has one. The lookup is case-insensitive.
func DefaultPort(scheme string) (int, bool) {
	port, ok := defaultPorts[strings.ToLower(scheme)]
	return port, ok
}

// IsDefaultPort reports whether the URI carries no explicit port information:
// either no port is stored, or the stored port equals the well-known port of
// the URI's scheme.
func (u *Uri) IsDefaultPort() bool {
	if u.port == 0 {
		return true
	}
	port, ok := DefaultPort(u.scheme)
	return ok && port == u.port
}

// removeDefaultPort drops the stored port when it equals the scheme's
// well-known port. It runs after every scheme or port change so that a
// default port is never observable.
func (u *Uri) removeDefaultPort() {
	if u.port == 0 {
		return
	}
	if port, ok := DefaultPort(u.scheme); ok && port == u.port {
		u.port = 0
	}
}
