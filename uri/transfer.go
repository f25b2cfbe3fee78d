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

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// ToASCII returns the URI in pure-ASCII transfer form: an internationalized
// host is normalized to NFC and converted with IDNA (ToASCII), yielding a
// name that is resolvable in DNS. All other components are already
// percent-encoded ASCII by the component filters, so the host is the only
// part that can carry non-ASCII characters.
//
// A host that cannot be converted (or an IP literal, which has no IDNA form)
// is left as stored. ToASCII does not modify the receiver.
func (u *Uri) ToASCII() string {
	host := u.host
	if !isASCIIString(host) && !strings.HasPrefix(host, "[") {
		if converted, err := idna.ToASCII(norm.NFC.String(host)); err == nil {
			host = converted
		}
	}

	authority := composeAuthority(u.userInfo, host, u.port)
	return ComposeComponents(u.scheme, authority, u.path, u.query, u.fragment)
}

// isASCIIString reports whether s contains only ASCII bytes.
func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
