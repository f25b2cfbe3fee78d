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
	"strconv"
	"strings"
)

const upperHex = "0123456789ABCDEF"

// filterScheme canonicalizes a scheme to lowercase and validates it against
// the RFC 3986 scheme grammar. The empty scheme is allowed and means "no
// scheme".
func filterScheme(scheme string) (string, error) {
	if scheme == "" {
		return "", nil
	}
	lowered := strings.ToLower(scheme)
	if !isSchemeToken(lowered) {
		return "", newInvalidArgument("scheme %q must start with a letter and contain only letters, digits, '+', '-' and '.'", scheme)
	}
	return lowered, nil
}

// filterHost canonicalizes a host to lowercase. No DNS or IP-literal
// validation is performed; the empty host is allowed.
func filterHost(host string) string {
	return strings.ToLower(host)
}

// filterPort validates a port number against the valid TCP/UDP port range.
// Absence of a port is expressed by leaving the component out (WithoutPort,
// or an empty port in a parsed authority), never by a sentinel value here.
func filterPort(port int) (int, error) {
	if port < 1 || port > 65535 {
		return 0, newInvalidArgument("port %d must be between 1 and 65535", port)
	}
	return port, nil
}

// parsePort converts the textual port of a split authority into an integer
// and range-checks it.
func parsePort(port string) (int, error) {
	if port == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return 0, &InvalidArgumentError{
			Message: "port \"" + port + "\" is not numeric",
			Err:     err,
		}
	}
	return filterPort(n)
}

// filterUserInfo percent-encodes a single userinfo element (the user or the
// password). The ':' separating user and password is added by the caller and
// is therefore encoded when it appears inside either element.
func filterUserInfo(s string) string {
	return encodeComponent(s, isUserInfoByte)
}

// filterParsedUserInfo normalizes a raw userinfo component as produced by the
// splitter, where a first ':' separates user from password.
func filterParsedUserInfo(userInfo string) string {
	user, password, found := strings.Cut(userInfo, ":")
	if !found {
		return filterUserInfo(user)
	}
	return filterUserInfo(user) + ":" + filterUserInfo(password)
}

// filterPath percent-encodes every byte of a path that is not an unreserved
// character, a sub-delimiter, one of ':', '@', '/', or part of an existing
// valid percent-encoded triplet. The operation is idempotent.
func filterPath(path string) string {
	return encodeComponent(path, isPathByte)
}

// filterQueryAndFragment is filterPath with '?' additionally allowed, as
// required for the query and fragment components.
func filterQueryAndFragment(s string) string {
	return encodeComponent(s, isQueryOrFragmentByte)
}

// encodeComponent scans s byte by byte and percent-encodes every byte that
// the allowed predicate rejects. An existing valid triplet ('%' followed by
// two hex digits) is passed through untouched so that applying the filter
// twice yields the same result as applying it once. A bare '%' is encoded
// as "%25".
func encodeComponent(s string, allowed func(byte) bool) string {
	// Fast path: return the input unchanged when no byte needs work.
	clean := true
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == '%' || !allowed(c) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' {
			if i+2 < len(s) && isASCIIHexDigit(s[i+1]) && isASCIIHexDigit(s[i+2]) {
				b.WriteByte('%')
				b.WriteByte(s[i+1])
				b.WriteByte(s[i+2])
				i += 2
				continue
			}
			b.WriteString("%25")
			continue
		}
		if allowed(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}
	return b.String()
}
