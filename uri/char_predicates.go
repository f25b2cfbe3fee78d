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

// isASCIILetter checks if a byte is an ASCII letter.
func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// isASCIIDigit checks if a byte is an ASCII digit.
func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isASCIIHexDigit checks if a byte is an ASCII hexadecimal digit.
func isASCIIHexDigit(c byte) bool {
	return isASCIIDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// isUnreserved checks if a byte is in the unreserved set as defined by
// RFC 3986, Section 2.3.
func isUnreserved(c byte) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || c == '-' || c == '.' || c == '_' || c == '~'
}

// isSubDelim checks if a byte is in the sub-delims set as defined by
// RFC 3986, Section 2.2.
func isSubDelim(c byte) bool {
	switch c {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}

// isUserInfoByte reports whether a byte may appear unencoded in the userinfo
// component. The ':' separator between user and password is handled by the
// caller, so it is not part of this set.
func isUserInfoByte(c byte) bool {
	return isUnreserved(c) || isSubDelim(c)
}

// isPathByte reports whether a byte may appear unencoded in the path
// component (RFC 3986 pchar plus the '/' segment separator).
func isPathByte(c byte) bool {
	return isUnreserved(c) || isSubDelim(c) || c == ':' || c == '@' || c == '/'
}

// isQueryOrFragmentByte reports whether a byte may appear unencoded in the
// query or fragment components. These extend the path set with '?'.
func isQueryOrFragmentByte(c byte) bool {
	return isPathByte(c) || c == '?'
}

// isSchemeToken reports whether s is a valid scheme token per RFC 3986,
// Section 3.1: ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func isSchemeToken(s string) bool {
	if s == "" || !isASCIILetter(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !isASCIILetter(c) && !isASCIIDigit(c) && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return true
}
