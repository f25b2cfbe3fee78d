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

// ComposeComponents assembles the five top-level URI parts into a reference
// string per RFC 3986, Section 5.3. It is a pure function and performs no
// validation or correction: callers are expected to pass components that
// already satisfy the cross-component invariants.
//
// As a special case, the "//" authority separator is emitted for the "file"
// scheme even when the authority is empty, because common file-access tooling
// requires the "file:///path" form.
func ComposeComponents(scheme, authority, path, query, fragment string) string {
	var b strings.Builder
	b.Grow(len(scheme) + len(authority) + len(path) + len(query) + len(fragment) + 6)

	if scheme != "" {
		b.WriteString(scheme)
		b.WriteByte(':')
	}
	if authority != "" || scheme == "file" {
		b.WriteString("//")
		b.WriteString(authority)
	}
	b.WriteString(path)
	if query != "" {
		b.WriteByte('?')
		b.WriteString(query)
	}
	if fragment != "" {
		b.WriteByte('#')
		b.WriteString(fragment)
	}
	return b.String()
}
