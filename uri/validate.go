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

	"go.uber.org/multierr"
)

// defaultHost is substituted for an empty host on schemes that require an
// authority to be usable.
const defaultHost = "localhost"

// schemeRequiresHost reports whether an empty host must be replaced by
// defaultHost for the given scheme.
func schemeRequiresHost(scheme string) bool {
	return scheme == "http" || scheme == "https"
}

// validateState enforces the cross-component invariants on a freshly built or
// mutated instance. It runs after every change to scheme, user info, host,
// port or path; query and fragment cannot violate any invariant.
//
// Two corrections are applied rather than rejected:
//
//   - an empty host on an http/https URI becomes "localhost";
//   - a rootless path on a URI with an authority gets a '/' prefix. RFC 3986,
//     Section 3.3 demands rejection here, but this package deliberately
//     corrects instead and emits a warning through the package logger, so
//     that the common mistake of joining path segments without a leading
//     slash keeps working.
//
// The remaining violations are collected and returned together.
func (u *Uri) validateState() error {
	if u.host == "" && schemeRequiresHost(u.scheme) {
		u.host = defaultHost
	}

	if u.Authority() == "" {
		var errs error
		if strings.HasPrefix(u.path, "//") {
			errs = multierr.Append(errs, errPathStartingWithSlashes)
		}
		if u.scheme == "" && strings.Contains(firstSegment(u.path), ":") {
			errs = multierr.Append(errs, errColonInFirstSegment)
		}
		return errs
	}

	if u.path != "" && !strings.HasPrefix(u.path, "/") {
		logger.Warn().
			Str("path", u.path).
			Str("host", u.host).
			Msg("path of a URI with an authority must start with a slash; prefixing")
		u.path = "/" + u.path
	}
	return nil
}

// firstSegment returns the path up to, but not including, the first '/'.
func firstSegment(path string) string {
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}
