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
	"errors"
	"fmt"
)

// InvalidArgumentError is the error type returned whenever a component value
// or a combination of component values cannot form a valid URI. It is raised
// at construction or mutation time, never when reading an already valid
// instance.
type InvalidArgumentError struct {
	Message string
	Err     error
}

// Error returns the string representation of the error.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid URI argument: %s", e.Message)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

// newInvalidArgument creates an *InvalidArgumentError with a formatted message.
func newInvalidArgument(format string, args ...any) *InvalidArgumentError {
	return &InvalidArgumentError{Message: fmt.Sprintf(format, args...)}
}

var (
	// errPathStartingWithSlashes is returned when a URI has no authority but
	// its path starts with "//". Such a reference is ambiguous with a
	// network-path reference and is disallowed by RFC 3986, Section 3.3.
	errPathStartingWithSlashes = newInvalidArgument(
		"a URI without authority must not have a path starting with //")
	// errColonInFirstSegment is returned when a URI has neither scheme nor
	// authority and the first path segment contains a colon. Such a reference
	// is ambiguous with an absolute URI (RFC 3986, Section 4.2).
	errColonInFirstSegment = newInvalidArgument(
		"a URI without scheme and authority must not have a colon in the first path segment")
	// errUnparsable is returned when the generic splitter cannot take a URI
	// reference apart at all.
	errUnparsable = newInvalidArgument("unable to parse URI reference")
)

// IsInvalidArgument reports whether err is, or wraps, an *InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var target *InvalidArgumentError
	return errors.As(err, &target)
}
