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

// Package message provides immutable HTTP request and response value objects
// on top of the uri package, together with the HeaderBag and Stream
// collaborators they are built from.
//
// Request and Response follow the same copy-on-write discipline as uri.Uri:
// every With* method validates its argument, then returns a new instance,
// leaving the receiver untouched. Header storage is pure storage; no header
// carries semantics here. Bodies are Streams, which are by nature stateful,
// so sharing a message across goroutines shares its body position too.
package message

import "github.com/pkg/errors"

// parts holds the state shared by requests and responses: protocol version,
// header storage and body. It is embedded by value, so copying the enclosing
// message copies it; the with* helpers clone the header bag before touching
// it.
type parts struct {
	protocol string
	headers  *HeaderBag
	body     Stream
}

// newParts returns the defaults for a freshly built message.
func newParts() parts {
	return parts{
		protocol: "1.1",
		headers:  NewHeaderBag(),
		body:     NewBufferStream(nil),
	}
}

// ProtocolVersion returns the HTTP protocol version, e.g. "1.1".
func (p parts) ProtocolVersion() string {
	return p.protocol
}

// Headers returns a copy of the header storage. Mutating the copy does not
// affect the message.
func (p parts) Headers() *HeaderBag {
	return p.headers.Clone()
}

// Header returns the values of the named header joined with ", ", or "" when
// absent. The name is matched case-insensitively.
func (p parts) Header(name string) string {
	return p.headers.Get(name)
}

// HeaderValues returns a copy of all values of the named header.
func (p parts) HeaderValues(name string) []string {
	return p.headers.Values(name)
}

// HasHeader reports whether the named header is present.
func (p parts) HasHeader(name string) bool {
	return p.headers.Has(name)
}

// Body returns the message body stream.
func (p parts) Body() Stream {
	return p.body
}

func (p parts) withProtocolVersion(version string) (parts, error) {
	if err := validateProtocolVersion(version); err != nil {
		return parts{}, err
	}
	p.protocol = version
	return p, nil
}

func (p parts) withHeader(name, value string) (parts, error) {
	headers := p.headers.Clone()
	if err := headers.Set(name, value); err != nil {
		return parts{}, err
	}
	p.headers = headers
	return p, nil
}

func (p parts) withAddedHeader(name, value string) (parts, error) {
	headers := p.headers.Clone()
	if err := headers.Add(name, value); err != nil {
		return parts{}, err
	}
	p.headers = headers
	return p, nil
}

func (p parts) withoutHeader(name string) parts {
	headers := p.headers.Clone()
	headers.Del(name)
	p.headers = headers
	return p
}

func (p parts) withBody(body Stream) (parts, error) {
	if body == nil {
		return parts{}, errors.New("body must not be nil; use an empty BufferStream")
	}
	p.body = body
	return p, nil
}

// validateProtocolVersion accepts the versions seen on the wire: "1.0",
// "1.1", "2", "2.0" and "3".
func validateProtocolVersion(version string) error {
	switch version {
	case "1.0", "1.1", "2", "2.0", "3":
		return nil
	}
	return errors.Errorf("unsupported HTTP protocol version %q", version)
}
