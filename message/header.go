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

package message

import (
	"strings"

	"github.com/pkg/errors"
)

// HeaderBag is case-insensitive, case-preserving, ordered multi-value header
// storage. Lookups match any casing, Names reports the casing a header was
// first stored with, and iteration order is insertion order. HeaderBag stores
// values only; it attaches no semantics to any header name.
//
// The zero value is not usable; create instances with NewHeaderBag. A
// HeaderBag is mutable and not safe for concurrent writes; the message types
// clone it on every mutation instead of sharing it.
type HeaderBag struct {
	order  []string            // lowercase names, insertion order
	casing map[string]string   // lowercase name -> first-seen casing
	values map[string][]string // lowercase name -> values, insertion order
}

// NewHeaderBag returns an empty HeaderBag.
func NewHeaderBag() *HeaderBag {
	return &HeaderBag{
		casing: make(map[string]string),
		values: make(map[string][]string),
	}
}

// Len returns the number of distinct header names stored.
func (h *HeaderBag) Len() int {
	return len(h.order)
}

// Has reports whether at least one value is stored under name, matched
// case-insensitively.
func (h *HeaderBag) Has(name string) bool {
	_, ok := h.values[strings.ToLower(name)]
	return ok
}

// Get returns the values stored under name joined with ", ", or "" when the
// header is absent.
func (h *HeaderBag) Get(name string) string {
	return strings.Join(h.values[strings.ToLower(name)], ", ")
}

// Values returns a copy of all values stored under name, in the order they
// were added. It returns nil when the header is absent.
func (h *HeaderBag) Values(name string) []string {
	stored := h.values[strings.ToLower(name)]
	if stored == nil {
		return nil
	}
	out := make([]string, len(stored))
	copy(out, stored)
	return out
}

// Names returns every stored header name in insertion order, each with the
// casing it was first stored with.
func (h *HeaderBag) Names() []string {
	out := make([]string, len(h.order))
	for i, lower := range h.order {
		out[i] = h.casing[lower]
	}
	return out
}

// Set replaces all values stored under name. The given casing becomes the
// reported one; the insertion position of an existing header is kept.
func (h *HeaderBag) Set(name, value string) error {
	if err := validateHeaderName(name); err != nil {
		return err
	}
	if err := validateHeaderValue(name, value); err != nil {
		return err
	}
	lower := strings.ToLower(name)
	if _, ok := h.values[lower]; !ok {
		h.order = append(h.order, lower)
	}
	h.casing[lower] = name
	h.values[lower] = []string{value}
	return nil
}

// Add appends a value under name, keeping any existing values. The casing of
// the first store wins.
func (h *HeaderBag) Add(name, value string) error {
	if err := validateHeaderName(name); err != nil {
		return err
	}
	if err := validateHeaderValue(name, value); err != nil {
		return err
	}
	lower := strings.ToLower(name)
	if _, ok := h.values[lower]; !ok {
		h.order = append(h.order, lower)
		h.casing[lower] = name
	}
	h.values[lower] = append(h.values[lower], value)
	return nil
}

// Del removes all values stored under name. Removing an absent header is a
// no-op.
func (h *HeaderBag) Del(name string) {
	lower := strings.ToLower(name)
	if _, ok := h.values[lower]; !ok {
		return
	}
	delete(h.values, lower)
	delete(h.casing, lower)
	for i, stored := range h.order {
		if stored == lower {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Clone returns a deep copy. Mutating the clone never affects the source.
func (h *HeaderBag) Clone() *HeaderBag {
	out := &HeaderBag{
		order:  make([]string, len(h.order)),
		casing: make(map[string]string, len(h.casing)),
		values: make(map[string][]string, len(h.values)),
	}
	copy(out.order, h.order)
	for k, v := range h.casing {
		out.casing[k] = v
	}
	for k, v := range h.values {
		vv := make([]string, len(v))
		copy(vv, v)
		out.values[k] = vv
	}
	return out
}

// validateHeaderName checks a header name against the RFC 7230 token grammar.
func validateHeaderName(name string) error {
	if name == "" {
		return errors.New("header name must not be empty")
	}
	for i := 0; i < len(name); i++ {
		if !isTokenByte(name[i]) {
			return errors.Errorf("header name %q contains invalid character %q", name, name[i])
		}
	}
	return nil
}

// validateHeaderValue rejects values that would allow header line injection.
func validateHeaderValue(name, value string) error {
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '\r', '\n', 0:
			return errors.Errorf("value of header %q contains a forbidden control character", name)
		}
	}
	return nil
}

// isTokenByte reports whether c is an RFC 7230 tchar.
func isTokenByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}
