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

//nolint:testpackage // White-box tests for header name/value validation helpers.
package message

import (
	"reflect"
	"testing"
)

func TestHeaderBagCaseInsensitiveLookup(t *testing.T) {
	h := NewHeaderBag()
	if err := h.Set("Content-Type", "text/plain"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	for _, name := range []string{"Content-Type", "content-type", "CONTENT-TYPE", "cOnTeNt-TyPe"} {
		if !h.Has(name) {
			t.Errorf("Has(%q) = false, want true", name)
		}
		if got := h.Get(name); got != "text/plain" {
			t.Errorf("Get(%q) = %q, want %q", name, got, "text/plain")
		}
	}
}

func TestHeaderBagPreservesCasingAndOrder(t *testing.T) {
	h := NewHeaderBag()
	for _, pair := range [][2]string{
		{"X-First", "1"},
		{"content-TYPE", "text/plain"},
		{"X-Last", "end"},
	} {
		if err := h.Add(pair[0], pair[1]); err != nil {
			t.Fatalf("Add(%q): %v", pair[0], err)
		}
	}

	expected := []string{"X-First", "content-TYPE", "X-Last"}
	if got := h.Names(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Names() = %v, want %v", got, expected)
	}

	// Add under a different casing keeps the first-seen casing and position.
	if err := h.Add("Content-Type", "charset=utf-8"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := h.Names(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Names() after re-add = %v, want %v", got, expected)
	}

	// Set replaces the reported casing but keeps the position.
	if err := h.Set("CONTENT-TYPE", "application/json"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	expected = []string{"X-First", "CONTENT-TYPE", "X-Last"}
	if got := h.Names(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Names() after Set = %v, want %v", got, expected)
	}
}

func TestHeaderBagMultiValue(t *testing.T) {
	h := NewHeaderBag()
	if err := h.Add("Accept", "text/html"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := h.Add("accept", "application/json"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	expected := []string{"text/html", "application/json"}
	if got := h.Values("ACCEPT"); !reflect.DeepEqual(got, expected) {
		t.Errorf("Values() = %v, want %v", got, expected)
	}
	if got := h.Get("Accept"); got != "text/html, application/json" {
		t.Errorf("Get() = %q, want joined values", got)
	}

	// Set collapses to a single value.
	if err := h.Set("Accept", "*/*"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := h.Values("Accept"); !reflect.DeepEqual(got, []string{"*/*"}) {
		t.Errorf("Values() after Set = %v, want [*/*]", got)
	}
}

func TestHeaderBagDel(t *testing.T) {
	h := NewHeaderBag()
	if err := h.Set("A", "1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := h.Set("B", "2"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	h.Del("a")
	if h.Has("A") {
		t.Error("Has(A) = true after Del")
	}
	if got := h.Names(); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("Names() = %v, want [B]", got)
	}
	if got := h.Values("A"); got != nil {
		t.Errorf("Values(A) = %v, want nil", got)
	}

	// Deleting an absent header is a no-op.
	h.Del("missing")
	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
}

func TestHeaderBagClone(t *testing.T) {
	h := NewHeaderBag()
	if err := h.Add("Accept", "text/html"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	clone := h.Clone()
	if err := clone.Add("Accept", "application/json"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	clone.Del("Accept")

	if got := h.Values("Accept"); !reflect.DeepEqual(got, []string{"text/html"}) {
		t.Errorf("source mutated through clone: Values() = %v", got)
	}
}

func TestHeaderValidation(t *testing.T) {
	h := NewHeaderBag()

	testCases := []struct {
		name       string
		headerName string
		value      string
		expectErr  bool
	}{
		{name: "plain header", headerName: "X-Custom", value: "ok"},
		{name: "empty name rejected", headerName: "", value: "x", expectErr: true},
		{name: "space in name rejected", headerName: "X Custom", value: "x", expectErr: true},
		{name: "colon in name rejected", headerName: "X:Custom", value: "x", expectErr: true},
		{name: "CR in value rejected", headerName: "X-Custom", value: "a\rb", expectErr: true},
		{name: "LF in value rejected", headerName: "X-Custom", value: "a\nb", expectErr: true},
		{name: "NUL in value rejected", headerName: "X-Custom", value: "a\x00b", expectErr: true},
		{name: "tab in value allowed", headerName: "X-Custom", value: "a\tb"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := h.Set(tc.headerName, tc.value)
			if tc.expectErr && err == nil {
				t.Errorf("Set(%q, %q) expected error", tc.headerName, tc.value)
			}
			if !tc.expectErr && err != nil {
				t.Errorf("Set(%q, %q) unexpected error: %v", tc.headerName, tc.value, err)
			}
		})
	}
}
