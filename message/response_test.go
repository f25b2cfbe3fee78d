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

//nolint:testpackage // Kept in-package for consistency with the other test files.
package message

import "testing"

func TestNewResponseDefaults(t *testing.T) {
	r, err := NewResponse(200)
	if err != nil {
		t.Fatalf("NewResponse: %v", err)
	}
	if got := r.StatusCode(); got != 200 {
		t.Errorf("StatusCode() = %d", got)
	}
	if got := r.ReasonPhrase(); got != "OK" {
		t.Errorf("ReasonPhrase() = %q, want OK", got)
	}
	if got := r.ProtocolVersion(); got != "1.1" {
		t.Errorf("ProtocolVersion() = %q", got)
	}
}

func TestNewResponseValidation(t *testing.T) {
	for _, code := range []int{0, 99, 600, -1} {
		if _, err := NewResponse(code); err == nil {
			t.Errorf("NewResponse(%d): expected error", code)
		}
	}
	// Unregistered but in-range codes are accepted with an empty phrase.
	r, err := NewResponse(599)
	if err != nil {
		t.Fatalf("NewResponse(599): %v", err)
	}
	if got := r.ReasonPhrase(); got != "" {
		t.Errorf("ReasonPhrase() = %q, want empty", got)
	}
}

func TestWithStatus(t *testing.T) {
	r, err := NewResponse(200)
	if err != nil {
		t.Fatalf("NewResponse: %v", err)
	}

	r2, err := r.WithStatus(404, "")
	if err != nil {
		t.Fatalf("WithStatus: %v", err)
	}
	if got := r2.ReasonPhrase(); got != "Not Found" {
		t.Errorf("ReasonPhrase() = %q, want standard phrase", got)
	}

	r3, err := r.WithStatus(404, "Nothing Here")
	if err != nil {
		t.Fatalf("WithStatus: %v", err)
	}
	if got := r3.ReasonPhrase(); got != "Nothing Here" {
		t.Errorf("ReasonPhrase() = %q, want custom phrase", got)
	}

	// The source is untouched.
	if got := r.StatusCode(); got != 200 {
		t.Errorf("source StatusCode() = %d after mutation", got)
	}

	same, err := r.WithStatus(200, "OK")
	if err != nil {
		t.Fatalf("WithStatus: %v", err)
	}
	if same != r {
		t.Error("unchanged status must return the receiver")
	}

	if _, err := r.WithStatus(1000, ""); err == nil {
		t.Error("out-of-range status: expected error")
	}
}

func TestReasonPhraseTable(t *testing.T) {
	testCases := []struct {
		code     int
		expected string
	}{
		{code: 100, expected: "Continue"},
		{code: 301, expected: "Moved Permanently"},
		{code: 418, expected: "I'm a teapot"},
		{code: 503, expected: "Service Unavailable"},
		{code: 299, expected: ""},
	}
	for _, tc := range testCases {
		if got := ReasonPhrase(tc.code); got != tc.expected {
			t.Errorf("ReasonPhrase(%d) = %q, want %q", tc.code, got, tc.expected)
		}
	}
}

func TestResponseHeaderAndBodyMutations(t *testing.T) {
	r, err := NewResponse(200)
	if err != nil {
		t.Fatalf("NewResponse: %v", err)
	}

	r2, err := r.WithHeader("Content-Type", "application/json")
	if err != nil {
		t.Fatalf("WithHeader: %v", err)
	}
	if r.HasHeader("Content-Type") {
		t.Error("source response mutated")
	}
	if got := r2.Header("content-type"); got != "application/json" {
		t.Errorf("Header() = %q", got)
	}

	r3 := r2.WithoutHeader("Content-Type")
	if r3.HasHeader("Content-Type") {
		t.Error("WithoutHeader left the header behind")
	}

	body := NewBufferStream([]byte(`{"ok":true}`))
	r4, err := r2.WithBody(body)
	if err != nil {
		t.Fatalf("WithBody: %v", err)
	}
	got, err := r4.Body().Contents()
	if err != nil || got != `{"ok":true}` {
		t.Errorf("Body().Contents() = (%q, %v)", got, err)
	}

	// Headers accessor returns a copy.
	headers := r2.Headers()
	headers.Del("Content-Type")
	if !r2.HasHeader("Content-Type") {
		t.Error("Headers() exposed internal storage")
	}
}
