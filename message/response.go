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

import "github.com/pkg/errors"

// reasonPhrases maps status codes to the standard reason phrases of RFC 7231
// and friends. Codes without an entry get an empty phrase.
var reasonPhrases = map[int]string{
	100: "Continue",
	101: "Switching Protocols",
	102: "Processing",
	103: "Early Hints",
	200: "OK",
	201: "Created",
	202: "Accepted",
	203: "Non-Authoritative Information",
	204: "No Content",
	205: "Reset Content",
	206: "Partial Content",
	207: "Multi-Status",
	208: "Already Reported",
	226: "IM Used",
	300: "Multiple Choices",
	301: "Moved Permanently",
	302: "Found",
	303: "See Other",
	304: "Not Modified",
	305: "Use Proxy",
	307: "Temporary Redirect",
	308: "Permanent Redirect",
	400: "Bad Request",
	401: "Unauthorized",
	402: "Payment Required",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	406: "Not Acceptable",
	407: "Proxy Authentication Required",
	408: "Request Timeout",
	409: "Conflict",
	410: "Gone",
	411: "Length Required",
	412: "Precondition Failed",
	413: "Content Too Large",
	414: "URI Too Long",
	415: "Unsupported Media Type",
	416: "Range Not Satisfiable",
	417: "Expectation Failed",
	418: "I'm a teapot",
	421: "Misdirected Request",
	422: "Unprocessable Content",
	423: "Locked",
	424: "Failed Dependency",
	425: "Too Early",
	426: "Upgrade Required",
	428: "Precondition Required",
	429: "Too Many Requests",
	431: "Request Header Fields Too Large",
	451: "Unavailable For Legal Reasons",
	500: "Internal Server Error",
	501: "Not Implemented",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
	505: "HTTP Version Not Supported",
	506: "Variant Also Negotiates",
	507: "Insufficient Storage",
	508: "Loop Detected",
	510: "Not Extended",
	511: "Network Authentication Required",
}

// ReasonPhrase returns the standard reason phrase for a status code, or ""
// when none is registered.
func ReasonPhrase(code int) string {
	return reasonPhrases[code]
}

// Response is an immutable HTTP response value object. Build one with
// NewResponse, derive changed ones with the With* methods.
type Response struct {
	parts
	status int
	reason string
}

// NewResponse returns a response with the given status code, its standard
// reason phrase, protocol version 1.1, empty headers and an empty body.
func NewResponse(status int) (*Response, error) {
	if err := validateStatus(status); err != nil {
		return nil, err
	}
	return &Response{
		parts:  newParts(),
		status: status,
		reason: ReasonPhrase(status),
	}, nil
}

// StatusCode returns the response status code.
func (r *Response) StatusCode() int {
	return r.status
}

// ReasonPhrase returns the response's reason phrase. It may be empty: the
// reason phrase is informational and optional on the wire.
func (r *Response) ReasonPhrase() string {
	return r.reason
}

// WithStatus returns a response with the given status code and reason
// phrase. An empty reason selects the standard phrase for the code.
func (r *Response) WithStatus(status int, reason string) (*Response, error) {
	if err := validateStatus(status); err != nil {
		return nil, err
	}
	if reason == "" {
		reason = ReasonPhrase(status)
	}
	if status == r.status && reason == r.reason {
		return r, nil
	}
	clone := *r
	clone.status = status
	clone.reason = reason
	return &clone, nil
}

// WithProtocolVersion returns a response with the given protocol version.
func (r *Response) WithProtocolVersion(version string) (*Response, error) {
	p, err := r.parts.withProtocolVersion(version)
	if err != nil {
		return nil, err
	}
	clone := *r
	clone.parts = p
	return &clone, nil
}

// WithHeader returns a response where the named header holds exactly value.
func (r *Response) WithHeader(name, value string) (*Response, error) {
	p, err := r.parts.withHeader(name, value)
	if err != nil {
		return nil, err
	}
	clone := *r
	clone.parts = p
	return &clone, nil
}

// WithAddedHeader returns a response with value appended to the named header.
func (r *Response) WithAddedHeader(name, value string) (*Response, error) {
	p, err := r.parts.withAddedHeader(name, value)
	if err != nil {
		return nil, err
	}
	clone := *r
	clone.parts = p
	return &clone, nil
}

// WithoutHeader returns a response without the named header.
func (r *Response) WithoutHeader(name string) *Response {
	clone := *r
	clone.parts = r.parts.withoutHeader(name)
	return &clone
}

// WithBody returns a response with the given body stream.
func (r *Response) WithBody(body Stream) (*Response, error) {
	p, err := r.parts.withBody(body)
	if err != nil {
		return nil, err
	}
	clone := *r
	clone.parts = p
	return &clone, nil
}

// validateStatus checks that a status code lies in the range HTTP defines.
func validateStatus(status int) error {
	if status < 100 || status > 599 {
		return errors.Errorf("status code %d must be between 100 and 599", status)
	}
	return nil
}
