// Copyright © 2025 Icehouse Database Limited.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package endpoint

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError is returned when text does not match the endpoint grammar or
// the port is outside the 16-bit range.
type ParseError struct {
	// Text is the offending input, verbatim.
	Text string
	// Reason describes what was wrong with it.
	Reason string

	cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid endpoint %q: %s", e.Text, e.Reason)
}

// Unwrap returns the underlying cause, if any.
func (e *ParseError) Unwrap() error {
	return e.cause
}

// Parse parses an endpoint from its textual form. The accepted grammar is:
//
//	host            bare host, port unspecified (0)
//	host:port       the port is split off at the last colon
//	[host]          bracketed host, for IPv6 literals
//	[host]:port
//
// An unbracketed host containing a colon is rejected as ambiguous rather
// than guessed at. The port must be a base-10 number in 0-65535. On failure
// Parse returns the zero Endpoint and a *ParseError; it never returns a
// partially parsed value.
func Parse(s string) (Endpoint, error) {
	if s == "" {
		return Endpoint{}, &ParseError{Text: s, Reason: "empty endpoint"}
	}

	host := s
	portText := ""
	if strings.HasPrefix(s, "[") {
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return Endpoint{}, &ParseError{Text: s, Reason: "missing ] after bracketed host"}
		}
		host = s[1:end]
		switch rest := s[end+1:]; {
		case rest == "":
			// Bracketed host without a port.
		case strings.HasPrefix(rest, ":"):
			portText = rest[1:]
		default:
			return Endpoint{}, &ParseError{Text: s, Reason: fmt.Sprintf("unexpected %q after bracketed host", rest)}
		}
	} else if i := strings.LastIndexByte(s, ':'); i >= 0 {
		host = s[:i]
		portText = s[i+1:]
		if strings.Contains(host, ":") {
			return Endpoint{}, &ParseError{Text: s, Reason: "too many colons; bracket IPv6 literals as [host]:port"}
		}
	}

	if host == "" {
		return Endpoint{}, &ParseError{Text: s, Reason: "empty host"}
	}

	port := uint64(0)
	if portText != "" || strings.HasSuffix(s, ":") {
		var err error
		port, err = strconv.ParseUint(portText, 10, 16)
		if err != nil {
			return Endpoint{}, &ParseError{
				Text:   s,
				Reason: fmt.Sprintf("port %q is not a number in 0-65535", portText),
				cause:  err,
			}
		}
	}

	return Endpoint{host: host, port: uint16(port)}, nil
}

// MustParse is Parse that panics on invalid input. It is intended for
// package-level defaults and tests.
func MustParse(s string) Endpoint {
	endpoint, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return endpoint
}
