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

// Package endpoint provides the server address value used by the Icehouse
// client driver. An Endpoint identifies one server as a host/port tuple; the
// driver's connection layer treats it as an opaque, comparable address.
package endpoint

import (
	"cmp"
	"encoding/binary"
	"net"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Endpoint specifies a host/port tuple.
//
// It is a plain immutable value: copy it, compare it with ==, use it as a
// map key. The zero Endpoint means "no address specified" and is not a
// connectable address; see IsZero.
type Endpoint struct {
	host string
	port uint16
}

// New creates a new endpoint.
//
// The host is stored verbatim; no validation or normalization is performed.
// Callers that obtain endpoints from untrusted text should use Parse, which
// validates the grammar and the port range.
func New(host string, port uint16) Endpoint {
	return Endpoint{
		host: host,
		port: port,
	}
}

// Host returns the host name or textual IP address.
func (e Endpoint) Host() string {
	return e.host
}

// Port returns the TCP port. 0 means the port is unspecified.
func (e Endpoint) Port() uint16 {
	return e.port
}

// IsZero returns true if the endpoint is the "no address specified" sentinel.
func (e Endpoint) IsZero() bool {
	return e.host == "" && e.port == 0
}

// Equal returns true if both endpoints have the same host and port. The host
// comparison is exact and case-sensitive. Equivalent to ==.
func (e Endpoint) Equal(other Endpoint) bool {
	return e == other
}

// Compare orders endpoints by host, then by port. It returns -1, 0 or 1 in
// the manner of strings.Compare.
//
// The ordering is an extension of the address value itself; it exists so
// that consumers iterating a sorted endpoint list attempt servers in a
// deterministic order.
func (e Endpoint) Compare(other Endpoint) int {
	if c := strings.Compare(e.host, other.host); c != 0 {
		return c
	}

	return cmp.Compare(e.port, other.port)
}

// Less returns true if the endpoint sorts before the other; see Compare.
func (e Endpoint) Less(other Endpoint) bool {
	return e.Compare(other) < 0
}

// Hash returns a 64-bit hash of the endpoint, consistent with Equal: equal
// endpoints hash equal. Distinct (host, port) pairs feed distinct byte
// streams to the hash, as the port occupies a fixed-width suffix.
func (e Endpoint) Hash() uint64 {
	var port [2]byte
	binary.BigEndian.PutUint16(port[:], e.port)

	digest := xxhash.New()
	_, _ = digest.WriteString(e.host)
	_, _ = digest.Write(port[:])

	return digest.Sum64()
}

// String implements the stringer interface. IPv6 literal hosts are
// bracketed, so the result re-parses with Parse. The zero endpoint formats
// as the empty string.
func (e Endpoint) String() string {
	if e.IsZero() {
		return ""
	}

	return net.JoinHostPort(e.host, strconv.FormatUint(uint64(e.port), 10))
}

// Network returns the network for the endpoint, which is always "tcp".
// Together with String this makes Endpoint satisfy net.Addr.
func (e Endpoint) Network() string {
	return "tcp"
}
