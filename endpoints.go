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

import "slices"

// Endpoints is a list of endpoints, as held by a connection manager for a
// cluster of servers.
type Endpoints []Endpoint

// Sort sorts the list in place into Compare order, giving consumers a
// deterministic iteration order over discovered servers.
func (es Endpoints) Sort() {
	slices.SortFunc(es, Endpoint.Compare)
}

// Dedup returns a sorted copy of the list with duplicates removed. The
// receiver is left untouched.
func (es Endpoints) Dedup() Endpoints {
	deduped := slices.Clone(es)
	deduped.Sort()

	return slices.Compact(deduped)
}

// Contains returns true if the list contains the endpoint.
func (es Endpoints) Contains(e Endpoint) bool {
	return slices.Contains(es, e)
}

// Strings returns the formatted form of each endpoint, for diagnostics.
func (es Endpoints) Strings() []string {
	strs := make([]string, 0, len(es))
	for _, e := range es {
		strs = append(strs, e.String())
	}

	return strs
}
