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
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler, so an Endpoint drops
// straight into JSON and YAML configuration structs. The zero endpoint
// marshals as the empty string.
func (e Endpoint) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the Parse
// grammar. The empty string yields the zero endpoint, so an omitted
// configuration key round-trips.
func (e *Endpoint) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*e = Endpoint{}
		return nil
	}

	parsed, err := Parse(string(data))
	if err != nil {
		return errors.Wrap(err, "failed to unmarshal endpoint")
	}
	*e = parsed

	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler. YAML decoding does not go
// through encoding.TextUnmarshaler, so this is spelled out for it.
func (e *Endpoint) UnmarshalYAML(node *yaml.Node) error {
	var text string
	if err := node.Decode(&text); err != nil {
		return errors.Wrap(err, "endpoint must be a string scalar")
	}

	return e.UnmarshalText([]byte(text))
}
