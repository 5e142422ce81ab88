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
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// MarshalZerologObject implements zerolog.LogObjectMarshaler, so callers
// log endpoints as structured fields:
//
//	log.Info().EmbedObject(endpoint).Msg("connecting")
func (e Endpoint) MarshalZerologObject(evt *zerolog.Event) {
	evt.Str("host", e.host).Uint16("port", e.port)
}

// Attributes returns the endpoint as OpenTelemetry server attributes, for
// spans covering a connection attempt against it.
func (e Endpoint) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		semconv.ServerAddress(e.host),
		semconv.ServerPort(int(e.port)),
	}
}
