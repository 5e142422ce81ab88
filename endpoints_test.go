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

package endpoint_test

import (
	"testing"

	endpoint "github.com/icehousedb/go-icehouse-endpoint"
	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	endpoints := endpoint.Endpoints{
		endpoint.New("b", 1),
		endpoint.New("a", 2),
		endpoint.New("a", 1),
		endpoint.New("c", 0),
	}
	endpoints.Sort()
	require.Equal(t, endpoint.Endpoints{
		endpoint.New("a", 1),
		endpoint.New("a", 2),
		endpoint.New("b", 1),
		endpoint.New("c", 0),
	}, endpoints)
}

func TestDedup(t *testing.T) {
	tests := []struct {
		name      string
		endpoints endpoint.Endpoints
		res       endpoint.Endpoints
	}{
		{
			name: "Duplicates",
			endpoints: endpoint.Endpoints{
				endpoint.New("a", 1),
				endpoint.New("a", 1),
				endpoint.New("b", 1),
			},
			res: endpoint.Endpoints{
				endpoint.New("a", 1),
				endpoint.New("b", 1),
			},
		},
		{
			name: "SamePortDifferentHosts",
			endpoints: endpoint.Endpoints{
				endpoint.New("b", 1),
				endpoint.New("a", 1),
				endpoint.New("b", 1),
				endpoint.New("a", 2),
			},
			res: endpoint.Endpoints{
				endpoint.New("a", 1),
				endpoint.New("a", 2),
				endpoint.New("b", 1),
			},
		},
		{
			name:      "Empty",
			endpoints: endpoint.Endpoints{},
			res:       endpoint.Endpoints{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.res, test.endpoints.Dedup())
		})
	}
}

func TestDedupLeavesReceiver(t *testing.T) {
	endpoints := endpoint.Endpoints{
		endpoint.New("b", 1),
		endpoint.New("a", 1),
		endpoint.New("a", 1),
	}
	_ = endpoints.Dedup()
	require.Equal(t, endpoint.Endpoints{
		endpoint.New("b", 1),
		endpoint.New("a", 1),
		endpoint.New("a", 1),
	}, endpoints)
}

func TestContains(t *testing.T) {
	endpoints := endpoint.Endpoints{
		endpoint.New("a", 1),
		endpoint.New("b", 1),
	}
	require.True(t, endpoints.Contains(endpoint.New("a", 1)))
	require.False(t, endpoints.Contains(endpoint.New("a", 2)))
	require.False(t, endpoints.Contains(endpoint.New("c", 1)))
}

func TestStrings(t *testing.T) {
	endpoints := endpoint.Endpoints{
		endpoint.New("example.com", 33000),
		endpoint.New("::1", 10800),
	}
	require.Equal(t, []string{"example.com:33000", "[::1]:10800"}, endpoints.Strings())
}
