// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package example

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/pydeploy/pkg/pysig"
)

func TestCurlCommand_EmptyBody(t *testing.T) {
	fn := pysig.Function{Name: "health"}
	cmd := CurlCommand("https://ws--app-web.modal.run/execute/o/r/health", fn)

	assert.Contains(t, cmd, "curl -X POST https://ws--app-web.modal.run/execute/o/r/health")
	assert.Contains(t, cmd, `-H "Content-Type: application/json"`)
	assert.Contains(t, cmd, "-d '{}'", "no required params means a literal empty object body")
}

func TestCurlCommand_RequiredOnly(t *testing.T) {
	funcs := pysig.Extract(`def greet(name: str, loud: bool = False):`)
	require.Len(t, funcs, 1)

	cmd := CurlCommand("https://ws--app-web.modal.run/execute/o/r/greet", funcs[0])
	assert.Contains(t, cmd, `"name": "World"`)
	assert.NotContains(t, cmd, "loud", "optional params stay out of the example body")
}

func TestCurlCommand_Deterministic(t *testing.T) {
	funcs := pysig.Extract("def f(b_second: int, a_first: str):")
	require.Len(t, funcs, 1)

	first := CurlCommand("https://e", funcs[0])
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, CurlCommand("https://e", funcs[0]))
	}
}
