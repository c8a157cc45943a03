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
	"encoding/json"
	"fmt"

	"github.com/kraklabs/pydeploy/pkg/pysig"
)

// CurlCommand renders a representative invocation of the deployed
// endpoint. Only required parameters are included in the body; when
// the function takes none, the body is a literal empty object.
//
// Example output:
//
//	curl -X POST https://example.modal.run/execute/o/r/greet \
//	  -H "Content-Type: application/json" \
//	  -d '{
//	  "name": "World"
//	}'
func CurlCommand(endpoint string, f pysig.Function) string {
	body := "{}"
	if payload := Payload(f, false); len(payload) > 0 {
		// Map keys are sorted by the encoder, so the rendered
		// command is deterministic.
		if data, err := json.MarshalIndent(payload, "", "  "); err == nil {
			body = string(data)
		}
	}
	return fmt.Sprintf("curl -X POST %s \\\n  -H \"Content-Type: application/json\" \\\n  -d '%s'", endpoint, body)
}
