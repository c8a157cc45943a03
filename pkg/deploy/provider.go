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

package deploy

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirProvider serves file content from a local checkout. It stands in
// for the remote repository client, which performs the actual network
// fetch and base64 decode and lives outside this module.
type DirProvider struct {
	// Root is the checkout directory all paths are resolved under.
	Root string
}

var _ ContentProvider = DirProvider{}

// FileContent reads the file at path relative to Root and returns it
// as UTF-8 text. Paths escaping the root are rejected.
func (p DirProvider) FileContent(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	clean := filepath.Clean(path)
	if filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("path %q escapes the repository root", path)
	}

	data, err := os.ReadFile(filepath.Join(p.Root, clean))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
