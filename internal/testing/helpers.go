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

package testing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteScript writes a Python source fixture under dir and returns the
// full path. Parent directories in name are created as needed, so nested
// paths like "pkg/util.py" work.
//
// Example:
//
//	path := testing.WriteScript(t, t.TempDir(), "handler.py", source)
func WriteScript(t *testing.T, dir, name, source string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create fixture directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
	return path
}

// WriteProject creates a temp directory populated with the given Python
// files and returns its root. The directory is removed when the test
// finishes (via t.TempDir).
//
// Example:
//
//	root := testing.WriteProject(t, map[string]string{
//	    "main.py":  mainSource,
//	    "utils.py": utilsSource,
//	})
func WriteProject(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, source := range files {
		WriteScript(t, root, name, source)
	}
	return root
}

// Dedent strips the common leading whitespace margin from every non-blank
// line of s and trims one leading newline. It lets Python fixtures sit
// indented inside Go raw strings without the margin reaching the file.
//
// Blank lines are ignored when computing the margin and emitted empty.
func Dedent(s string) string {
	s = strings.TrimPrefix(s, "\n")
	lines := strings.Split(s, "\n")

	margin := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if margin < 0 || indent < margin {
			margin = indent
		}
	}
	if margin <= 0 {
		return s
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			out[i] = ""
			continue
		}
		out[i] = line[margin:]
	}
	return strings.Join(out, "\n")
}
