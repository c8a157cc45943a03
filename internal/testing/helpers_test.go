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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteScript verifies a single fixture file lands on disk.
func TestWriteScript(t *testing.T) {
	dir := t.TempDir()

	path := WriteScript(t, dir, "handler.py", "def handler():\n    pass\n")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "def handler():\n    pass\n", string(data))
	assert.Equal(t, filepath.Join(dir, "handler.py"), path)
}

// TestWriteScript_Nested verifies parent directories are created.
func TestWriteScript_Nested(t *testing.T) {
	dir := t.TempDir()

	path := WriteScript(t, dir, "pkg/util.py", "def helper():\n    pass\n")

	_, err := os.Stat(path)
	require.NoError(t, err)
}

// TestWriteProject verifies a multi-file project fixture.
func TestWriteProject(t *testing.T) {
	root := WriteProject(t, map[string]string{
		"main.py":  "def main():\n    pass\n",
		"utils.py": "def helper():\n    pass\n",
	})

	for _, name := range []string{"main.py", "utils.py"} {
		_, err := os.Stat(filepath.Join(root, name))
		require.NoError(t, err, "expected %s to exist", name)
	}
}

// TestDedent verifies margin stripping on indented raw strings.
func TestDedent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "common tab margin",
			in:   "\n\t\tdef handler():\n\t\t    pass\n",
			want: "def handler():\n    pass\n",
		},
		{
			name: "blank lines ignored for margin",
			in:   "\n\t\tdef a():\n\n\t\tdef b():\n",
			want: "def a():\n\ndef b():\n",
		},
		{
			name: "no margin is a no-op",
			in:   "def main():\n    pass\n",
			want: "def main():\n    pass\n",
		},
		{
			name: "relative indentation preserved",
			in:   "\n\tclass C:\n\t    def method(self):\n\t        pass\n",
			want: "class C:\n    def method(self):\n        pass\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dedent(tt.in))
		})
	}
}
