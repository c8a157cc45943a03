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

package pysig

import "testing"

func TestSignature(t *testing.T) {
	tests := []struct {
		name string
		fn   Function
		want string
	}{
		{
			name: "no params",
			fn:   Function{Name: "health"},
			want: "health()",
		},
		{
			name: "plain params",
			fn: Function{Name: "add", Params: []Param{
				{Name: "a", Required: true},
				{Name: "b", Required: true},
			}},
			want: "add(a, b)",
		},
		{
			name: "types and defaults verbatim",
			fn: Function{Name: "hello", Params: []Param{
				{Name: "name", Type: "str", Default: `"World"`},
			}},
			want: `hello(name: str = "World")`,
		},
		{
			name: "async prefix",
			fn: Function{Name: "fetch", Async: true, Params: []Param{
				{Name: "url", Type: "str", Required: true},
			}},
			want: "async fetch(url: str)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn.Signature(); got != tt.want {
				t.Errorf("Signature() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRequiredParams(t *testing.T) {
	fn := Function{Name: "f", Params: []Param{
		{Name: "a", Required: true},
		{Name: "b", Default: "1"},
		{Name: "c", Required: true},
	}}
	required := fn.RequiredParams()
	if len(required) != 2 || required[0].Name != "a" || required[1].Name != "c" {
		t.Errorf("RequiredParams() = %+v, want [a c]", required)
	}

	empty := Function{Name: "g"}
	if got := empty.RequiredParams(); len(got) != 0 {
		t.Errorf("no params should yield none, got %+v", got)
	}
}
