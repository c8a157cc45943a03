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

func named(names ...string) []Function {
	funcs := make([]Function, len(names))
	for i, n := range names {
		funcs[i] = Function{Name: n}
	}
	return funcs
}

func TestSelectDefault_Empty(t *testing.T) {
	if f := SelectDefault(nil, ""); f != nil {
		t.Errorf("empty input must select nothing, got %+v", f)
	}
	if f := SelectDefault([]Function{}, "main"); f != nil {
		t.Errorf("empty input must select nothing even with a hint, got %+v", f)
	}
}

func TestSelectDefault_FilenameHint(t *testing.T) {
	funcs := named("main", "custom")
	f := SelectDefault(funcs, "custom")
	if f == nil || f.Name != "custom" {
		t.Errorf("filename hint outranks main, got %+v", f)
	}
}

func TestSelectDefault_HintMissFallsThrough(t *testing.T) {
	funcs := named("helper", "run")
	f := SelectDefault(funcs, "no_such_name")
	if f == nil || f.Name != "run" {
		t.Errorf("unmatched hint should fall through to entry-point names, got %+v", f)
	}
}

func TestSelectDefault_EntryPointOrder(t *testing.T) {
	// 'main' wins regardless of position in the list.
	funcs := named("f_a", "main", "f_b")
	f := SelectDefault(funcs, "")
	if f == nil || f.Name != "main" {
		t.Errorf("main should win, got %+v", f)
	}

	// 'handler' appears before 'main' in the file, but the lookup
	// order is sequential per name, not first-in-file.
	funcs = named("handler", "main")
	f = SelectDefault(funcs, "")
	if f == nil || f.Name != "main" {
		t.Errorf("main outranks an earlier handler, got %+v", f)
	}

	funcs = named("run", "execute")
	f = SelectDefault(funcs, "")
	if f == nil || f.Name != "execute" {
		t.Errorf("execute outranks run, got %+v", f)
	}
}

func TestSelectDefault_SkipsUnderscore(t *testing.T) {
	funcs := named("_private", "_helper", "public_fn")
	f := SelectDefault(funcs, "")
	if f == nil || f.Name != "public_fn" {
		t.Errorf("first non-underscore name should win, got %+v", f)
	}
}

func TestSelectDefault_AllUnderscore(t *testing.T) {
	funcs := named("_first", "_second")
	f := SelectDefault(funcs, "")
	if f == nil || f.Name != "_first" {
		t.Errorf("with only underscore names the first wins, got %+v", f)
	}
}

func TestSelectDefault_FirstByDefault(t *testing.T) {
	funcs := named("alpha", "beta")
	f := SelectDefault(funcs, "")
	if f == nil || f.Name != "alpha" {
		t.Errorf("first function should win, got %+v", f)
	}
}
