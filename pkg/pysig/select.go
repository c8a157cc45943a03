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

import "strings"

// entryPointNames are the conventional handler names, in preference
// order. The order is load-bearing: each name is looked up against the
// whole list before the next is tried, so a 'main' anywhere in the
// file beats a 'handler' that appears earlier.
var entryPointNames = []string{"main", "handler", "execute", "run"}

// SelectDefault picks the function most likely intended as the
// deployed entry point. Priority, first match wins:
//
//  1. Exact match on filenameHint (when non-empty), typically the
//     source file's base name without extension.
//  2. A function named main, handler, execute, or run, tried as four
//     sequential exact-name lookups in that order.
//  3. The first function whose name does not start with underscore.
//  4. The first function, unconditionally.
//
// Returns nil only when funcs is empty.
func SelectDefault(funcs []Function, filenameHint string) *Function {
	if len(funcs) == 0 {
		return nil
	}

	if filenameHint != "" {
		if f := byName(funcs, filenameHint); f != nil {
			return f
		}
	}

	for _, name := range entryPointNames {
		if f := byName(funcs, name); f != nil {
			return f
		}
	}

	for i := range funcs {
		if !strings.HasPrefix(funcs[i].Name, "_") {
			return &funcs[i]
		}
	}

	return &funcs[0]
}

// byName returns the first function with an exactly matching name.
func byName(funcs []Function, name string) *Function {
	for i := range funcs {
		if funcs[i].Name == name {
			return &funcs[i]
		}
	}
	return nil
}
