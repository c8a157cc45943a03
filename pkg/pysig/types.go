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

// Param describes one parameter of an extracted Python function.
//
// Type and Default hold the raw source tokens exactly as written; they
// are never validated or re-serialized. Required is true exactly when
// no default value was present in the source.
type Param struct {
	// Name is the parameter identifier.
	Name string `json:"name"`

	// Type is the raw type annotation, empty if none was written.
	Type string `json:"type,omitempty"`

	// Default is the raw source text of the default expression,
	// empty if the parameter has no default.
	Default string `json:"default,omitempty"`

	// Required is true iff no default value is present.
	Required bool `json:"required"`
}

// Function describes one callable definition found in a source file.
//
// Descriptors are created fresh on every Extract call and are purely
// in-memory transfer structures; nothing is persisted.
type Function struct {
	// Name is the function identifier from the def line.
	Name string `json:"name"`

	// Params holds the parameters in declaration order. Implicit
	// self/cls receivers are excluded.
	Params []Param `json:"params"`

	// Async is true when the definition used 'async def'.
	Async bool `json:"async"`

	// Decorated is true when an unbroken run of @decorator lines
	// immediately preceded the definition.
	Decorated bool `json:"decorated"`

	// Line is the 1-based line number of the def keyword. For a
	// multi-line parameter list this is the first line, not the last.
	Line int `json:"line"`
}

// Signature renders the function header as a display string, e.g.
//
//	async fetch(url: str, timeout: int = 30)
//
// Type and default tokens are reproduced verbatim from the source.
func (f Function) Signature() string {
	var b strings.Builder
	if f.Async {
		b.WriteString("async ")
	}
	b.WriteString(f.Name)
	b.WriteString("(")
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		if p.Type != "" {
			b.WriteString(": ")
			b.WriteString(p.Type)
		}
		if p.Default != "" {
			b.WriteString(" = ")
			b.WriteString(p.Default)
		}
	}
	b.WriteString(")")
	return b.String()
}

// RequiredParams returns the parameters that have no default value,
// in declaration order.
func (f Function) RequiredParams() []Param {
	var required []Param
	for _, p := range f.Params {
		if p.Required {
			required = append(required, p)
		}
	}
	return required
}
