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

import (
	"regexp"
	"strings"
	"time"
)

// maxDefIndent is the deepest leading indentation (in whitespace
// characters) at which a definition is still extracted. The threshold
// deliberately includes one nesting level so that class methods and
// single-level nested functions written with the 4-space convention
// are picked up as deployable candidates. Do not change without
// checking downstream consumers.
const maxDefIndent = 4

var (
	// defHeadRe matches the start of a def/async def header and
	// captures indent, async keyword, name, and everything after '('.
	defHeadRe = regexp.MustCompile(`^([ \t]*)(async\s+)?def\s+([A-Za-z_]\w*)\s*\((.*)$`)

	// headTailRe matches the end of a header: closing paren,
	// optional return annotation, then the colon.
	headTailRe = regexp.MustCompile(`\)\s*(->.*?)?\s*:`)

	// paramRe matches one parameter: identifier, optional ': type'
	// (type ends at '=' if present), optional '= default'.
	paramRe = regexp.MustCompile(`^([A-Za-z_]\w*)\s*(?::\s*([^=]*?))?\s*(?:=\s*(.*))?$`)
)

// Extract scans Python source text and returns a descriptor for every
// def/async def found at indentation 0-4. It is a best-effort single
// forward pass: lines that do not match are skipped and malformed
// input never produces an error, only fewer (or zero) descriptors.
func Extract(source string) []Function {
	start := time.Now()

	lines := strings.Split(source, "\n")
	var funcs []Function
	pendingDecorator := false

	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])

		if strings.HasPrefix(trimmed, "@") {
			pendingDecorator = true
			continue
		}
		// Blank and comment lines never break a decorator run.
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		m := defHeadRe.FindStringSubmatch(lines[i])
		if m == nil {
			pendingDecorator = false
			continue
		}

		if len(m[1]) > maxDefIndent {
			// Too deeply nested to be a deployable candidate. The
			// definition still consumes any pending decorator run.
			pendingDecorator = false
			continue
		}

		defLine := i + 1

		// Accumulate continuation lines until the header closes.
		// Joined with a single space so a multi-line parameter list
		// parses identically to its single-line form.
		head := m[4]
		for !headTailRe.MatchString(head) && i+1 < len(lines) {
			i++
			head += " " + strings.TrimSpace(lines[i])
		}
		loc := headTailRe.FindStringIndex(head)
		if loc == nil {
			// Header never closed; skip what remains.
			pendingDecorator = false
			continue
		}

		funcs = append(funcs, Function{
			Name:      m[3],
			Params:    parseParams(head[:loc[0]]),
			Async:     strings.TrimSpace(m[2]) == "async",
			Decorated: pendingDecorator,
			Line:      defLine,
		})
		pendingDecorator = false
	}

	recordExtract(len(funcs), time.Since(start))
	return funcs
}

// parseParams splits a parameter-list substring on commas and parses
// each piece. The split is intentionally not bracket-aware: a default
// value with a comma inside brackets misparses, and that behavior is
// part of the contract with existing consumers.
func parseParams(list string) []Param {
	var params []Param
	for _, piece := range strings.Split(list, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		// Implicit receivers are dropped, exact match only.
		if piece == "self" || piece == "cls" {
			continue
		}
		params = append(params, parseParam(piece))
	}
	return params
}

// parseParam parses a single parameter substring. When the substring
// does not match the name[: type][= default] shape at all, the whole
// trimmed text becomes the parameter name with no type and no default.
func parseParam(piece string) Param {
	idx := paramRe.FindStringSubmatchIndex(piece)
	if idx == nil {
		recordParamFallback()
		return Param{Name: piece, Required: true}
	}

	p := Param{Name: piece[idx[2]:idx[3]]}
	if idx[4] >= 0 {
		p.Type = strings.TrimSpace(piece[idx[4]:idx[5]])
	}
	// Required tracks the presence of the '=' capture, not its
	// content: an empty default is not a realistic occurrence.
	if idx[6] >= 0 {
		p.Default = strings.TrimSpace(piece[idx[6]:idx[7]])
	} else {
		p.Required = true
	}
	recordParam()
	return p
}
