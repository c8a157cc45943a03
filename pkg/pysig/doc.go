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

// Package pysig extracts callable function signatures from raw Python
// source text without invoking a Python interpreter or a real parser.
//
// The extractor is a line-oriented scanner, not a grammar. It walks the
// source once, recognizes def/async def headers (including multi-line
// parameter lists), tracks pending decorator lines, and records each
// match as a Function descriptor. Lines it cannot match are skipped
// silently: malformed input never produces an error, only a shorter
// result.
//
// Known, deliberate approximations:
//   - Only definitions indented 0-4 whitespace characters are extracted.
//     This captures top-level functions plus single-level nested
//     functions and class methods written with the 4-space convention.
//     Deeper nesting is ignored.
//   - Parameter lists are split on every comma. A default value that
//     contains a comma inside brackets (e.g. Dict[str, int] = {}) will
//     be misparsed. Downstream consumers tolerate this.
//
// The package also hosts the entry-point selection policy: given the
// extracted descriptors and an optional filename hint, SelectDefault
// picks the function most likely intended as the deployed handler.
package pysig
