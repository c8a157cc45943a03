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

// Package example synthesizes realistic request payloads from extracted
// Python function signatures.
//
// There is no authoritative type system to consult, so values are
// guessed from ordered heuristic chains: parameter-name patterns first
// (a dict-typed parameter named url still gets a URL), then the type
// annotation, then a terminal "example" fallback. Every branch ends in
// a value, so synthesis never fails.
//
// Optional parameters keep their own defaults: when a default source
// token was captured it is parsed through a small Python-literal table
// (True/False/None, quoted strings, empty list/dict, numeric literals)
// and anything unrecognized is passed through verbatim as a string.
package example
