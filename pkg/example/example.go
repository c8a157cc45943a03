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

package example

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kraklabs/pydeploy/pkg/pysig"
)

// nameRule maps parameter-name substrings to a representative value.
type nameRule struct {
	keywords []string
	value    any
}

// nameRules is evaluated top to bottom against the lower-cased
// parameter name; the first substring hit wins. Order is load-bearing.
var nameRules = []nameRule{
	{[]string{"url", "link", "href"}, "https://example.com"},
	{[]string{"email", "mail"}, "user@example.com"},
	{[]string{"name", "username"}, "World"},
	{[]string{"path", "file"}, "/path/to/file"},
	{[]string{"id"}, "12345"},
	{[]string{"count", "num", "size"}, 10},
	{[]string{"enabled", "active", "flag"}, true},
}

var (
	intLitRe     = regexp.MustCompile(`^-?\d+$`)
	decimalLitRe = regexp.MustCompile(`^-?\d+\.\d+$`)
)

// Payload builds a best-guess JSON-compatible request body for one
// function. Required parameters always receive a synthesized value.
// Optional parameters are omitted unless includeOptional is set, in
// which case their parsed default is used; an optional parameter whose
// default token was lost gets no key at all rather than a guess.
//
// The result is deterministic for a given descriptor and flag.
func Payload(f pysig.Function, includeOptional bool) map[string]any {
	payload := make(map[string]any)
	for _, p := range f.Params {
		if p.Required {
			payload[p.Name] = guessValue(p)
			continue
		}
		if !includeOptional {
			continue
		}
		if p.Default != "" {
			payload[p.Name] = ParseDefault(p.Default)
		}
	}
	return payload
}

// guessValue resolves one parameter through the heuristic chains.
// Name rules win over type rules unconditionally.
func guessValue(p pysig.Param) any {
	lower := strings.ToLower(p.Name)
	for _, rule := range nameRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.value
			}
		}
	}
	if v, ok := valueForType(p.Type); ok {
		return v
	}
	return "example"
}

// valueForType maps a lower-cased annotation to a representative
// value. Optional[...] unwraps to its inner type.
func valueForType(annotation string) (any, bool) {
	typ := strings.ToLower(strings.TrimSpace(annotation))
	switch {
	case typ == "str" || typ == "string":
		return "example", true
	case typ == "int" || typ == "integer":
		return 0, true
	case typ == "float":
		return 0.0, true
	case typ == "bool" || typ == "boolean":
		return true, true
	case typ == "dict" || strings.HasPrefix(typ, "dict["):
		return map[string]any{}, true
	case typ == "list" || strings.HasPrefix(typ, "list["):
		return []any{}, true
	case strings.HasPrefix(typ, "optional["):
		inner := strings.TrimPrefix(typ, "optional[")
		inner = strings.TrimSuffix(inner, "]")
		return valueForType(inner)
	}
	return nil, false
}

// ParseDefault converts the raw source text of a Python default
// expression into a JSON-compatible value. Unrecognized expressions
// come back verbatim as strings, so parsing never fails.
func ParseDefault(token string) any {
	token = strings.TrimSpace(token)

	// Whole-token quoted strings, single or double.
	if len(token) >= 2 {
		first, last := token[0], token[len(token)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return token[1 : len(token)-1]
		}
	}

	switch token {
	case "True":
		return true
	case "False":
		return false
	case "None":
		return nil
	case "[]":
		return []any{}
	case "{}":
		return map[string]any{}
	}

	if intLitRe.MatchString(token) {
		if n, err := strconv.Atoi(token); err == nil {
			return n
		}
	}
	if decimalLitRe.MatchString(token) {
		if fl, err := strconv.ParseFloat(token, 64); err == nil {
			return fl
		}
	}

	return token
}
