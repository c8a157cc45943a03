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

// Package testing provides fixture helpers for pydeploy tests.
//
// Tests across the module need Python source files on disk: the scan and
// example commands read single files, and the deploy layer reads from a
// project directory. These helpers build those fixtures in temp
// directories that are cleaned up automatically.
//
// # Quick Start
//
// Write a project and hand its root to a provider:
//
//	func TestMyFeature(t *testing.T) {
//	    root := testing.WriteProject(t, map[string]string{
//	        "handler.py": testing.Dedent(`
//	            def handler(name: str = "World"):
//	                return name
//	        `),
//	    })
//	    provider := deploy.DirProvider{Root: root}
//	    // ...
//	}
//
// Dedent exists so Python fixtures can be indented naturally inside Go
// raw strings without the margin leaking into the source. Indentation is
// significant in Python, so a leaked margin changes what gets scanned.
package testing
