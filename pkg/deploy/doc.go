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

// Package deploy turns an extracted entry point into a deployment
// request and dispatches it.
//
// The package defines the two collaborator seams around the signature
// core: ContentProvider supplies raw source text for a path, and
// Dispatcher takes source plus an entry-point name and answers with an
// endpoint URL. LocalDispatcher is the in-process implementation: it
// validates the entry point against the extracted signatures, stores
// the deployment in an in-memory Registry keyed owner/repo/function,
// and renders the executor endpoint URL. The network client to the
// sandboxed-execution service is deliberately not part of this module.
package deploy
