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

package deploy

import "context"

// Request describes one deployment: the source text of a Python file
// and the entry-point function to expose, namespaced by repository.
type Request struct {
	// Code is the full raw source text of the file.
	Code string `json:"code"`

	// Owner and Repo namespace the deployment.
	Owner string `json:"owner"`
	Repo  string `json:"repo"`

	// FunctionName is the entry point to expose as the handler.
	FunctionName string `json:"function_name"`

	// EnvVars are optional environment variables set for execution.
	EnvVars map[string]string `json:"env_vars,omitempty"`
}

// Key returns the namespaced deployment key owner/repo/function.
func (r Request) Key() string {
	return r.Owner + "/" + r.Repo + "/" + r.FunctionName
}

// Result is the outcome of a successful dispatch.
type Result struct {
	// Endpoint is the public URL the deployed function answers on.
	Endpoint string `json:"endpoint"`

	// DeploymentID identifies this deployment, e.g. deploy_1735689600.
	DeploymentID string `json:"deployment_id"`
}

// ContentProvider supplies raw UTF-8 source text for a repository
// path. Implementations own the fetch and decode; the signature core
// only ever sees the returned text.
type ContentProvider interface {
	FileContent(ctx context.Context, path string) (string, error)
}

// Dispatcher takes a deployment request and answers with the endpoint
// it will be served on.
type Dispatcher interface {
	Deploy(ctx context.Context, req Request) (*Result, error)
}
