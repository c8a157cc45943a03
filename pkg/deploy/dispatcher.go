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

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kraklabs/pydeploy/pkg/pysig"
)

// LocalDispatcher implements Dispatcher against an in-memory Registry.
// It validates the requested entry point against the extracted
// signatures before storing, so a bad function name fails at deploy
// time instead of at first call.
type LocalDispatcher struct {
	// Workspace and App name the executor deployment that answers
	// the rendered endpoint URL.
	Workspace string
	App       string

	registry *Registry
	logger   *slog.Logger
	now      func() time.Time
}

// NewLocalDispatcher creates a dispatcher backed by registry.
// A nil logger uses slog.Default().
func NewLocalDispatcher(workspace, app string, registry *Registry, logger *slog.Logger) *LocalDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	if registry == nil {
		registry = NewRegistry()
	}
	return &LocalDispatcher{
		Workspace: workspace,
		App:       app,
		registry:  registry,
		logger:    logger,
		now:       time.Now,
	}
}

// Registry exposes the backing store, mainly for status displays.
func (d *LocalDispatcher) Registry() *Registry {
	return d.registry
}

// Deploy validates the entry point, stores the deployment, and
// returns the endpoint URL plus a deployment ID.
func (d *LocalDispatcher) Deploy(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Owner == "" || req.Repo == "" || req.FunctionName == "" {
		return nil, fmt.Errorf("deploy: owner, repo and function_name are required")
	}

	if !hasFunction(req.Code, req.FunctionName) {
		available := AvailableFunctions(req.Code)
		if len(available) == 0 {
			return nil, fmt.Errorf("function %q not found: no callable functions detected in code", req.FunctionName)
		}
		return nil, fmt.Errorf("function %q not found, available functions: %s",
			req.FunctionName, strings.Join(available, ", "))
	}

	key := req.Key()
	d.registry.Put(key, Deployment{Code: req.Code, EnvVars: req.EnvVars})

	result := &Result{
		Endpoint:     d.EndpointURL(req.Owner, req.Repo, req.FunctionName),
		DeploymentID: fmt.Sprintf("deploy_%d", d.now().Unix()),
	}

	d.logger.Info("deploy.store",
		"key", key,
		"endpoint", result.Endpoint,
		"deployment_id", result.DeploymentID,
	)
	return result, nil
}

// EndpointURL renders the executor URL for a deployed function:
// https://<workspace>--<app>-web.modal.run/execute/<owner>/<repo>/<fn>
func (d *LocalDispatcher) EndpointURL(owner, repo, function string) string {
	return fmt.Sprintf("https://%s--%s-web.modal.run/execute/%s/%s/%s",
		d.Workspace, d.App, owner, repo, function)
}

// AvailableFunctions lists the deployable entry-point names in source:
// extracted functions whose names do not start with underscore.
func AvailableFunctions(source string) []string {
	var names []string
	for _, f := range pysig.Extract(source) {
		if !strings.HasPrefix(f.Name, "_") {
			names = append(names, f.Name)
		}
	}
	return names
}

// hasFunction reports whether source defines a function named name.
func hasFunction(source, name string) bool {
	for _, f := range pysig.Extract(source) {
		if f.Name == name {
			return true
		}
	}
	return false
}
