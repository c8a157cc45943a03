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
	"sort"
	"sync"
)

// Deployment is the stored payload for one deployed function.
type Deployment struct {
	Code    string
	EnvVars map[string]string
}

// Registry is an in-memory store of deployed functions keyed
// owner/repo/function. Deployments persist for the process lifetime
// only; durable storage belongs to the surrounding service.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Deployment
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Deployment)}
}

// Put stores or replaces the deployment under key.
func (r *Registry) Put(key string, d Deployment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[key] = d
}

// Get returns the deployment for key, if present.
func (r *Registry) Get(key string) (Deployment, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.funcs[key]
	return d, ok
}

// Keys returns all deployment keys, sorted for stable output.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.funcs))
	for k := range r.funcs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored deployments.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.funcs)
}
