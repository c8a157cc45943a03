// Copyright 2026 KrakLabs
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

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kraklabs/pydeploy/internal/errors"
)

// Config is the project configuration stored in .pydeploy/project.yaml.
type Config struct {
	// Owner and Repo namespace deployments, matching the GitHub
	// repository the code comes from.
	Owner string `yaml:"owner"`
	Repo  string `yaml:"repo"`

	// DefaultFunction, when set, overrides entry-point selection for
	// deploy and example commands.
	DefaultFunction string `yaml:"default_function,omitempty"`

	// Modal names the executor deployment that answers endpoint URLs.
	Modal ModalConfig `yaml:"modal"`
}

// ModalConfig identifies the Modal workspace and app serving execution.
type ModalConfig struct {
	Workspace string `yaml:"workspace"`
	App       string `yaml:"app"`
}

// Executor defaults used when init is run without overrides.
const (
	defaultWorkspace = "scaile"
	defaultApp       = "github-run-mvp"
)

// ConfigDir returns the .pydeploy directory under dir.
func ConfigDir(dir string) string {
	return filepath.Join(dir, ".pydeploy")
}

// ConfigPath returns the project.yaml path under dir.
func ConfigPath(dir string) string {
	return filepath.Join(ConfigDir(dir), "project.yaml")
}

// DefaultConfig builds a configuration with executor defaults.
func DefaultConfig(owner, repo string) *Config {
	return &Config{
		Owner: owner,
		Repo:  repo,
		Modal: ModalConfig{
			Workspace: defaultWorkspace,
			App:       defaultApp,
		},
	}
}

// LoadConfig reads and validates the project configuration.
//
// An empty path defaults to ./.pydeploy/project.yaml. A missing file is
// a configuration error pointing the user at 'pydeploy init'.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("cannot determine working directory: %w", err)
		}
		path = ConfigPath(cwd)
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the user's own flag
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewConfigError(
				"No project configuration found",
				fmt.Sprintf("%s does not exist", path),
				"Run 'pydeploy init' to create it",
				err,
			)
		}
		return nil, errors.NewConfigError(
			"Cannot read project configuration",
			fmt.Sprintf("Failed to read %s", path),
			"Check file permissions",
			err,
		)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.NewConfigError(
			"Invalid project configuration",
			fmt.Sprintf("%s is not valid YAML", path),
			"Fix the file or re-run 'pydeploy init --force'",
			err,
		)
	}

	if cfg.Modal.Workspace == "" {
		cfg.Modal.Workspace = defaultWorkspace
	}
	if cfg.Modal.App == "" {
		cfg.Modal.App = defaultApp
	}

	if cfg.Owner == "" || cfg.Repo == "" {
		return nil, errors.NewConfigError(
			"Incomplete project configuration",
			fmt.Sprintf("%s is missing owner or repo", path),
			"Set 'owner' and 'repo' or re-run 'pydeploy init'",
			nil,
		)
	}

	return &cfg, nil
}

// SaveConfig writes cfg as YAML to path.
func SaveConfig(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return nil
}
