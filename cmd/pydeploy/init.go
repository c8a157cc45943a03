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
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// initFlags holds parsed flags for the init command.
type initFlags struct {
	force, nonInteractive        bool
	owner, repo, defaultFunction string
	workspace, app               string
}

// runInit executes the 'init' CLI command, creating a .pydeploy/project.yaml
// configuration file.
//
// It creates the configuration directory, generates a default configuration,
// and optionally prompts the user for customization in interactive mode.
//
// Flags:
//   - --force: Overwrite existing configuration (default: false)
//   - -y: Non-interactive mode, use all defaults (default: false)
//   - --owner: Repository owner (default: prompted)
//   - --repo: Repository name (default: directory name)
//   - --function: Default entry-point function name
//   - --workspace: Modal workspace serving execution (default: scaile)
//   - --app: Modal app serving execution (default: github-run-mvp)
//
// Examples:
//
//	pydeploy init                              Interactive setup
//	pydeploy init -y --owner acme --repo api   Use defaults, no prompts
//	pydeploy init --force                      Overwrite existing config
func runInit(args []string) {
	flags := parseInitFlags(args)

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot get current directory: %v\n", err)
		os.Exit(1)
	}

	configPath := ConfigPath(cwd)
	if _, err := os.Stat(configPath); err == nil && !flags.force {
		fmt.Fprintf(os.Stderr, "Error: %s already exists. Use --force to overwrite.\n", configPath)
		os.Exit(1)
	}

	cfg := createInitConfig(cwd, flags)

	if !flags.nonInteractive {
		runInteractiveConfig(bufio.NewReader(os.Stdin), cfg)
	}

	saveInitConfig(cwd, configPath, cfg)
	printNextSteps()
}

func parseInitFlags(args []string) initFlags {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	var f initFlags
	fs.BoolVar(&f.force, "force", false, "Overwrite existing configuration")
	fs.BoolVar(&f.nonInteractive, "y", false, "Non-interactive mode (use defaults)")
	fs.StringVar(&f.owner, "owner", "", "Repository owner")
	fs.StringVar(&f.repo, "repo", "", "Repository name (default: directory name)")
	fs.StringVar(&f.defaultFunction, "function", "", "Default entry-point function name")
	fs.StringVar(&f.workspace, "workspace", "", "Modal workspace serving execution")
	fs.StringVar(&f.app, "app", "", "Modal app serving execution")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: pydeploy init [options]

Creates .pydeploy/project.yaml configuration file.

Examples:
  pydeploy init --owner acme --repo billing-api
  pydeploy init -y                      # Non-interactive with defaults
  pydeploy init --force                 # Overwrite existing config

Options:
`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	return f
}

func createInitConfig(cwd string, f initFlags) *Config {
	repo := f.repo
	if repo == "" {
		repo = filepath.Base(cwd)
	}
	cfg := DefaultConfig(f.owner, repo)
	if f.defaultFunction != "" {
		cfg.DefaultFunction = f.defaultFunction
	}
	if f.workspace != "" {
		cfg.Modal.Workspace = f.workspace
	}
	if f.app != "" {
		cfg.Modal.App = f.app
	}
	return cfg
}

func runInteractiveConfig(reader *bufio.Reader, cfg *Config) {
	fmt.Println("pydeploy Project Configuration")
	fmt.Println("==============================")
	fmt.Println()

	cfg.Owner = prompt(reader, "Repository owner", cfg.Owner)
	cfg.Repo = prompt(reader, "Repository name", cfg.Repo)
	cfg.DefaultFunction = prompt(reader, "Default function (empty to auto-select)", cfg.DefaultFunction)

	fmt.Println()
	fmt.Println("Executor (Modal) settings")
	cfg.Modal.Workspace = prompt(reader, "Workspace", cfg.Modal.Workspace)
	cfg.Modal.App = prompt(reader, "App", cfg.Modal.App)
	fmt.Println()
}

func saveInitConfig(cwd, configPath string, cfg *Config) {
	dir := ConfigDir(cwd)
	if err := os.MkdirAll(dir, 0750); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot create .pydeploy directory: %v\n", err)
		os.Exit(1)
	}
	if err := SaveConfig(cfg, configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot save configuration: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created %s\n", configPath)
	addToGitignore(cwd)
}

func printNextSteps() {
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Review and edit .pydeploy/project.yaml if needed")
	fmt.Println("  2. Run 'pydeploy scan' to inspect your functions")
	fmt.Println("  3. Run 'pydeploy deploy <file>' to deploy an entry point")
}

// prompt displays an interactive prompt and reads user input from stdin.
//
// If the user presses Enter without providing input, the defaultValue is
// returned.
func prompt(reader *bufio.Reader, label, defaultValue string) string {
	if defaultValue != "" {
		fmt.Printf("%s [%s]: ", label, defaultValue)
	} else {
		fmt.Printf("%s: ", label)
	}

	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)

	if input == "" {
		return defaultValue
	}
	return input
}

// addToGitignore adds .pydeploy/ to the project's .gitignore file if not
// already present.
//
// It safely appends the entry, avoiding duplicates. If .gitignore does not
// exist or cannot be modified, the function silently returns.
func addToGitignore(dir string) {
	gitignorePath := filepath.Join(dir, ".gitignore")

	content, err := os.ReadFile(gitignorePath) //nolint:gosec // G304: gitignorePath built from repo dir
	if err != nil {
		// No .gitignore, nothing to do
		return
	}

	lines := strings.Split(string(content), "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == ".pydeploy/" || line == ".pydeploy" || line == "/.pydeploy/" || line == "/.pydeploy" {
			return // Already present
		}
	}

	f, err := os.OpenFile(gitignorePath, os.O_APPEND|os.O_WRONLY, 0600) //nolint:gosec // G304: gitignorePath built from repo dir
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()

	if len(content) > 0 && content[len(content)-1] != '\n' {
		_, _ = f.WriteString("\n")
	}

	_, _ = f.WriteString("\n# pydeploy configuration\n.pydeploy/\n")
	fmt.Println("Added .pydeploy/ to .gitignore")
}
