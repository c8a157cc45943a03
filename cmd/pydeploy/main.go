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

// Package main implements the pydeploy CLI for scanning Python sources,
// synthesizing example requests, and deploying functions to an executor.
//
// Usage:
//
//	pydeploy init                      Create .pydeploy/project.yaml configuration
//	pydeploy scan [path]               Extract function signatures from Python files
//	pydeploy example <file> [--json]   Synthesize an example request payload
//	pydeploy deploy <file>             Deploy a function and print its endpoint
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kraklabs/pydeploy/internal/ui"
)

// Version information (set via ldflags during build)
var (
	version = "dev"     // Version string
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// GlobalFlags carries CLI-wide output settings into command handlers.
type GlobalFlags struct {
	// JSON selects machine-readable output and silences progress.
	JSON bool

	// Quiet suppresses progress bars and informational chatter.
	Quiet bool

	// NoColor disables ANSI colors in all output.
	NoColor bool
}

// main is the entry point for the pydeploy CLI.
//
// It parses global flags and dispatches to command handlers.
//
// Global flags:
//   - --version: Display version information and exit
//   - --config: Path to .pydeploy/project.yaml configuration file
//   - --json: Machine-readable output (implies --quiet)
//   - --quiet: Suppress progress output
//   - --no-color: Disable colored output
//
// Commands:
//   - init: Create .pydeploy/project.yaml configuration
//   - scan: Extract function signatures from Python files
//   - example: Synthesize an example request for a function
//   - deploy: Deploy a function and print its endpoint
//   - version: Show version information
func main() {
	// Global flags
	var (
		showVersion = flag.Bool("version", false, "Show version and exit")
		configPath  = flag.String("config", "", "Path to .pydeploy/project.yaml (default: ./.pydeploy/project.yaml)")
		jsonOut     = flag.Bool("json", false, "Machine-readable JSON output")
		quiet       = flag.Bool("quiet", false, "Suppress progress output")
		noColor     = flag.Bool("no-color", false, "Disable colored output")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `pydeploy - Deploy Python functions from a repository

pydeploy reads Python source files, extracts function signatures with a
lightweight line scanner, synthesizes example request payloads, and
deploys a chosen entry point behind an executor endpoint.

Usage:
  pydeploy <command> [options]

Commands:
  init          Create .pydeploy/project.yaml configuration
  scan          Extract function signatures from Python files
  example       Synthesize an example request for a function
  deploy        Deploy a function and print its endpoint
  completion    Generate shell completion script (bash|zsh|fish)
  version       Show version information

Global Options:
  --config      Path to .pydeploy/project.yaml
  --json        Machine-readable JSON output
  --quiet       Suppress progress output
  --no-color    Disable colored output
  --version     Show version and exit

Examples:
  pydeploy init                      Create configuration interactively
  pydeploy scan                      Scan *.py under the current directory
  pydeploy scan handler.py --json    Signatures of one file as JSON
  pydeploy example handler.py        Example payload and curl command
  pydeploy deploy handler.py         Deploy the default entry point
  pydeploy deploy handler.py --function process_data --env API_KEY=secret

Getting Started:
  1. Initialize configuration:  pydeploy init
  2. Inspect your functions:    pydeploy scan
  3. Preview a request:         pydeploy example handler.py
  4. Deploy the entry point:    pydeploy deploy handler.py

For detailed command help: pydeploy <command> --help

`)
	}

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	globals := GlobalFlags{
		JSON:    *jsonOut,
		Quiet:   *quiet || *jsonOut,
		NoColor: *noColor,
	}
	ui.InitColors(globals.NoColor)

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "init":
		runInit(cmdArgs)
	case "scan":
		runScan(cmdArgs, *configPath, globals)
	case "example":
		runExample(cmdArgs, *configPath, globals)
	case "deploy":
		runDeploy(cmdArgs, *configPath, globals)
	case "completion":
		runCompletion(cmdArgs)
	case "version":
		printVersion()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("pydeploy version %s\n", version)
	fmt.Printf("commit: %s\n", commit)
	fmt.Printf("built: %s\n", date)
}
