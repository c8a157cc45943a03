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
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/kraklabs/pydeploy/internal/errors"
	"github.com/kraklabs/pydeploy/internal/output"
	"github.com/kraklabs/pydeploy/internal/ui"
	"github.com/kraklabs/pydeploy/pkg/deploy"
	"github.com/kraklabs/pydeploy/pkg/example"
	"github.com/kraklabs/pydeploy/pkg/pysig"
)

// ExampleResult is the example command output for JSON mode.
type ExampleResult struct {
	Function  string         `json:"function"`
	Signature string         `json:"signature"`
	Payload   map[string]any `json:"payload"`
	Endpoint  string         `json:"endpoint,omitempty"`
	Curl      string         `json:"curl,omitempty"`
}

// runExample executes the 'example' CLI command, synthesizing an example
// request payload for a function in a Python file.
//
// The payload values come from parameter name heuristics first, then type
// heuristics, then a generic fallback. With project configuration present
// the command also renders the endpoint URL and a ready-to-run curl
// command.
//
// Flags:
//   - --function: Function to target (default: selection policy)
//   - --include-optional: Include parameters that have defaults
//   - --json: Output results as JSON (default: false)
//
// Examples:
//
//	pydeploy example handler.py
//	pydeploy example handler.py --function process_data
//	pydeploy example handler.py --include-optional --json
func runExample(args []string, configPath string, globals GlobalFlags) {
	fs := flag.NewFlagSet("example", flag.ExitOnError)
	functionName := fs.String("function", "", "Function to target (default: selection policy)")
	includeOptional := fs.Bool("include-optional", false, "Include parameters that have defaults")
	jsonOutput := fs.Bool("json", false, "Output as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: pydeploy example [options] <file>

Synthesizes an example JSON request payload for a function, plus a curl
command against the deployed endpoint when project configuration exists.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *jsonOutput {
		globals.JSON = true
	}

	if fs.NArg() != 1 {
		errors.FatalError(errors.NewInputError(
			"Invalid arguments",
			"The example command requires exactly one argument: a Python file",
			"Run 'pydeploy example <file.py>'",
		), globals.JSON)
	}
	path := fs.Arg(0)

	// The endpoint needs owner/repo from project configuration; without
	// it the payload and signature still print.
	cfg, cfgErr := LoadConfig(configPath)

	name := *functionName
	if name == "" && cfgErr == nil {
		name = cfg.DefaultFunction
	}

	fn, err := resolveFunction(path, name)
	if err != nil {
		errors.FatalError(err, globals.JSON)
	}

	result := ExampleResult{
		Function:  fn.Name,
		Signature: fn.Signature(),
		Payload:   example.Payload(*fn, *includeOptional),
	}

	if cfgErr == nil {
		dispatcher := deploy.NewLocalDispatcher(cfg.Modal.Workspace, cfg.Modal.App, nil, nil)
		result.Endpoint = dispatcher.EndpointURL(cfg.Owner, cfg.Repo, fn.Name)
		result.Curl = example.CurlCommand(result.Endpoint, *fn)
	}

	if globals.JSON {
		if err := output.JSON(result); err != nil {
			errors.FatalError(err, true)
		}
		return
	}
	printExample(result, cfgErr != nil)
}

// resolveFunction extracts signatures from path and picks the target
// function: the named one when given, otherwise the selection policy
// with the file's base name as hint.
func resolveFunction(path, name string) (*pysig.Function, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the command argument
	if err != nil {
		return nil, errors.NewInputError(
			"Cannot read Python file",
			fmt.Sprintf("Failed to read %s", path),
			"Check the path and file permissions",
		)
	}

	funcs := pysig.Extract(string(data))
	if len(funcs) == 0 {
		return nil, errors.NewInputError(
			"No functions found",
			fmt.Sprintf("%s contains no def statements the scanner can read", path),
			"Pass a file that defines at least one top-level function",
		)
	}

	if name == "" {
		return pysig.SelectDefault(funcs, filenameHint(path)), nil
	}

	for i := range funcs {
		if funcs[i].Name == name {
			return &funcs[i], nil
		}
	}
	return nil, errors.NewNotFoundError(
		"Function not found",
		fmt.Sprintf("%s does not define %q", path, name),
		fmt.Sprintf("Run 'pydeploy scan %s' to list available functions", path),
	)
}

// printExample renders the example result as human-readable text.
func printExample(result ExampleResult, noConfig bool) {
	ui.Header("Example Request")
	fmt.Printf("%s %s\n", ui.Label("Function:"), result.Signature)
	fmt.Println()

	payload, err := json.MarshalIndent(result.Payload, "", "  ")
	if err != nil {
		payload = []byte("{}")
	}
	ui.SubHeader("Payload:")
	fmt.Println(string(payload))

	if noConfig {
		fmt.Println()
		ui.Warning("No project configuration; run 'pydeploy init' to get a curl example")
		return
	}

	fmt.Println()
	fmt.Printf("%s %s\n", ui.Label("Endpoint:"), result.Endpoint)
	fmt.Println()
	ui.SubHeader("Test it:")
	fmt.Println(result.Curl)
}
