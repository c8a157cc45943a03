// Copyright 2026 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/pydeploy/internal/errors"
	"github.com/kraklabs/pydeploy/internal/output"
	"github.com/kraklabs/pydeploy/internal/ui"
	"github.com/kraklabs/pydeploy/pkg/deploy"
	"github.com/kraklabs/pydeploy/pkg/example"
	"github.com/kraklabs/pydeploy/pkg/pysig"
)

// DeployReport is the deploy command output for JSON mode.
type DeployReport struct {
	Function     string `json:"function"`
	Key          string `json:"key"`
	Endpoint     string `json:"endpoint"`
	DeploymentID string `json:"deployment_id"`
	Curl         string `json:"curl"`
}

// runDeploy executes the 'deploy' CLI command. It reads a Python file,
// picks the entry point, validates it against the extracted signatures,
// and registers the deployment, printing the endpoint and a curl command.
func runDeploy(args []string, configPath string, globals GlobalFlags) {
	fs := flag.NewFlagSet("deploy", flag.ExitOnError)
	functionName := fs.String("function", "", "Function to deploy (default: selection policy)")
	envVars := fs.StringArray("env", nil, "Environment variable KEY=VALUE (repeatable)")
	dir := fs.String("dir", ".", "Project root the file path is resolved against")
	debug := fs.Bool("debug", false, "Enable debug logging")
	jsonOutput := fs.Bool("json", false, "Output as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: pydeploy deploy [options] <file>

Description:
  Deploy a Python function behind an executor endpoint. This command:
  1. Reads the file through the project content provider.
  2. Extracts function signatures and picks the entry point.
  3. Validates the entry point and registers the deployment.
  4. Prints the endpoint URL and an example curl command.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  pydeploy deploy handler.py
  pydeploy deploy handler.py --function process_data
  pydeploy deploy handler.py --env API_KEY=secret --env MODE=prod
`)
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
			"The deploy command requires exactly one argument: a Python file",
			"Run 'pydeploy deploy <file.py>'",
		), globals.JSON)
	}
	file := fs.Arg(0)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		errors.FatalError(err, globals.JSON)
	}

	env, err := parseEnvVars(*envVars)
	if err != nil {
		errors.FatalError(errors.NewInputError(
			"Invalid --env value",
			err.Error(),
			"Pass environment variables as KEY=VALUE",
		), globals.JSON)
	}

	logger := newLogger(*debug)
	ctx := context.Background()

	provider := deploy.DirProvider{Root: *dir}
	code, err := provider.FileContent(ctx, file)
	if err != nil {
		errors.FatalError(errors.NewInputError(
			"Cannot read Python file",
			fmt.Sprintf("Failed to read %s under %s", file, *dir),
			"Check the path; it must stay inside the project root",
		), globals.JSON)
	}

	fn, err := pickEntryPoint(code, file, *functionName, cfg)
	if err != nil {
		errors.FatalError(err, globals.JSON)
	}

	dispatcher := deploy.NewLocalDispatcher(cfg.Modal.Workspace, cfg.Modal.App, nil, logger)
	req := deploy.Request{
		Code:         code,
		Owner:        cfg.Owner,
		Repo:         cfg.Repo,
		FunctionName: fn.Name,
		EnvVars:      env,
	}

	res, err := dispatcher.Deploy(ctx, req)
	if err != nil {
		errors.FatalError(errors.NewNetworkError(
			"Deployment failed",
			err.Error(),
			fmt.Sprintf("Run 'pydeploy scan %s' to list deployable functions", file),
			err,
		), globals.JSON)
	}

	report := DeployReport{
		Function:     fn.Name,
		Key:          req.Key(),
		Endpoint:     res.Endpoint,
		DeploymentID: res.DeploymentID,
		Curl:         example.CurlCommand(res.Endpoint, *fn),
	}

	if globals.JSON {
		if err := output.JSON(report); err != nil {
			errors.FatalError(err, true)
		}
		return
	}

	ui.Successf("Deployed %s as %s", fn.Name, report.Key)
	fmt.Printf("%s %s\n", ui.Label("Endpoint:"), report.Endpoint)
	fmt.Printf("%s %s\n", ui.Label("Deployment:"), report.DeploymentID)
	fmt.Println()
	ui.SubHeader("Test it:")
	fmt.Println(report.Curl)
}

// pickEntryPoint chooses the function to deploy: the --function flag,
// then the configured default, then the selection policy with the
// file's base name as hint.
func pickEntryPoint(code, file, flagName string, cfg *Config) (*pysig.Function, error) {
	funcs := pysig.Extract(code)
	if len(funcs) == 0 {
		return nil, errors.NewInputError(
			"No functions found",
			fmt.Sprintf("%s contains no def statements the scanner can read", file),
			"Pass a file that defines at least one top-level function",
		)
	}

	name := flagName
	if name == "" {
		name = cfg.DefaultFunction
	}
	if name == "" {
		return pysig.SelectDefault(funcs, filenameHint(file)), nil
	}

	for i := range funcs {
		if funcs[i].Name == name {
			return &funcs[i], nil
		}
	}
	return nil, errors.NewNotFoundError(
		"Function not found",
		fmt.Sprintf("%s does not define %q", file, name),
		fmt.Sprintf("Run 'pydeploy scan %s' to list available functions", file),
	)
}

// parseEnvVars converts KEY=VALUE pairs into a map, splitting on the
// first '=' so values may contain the character.
func parseEnvVars(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	env := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%q is not of the form KEY=VALUE", pair)
		}
		env[key] = value
	}
	return env, nil
}
