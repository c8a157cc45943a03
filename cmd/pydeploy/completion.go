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
	"flag"
	"fmt"
	"os"

	"github.com/kraklabs/pydeploy/internal/errors"
)

// bashCompletionTemplate is the bash completion script for pydeploy.
const bashCompletionTemplate = `#!/bin/bash

# Bash completion script for pydeploy
# Installation:
#   source <(pydeploy completion bash)
#   Or add to ~/.bashrc:
#   echo 'source <(pydeploy completion bash)' >> ~/.bashrc

_pydeploy_completion() {
    local cur prev commands
    commands="init scan example deploy completion version"

    # Current word being completed
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Global flags
    if [[ ${cur} == -* ]] ; then
        COMPREPLY=( $(compgen -W "--version --config --json --quiet --no-color" -- ${cur}) )
        return 0
    fi

    # First argument: complete commands
    if [ $COMP_CWORD -eq 1 ]; then
        COMPREPLY=( $(compgen -W "${commands}" -- ${cur}) )
        return 0
    fi

    # Command-specific flag completion
    local cmd="${COMP_WORDS[1]}"
    case "${cmd}" in
        init)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--force -y --owner --repo --function --workspace --app" -- ${cur}) )
            fi
            ;;
        scan)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--json --debug --metrics-addr" -- ${cur}) )
            fi
            ;;
        example)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--function --include-optional --json" -- ${cur}) )
            fi
            ;;
        deploy)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--function --env --dir --debug --json" -- ${cur}) )
            fi
            ;;
        completion)
            # Complete shell names for completion command
            if [ $COMP_CWORD -eq 2 ]; then
                COMPREPLY=( $(compgen -W "bash zsh fish" -- ${cur}) )
            fi
            ;;
    esac
}

complete -F _pydeploy_completion pydeploy
`

// zshCompletionTemplate is the zsh completion script for pydeploy.
const zshCompletionTemplate = `#compdef pydeploy

# Zsh completion script for pydeploy
# Installation:
#   1. Ensure compinit is loaded (add to ~/.zshrc if not present):
#      autoload -U compinit; compinit
#   2. Save this script to a directory in your fpath:
#      pydeploy completion zsh > "${fpath[1]}/_pydeploy"
#   3. Reload completions:
#      rm -f ~/.zcompdump; compinit

_pydeploy() {
    local -a commands
    commands=(
        'init:Create .pydeploy/project.yaml configuration'
        'scan:Extract function signatures from Python files'
        'example:Synthesize an example request for a function'
        'deploy:Deploy a function and print its endpoint'
        'completion:Generate shell completion script'
        'version:Show version information'
    )

    _arguments -C \
        '(- *)--version[Show version and exit]' \
        '--config[Path to .pydeploy/project.yaml]:config file:_files -g "*.yaml"' \
        '--json[Machine-readable JSON output]' \
        '--quiet[Suppress progress output]' \
        '--no-color[Disable colored output]' \
        '1: :->command' \
        '*:: :->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                init)
                    _arguments \
                        '--force[Overwrite existing configuration]' \
                        '-y[Non-interactive mode]' \
                        '--owner[Repository owner]:owner:' \
                        '--repo[Repository name]:repo:' \
                        '--function[Default entry-point function]:function:' \
                        '--workspace[Modal workspace]:workspace:' \
                        '--app[Modal app]:app:'
                    ;;
                scan)
                    _arguments \
                        '--json[Output as JSON]' \
                        '--debug[Enable debug logging]' \
                        '--metrics-addr[Prometheus metrics address]:address:' \
                        '1:path:_files'
                    ;;
                example)
                    _arguments \
                        '--function[Function to target]:function:' \
                        '--include-optional[Include parameters with defaults]' \
                        '--json[Output as JSON]' \
                        '1:file:_files -g "*.py"'
                    ;;
                deploy)
                    _arguments \
                        '--function[Function to deploy]:function:' \
                        '*--env[Environment variable KEY=VALUE]:env:' \
                        '--dir[Project root]:directory:_directories' \
                        '--debug[Enable debug logging]' \
                        '--json[Output as JSON]' \
                        '1:file:_files -g "*.py"'
                    ;;
                completion)
                    _arguments \
                        '1:shell:(bash zsh fish)'
                    ;;
            esac
            ;;
    esac
}

_pydeploy
`

// fishCompletionTemplate is the fish completion script for pydeploy.
const fishCompletionTemplate = `# Fish completion script for pydeploy
# Installation:
#   1. Load completions for current session:
#      pydeploy completion fish | source
#   2. Install permanently:
#      pydeploy completion fish > ~/.config/fish/completions/pydeploy.fish

# Commands
complete -c pydeploy -f -n "__fish_use_subcommand" -a "init" -d "Create .pydeploy/project.yaml configuration"
complete -c pydeploy -f -n "__fish_use_subcommand" -a "scan" -d "Extract function signatures from Python files"
complete -c pydeploy -f -n "__fish_use_subcommand" -a "example" -d "Synthesize an example request for a function"
complete -c pydeploy -f -n "__fish_use_subcommand" -a "deploy" -d "Deploy a function and print its endpoint"
complete -c pydeploy -f -n "__fish_use_subcommand" -a "completion" -d "Generate shell completion script"
complete -c pydeploy -f -n "__fish_use_subcommand" -a "version" -d "Show version information"

# Global flags
complete -c pydeploy -l version -d "Show version and exit"
complete -c pydeploy -l config -d "Path to .pydeploy/project.yaml" -r
complete -c pydeploy -l json -d "Machine-readable JSON output"
complete -c pydeploy -l quiet -d "Suppress progress output"
complete -c pydeploy -l no-color -d "Disable colored output"

# init command flags
complete -c pydeploy -n "__fish_seen_subcommand_from init" -l force -d "Overwrite existing configuration"
complete -c pydeploy -n "__fish_seen_subcommand_from init" -s y -d "Non-interactive mode"
complete -c pydeploy -n "__fish_seen_subcommand_from init" -l owner -d "Repository owner" -r
complete -c pydeploy -n "__fish_seen_subcommand_from init" -l repo -d "Repository name" -r
complete -c pydeploy -n "__fish_seen_subcommand_from init" -l function -d "Default entry-point function" -r
complete -c pydeploy -n "__fish_seen_subcommand_from init" -l workspace -d "Modal workspace" -r
complete -c pydeploy -n "__fish_seen_subcommand_from init" -l app -d "Modal app" -r

# scan command flags
complete -c pydeploy -n "__fish_seen_subcommand_from scan" -l json -d "Output as JSON"
complete -c pydeploy -n "__fish_seen_subcommand_from scan" -l debug -d "Enable debug logging"
complete -c pydeploy -n "__fish_seen_subcommand_from scan" -l metrics-addr -d "Prometheus metrics address" -r

# example command flags
complete -c pydeploy -n "__fish_seen_subcommand_from example" -l function -d "Function to target" -r
complete -c pydeploy -n "__fish_seen_subcommand_from example" -l include-optional -d "Include parameters with defaults"
complete -c pydeploy -n "__fish_seen_subcommand_from example" -l json -d "Output as JSON"

# deploy command flags
complete -c pydeploy -n "__fish_seen_subcommand_from deploy" -l function -d "Function to deploy" -r
complete -c pydeploy -n "__fish_seen_subcommand_from deploy" -l env -d "Environment variable KEY=VALUE" -r
complete -c pydeploy -n "__fish_seen_subcommand_from deploy" -l dir -d "Project root" -r
complete -c pydeploy -n "__fish_seen_subcommand_from deploy" -l debug -d "Enable debug logging"
complete -c pydeploy -n "__fish_seen_subcommand_from deploy" -l json -d "Output as JSON"

# completion command arguments
complete -c pydeploy -n "__fish_seen_subcommand_from completion" -f -a "bash" -d "Generate bash completion script"
complete -c pydeploy -n "__fish_seen_subcommand_from completion" -f -a "zsh" -d "Generate zsh completion script"
complete -c pydeploy -n "__fish_seen_subcommand_from completion" -f -a "fish" -d "Generate fish completion script"
`

// runCompletion executes the 'completion' CLI command, generating
// shell-specific completion scripts for bash, zsh, or fish shells.
//
// Usage:
//
//	pydeploy completion [bash|zsh|fish]
//
// Examples:
//
//	pydeploy completion bash                          Output bash completion script
//	source <(pydeploy completion bash)                Load bash completions in current shell
//	pydeploy completion fish | source                 Load fish completions in current shell
func runCompletion(args []string) {
	fs := flag.NewFlagSet("completion", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: pydeploy completion <shell>

Description:
  Generate shell completion scripts for bash, zsh, or fish.

Arguments:
  shell    Shell type: bash, zsh, or fish (required)

Examples:
  # Load bash completions in current shell
  source <(pydeploy completion bash)

  # Install zsh completions permanently
  pydeploy completion zsh > "${fpath[1]}/_pydeploy"

  # Install fish completions permanently
  pydeploy completion fish > ~/.config/fish/completions/pydeploy.fish

Notes:
  After installing completions, restart your shell or source your rc file.

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		errors.FatalError(errors.NewInputError(
			"Invalid arguments",
			"The completion command requires exactly one argument: the shell name",
			"Run 'pydeploy completion bash', 'pydeploy completion zsh', or 'pydeploy completion fish'",
		), false)
	}

	switch shell := fs.Arg(0); shell {
	case "bash":
		fmt.Print(bashCompletionTemplate)
	case "zsh":
		fmt.Print(zshCompletionTemplate)
	case "fish":
		fmt.Print(fishCompletionTemplate)
	default:
		errors.FatalError(errors.NewInputError(
			"Unsupported shell",
			fmt.Sprintf("Shell '%s' is not supported. Valid options: bash, zsh, fish", shell),
			"Run 'pydeploy completion bash', 'pydeploy completion zsh', or 'pydeploy completion fish'",
		), false)
	}
}
