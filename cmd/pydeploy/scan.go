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
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kraklabs/pydeploy/internal/errors"
	"github.com/kraklabs/pydeploy/internal/output"
	"github.com/kraklabs/pydeploy/internal/ui"
	"github.com/kraklabs/pydeploy/pkg/pysig"
)

// FileReport is the scan result for one Python file.
type FileReport struct {
	// Path is the scanned file, relative to the scan root when walking
	// a directory.
	Path string `json:"path"`

	// Functions are the extracted signatures in source order.
	Functions []pysig.Function `json:"functions"`

	// Default is the entry point the selection policy would pick for
	// this file, empty when nothing is extractable.
	Default string `json:"default,omitempty"`
}

// runScan executes the 'scan' CLI command, extracting function signatures
// from a Python file or every *.py file under a directory.
//
// Flags:
//   - --json: Output results as JSON (default: false)
//   - --debug: Enable debug logging (default: false)
//   - --metrics-addr: HTTP address for Prometheus metrics (default: disabled)
//
// Examples:
//
//	pydeploy scan                    Scan *.py under the current directory
//	pydeploy scan handler.py         Scan a single file
//	pydeploy scan src/ --json        Scan a tree, output JSON
func runScan(args []string, configPath string, globals GlobalFlags) {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	jsonOutput := fs.Bool("json", false, "Output as JSON")
	debug := fs.Bool("debug", false, "Enable debug logging")
	metricsAddr := fs.String("metrics-addr", "", "HTTP listen address for Prometheus metrics (empty to disable)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: pydeploy scan [options] [path]

Extracts function signatures from a Python file or from every *.py file
under a directory (default: current directory). Marks the entry point
the deploy command would select by default.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *jsonOutput {
		globals.JSON = true
		globals.Quiet = true
	}

	logger := newLogger(*debug)

	// Optional Prometheus metrics endpoint, matching the extractor's
	// pydeploy_sig_* series.
	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			srv := &http.Server{Addr: *metricsAddr, Handler: mux}
			logger.Info("metrics.http.start", "addr", *metricsAddr, "path", "/metrics")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Warn("metrics.http.error", "err", err)
			}
		}()
	}

	target := "."
	if fs.NArg() > 0 {
		target = fs.Arg(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reports, err := scanTarget(ctx, logger, target, globals)
	if err != nil {
		errors.FatalError(err, globals.JSON)
	}

	if globals.JSON {
		if err := output.JSON(reports); err != nil {
			errors.FatalError(err, true)
		}
		return
	}
	printReports(reports)
}

// scanTarget scans a single file, or walks a directory for *.py files.
func scanTarget(ctx context.Context, logger *slog.Logger, target string, globals GlobalFlags) ([]FileReport, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, errors.NewNotFoundError(
			"Cannot scan path",
			fmt.Sprintf("%s does not exist", target),
			"Check the path and try again",
		)
	}

	if !info.IsDir() {
		report, err := scanFile(logger, target, target)
		if err != nil {
			return nil, err
		}
		return []FileReport{report}, nil
	}

	files, err := collectPyFiles(target)
	if err != nil {
		return nil, errors.NewInternalError(
			"Cannot walk directory",
			fmt.Sprintf("Failed while listing Python files under %s", target),
			"Check directory permissions",
			err,
		)
	}

	bar := NewProgressBar(NewProgressConfig(globals), int64(len(files)), "Scanning")

	var reports []FileReport
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rel, relErr := filepath.Rel(target, path)
		if relErr != nil {
			rel = path
		}
		report, err := scanFile(logger, path, rel)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	logger.Info("scan.done", "files", len(reports))
	return reports, nil
}

// scanFile extracts signatures from one file and applies the default
// entry-point selection with the file's base name as the hint.
func scanFile(logger *slog.Logger, path, displayPath string) (FileReport, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the scan target
	if err != nil {
		return FileReport{}, errors.NewInputError(
			"Cannot read Python file",
			fmt.Sprintf("Failed to read %s", path),
			"Check the path and file permissions",
		)
	}

	funcs := pysig.Extract(string(data))
	report := FileReport{Path: displayPath, Functions: funcs}
	if sel := pysig.SelectDefault(funcs, filenameHint(path)); sel != nil {
		report.Default = sel.Name
	}

	logger.Debug("scan.file", "path", displayPath, "functions", len(funcs), "default", report.Default)
	return report, nil
}

// collectPyFiles lists *.py files under root, skipping hidden
// directories (including .pydeploy) and common vendored trees.
func collectPyFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || name == "__pycache__" || name == "node_modules") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(name, ".py") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// filenameHint derives the selection hint from a path: the base name
// without its .py extension.
func filenameHint(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".py")
}

// printReports renders scan results as human-readable tables.
func printReports(reports []FileReport) {
	for i, r := range reports {
		if i > 0 {
			fmt.Println()
		}
		ui.SubHeader(r.Path)
		if len(r.Functions) == 0 {
			fmt.Println("  (no functions found)")
			continue
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		for _, f := range r.Functions {
			marker := ""
			if f.Name == r.Default {
				marker = "*"
			}
			fmt.Fprintf(w, "  %d\t%s\t%s\n", f.Line, f.Signature(), marker)
		}
		_ = w.Flush()
	}

	total := 0
	for _, r := range reports {
		total += len(r.Functions)
	}
	fmt.Println()
	fmt.Printf("Files: %s  Functions: %s  (* = default entry point)\n",
		ui.CountText(len(reports)), ui.CountText(total))
}

// newLogger builds the slog logger shared by scan and deploy.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
