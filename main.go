// Copyright 2026 Mathew Robinson <chasinglogic@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// licensure inserts, detects, and refreshes license header comments across
// source files based on a .licensure.yml config.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chasinglogic/licensure/config"
	"github.com/chasinglogic/licensure/licensure"
)

type cliOptions struct {
	verbose        int
	inPlace        bool
	check          bool
	project        bool
	generateConfig bool
	exclude        string
}

func main() {
	var opts cliOptions

	cmd := &cobra.Command{
		Use:   "licensure [files...]",
		Short: "A license header management tool",
		Long: "licensure determines the correct comment syntax for each file, renders the\n" +
			"configured license header for it, and applies the minimal edit: inserting a\n" +
			"missing header, refreshing an outdated copyright year, or swapping out a\n" +
			"legacy header.",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(opts, args)
		},
	}

	cmd.Flags().CountVarP(&opts.verbose, "verbose", "v", "increase logging verbosity, repeatable")
	cmd.Flags().BoolVarP(&opts.inPlace, "in-place", "i", false, "write updated files in place instead of printing them")
	cmd.Flags().BoolVarP(&opts.check, "check", "c", false, "report files whose headers are missing or outdated and exit non-zero, modifying nothing")
	cmd.Flags().StringVarP(&opts.exclude, "exclude", "e", "", "a regex which will be used to determine what files to ignore")
	cmd.Flags().BoolVarP(&opts.project, "project", "p", false, "license the current project files as returned by git ls-files")
	cmd.Flags().BoolVarP(&opts.generateConfig, "generate-config", "g", false, "generate a default licensure config file")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts cliOptions, args []string) error {
	setupLogging(opts.verbose)

	if opts.generateConfig {
		if err := os.WriteFile(".licensure.yml", []byte(config.DefaultConfig), 0o644); err != nil {
			return errors.Wrap(err, "unable to write .licensure.yml")
		}
		return nil
	}

	var files []string
	switch {
	case opts.project:
		projectFiles, err := getProjectFiles()
		if err != nil {
			return err
		}
		files = projectFiles
	case len(args) > 0:
		files = args
	default:
		return errors.New("must provide files to license either as arguments or via --project")
	}

	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrNoConfigFile) {
			return errors.New("no config file found, generate one with licensure --generate-config")
		}
		return err
	}

	if opts.exclude != "" {
		if err := cfg.AddExclude(opts.exclude); err != nil {
			return err
		}
	}

	if opts.inPlace {
		cfg.ChangeInPlace = true
	}

	engine := licensure.New(cfg).WithCheckMode(opts.check)
	stats, err := engine.LicenseFiles(files)
	if err != nil {
		return errors.Wrap(err, "failed to license files")
	}

	return report(opts, stats)
}

func report(opts cliOptions, stats *licensure.Stats) error {
	if opts.check && (len(stats.FilesNotLicensed) > 0 || len(stats.FilesNeedingLicenseUpdate) > 0) {
		printFiles(stats.FilesNeedingLicenseUpdate, "The following files' licenses need to be updated")
		printFiles(stats.FilesNotLicensed, "The following files were not licensed with the given config.")
		printFiles(stats.FilesNeedingCommenter, "The following files did not have a commenter with the given config.")

		if diff := stats.DiffReport(); diff != "" {
			fmt.Fprintln(os.Stderr, diff)
		}

		return errors.New("some files are missing license headers or have outdated ones")
	}

	if printFiles(stats.FilesNeedingCommenter, "The following files did not have a commenter with the given config.") {
		return errors.New("some files did not match any comment config")
	}

	return nil
}

// printFiles prints the given list of files (if non-empty) preceded by the
// message and the count. Returns true if files were printed.
func printFiles(files []string, message string) bool {
	if len(files) == 0 {
		return false
	}

	fmt.Fprintf(os.Stderr, "%s %d\n", message, len(files))
	for _, file := range files {
		fmt.Fprintln(os.Stderr, file)
	}

	return true
}

// setupLogging installs the global logger. Verbosity 0 only logs errors, 1
// adds progress info, 2 or more enables debug output.
func setupLogging(verbosity int) {
	level := zapcore.ErrorLevel
	switch {
	case verbosity >= 2:
		level = zapcore.DebugLevel
	case verbosity == 1:
		level = zapcore.InfoLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	zap.ReplaceGlobals(logger)
}
