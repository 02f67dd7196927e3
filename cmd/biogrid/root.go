package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vk/biogrid/internal/app"
	"github.com/vk/biogrid/internal/report"
)

// exitError is a custom error type that includes a specific exit code.
type exitError struct {
	code    int
	message string
}

// Error implements the error interface for exitError.
func (e *exitError) Error() string {
	return e.message
}

// newRootCmd builds the command tree. A fresh tree per invocation keeps
// cobra flag state isolated between test runs.
func newRootCmd(outW, logW io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "biogrid",
		Short:         "Registry validator for monitor model manifests",
		Long:          `biogrid validates declared monitor model manifests and cross-checks their interfaces against the real implementation artifacts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("manifests", "modules", "Path to the directory containing monitor manifests.")
	root.PersistentFlags().Int("workers", app.DefaultWorkers, "Number of concurrent validation workers.")
	root.PersistentFlags().String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	root.PersistentFlags().String("log-format", "text", "Log output format. Options: 'text' or 'json'.")

	root.AddCommand(newValidateCmd(outW, logW))
	root.AddCommand(newCheckCmd(outW, logW))

	return root
}

// run executes the CLI and maps the outcome to a process exit code:
// 0 for a clean run, the report's code when error diagnostics were found,
// 2 for configuration problems, 1 for everything else.
func run(args []string, outW, logW io.Writer) (int, error) {
	root := newRootCmd(outW, logW)
	root.SetArgs(args)
	root.SetOut(outW)
	root.SetErr(logW)

	if err := root.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code, exitErr
		}
		return 1, err
	}
	return 0, nil
}

// configFromFlags validates CLI parameters and builds the app configuration.
func configFromFlags(cmd *cobra.Command) (*app.Config, error) {
	manifestsPath, err := cmd.Flags().GetString("manifests")
	if err != nil {
		return nil, err
	}
	workers, err := cmd.Flags().GetInt("workers")
	if err != nil {
		return nil, err
	}
	logFormat, err := cmd.Flags().GetString("log-format")
	if err != nil {
		return nil, err
	}
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, err
	}

	logFormat = strings.ToLower(logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}

	logLevel = strings.ToLower(logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	return app.NewConfig(app.Config{
		ManifestsPath: manifestsPath,
		Workers:       workers,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
	})
}

// phaseFunc is one of the App's two read-only phases.
type phaseFunc func(*app.App, context.Context) (*report.Report, error)

// runPhase builds the app from CLI flags, drives one phase, renders its
// report, and translates error diagnostics into a non-zero exit code.
func runPhase(cmd *cobra.Command, outW, logW io.Writer, phase phaseFunc) error {
	config, err := configFromFlags(cmd)
	if err != nil {
		return &exitError{code: 2, message: err.Error()}
	}

	a := app.NewApp(outW, logW, config)

	rep, err := phase(a, cmd.Context())
	if err != nil {
		return err
	}

	if err := rep.Render(outW); err != nil {
		return err
	}

	if rep.ExitCode() != 0 {
		return &exitError{
			code:    rep.ExitCode(),
			message: fmt.Sprintf("%d error diagnostic(s) found", rep.ErrorCount()),
		}
	}
	return nil
}
