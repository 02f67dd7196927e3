package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vk/biogrid/internal/app"
)

// newValidateCmd builds the `validate-manifests` subcommand: the schema
// validation phase over every discovered manifest.
func newValidateCmd(outW, logW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "validate-manifests",
		Short: "Validate all discovered monitor manifests against the schema",
		Long: `Discovers every monitor manifest under the manifests path, validates each
against the registry schema (naming, ports, visualization kinds, identifier
uniqueness), prints the full diagnostic list, and exits non-zero when any
error-severity diagnostic was produced. Warnings never affect the exit code.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPhase(cmd, outW, logW, (*app.App).ValidateManifests)
		},
	}
}
