package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vk/biogrid/internal/app"
)

// newCheckCmd builds the `check-entrypoints` subcommand: entrypoint
// consistency checking over every schema-valid manifest.
func newCheckCmd(outW, logW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "check-entrypoints",
		Short: "Cross-check manifests against their implementation artifacts",
		Long: `Resolves the implementation artifact referenced by every schema-valid
manifest, introspects its callable signature, and verifies that declared
input and output ports match the implementation's parameter and output names
exactly. Prints the diagnostic list and exits non-zero when any
error-severity diagnostic was produced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPhase(cmd, outW, logW, (*app.App).CheckEntrypoints)
		},
	}
}
