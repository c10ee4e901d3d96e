// Package cli implements the eldlogs command: the HTTP server plus offline
// tools that draw grid paths, bound routes and plan trips from local files.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the top-level Cobra command.
func NewRootCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "eldlogs",
		Short:         "Render ELD duty-status grids and plan hours-of-service log sheets.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newServeCommand(ctx),
		newPathCommand(ctx),
		newBoundsCommand(),
		newPlanCommand(ctx),
		newClientCommand(ctx),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	return NewRootCommand(ctx).Execute()
}

// Main is a helper used by cmd/eldlogs/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
