package cli

import (
	"github.com/IrumShehryar/Restaurant-Website/server"

	"github.com/spf13/cobra"
)

func NewServeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
}

func runServe(cmd *cobra.Command, opts *RootOptions) error {
	return server.Run(cmd.Context(), opts.Config)
}
