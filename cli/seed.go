package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/IrumShehryar/Restaurant-Website/seed"
	"github.com/IrumShehryar/Restaurant-Website/services"
	"github.com/IrumShehryar/Restaurant-Website/store"

	"github.com/spf13/cobra"
)

type seedOptions struct {
	File  string
	Clear bool
}

func NewSeedCommand(opts *RootOptions) *cobra.Command {
	seedOpts := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the sample menu into the store",
		Long:  "Creates every item of a YAML menu file in the configured store. Without --file the built-in Revontulet Flamehouse menu is used.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, opts, seedOpts)
		},
	}

	cmd.Flags().StringVarP(&seedOpts.File, "file", "f", "", "menu YAML file (default: built-in menu)")
	cmd.Flags().BoolVar(&seedOpts.Clear, "clear", false, "delete existing menu items first")

	return cmd
}

func runSeed(cmd *cobra.Command, opts *RootOptions, seedOpts *seedOptions) error {
	items, err := seed.Load(seedOpts.File)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Open(ctx, opts.Config.Store)
	if err != nil {
		return fmt.Errorf("open %s store: %w", opts.Config.Store.Driver, err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()

	n, err := seed.Menu(ctx, services.NewMenuService(st), items, seedOpts.Clear)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d menu items into the %s store\n", n, opts.Config.Store.Driver)
	return nil
}
