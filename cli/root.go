package cli

import (
	"strings"

	"github.com/IrumShehryar/Restaurant-Website/config"
	"github.com/IrumShehryar/Restaurant-Website/logging"

	"github.com/spf13/cobra"
)

const name = "restaurant"

// overridden during build with ldflags
var version = "dev"

// RootOptions holds global flags and the configuration loaded before any
// command runs.
type RootOptions struct {
	Store    string
	LogLevel string

	Config *config.Config
}

// NewRootCommand creates the root command. Running it without a
// subcommand starts the web server.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           name,
		Short:         "Revontulet Flamehouse restaurant website",
		Long:          "Serves the restaurant website pages and its JSON API for the menu, reservations, orders and contact messages.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Store, "store", "", "store driver (mongo|memory|sqlite|postgres), overrides STORE_DRIVER")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error), overrides LOG_LEVEL")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))

	return cmd
}

func (o *RootOptions) load() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if o.Store != "" {
		cfg.Store.Driver = strings.ToLower(o.Store)
	}
	if o.LogLevel != "" {
		cfg.Log.Level = logging.ParseLevel(o.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.SetDefaultStructuredLogger(name, version, cfg.Log.Level)
	o.Config = cfg
	return nil
}
