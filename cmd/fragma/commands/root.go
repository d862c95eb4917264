package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"fragma/internal/app"
)

var (
	home       string
	passphrase string
	relayURL   string
	channel    string
	window     int
	configPath string

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "fragma",
		Short: "Metadata-free authenticated fragment channels",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = app.LoadConfig(configPath, cfg); err != nil {
					return err
				}
			}
			// Flags override file values.
			if home != "" {
				cfg.Home = home
			}
			if relayURL != "" {
				cfg.RelayURL = relayURL
			}
			if cmd.Flags().Changed("channel") {
				cfg.Channel = channel
			}
			if cmd.Flags().Changed("window") {
				cfg.WindowSize = window
			}
			if cfg.Home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				cfg.Home = filepath.Join(dir, ".fragma")
			}
			if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
				return err
			}

			var err error
			wire, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.fragma)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting sealed state")
	root.PersistentFlags().StringVar(&relayURL, "relay", "", "relay base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().StringVar(&channel, "channel", "default", "channel name on the relay")
	root.PersistentFlags().IntVar(&window, "window", 7, "receiver search window")
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file")

	root.AddCommand(initCmd(), emitCmd(), recvCmd(), statusCmd())
	return root.Execute()
}
