package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"companion.GO/config"
	"companion.GO/core/logger"
)

var rootCmd = &cobra.Command{
	Use:   "companion",
	Short: "Storefront shopping companion: chat assistant, smart cart and Color Bar customizer",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadAppConfig()
		return logger.Init(cfg.Debug)
	},
	SilenceUsage: true,
}

// Execute applies registered commands and runs the root command.
func Execute() {
	Apply()
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
