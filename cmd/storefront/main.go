// Command storefront manages the Veloura content store: seed installs the
// default content, verify checks that the required content is in place.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	storefront "github.com/veloura/go-storefront"
)

var (
	flagEnvFile  string
	flagProvider string

	module *storefront.Module
)

var rootCmd = &cobra.Command{
	Use:           "storefront",
	Short:         "Veloura storefront content runtime",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagEnvFile != "" {
			if err := godotenv.Load(flagEnvFile); err != nil {
				return fmt.Errorf("load env file %s: %w", flagEnvFile, err)
			}
		} else {
			_ = godotenv.Load()
		}

		cfg, err := storefront.ConfigFromEnv()
		if err != nil {
			return err
		}
		if flagProvider != "" {
			cfg.Store.Provider = flagProvider
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		module, err = storefront.New(cfg)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if module != nil {
			return module.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", "", "env file to load before reading configuration")
	rootCmd.PersistentFlags().StringVar(&flagProvider, "store", "", "override the store provider (cms, bun, memory)")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(verifyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
