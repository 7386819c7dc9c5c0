package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Install the default content into the store",
	Long: "Seed inserts the default global settings, pages, dictionary entries, and " +
		"media slots. Existing records are never modified, so the command is safe " +
		"to run on every deploy.",
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := module.Seed(cmd.Context())

		printStep(cmd, "global settings", report.Settings.Created, report.Settings.Skipped, report.Settings.Failed)
		printStep(cmd, "pages", report.Pages.Created, report.Pages.Skipped, report.Pages.Failed)
		printStep(cmd, "dictionary", report.Dictionary.Created, report.Dictionary.Skipped, report.Dictionary.Failed)
		printStep(cmd, "media assets", report.Media.Created, report.Media.Skipped, report.Media.Failed)

		if err != nil {
			return fmt.Errorf("seeding finished with errors: %w", err)
		}
		return nil
	},
}

func printStep(cmd *cobra.Command, name string, created, skipped, failed int) {
	cmd.Printf("%-16s created=%d skipped=%d failed=%d\n", name, created, skipped, failed)
}
