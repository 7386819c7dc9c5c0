package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var verifySlugs []string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the required content is reachable",
	Long: "Verify reads the global settings, the dictionary, the media assets, and " +
		"the given pages through the degrading read path and reports what is missing.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		scope := module.NewScope()

		missing := []string{}
		if scope.GlobalSettings(ctx) == nil {
			missing = append(missing, "global settings")
		}
		if len(scope.Dictionary(ctx)) == 0 {
			missing = append(missing, "dictionary entries")
		}
		if len(scope.MediaAssets(ctx)) == 0 {
			missing = append(missing, "media assets")
		}
		for _, slug := range verifySlugs {
			if scope.PageBySlug(ctx, slug) == nil {
				missing = append(missing, fmt.Sprintf("page %q", slug))
			}
		}

		if len(missing) > 0 {
			return fmt.Errorf("missing content: %s", strings.Join(missing, ", "))
		}
		cmd.Println("content verified")
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringSliceVar(&verifySlugs, "pages", []string{"home", "about", "faq"}, "page slugs to verify")
}
