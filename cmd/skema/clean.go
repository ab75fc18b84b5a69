package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"skema/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove cached check results",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := driver.OpenCache("skema")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		if err := cache.Clear(); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
		quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "cache cleared")
		}
		return nil
	},
}
