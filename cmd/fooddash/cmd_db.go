package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/fooddash/database/seeders"
	"github.com/shashiranjanraj/fooddash/internal/app"
)

// fooddash migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the indexes the store relies on",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.Boot(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Store.EnsureIndexes(cmd.Context()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		fmt.Println("Indexes ready.")
		return nil
	},
}

// fooddash seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the demo menu and users",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.Boot(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		return seeders.RunAll(cmd.Context(), a.Services(), os.Stdout)
	},
}
