// Command fooddash runs the food-delivery admin API and its maintenance
// tasks.
//
//	fooddash serve           start the HTTP API
//	fooddash migrate         create store indexes
//	fooddash seed            insert the demo menu and users
//	fooddash route:list      print the named routes
//	fooddash dashboard       print the dashboard from a running API
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "fooddash",
	Short:         "Food delivery admin API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(dashboardCmd)
}
