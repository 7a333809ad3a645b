package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/fooddash/app/admin"
	"github.com/shashiranjanraj/fooddash/config"
	fdhttp "github.com/shashiranjanraj/fooddash/pkg/http"
)

var apiURL string

// fooddash dashboard
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print the dashboard summary from a running API",
	RunE: func(cmd *cobra.Command, args []string) error {
		base := apiURL
		if base == "" {
			if err := config.Load(); err != nil {
				return err
			}
			base = config.APIURL()
		}

		client := admin.NewClient(base, fdhttp.WithTimeout(10*time.Second))
		summary, err := client.Dashboard(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "Users\t%d\n", summary.TotalUsers)
		fmt.Fprintf(w, "Products\t%d\n", summary.TotalProducts)
		fmt.Fprintf(w, "Orders\t%d\n", summary.TotalOrders)
		fmt.Fprintf(w, "Revenue\t%.2f\n", summary.TotalRevenue)
		return w.Flush()
	},
}

func init() {
	dashboardCmd.Flags().StringVar(&apiURL, "api", "", "API base URL (defaults to API_URL)")
}
