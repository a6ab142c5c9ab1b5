package cmd

import (
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewDashboardCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show totals and recent transactions",
		Long: `Show the number of customers and accounts, the total balance held and
the most recent transactions across all accounts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.Session.Require(); err != nil {
				return err
			}
			snap := svc.Dashboard.Refresh(cmd.Context())
			return views.RenderDashboard(snap, svc.Config.Defaults.Currency)
		},
	}
}
