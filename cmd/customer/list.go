package customer

import (
	"fmt"

	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/spf13/cobra"
)

type ListCommandRunner struct {
	svc *service.Service
	cmd *cobra.Command
}

func NewListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				svc: svc,
				cmd: cmd,
			}
			return runner.Run()
		},
	}
}

func (r *ListCommandRunner) Run() error {
	customers, err := r.svc.Customer.List(r.cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get customers: %w", err)
	}
	return views.RenderCustomerList(customers)
}
