package cmd

import (
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type reportFlags struct {
	Yes   bool
	Limit int
}

type reportRunner struct {
	svc   *service.Service
	flags *reportFlags
	cmd   *cobra.Command
}

func NewReportCmd(svc *service.Service) *cobra.Command {
	flags := &reportFlags{}

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Download or send the daily report",
	}

	downloadCmd := &cobra.Command{
		Use:   "download",
		Short: "Download the daily report",
		Long: `Download the daily report rendered by the ledger and save it to the
reports directory (reports.dir, file name reports.filename).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &reportRunner{svc: svc, flags: flags, cmd: cmd}
			return runner.Download()
		},
	}

	sendCmd := &cobra.Command{
		Use:   "send",
		Short: "Send the daily report to HR",
		Long:  `Ask the ledger to email the daily report to HR. A local copy is saved as well.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &reportRunner{svc: svc, flags: flags, cmd: cmd}
			return runner.Send()
		},
	}
	sendCmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation")

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List reports saved on this machine",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &reportRunner{svc: svc, flags: flags, cmd: cmd}
			return runner.History()
		},
	}
	historyCmd.Flags().IntVarP(&flags.Limit, "limit", "l", constants.DefaultLimit, "Number of reports to show")

	reportCmd.AddCommand(downloadCmd, sendCmd, historyCmd)
	return reportCmd
}

func (r *reportRunner) Download() error {
	if err := r.svc.Session.Require(); err != nil {
		return err
	}

	spinner, _ := pterm.DefaultSpinner.Start("Generating daily report...")
	res, err := r.svc.Report.FetchAndDownload(r.cmd.Context())
	if err != nil {
		spinner.Fail("Report download failed")
		return err
	}
	_ = spinner.Stop()

	views.RenderReportResult(res)
	return nil
}

func (r *reportRunner) Send() error {
	if err := r.svc.Session.Require(); err != nil {
		return err
	}

	if !r.flags.Yes {
		ok, err := ui.Confirm("Send today's report to HR?", true)
		if err != nil {
			return err
		}
		if !ok {
			pterm.Info.Println("Report not sent")
			return nil
		}
	}

	spinner, _ := pterm.DefaultSpinner.Start("Sending daily report...")
	res, err := r.svc.Report.FetchAndDispatch(r.cmd.Context())
	if err != nil {
		spinner.Fail("Report dispatch failed")
		return err
	}
	_ = spinner.Stop()

	views.RenderReportResult(res)
	return nil
}

func (r *reportRunner) History() error {
	records, err := r.svc.Report.History(r.flags.Limit)
	if err != nil {
		return err
	}
	return views.RenderReportHistory(records)
}
