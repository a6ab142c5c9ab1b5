package views

import (
	"fmt"
	"time"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/store"
	"github.com/hance08/teller/internal/utils"
	"github.com/pterm/pterm"
)

func RenderReportResult(res *service.ReportResult) {
	if res.Dispatched {
		pterm.Success.Println("Daily report sent to HR")
	}
	pterm.Success.Printf("Report saved to %s (%s)\n", res.Path, utils.FormatBytes(res.Size))
}

func RenderReportHistory(records []*store.ReportRecord) error {
	if len(records) == 0 {
		pterm.Warning.Println("No reports downloaded yet")
		return nil
	}

	tableData := pterm.TableData{
		{"ID", "Date", "Kind", "Size", "Path"},
	}
	for _, r := range records {
		kind := r.Kind
		if kind == constants.ReportDispatch {
			kind = pterm.Blue("sent to HR")
		}
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", r.ID),
			time.Unix(r.CreatedAt, 0).Format(constants.DateTimeFormat),
			kind,
			utils.FormatBytes(r.Size),
			r.Path,
		})
	}

	pterm.DefaultSection.Println("Report History")
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
