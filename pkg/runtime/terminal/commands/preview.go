package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/report-forge/pkg/runtime/terminal/console"
	"github.com/de-tools/report-forge/pkg/services/preview"
	reportstore "github.com/de-tools/report-forge/pkg/store/report"
	"github.com/spf13/cobra"
)

type PreviewCmd struct {
	reportID string
	repo     reportstore.Repository
	renderer *preview.Renderer
	reporter *console.Reporter
}

func NewPreviewCmd(repo reportstore.Repository, renderer *preview.Renderer, reporter *console.Reporter) *cobra.Command {
	pc := &PreviewCmd{repo: repo, renderer: renderer, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print a text preview of a stored report",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.reportID, "report", "", "Id of the report to preview")
	_ = cmd.MarkFlagRequired("report")

	return cmd
}

func (pc *PreviewCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	doc, err := pc.repo.GetReport(ctx, pc.reportID)
	if err != nil {
		return fmt.Errorf("failed to load report %q: %w", pc.reportID, err)
	}

	return pc.reporter.Handle(pc.renderer.Render(doc))
}
