package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/de-tools/report-forge/pkg/services/export"
	reportstore "github.com/de-tools/report-forge/pkg/store/report"
	"github.com/spf13/cobra"
)

type ExportCmd struct {
	reportID  string
	format    string
	outputDir string
	repo      reportstore.Repository
	exporter  *export.Exporter
}

func NewExportCmd(repo reportstore.Repository, exporter *export.Exporter) *cobra.Command {
	ec := &ExportCmd{repo: repo, exporter: exporter}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a stored report to a file",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.reportID, "report", "", "Id of the report to export")
	cmd.Flags().StringVar(&ec.format, "format", "pdf", "Export format (pdf, excel, csv, print)")
	cmd.Flags().StringVar(&ec.outputDir, "output", ".", "Directory to write the export into")

	_ = cmd.MarkFlagRequired("report")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	doc, err := ec.repo.GetReport(ctx, ec.reportID)
	if err != nil {
		return fmt.Errorf("failed to load report %q: %w", ec.reportID, err)
	}

	artifact, err := ec.exporter.Export(ctx, doc, export.Format(ec.format))
	if err != nil {
		return fmt.Errorf("failed to export report %q: %w", ec.reportID, err)
	}

	path := filepath.Join(ec.outputDir, artifact.Filename)
	if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	cmd.Printf("wrote %s (%d bytes)\n", path, len(artifact.Data))
	return nil
}
