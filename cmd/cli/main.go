package main

import (
	"fmt"
	"os"

	"github.com/de-tools/report-forge/pkg/runtime/terminal"
	"github.com/de-tools/report-forge/pkg/services/catalog"
	"github.com/de-tools/report-forge/pkg/services/export"
	"github.com/de-tools/report-forge/pkg/services/preview"
	"github.com/de-tools/report-forge/pkg/store/duckdb"
	duckdbreport "github.com/de-tools/report-forge/pkg/store/duckdb/report"
)

func main() {
	dbPath := os.Getenv("REPORT_FORGE_DB")
	if dbPath == "" {
		dbPath = "report-forge.db"
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: dbPath})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	repo, err := duckdbreport.NewStore(db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cat := catalog.NewRegistry()
	cli := terminal.NewCLI(terminal.Options{
		Repository: repo,
		Exporter:   export.NewExporter(cat, export.DefaultPageSetup()),
		Renderer:   preview.NewRenderer(cat),
		Output:     os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
