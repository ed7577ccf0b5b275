package terminal

import (
	"io"
	"os"

	"github.com/de-tools/report-forge/pkg/runtime/terminal/commands"
	"github.com/de-tools/report-forge/pkg/runtime/terminal/console"
	"github.com/de-tools/report-forge/pkg/services/export"
	"github.com/de-tools/report-forge/pkg/services/preview"
	reportstore "github.com/de-tools/report-forge/pkg/store/report"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	repo     reportstore.Repository
	exporter *export.Exporter
	renderer *preview.Renderer
	reporter *console.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Repository reportstore.Repository
	Exporter   *export.Exporter
	Renderer   *preview.Renderer
	Output     io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		repo:     opts.Repository,
		exporter: opts.Exporter,
		renderer: opts.Renderer,
		reporter: console.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report-forge",
		Short: "Report authoring and export tool",
	}

	cmd.AddCommand(commands.NewListCmd(cli.repo))
	cmd.AddCommand(commands.NewPreviewCmd(cli.repo, cli.renderer, cli.reporter))
	cmd.AddCommand(commands.NewExportCmd(cli.repo, cli.exporter))

	return cmd
}
