package commands

import (
	"context"
	"fmt"
	"time"

	reportstore "github.com/de-tools/report-forge/pkg/store/report"
	"github.com/spf13/cobra"
)

type ListCmd struct {
	repo reportstore.Repository
}

func NewListCmd(repo reportstore.Repository) *cobra.Command {
	lc := &ListCmd{repo: repo}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored reports",
		RunE:  lc.run,
	}
	return cmd
}

func (lc *ListCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	summaries, err := lc.repo.ListReports(ctx)
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}

	if len(summaries) == 0 {
		cmd.Println("no reports found")
		return nil
	}
	for _, s := range summaries {
		cmd.Printf("%s  %s  (updated %s)\n", s.ID, s.Name, s.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
