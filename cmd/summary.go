package cmd

import (
	"os"

	"github.com/benchstash/benchstash/internal/config"
	"github.com/benchstash/benchstash/internal/gitops"
	"github.com/benchstash/benchstash/internal/report"
	"github.com/benchstash/benchstash/internal/store"
	"github.com/spf13/cobra"
)

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show cached results for the current working tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			st, err := store.Load(storeDir(cfg), cfg.Store.Name)
			if err != nil {
				return err
			}
			id := gitops.WorkingTreeID(repoDir)
			entries, err := st.Summary(id, flagOnly)
			if err != nil {
				return err
			}
			return report.WriteSummary(id, st.Results[id].Name, entries, flagFormat, os.Stdout)
		},
	}
	cmd.Flags().StringVarP(&flagOnly, "id", "i", "", "show a single metric by ID")
	cmd.Flags().StringVar(&flagFormat, "format", "table", "output format (table, markdown, json)")
	return cmd
}
