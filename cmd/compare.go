package cmd

import (
	"os"

	"github.com/benchstash/benchstash/internal/config"
	"github.com/benchstash/benchstash/internal/gitops"
	"github.com/benchstash/benchstash/internal/report"
	"github.com/benchstash/benchstash/internal/store"
	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <start> [end]",
		Short: "Compare cached results between two commits",
		Long: "Compare cached results between two commits, reporting each shared " +
			"metric's percentage change. When end is omitted the current working " +
			"tree is the end side. Comparison never re-measures; both sides must " +
			"already be cached.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			st, err := store.Load(storeDir(cfg), cfg.Store.Name)
			if err != nil {
				return err
			}

			startID, err := gitops.Sha(repoDir, args[0])
			if err != nil {
				return err
			}
			endID := gitops.WorkingTreeID(repoDir)
			if len(args) == 2 {
				endID, err = gitops.Sha(repoDir, args[1])
				if err != nil {
					return err
				}
			}

			comps, err := st.Compare(startID, endID, flagOnly)
			if err != nil {
				return err
			}
			return report.WriteComparison(startID, endID, comps, flagFormat, os.Stdout)
		},
	}
	cmd.Flags().StringVarP(&flagOnly, "id", "i", "", "compare a single metric by ID")
	cmd.Flags().StringVar(&flagFormat, "format", "table", "output format (table, markdown, json)")
	return cmd
}
