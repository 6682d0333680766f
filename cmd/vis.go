package cmd

import (
	"fmt"
	"os"

	"github.com/benchstash/benchstash/internal/config"
	"github.com/benchstash/benchstash/internal/gitops"
	"github.com/benchstash/benchstash/internal/store"
	"github.com/benchstash/benchstash/internal/vis"
	"github.com/spf13/cobra"
)

var (
	flagVisMetrics []string
	flagVisCommits []string
	flagVisOut     string
)

func newVisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vis <basic|dist>",
		Short: "Render cached results as an HTML chart",
		Long: "Render cached results as an HTML chart. Style basic plots each " +
			"metric over commits; dist plots the spread of repeated-trial " +
			"samples per commit. Commits may be given as refs or as recorded " +
			"identifiers.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			st, err := store.Load(storeDir(cfg), cfg.Store.Name)
			if err != nil {
				return err
			}

			commits := make([]string, len(flagVisCommits))
			for i, ref := range flagVisCommits {
				// Recorded identifiers (dirty-suffixed, unknown) are not
				// refs; keep them as given when resolution fails.
				if sha, err := gitops.Sha(repoDir, ref); err == nil {
					commits[i] = sha
				} else {
					commits[i] = ref
				}
			}

			dataset, err := vis.Select(st.Results, commits, flagVisMetrics)
			if err != nil {
				return err
			}
			f, err := os.Create(flagVisOut)
			if err != nil {
				return fmt.Errorf("creating chart file: %w", err)
			}
			defer f.Close()
			if err := vis.Render(dataset, args[0], f); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", flagVisOut)
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&flagVisMetrics, "metrics", "m", nil, "metrics to plot (default: shared across runs)")
	cmd.Flags().StringSliceVarP(&flagVisCommits, "commits", "c", nil, "commits to plot (default: all recorded)")
	cmd.Flags().StringVarP(&flagVisOut, "out", "o", "benchstash.html", "output HTML file")
	return cmd
}
