package cmd

import (
	"fmt"
	"os"

	"github.com/benchstash/benchstash/internal/config"
	"github.com/benchstash/benchstash/internal/gitops"
	"github.com/benchstash/benchstash/internal/report"
	"github.com/benchstash/benchstash/internal/store"
	"github.com/spf13/cobra"
)

var (
	flagForce  bool
	flagOnly   string
	flagFormat string
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Measure metrics for the current working tree and cache the results",
		RunE:  runMetrics,
	}
	cmd.Flags().BoolVarP(&flagForce, "force", "f", false, "re-measure even if cached results exist")
	cmd.Flags().StringVarP(&flagOnly, "id", "i", "", "measure a single metric by ID")
	cmd.Flags().StringVar(&flagFormat, "format", "table", "output format (table, markdown, json)")
	return cmd
}

func runMetrics(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	dir := storeDir(cfg)

	st, err := store.Load(dir, cfg.Store.Name)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded cache from %s\n", store.Path(dir, cfg.Store.Name))

	state := &gitops.WorkingTree{Dir: repoDir}
	ran, err := st.Run(state, cfg.BuildMetrics(repoDir), store.RunOptions{
		Force:    flagForce,
		Only:     flagOnly,
		Progress: os.Stdout,
	})
	if err != nil {
		return err
	}
	if ran {
		if err := st.Save(dir, cfg.Store.Name); err != nil {
			return err
		}
	}

	id := state.ID()
	entries, err := st.Summary(id, flagOnly)
	if err != nil {
		return err
	}
	return report.WriteSummary(id, st.Results[id].Name, entries, flagFormat, os.Stdout)
}
