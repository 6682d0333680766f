package cmd

import (
	"fmt"

	"github.com/benchstash/benchstash/internal/config"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the configured metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			fmt.Printf("Metrics in %s:\n", cfgFile)
			for _, m := range cfg.BuildMetrics(repoDir) {
				fmt.Printf("  %s\n", m.ID())
			}
			return nil
		},
	}
}
