package cmd

import (
	"github.com/benchstash/benchstash/internal/config"
	"github.com/benchstash/benchstash/internal/store"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	repoDir string
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "benchstash",
		Short: "Cache and compare benchmark metrics across git commits",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "benchstash.yaml", "config file path")
	root.PersistentFlags().StringVar(&repoDir, "repo", ".", "repository directory to measure")
	root.AddCommand(newRunCmd())
	root.AddCommand(newSummaryCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newVisCmd())
	return root
}

func storeDir(cfg *config.Config) string {
	if cfg.Store.Dir != "" {
		return cfg.Store.Dir
	}
	return store.DefaultDir()
}
