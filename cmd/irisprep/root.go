package main

import (
	"github.com/spf13/cobra"

	"github.com/wgdzlh/irisprep/config"
	"github.com/wgdzlh/irisprep/log"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "irisprep",
		Short:         "Prepare IRIS labeling projects from geospatial rasters",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newPrepareCommand(&configFlag))
	rootCmd.AddCommand(newHarvestCommand(&configFlag))

	return rootCmd
}

func loadConfig(path string) (*config.Config, error) {
	cfg, _, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err = log.Init(cfg.Log.Format, cfg.Log.Level); err != nil {
		return nil, err
	}
	return cfg, nil
}
