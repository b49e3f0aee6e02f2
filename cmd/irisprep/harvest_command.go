package main

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/wgdzlh/irisprep"
)

func newHarvestCommand(configFlag *string) *cobra.Command {
	var (
		projectRoot string
		outputDir   string
	)

	cmd := &cobra.Command{
		Use:   "harvest [ID...]",
		Short: "Copy finished mask previews into one folder, renamed <ID>.png",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configFlag)
			if err != nil {
				return err
			}
			if projectRoot != "" {
				cfg.Paths.ProjectRoot = projectRoot
			}
			if outputDir != "" {
				cfg.Paths.HarvestDir = outputDir
			}

			ids := args
			if len(ids) == 0 {
				ids = cfg.Scenes.IDs
			}
			if len(ids) == 0 {
				return errors.New("no scene IDs given (args or [scenes] ids in config)")
			}

			reports, err := irisprep.NewHarvester(cfg).Harvest(ids)
			if err != nil {
				return err
			}
			renderHarvestSummary(cmd, reports)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectRoot, "project-root", "", "Directory holding per-scene projects")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory to collect previews in")

	return cmd
}

func renderHarvestSummary(cmd *cobra.Command, reports []irisprep.HarvestReport) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"ID", "Result"})
	hit := 0
	for _, r := range reports {
		res := "MISS " + r.Src
		if r.Found {
			res = "OK -> " + r.Dst
			hit++
		}
		t.AppendRow(table.Row{r.ID, res})
	}
	t.AppendFooter(table.Row{"harvested", fmt.Sprintf("%d/%d", hit, len(reports))})
	t.Render()
}
