package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/wgdzlh/irisprep"
)

func newPrepareCommand(configFlag *string) *cobra.Command {
	var (
		imagesRoot  string
		projectRoot string
		template    string
		maskName    string
	)

	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Build one IRIS project per scene found under the images root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configFlag)
			if err != nil {
				return err
			}
			if imagesRoot != "" {
				cfg.Paths.ImagesRoot = imagesRoot
			}
			if projectRoot != "" {
				cfg.Paths.ProjectRoot = projectRoot
			}
			if template != "" {
				cfg.Paths.Template = template
			}
			if maskName != "" {
				cfg.Scenes.MaskName = maskName
			}
			if err = cfg.Validate(); err != nil {
				return err
			}

			if err = os.MkdirAll(cfg.Paths.ProjectRoot, os.ModePerm); err != nil {
				return err
			}
			lock := flock.New(filepath.Join(cfg.Paths.ProjectRoot, irisprep.LOCK_FILE))
			ok, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire lock: %w", err)
			}
			if !ok {
				return errors.New("another irisprep run holds the project root")
			}
			defer lock.Unlock()

			tb := irisprep.NewPrepToolbox(cfg)
			reports, err := tb.PrepareScenes()
			if err != nil {
				return err
			}
			renderPrepareSummary(cmd, reports)
			return nil
		},
	}

	cmd.Flags().StringVar(&imagesRoot, "images-root", "", "Directory holding <ID>/rgb.tif scene folders")
	cmd.Flags().StringVar(&projectRoot, "project-root", "", "Directory to create per-scene projects in")
	cmd.Flags().StringVar(&template, "template", "", "Base project template JSON")
	cmd.Flags().StringVar(&maskName, "mask-name", "", "Optional class-code raster file name")

	return cmd
}

func renderPrepareSummary(cmd *cobra.Command, reports []irisprep.SceneReport) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"ID", "Size", "Location", "Mask", "Status"})
	done := 0
	for _, r := range reports {
		size, loc, status := "-", "-", "ok"
		switch {
		case r.Skipped:
			status = "skipped (no rgb.tif)"
		case r.Err != nil:
			status = r.Err.Error()
		default:
			done++
		}
		if r.Width > 0 {
			size = fmt.Sprintf("%dx%d", r.Width, r.Height)
		}
		if r.Location != nil {
			loc = fmt.Sprintf("%.6f, %.6f", r.Location[0], r.Location[1])
		}
		t.AppendRow(table.Row{r.ID, size, loc, r.Mask.String(), status})
	}
	t.AppendFooter(table.Row{"", "", "", "configured", fmt.Sprintf("%d/%d", done, len(reports))})
	t.Render()
}
