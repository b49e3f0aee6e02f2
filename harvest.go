package irisprep

import (
	"os"
	"path/filepath"

	"github.com/wgdzlh/irisprep/config"
	"github.com/wgdzlh/irisprep/log"
	"github.com/wgdzlh/irisprep/utils"

	"go.uber.org/zap"
)

// Harvester copies finished mask previews out of per-scene project trees
// into one flat directory.
type Harvester struct {
	cfg    *config.Config
	logTag string
}

func NewHarvester(cfg *config.Config) *Harvester {
	return &Harvester{
		cfg:    cfg,
		logTag: "Harvester:",
	}
}

// Harvest copies <project_root>/<ID>/<ID>.iris/segmentation/<ID>/mask.png to
// <harvest_dir>/<ID>.png for each requested ID. A missing preview is counted
// as a miss; the rest of the batch continues.
func (h *Harvester) Harvest(ids []string) (reports []HarvestReport, err error) {
	if err = os.MkdirAll(h.cfg.Paths.HarvestDir, os.ModePerm); err != nil {
		return
	}
	for _, id := range ids {
		rep := HarvestReport{
			ID:  id,
			Src: filepath.Join(h.cfg.Paths.ProjectRoot, id, id+IRIS_DIR_EXT, SEGMENTATION_DIR, id, MASK_PNG_NAME),
			Dst: filepath.Join(h.cfg.Paths.HarvestDir, id+FILE_EXT_PNG),
		}
		if _, e := os.Stat(rep.Src); e != nil {
			log.Warn(h.logTag+"preview not found", zap.String("id", id), zap.String("src", rep.Src))
			reports = append(reports, rep)
			continue
		}
		if e := utils.CopyFile(rep.Src, rep.Dst); e != nil {
			log.Error(h.logTag+"copy preview failed", zap.String("id", id), zap.Error(e))
			reports = append(reports, rep)
			continue
		}
		rep.Found = true
		log.Info(h.logTag+"preview harvested", zap.String("id", id), zap.String("dst", rep.Dst))
		reports = append(reports, rep)
	}
	return
}
