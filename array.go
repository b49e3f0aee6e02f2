package irisprep

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wgdzlh/irisprep/log"
	"github.com/wgdzlh/irisprep/npy"
	"github.com/wgdzlh/irisprep/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Interleave reshapes band-major buffers to a pixel-major (H,W,C) buffer.
func Interleave(bands [][]float32, w, h int) []float32 {
	c := len(bands)
	out := make([]float32, w*h*c)
	for k, band := range bands {
		for i, v := range band {
			out[i*c+k] = v
		}
	}
	return out
}

// MaterializeRGB converts a multi-band raster to a float32 (H,W,C) npy file
// at dest. Any stale file or symlink at dest is removed first; the array is
// written under a unique temp name and renamed into place.
func (g *PrepToolbox) MaterializeRGB(tif, dest string) (w, h int, err error) {
	bands, w, h, err := g.ReadBands(tif)
	if err != nil {
		return
	}
	if e := utils.RemoveAnyFile(dest); e != nil {
		log.Warn(g.logTag+"could not remove stale npy", zap.String("dest", dest), zap.Error(e))
	}
	if err = os.MkdirAll(filepath.Dir(dest), os.ModePerm); err != nil {
		return
	}
	arr := Interleave(bands, w, h)
	tmp := dest + fmt.Sprintf(TMP_NPY_SUFFIX, uuid.NewString())
	f, err := os.Create(tmp)
	if err != nil {
		return
	}
	if err = npy.SaveFloat32(f, arr, []int{h, w, len(bands)}); err != nil {
		f.Close()
		os.Remove(tmp)
		return
	}
	if err = f.Close(); err != nil {
		os.Remove(tmp)
		return
	}
	err = os.Rename(tmp, dest)
	return
}
