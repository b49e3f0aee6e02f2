package irisprep

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/wgdzlh/irisprep/log"
	"github.com/wgdzlh/irisprep/npy"
	"github.com/wgdzlh/irisprep/utils"

	"go.uber.org/zap"
)

// EncodeMask turns single-band class codes into a one-hot array (H,W,K) and
// a validity mask (H,W) under the two-class policy:
//   - 255 is remapped to 0 before classification (no-data folds into Clear)
//   - 0 -> Clear, 1 -> Cloud
//   - 2..254 -> Cloud (out-of-domain fallback)
//   - every pixel is valid, there is no NoData class
//
// Channel order follows the class table. A table without Clear or Cloud
// leaves that channel unset; LoadTemplate rejects such tables up front.
func EncodeMask(m []uint8, classes ClassTable) (onehot, user []bool) {
	k := len(classes)
	kClear := classes.Index(CLASS_CLEAR)
	kCloud := classes.Index(CLASS_CLOUD)
	onehot = make([]bool, len(m)*k)
	user = make([]bool, len(m))
	for i, v := range m {
		if v == NODATA_CODE {
			v = 0
		}
		if v == 0 {
			if kClear >= 0 {
				onehot[i*k+kClear] = true
			}
		} else if kCloud >= 0 {
			onehot[i*k+kCloud] = true
		}
		user[i] = true
	}
	return
}

// RenderPreview paints each true channel with its class colour. Later
// channels win at a shared pixel, which the policy's mutual exclusivity
// rules out anyway.
func RenderPreview(onehot []bool, w, h int, classes ClassTable) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	k := len(classes)
	for i := 0; i < w*h; i++ {
		for j, c := range classes {
			if onehot[i*k+j] {
				img.SetNRGBA(i%w, i/w, color.NRGBA{R: c.Colour[0], G: c.Colour[1], B: c.Colour[2], A: 255})
			}
		}
	}
	return img
}

// BuildMaskCaches reads the optional class-code raster of a scene and writes
// the segmentation caches the annotation tool expects:
//
//	<projDir>/<name>.iris/segmentation/<id>/{1_final.npy, 1_user.npy, mask.png}
//
// An absent mask raster is a first-class state, not an error.
func (g *PrepToolbox) BuildMaskCaches(sceneDir, projDir, name, id string, classes ClassTable) (st MaskStatus, err error) {
	tif := filepath.Join(sceneDir, g.cfg.Scenes.MaskName)
	if _, e := os.Stat(tif); e != nil {
		return MaskAbsent, nil
	}
	m, w, h, err := g.ReadMaskBand(tif)
	if err != nil {
		return MaskFailed, err
	}
	onehot, user := EncodeMask(m, classes)

	segDir := filepath.Join(projDir, name+IRIS_DIR_EXT, SEGMENTATION_DIR, id)
	if err = utils.EnsureRealDir(segDir); err != nil {
		return MaskFailed, err
	}
	if err = saveNpyBool(filepath.Join(segDir, FINAL_NPY_NAME), onehot, []int{h, w, len(classes)}); err != nil {
		return MaskFailed, err
	}
	if err = saveNpyBool(filepath.Join(segDir, USER_NPY_NAME), user, []int{h, w}); err != nil {
		return MaskFailed, err
	}
	if err = savePreview(filepath.Join(segDir, MASK_PNG_NAME), RenderPreview(onehot, w, h, classes)); err != nil {
		return MaskFailed, err
	}
	log.Info(g.logTag+"mask caches built", zap.String("id", id), zap.String("dir", segDir))
	return MaskEncoded, nil
}

func saveNpyBool(path string, data []bool, shape []int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return
	}
	if err = npy.SaveBool(f, data, shape); err != nil {
		f.Close()
		return
	}
	err = f.Close()
	return
}

func savePreview(path string, img *image.NRGBA) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return
	}
	if err = png.Encode(f, img); err != nil {
		f.Close()
		return
	}
	err = f.Close()
	return
}
