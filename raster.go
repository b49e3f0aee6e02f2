package irisprep

import (
	"github.com/wgdzlh/irisprep/log"

	"github.com/lukeroth/gdal"
	"go.uber.org/zap"
)

// RasterSize reports the pixel dimensions of a tif.
func (g *PrepToolbox) RasterSize(tif string) (w, h int, err error) {
	ds, err := gdal.Open(tif, gdal.ReadOnly)
	if err != nil {
		log.Error(g.logTag+"open tif failed", zap.String("tif", tif), zap.Error(err))
		err = ErrInvalidTif
		return
	}
	defer ds.Close()
	w = ds.RasterXSize()
	h = ds.RasterYSize()
	return
}

// ReadBands reads every band of a multi-band raster as float32. GDAL converts
// the source data type; layout of each band buffer is row-major (band-major
// overall).
func (g *PrepToolbox) ReadBands(tif string) (bands [][]float32, w, h int, err error) {
	ds, err := gdal.Open(tif, gdal.ReadOnly)
	if err != nil {
		log.Error(g.logTag+"open tif failed", zap.String("tif", tif), zap.Error(err))
		err = ErrInvalidTif
		return
	}
	defer ds.Close()
	w = ds.RasterXSize()
	h = ds.RasterYSize()
	bc := ds.RasterCount()
	log.Info(g.logTag+"start read tif", zap.String("tif", tif), zap.Int("bands", bc), zap.Int("width", w), zap.Int("height", h))
	bands = make([][]float32, bc)
	for i := 0; i < bc; i++ {
		band := ds.RasterBand(i + 1)
		bands[i] = make([]float32, w*h)
		if err = band.IO(gdal.Read, 0, 0, w, h, bands[i], w, h, 0, 0); err != nil {
			log.Error(g.logTag+"read tif band failed", zap.Int("band", i), zap.Error(err))
			err = ErrTifReadFailed
			return
		}
	}
	return
}

// ReadMaskBand reads a single-band class-code raster as uint8.
func (g *PrepToolbox) ReadMaskBand(tif string) (m []uint8, w, h int, err error) {
	ds, err := gdal.Open(tif, gdal.ReadOnly)
	if err != nil {
		log.Error(g.logTag+"open mask tif failed", zap.String("tif", tif), zap.Error(err))
		err = ErrInvalidTif
		return
	}
	defer ds.Close()
	if bc := ds.RasterCount(); bc != 1 {
		log.Error(g.logTag+"mask tif can have only one band", zap.Int("bands", bc))
		err = ErrWrongTif
		return
	}
	w = ds.RasterXSize()
	h = ds.RasterYSize()
	m = make([]uint8, w*h)
	if err = ds.RasterBand(1).IO(gdal.Read, 0, 0, w, h, m, w, h, 0, 0); err != nil {
		log.Error(g.logTag+"read mask tif band failed", zap.Error(err))
		err = ErrTifReadFailed
	}
	return
}
