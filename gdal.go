package irisprep

import (
	"fmt"
	"sync"

	"github.com/wgdzlh/irisprep/config"
	"github.com/wgdzlh/irisprep/log"

	"github.com/lukeroth/gdal"
	"go.uber.org/zap"
)

// PrepToolbox drives per-scene project preparation. The spatial reference
// cache is shared across scenes; everything else is per-call.
type PrepToolbox struct {
	cfg    *config.Config
	refMap map[int]gdal.SpatialReference
	rLock  sync.Mutex
	logTag string
}

func NewPrepToolbox(cfg *config.Config) *PrepToolbox {
	return &PrepToolbox{
		cfg:    cfg,
		refMap: map[int]gdal.SpatialReference{},
		logTag: "PrepToolbox:",
	}
}

// 获取srid对应的坐标系（可复用，故无需回收）
func (g *PrepToolbox) getSridRef(srid int) (ref gdal.SpatialReference, err error) {
	g.rLock.Lock()
	defer g.rLock.Unlock()
	ref, ok := g.refMap[srid]
	if ok {
		return
	}
	ref = gdal.CreateSpatialReference("")
	if err = ref.FromEPSG(srid); err != nil {
		log.Error(g.logTag+"set ref srid failed", zap.Int("srid", srid), zap.Error(err))
		ref.Destroy()
		return
	}
	// 固定数据轴次序为(经度,纬度)，避免转换坐标系时次序倒置
	ref.SetAxisMappingStrategy(gdal.OAMS_TraditionalGisOrder)
	g.refMap[srid] = ref
	return
}

// SceneLocation reprojects the raster's bounding-box center to EPSG:4326.
// A raster without a CRS yields ErrVoidCrs; no location is fabricated.
func (g *PrepToolbox) SceneLocation(tif string) (ll LatLon, err error) {
	ds, err := gdal.Open(tif, gdal.ReadOnly)
	if err != nil {
		log.Error(g.logTag+"open tif failed", zap.String("tif", tif), zap.Error(err))
		err = ErrInvalidTif
		return
	}
	defer ds.Close()
	wkt := ds.Projection()
	if wkt == "" {
		err = ErrVoidCrs
		return
	}
	gt := ds.GeoTransform()
	w := float64(ds.RasterXSize())
	h := float64(ds.RasterYSize())
	cx := gt[0] + gt[1]*w/2 + gt[2]*h/2
	cy := gt[3] + gt[4]*w/2 + gt[5]*h/2

	ref := gdal.CreateSpatialReference(wkt)
	defer ref.Destroy()
	ref.SetAxisMappingStrategy(gdal.OAMS_TraditionalGisOrder)
	tRef, err := g.getSridRef(UNIVERSAL_SRID)
	if err != nil {
		return
	}
	geo, err := gdal.CreateFromWKT(fmt.Sprintf("POINT(%f %f)", cx, cy), ref)
	if err != nil {
		log.Error(g.logTag+"parse center wkt failed", zap.Error(err))
		err = ErrInvalidWKT
		return
	}
	defer geo.Destroy()
	if err = geo.TransformTo(tRef); err != nil {
		log.Error(g.logTag+"geo transform failed", zap.String("tif", tif), zap.Error(err))
		return
	}
	lon, lat, _ := geo.Point(0)
	ll = LatLon{lat, lon}
	return
}
