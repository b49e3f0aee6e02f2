package irisprep

import "encoding/json"

type AnyJson = json.RawMessage

// [lat,lon] in EPSG:4326
type LatLon = [2]float64

// 标注类别：名称与展示颜色
type ClassDef struct {
	Name   string
	Colour [3]uint8
}

// ClassTable is the ordered class list from the project template. Channel
// order of every one-hot array follows this order.
type ClassTable []ClassDef

func (t ClassTable) Index(name string) int {
	for i, c := range t {
		if c.Name == name {
			return i
		}
	}
	return -1
}

func (t ClassTable) Names() []string {
	names := make([]string, len(t))
	for i, c := range t {
		names[i] = c.Name
	}
	return names
}

// MaskStatus is the outcome of the mask cache step for one scene.
type MaskStatus int

const (
	MaskAbsent MaskStatus = iota // optional mask raster not present
	MaskEncoded
	MaskFailed
)

func (s MaskStatus) String() string {
	switch s {
	case MaskEncoded:
		return "encoded"
	case MaskFailed:
		return "failed"
	default:
		return "absent"
	}
}

// SceneReport records the per-scene outcome of a preparation run.
type SceneReport struct {
	ID       string
	Width    int
	Height   int
	Location *LatLon // nil when the raster has no CRS
	Mask     MaskStatus
	Skipped  bool // no rgb.tif in the scene dir
	Err      error
}

// HarvestReport records one harvest lookup.
type HarvestReport struct {
	ID    string
	Src   string
	Dst   string
	Found bool
}

type sceneMetadata struct {
	SceneID  string `json:"scene_id"`
	Location LatLon `json:"location"`
}
