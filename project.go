package irisprep

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wgdzlh/irisprep/log"
	"github.com/wgdzlh/irisprep/utils"

	"go.uber.org/zap"
)

// ListSceneIDs returns the sorted subdirectory names of the images root.
func ListSceneIDs(root string) (ids []string, err error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = ErrMissingImagesRoot
		}
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	sort.Strings(ids)
	return
}

// LoadTemplate parses the base project template and its ordered class table.
// The two-class policy needs both Clear and Cloud; a template missing either
// is rejected here, naming the class, instead of silently emitting
// under-populated one-hot arrays later.
func LoadTemplate(path string) (tpl map[string]any, classes ClassTable, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = ErrMissingTemplate
		}
		return
	}
	if err = json.Unmarshal(data, &tpl); err != nil {
		err = fmt.Errorf("parse template %s: %w", path, err)
		return
	}
	raw, ok := tpl["classes"].([]any)
	if !ok || len(raw) == 0 {
		err = ErrBadTemplate
		return
	}
	classes = make(ClassTable, 0, len(raw))
	for _, c := range raw {
		obj, ok := c.(map[string]any)
		if !ok {
			err = ErrBadTemplate
			return
		}
		name, _ := obj["name"].(string)
		colour, ok := obj["colour"].([]any)
		if name == "" || !ok || len(colour) < 3 {
			err = ErrBadTemplate
			return
		}
		def := ClassDef{Name: name}
		for i := 0; i < 3; i++ {
			v, ok := colour[i].(float64)
			if !ok {
				err = ErrBadTemplate
				return
			}
			def.Colour[i] = uint8(v)
		}
		classes = append(classes, def)
	}
	for _, need := range []string{CLASS_CLEAR, CLASS_CLOUD} {
		if classes.Index(need) < 0 {
			err = fmt.Errorf(ErrClassMissingTemplate, need)
			return
		}
	}
	return
}

// SpecializeTemplate deep-copies the template through a JSON round-trip and
// injects the per-scene fields. The returned document shares no structure
// with the template or any other scene's document.
func SpecializeTemplate(tpl map[string]any, id string, w, h int) (doc AnyJson, err error) {
	buf, err := json.Marshal(tpl)
	if err != nil {
		return
	}
	var cfg map[string]any
	if err = json.Unmarshal(buf, &cfg); err != nil {
		return
	}
	cfg["name"] = id
	images, _ := cfg["images"].(map[string]any)
	if images == nil {
		images = map[string]any{}
		cfg["images"] = images
	}
	images["path"] = IMAGE_PATH_TEMPLATE
	images["shape"] = []int{w, h}
	seg, _ := cfg["segmentation"].(map[string]any)
	if seg == nil {
		seg = map[string]any{}
		cfg["segmentation"] = seg
	}
	seg["mask_area"] = []int{0, 0, w, h}
	return json.MarshalIndent(cfg, "", "  ")
}

// PrepareScenes runs the whole batch: one project per scene ID found under
// the images root. Scenes missing the RGB raster are skipped; scenes missing
// the optional mask raster get no segmentation caches; a raster without CRS
// gets no metadata.json. Only a missing template or images root aborts.
func (g *PrepToolbox) PrepareScenes() (reports []SceneReport, err error) {
	tpl, classes, err := LoadTemplate(g.cfg.Paths.Template)
	if err != nil {
		return
	}
	log.Info(g.logTag+"template loaded", zap.Strings("classes", classes.Names()))
	ids, err := ListSceneIDs(g.cfg.Paths.ImagesRoot)
	if err != nil {
		return
	}
	if len(ids) == 0 {
		log.Warn(g.logTag+"no scene IDs under images root, nothing to do", zap.String("root", g.cfg.Paths.ImagesRoot))
		return
	}
	var runLines []string
	for _, id := range ids {
		rep := g.prepareScene(tpl, classes, id, &runLines)
		reports = append(reports, rep)
	}
	err = writeLaunchScript(filepath.Join(g.cfg.Paths.ProjectRoot, LAUNCH_SCRIPT), runLines)
	return
}

func (g *PrepToolbox) prepareScene(tpl map[string]any, classes ClassTable, id string, runLines *[]string) (rep SceneReport) {
	rep.ID = id
	sceneDir := filepath.Join(g.cfg.Paths.ImagesRoot, id)
	tifRGB := filepath.Join(sceneDir, RGB_TIF_NAME)
	if _, e := os.Stat(tifRGB); e != nil {
		log.Warn(g.logTag+"no rgb.tif, skip scene", zap.String("id", id))
		rep.Skipped = true
		return
	}
	w, h, err := g.RasterSize(tifRGB)
	if err != nil {
		rep.Err = err
		return
	}
	rep.Width, rep.Height = w, h
	log.Info(g.logTag+"scene shape", zap.String("id", id), zap.Int("width", w), zap.Int("height", h))

	projDir := filepath.Join(g.cfg.Paths.ProjectRoot, id)
	destDir := filepath.Join(projDir, IMAGES_DIR, id)
	if err = utils.EnsureRealDir(destDir); err != nil {
		rep.Err = err
		return
	}
	if _, _, err = g.MaterializeRGB(tifRGB, filepath.Join(destDir, RGB_NPY_NAME)); err != nil {
		rep.Err = err
		return
	}

	if ll, e := g.SceneLocation(tifRGB); e != nil {
		if errors.Is(e, ErrVoidCrs) {
			log.Warn(g.logTag+"no CRS, create metadata.json manually with location [lat,lon]", zap.String("id", id))
		} else {
			log.Error(g.logTag+"scene location failed", zap.String("id", id), zap.Error(e))
		}
	} else {
		rep.Location = &ll
		if e = writeMetadata(filepath.Join(destDir, METADATA_NAME), id, ll); e != nil {
			rep.Err = e
			return
		}
		log.Info(g.logTag+"metadata written", zap.String("id", id), zap.Float64("lat", ll[0]), zap.Float64("lon", ll[1]))
	}

	// no rgb.npy may remain in the source tree
	if e := utils.RemoveAnyFile(filepath.Join(sceneDir, RGB_NPY_NAME)); e != nil {
		log.Warn(g.logTag+"could not remove source rgb.npy", zap.String("id", id), zap.Error(e))
	}

	projJSON := filepath.Join(projDir, id+FILE_EXT_JSON)
	_, statErr := os.Stat(projJSON)
	if g.cfg.Scenes.OverwriteJSON || statErr != nil {
		doc, e := SpecializeTemplate(tpl, id, w, h)
		if e != nil {
			rep.Err = e
			return
		}
		if e = os.WriteFile(projJSON, doc, 0644); e != nil {
			rep.Err = e
			return
		}
		log.Info(g.logTag+"project json written", zap.String("path", projJSON))
	}

	st, e := g.BuildMaskCaches(sceneDir, projDir, id, id, classes)
	rep.Mask = st
	if e != nil {
		log.Error(g.logTag+"mask caches failed", zap.String("id", id), zap.Error(e))
	}
	*runLines = append(*runLines, fmt.Sprintf(LAUNCH_LINE, projJSON))
	return
}

func writeMetadata(path, id string, ll LatLon) error {
	meta, err := json.MarshalIndent(sceneMetadata{SceneID: id, Location: ll}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, meta, 0644)
}

// writeLaunchScript emits one annotation-tool invocation per configured
// scene.
func writeLaunchScript(path string, lines []string) error {
	var sb strings.Builder
	sb.WriteString("#!/usr/bin/env bash\nset -e\n\n")
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(sb.String()), 0755)
}
