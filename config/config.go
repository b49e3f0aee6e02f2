// Package config holds the runtime configuration for irisprep,
// loaded from a TOML file with CLI flag overrides applied on top.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Paths contains the directory layout of a preparation run.
type Paths struct {
	ImagesRoot  string `toml:"images_root"`  // <images_root>/<ID>/rgb.tif
	ProjectRoot string `toml:"project_root"` // per-scene projects are created here
	Template    string `toml:"template"`     // base project JSON template
	HarvestDir  string `toml:"harvest_dir"`  // flat output dir for harvested previews
}

// Scenes contains per-scene processing options.
type Scenes struct {
	MaskName      string   `toml:"mask_name"`      // optional class-code raster file name
	OverwriteJSON bool     `toml:"overwrite_json"` // rewrite <ID>.json when it already exists
	IDs           []string `toml:"ids"`            // scene IDs for harvest; empty means use CLI args
}

// Log contains logger options.
type Log struct {
	Format string `toml:"format"` // console or json
	Level  string `toml:"level"`
}

type Config struct {
	Paths  Paths  `toml:"paths"`
	Scenes Scenes `toml:"scenes"`
	Log    Log    `toml:"log"`
}

// Load reads the config at path, layered over Default. A missing file is not
// an error: defaults are returned and exists is false. An empty path returns
// defaults outright.
func Load(path string) (cfg *Config, exists bool, err error) {
	def := Default()
	cfg = &def
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = nil
			return
		}
		return
	}
	exists = true
	if err = toml.Unmarshal(data, cfg); err != nil {
		err = fmt.Errorf("parse config %s: %w", path, err)
	}
	return
}

// Validate checks the fields every run needs regardless of subcommand.
func (c *Config) Validate() error {
	if c.Paths.ImagesRoot == "" {
		return errors.New("config: images_root is required")
	}
	if c.Paths.ProjectRoot == "" {
		return errors.New("config: project_root is required")
	}
	if c.Paths.Template == "" {
		return errors.New("config: template is required")
	}
	if c.Scenes.MaskName == "" {
		return errors.New("config: mask_name is required")
	}
	return nil
}
