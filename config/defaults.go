package config

const (
	defaultImagesRoot    = "spot/images"
	defaultProjectRoot   = "spot"
	defaultTemplate      = "base.json"
	defaultHarvestDir    = "save_mask"
	defaultMaskName      = "f_1dpwseg.tif"
	defaultOverwriteJSON = true
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ImagesRoot:  defaultImagesRoot,
			ProjectRoot: defaultProjectRoot,
			Template:    defaultTemplate,
			HarvestDir:  defaultHarvestDir,
		},
		Scenes: Scenes{
			MaskName:      defaultMaskName,
			OverwriteJSON: defaultOverwriteJSON,
		},
		Log: Log{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
