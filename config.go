package irisprep

const (
	RGB_TIF_NAME  = "rgb.tif"
	RGB_NPY_NAME  = "rgb.npy"
	METADATA_NAME = "metadata.json"

	FINAL_NPY_NAME = "1_final.npy"
	USER_NPY_NAME  = "1_user.npy"
	MASK_PNG_NAME  = "mask.png"

	IRIS_DIR_EXT     = ".iris"
	SEGMENTATION_DIR = "segmentation"
	IMAGES_DIR       = "images"
	FILE_EXT_JSON    = ".json"
	FILE_EXT_PNG     = ".png"

	LAUNCH_SCRIPT = "run_all_projects.sh"
	LAUNCH_LINE   = "iris label %s"
	LOCK_FILE     = ".irisprep.lock"

	// path is kept as a template string, IRIS expands {id} itself
	IMAGE_PATH_TEMPLATE = "images/{id}/rgb.npy"

	UNIVERSAL_SRID = 4326

	CLASS_CLEAR = "Clear"
	CLASS_CLOUD = "Cloud"

	// upstream no-data code, folded into Clear by the two-class policy
	NODATA_CODE = 255

	TMP_NPY_SUFFIX = ".%s.tmp"

	ErrClassMissingTemplate = "template classes missing [%s]"
)
