package irisprep

import "errors"

var (
	ErrInvalidTif    = errors.New("gdal tif open err")
	ErrWrongTif      = errors.New("gdal tif wrong band layout")
	ErrTifReadFailed = errors.New("gdal tif read failed")
	ErrVoidCrs       = errors.New("tif with void crs")
	ErrInvalidWKT    = errors.New("invalid WKT")

	ErrMissingTemplate   = errors.New("project template not found")
	ErrBadTemplate       = errors.New("project template has no classes")
	ErrMissingImagesRoot = errors.New("images root not found")
)
