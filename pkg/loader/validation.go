package loader

import (
	"github.com/flowmable/background-color-scorer/pkg/errors"
)

// ValidateImageInfo checks decoded header metadata against the configured
// limits before any pixel data is read.
func ValidateImageInfo(info *ImageInfo, maxWidth, maxHeight int, formats []string) error {
	if info.Width <= 0 || info.Height <= 0 {
		return &errors.ImageLoadError{
			Path:      info.Path,
			Operation: "validate",
			Err:       errors.ErrEmptyImage,
		}
	}

	if info.Width > maxWidth || info.Height > maxHeight {
		return &errors.ImageDimensionError{
			Width:     info.Width,
			Height:    info.Height,
			MaxWidth:  maxWidth,
			MaxHeight: maxHeight,
		}
	}

	if !formatAllowed(info.Format, formats) {
		return &errors.ImageLoadError{
			Path:      info.Path,
			Operation: "validate",
			Err:       errors.ErrUnsupportedFormat,
		}
	}

	return nil
}

func formatAllowed(format string, allowed []string) bool {
	for _, f := range allowed {
		if f == format {
			return true
		}
	}
	return false
}
