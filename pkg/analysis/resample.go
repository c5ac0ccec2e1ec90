package analysis

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// fitWithin scales (w, h) to fit inside a max×max box preserving aspect
// ratio. Dimensions already within the box are returned unchanged; results
// are rounded and never fall below 1.
func fitWithin(w, h, max int) (int, int) {
	if w <= max && h <= max {
		return w, h
	}

	scale := float64(max) / float64(w)
	if h > w {
		scale = float64(max) / float64(h)
	}

	nw := int(float64(w)*scale + 0.5)
	nh := int(float64(h)*scale + 0.5)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	return nw, nh
}

// resampleNRGBA returns the image as a non-premultiplied RGBA grid scaled to
// fit within max×max. Images already within bounds are copied as-is so every
// downstream pass works on a zero-origin NRGBA grid.
func resampleNRGBA(img image.Image, max int) *image.NRGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	nw, nh := fitWithin(w, h, max)

	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))
	if nw == w && nh == h {
		xdraw.Copy(dst, image.Point{}, img, bounds, xdraw.Src, nil)
		return dst
	}

	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}
