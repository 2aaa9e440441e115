// Package imaging prepares rasterized PDF pages for OCR: grayscale
// conversion, adaptive thresholding and light morphological denoising.
package imaging

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

const (
	// thresholdWindow is the side length of the neighborhood used for
	// adaptive thresholding.
	thresholdWindow = 11

	// thresholdBias is subtracted from the neighborhood mean; pixels
	// darker than mean-bias become black.
	thresholdBias = 2
)

// Preprocess converts a page image into a binarized grayscale image
// suitable for OCR.
func Preprocess(img image.Image) *image.Gray {
	gray := Grayscale(img)
	bin := AdaptiveThreshold(gray, thresholdWindow, thresholdBias)
	return Close(bin)
}

// Grayscale converts any image to 8-bit grayscale.
func Grayscale(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)
	return gray
}

// AdaptiveThreshold binarizes a grayscale image against the local mean of
// a window x window neighborhood, offset by bias. It uses an integral
// image so the cost is independent of the window size.
func AdaptiveThreshold(gray *image.Gray, window, bias int) *image.Gray {
	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return gray
	}

	// integral[y][x] holds the sum over the rectangle (0,0)-(x,y) exclusive
	integral := make([][]int64, h+1)
	integral[0] = make([]int64, w+1)
	for y := 0; y < h; y++ {
		integral[y+1] = make([]int64, w+1)
		var rowSum int64
		for x := 0; x < w; x++ {
			rowSum += int64(gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
			integral[y+1][x+1] = integral[y][x+1] + rowSum
		}
	}

	half := window / 2
	out := image.NewGray(bounds)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			x0, y0 := max(0, x-half), max(0, y-half)
			x1, y1 := min(w-1, x+half), min(h-1, y+half)
			count := int64((x1 - x0 + 1) * (y1 - y0 + 1))
			sum := integral[y1+1][x1+1] - integral[y0][x1+1] - integral[y1+1][x0] + integral[y0][x0]
			mean := sum / count

			v := int64(gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
			if v > mean-int64(bias) {
				out.SetGray(bounds.Min.X+x, bounds.Min.Y+y, color.Gray{Y: 255})
			} else {
				out.SetGray(bounds.Min.X+x, bounds.Min.Y+y, color.Gray{Y: 0})
			}
		}
	}
	return out
}

// Close performs a 3x3 morphological closing (dilate then erode) on a
// binary image, filling pin holes in dark strokes.
func Close(bin *image.Gray) *image.Gray {
	return erode(dilate(bin))
}

// dilate grows dark regions: a pixel becomes black if any neighbor is black.
func dilate(bin *image.Gray) *image.Gray {
	return morph(bin, func(hasBlack bool) uint8 {
		if hasBlack {
			return 0
		}
		return 255
	})
}

// erode shrinks dark regions: a pixel stays black only if all neighbors are black.
func erode(bin *image.Gray) *image.Gray {
	inverted := invert(bin)
	return invert(morph(inverted, func(hasBlack bool) uint8 {
		if hasBlack {
			return 0
		}
		return 255
	}))
}

func morph(bin *image.Gray, decide func(hasBlack bool) uint8) *image.Gray {
	bounds := bin.Bounds()
	out := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hasBlack := false
			for dy := -1; dy <= 1 && !hasBlack; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if nx < bounds.Min.X || ny < bounds.Min.Y || nx >= bounds.Max.X || ny >= bounds.Max.Y {
						continue
					}
					if bin.GrayAt(nx, ny).Y < 128 {
						hasBlack = true
						break
					}
				}
			}
			out.SetGray(x, y, color.Gray{Y: decide(hasBlack)})
		}
	}
	return out
}

func invert(bin *image.Gray) *image.Gray {
	bounds := bin.Bounds()
	out := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.SetGray(x, y, color.Gray{Y: 255 - bin.GrayAt(x, y).Y})
		}
	}
	return out
}
