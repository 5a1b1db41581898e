package main

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/geom"
)

var (
	maskInside   = color.Gray{Y: 255}
	maskExcluded = color.Gray{Y: 80}
	maskOutside  = color.Gray{Y: 0}
)

// renderMask draws region over its base bounds: white where a right click
// is intercepted, dark grey where a hole removed part of the base shape,
// black outside the base shape. The result starts at the origin and scale
// enlarges each pixel to a scale x scale block.
func renderMask(region *geom.Region, scale int) *image.Gray {
	b := region.Bounds()
	base := geom.FromRectangle(b)
	if region.Kind() == geom.KindEllipse {
		base = geom.FromEllipse(b)
	}

	src := image.NewGray(b.Rectangle())
	for y := src.Rect.Min.Y; y < src.Rect.Max.Y; y++ {
		for x := src.Rect.Min.X; x < src.Rect.Max.X; x++ {
			p := geom.Point{X: x, Y: y}
			switch {
			case region.Contains(p):
				src.SetGray(x, y, maskInside)
			case base.Contains(p):
				src.SetGray(x, y, maskExcluded)
			default:
				src.SetGray(x, y, maskOutside)
			}
		}
	}

	scale = max(scale, 1)
	dst := image.NewGray(image.Rect(0, 0, b.Width*scale, b.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
