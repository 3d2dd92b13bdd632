package render

import (
	"math"

	"github.com/prop-tools/report-atlas/pkg/services/layout"
)

// FitRect computes where an image of intrinsic size imgW x imgH lands when
// placed into box with the given fit mode, centered both ways. Cover scales
// by the larger ratio so the box is filled (overflow is clipped by the
// caller); contain scales by the smaller so nothing is cropped.
func FitRect(imgW, imgH float64, box layout.Box, mode FitMode) layout.Box {
	if imgW <= 0 || imgH <= 0 {
		return box
	}

	var scale float64
	if mode == FitCover {
		scale = math.Max(box.W/imgW, box.H/imgH)
	} else {
		scale = math.Min(box.W/imgW, box.H/imgH)
	}

	w := imgW * scale
	h := imgH * scale
	return layout.Box{
		X: box.X + (box.W-w)/2,
		Y: box.Y + (box.H-h)/2,
		W: w,
		H: h,
	}
}
