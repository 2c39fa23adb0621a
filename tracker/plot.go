package tracker

import (
	"github.com/fogleman/gg"
)

// PlotMatches draws the two keypoint sets side by side with a line per match
// and saves the result as a PNG. Debugging helper.
func PlotMatches(cam *Camera, frameK, frameKp1 *Frame, matches Matches, outName string) error {
	if err := cam.CheckValid(); err != nil {
		return err
	}
	w := cam.Intrinsics.Width
	h := cam.Intrinsics.Height
	dc := gg.NewContext(2*w, h)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	// earlier frame on the left, later frame on the right
	dc.SetRGBA(0, 0, 1, 0.5)
	for _, p := range frameK.Keypoints {
		dc.DrawCircle(p.X, p.Y, 3.0)
		dc.Fill()
	}
	for _, p := range frameKp1.Keypoints {
		dc.DrawCircle(p.X+float64(w), p.Y, 3.0)
		dc.Fill()
	}

	dc.SetRGBA(0, 1, 0, 0.75)
	dc.SetLineWidth(1.25)
	for _, m := range matches {
		p1 := frameK.Keypoints[m.EarlierIdx]
		p2 := frameKp1.Keypoints[m.LaterIdx]
		dc.DrawLine(p1.X, p1.Y, p2.X+float64(w), p2.Y)
		dc.Stroke()
	}
	return dc.SavePNG(outName)
}
