package tracker

import (
	"github.com/kestrelrobotics/gyrotrack/utils"
)

// rowLUT is a prefix-count table over image rows: entry r holds the number of
// row-sorted keypoints whose y coordinate is at most r. It converts a row
// interval into an index range of the row-sorted keypoint view in O(1).
type rowLUT []int

// buildRowLUT walks rows 0..height-1 and the y-sorted keypoint view together,
// a linear-time merge.
func buildRowLUT(byRow []keypointData, height int) rowLUT {
	lut := make(rowLUT, 0, height)
	v := 0
	for y := 0; y < height; y++ {
		for v < len(byRow) && byRow[v].measurement.Y <= float64(y) {
			v++
		}
		lut = append(lut, v)
	}
	return lut
}

// rowRange returns the half-open index range [begin, end) into the row-sorted
// view covering all keypoints whose row lies in [r0, r1]. Rows are clamped to
// the image.
func (lut rowLUT) rowRange(r0, r1 int) (int, int) {
	r0 = utils.ClampInt(r0, 0, len(lut)-1)
	r1 = utils.ClampInt(r1, 0, len(lut)-1)
	begin := 0
	if r0 > 0 {
		begin = lut[r0-1]
	}
	return begin, lut[r1]
}
