// Package keypoints contains the keypoint measurement and binary descriptor
// types shared by the tracking components, and the Hamming distance metric
// used to compare descriptors.
package keypoints

import (
	"github.com/golang/geo/r2"
)

type (
	// KeyPoint is the sub-pixel measurement of one detected image feature.
	KeyPoint r2.Point // keypoint type
	// KeyPoints holds the measurements of one frame, in detection order.
	KeyPoints []r2.Point // set of keypoints type
)
