package tracker

import (
	"sort"

	"github.com/golang/geo/r2"

	"github.com/kestrelrobotics/gyrotrack/keypoints"
)

// keypointData pairs a later-frame keypoint measurement with its original
// index in the frame's keypoint array.
type keypointData struct {
	measurement r2.Point
	index       int
}

// matchingData holds everything one matching call needs for a frame pair:
// the later frame's keypoints sorted by ascending row, the predicted pixel
// positions of the earlier frame's keypoints, and both descriptor sets.
type matchingData struct {
	byRow          []keypointData
	predicted      keypoints.KeyPoints
	earlierDescs   keypoints.Descriptors
	laterDescs     keypoints.Descriptors
	numEarlier     int
	numLater       int
	descriptorBits int
}

func newMatchingData(earlier, later *Frame, predicted keypoints.KeyPoints) *matchingData {
	byRow := make([]keypointData, len(later.Keypoints))
	for i, kp := range later.Keypoints {
		byRow[i] = keypointData{measurement: kp, index: i}
	}
	// stable sort keeps identical inputs producing identical match sequences
	sort.SliceStable(byRow, func(i, j int) bool {
		return byRow[i].measurement.Y < byRow[j].measurement.Y
	})
	return &matchingData{
		byRow:          byRow,
		predicted:      predicted,
		earlierDescs:   earlier.Descriptors,
		laterDescs:     later.Descriptors,
		numEarlier:     len(earlier.Keypoints),
		numLater:       len(later.Keypoints),
		descriptorBits: later.DescriptorSize() * 8,
	}
}
