// Package tracker implements gyro-aided feature tracking between two
// consecutive frames of the same camera: keypoints of the earlier frame are
// projected to predicted pixel positions in the later frame using a relative
// rotation estimate, and a windowed descriptor search assigns each one its
// most likely counterpart.
package tracker

import (
	"math"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"

	"github.com/kestrelrobotics/gyrotrack/keypoints"
	"github.com/kestrelrobotics/gyrotrack/utils"
)

// GyroTracker matches keypoints between time-ordered frame pairs of one
// camera. It is not safe for concurrent use; one Track call processes one
// frame pair to completion.
type GyroTracker struct {
	camera *Camera
	cfg    *Config
	stats  StatSink
	logger golog.Logger
}

// NewGyroTracker returns a tracker for the given camera. A nil stats sink
// discards diagnostic samples.
func NewGyroTracker(camera *Camera, cfg *Config, stats StatSink, logger golog.Logger) (*GyroTracker, error) {
	if err := camera.CheckValid(); err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, errors.New("tracker config is nil")
	}
	if err := cfg.Validate(""); err != nil {
		return nil, err
	}
	if stats == nil {
		stats = noopStatSink{}
	}
	if logger == nil {
		logger = golog.NewLogger("gyro_tracker")
	}
	return &GyroTracker{camera: camera, cfg: cfg, stats: stats, logger: logger}, nil
}

// Track matches the keypoints of frameK to those of frameKp1, predicting
// their positions with qRel, the earlier-to-later camera rotation. It returns
// one match per resolved earlier-frame keypoint, in earlier-frame scan order.
func (t *GyroTracker) Track(qRel quat.Number, frameK, frameKp1 *Frame) (Matches, error) {
	if frameK == nil {
		return nil, errors.New("earlier frame is nil")
	}
	predicted := PredictKeypointPositions(t.camera.Intrinsics, qRel, frameK.Keypoints)
	return t.TrackWithPredictions(predicted, frameK, frameKp1)
}

// TrackWithPredictions is Track with the predicted positions supplied by the
// caller; predicted must hold one position per keypoint of frameK.
func (t *GyroTracker) TrackWithPredictions(predicted keypoints.KeyPoints, frameK, frameKp1 *Frame) (Matches, error) {
	if err := t.validateFramePair(frameK, frameKp1); err != nil {
		return nil, err
	}
	if len(predicted) != len(frameK.Keypoints) {
		return nil, errors.Errorf("got %d predicted positions for %d keypoints", len(predicted), len(frameK.Keypoints))
	}
	data := newMatchingData(frameK, frameKp1, predicted)
	matches, err := t.matchFeatures(data)
	if err != nil {
		return nil, err
	}
	t.logger.Debugf("matched %d of %d keypoints", len(matches), data.numEarlier)
	return matches, nil
}

// validateFramePair checks the tracking preconditions. Any violation is a
// contract breach by the caller and aborts the call before any matching.
func (t *GyroTracker) validateFramePair(frameK, frameKp1 *Frame) error {
	if err := frameK.checkValid(t.camera); err != nil {
		return errors.Wrap(err, "earlier frame")
	}
	if err := frameKp1.checkValid(t.camera); err != nil {
		return errors.Wrap(err, "later frame")
	}
	if !frameKp1.CapturedAt.After(frameK.CapturedAt) {
		return errors.Errorf("frames out of order: later frame captured at %v, earlier at %v",
			frameKp1.CapturedAt, frameK.CapturedAt)
	}
	if frameK.NumKeypoints() > 0 && frameKp1.NumKeypoints() > 0 &&
		frameK.DescriptorSize() != frameKp1.DescriptorSize() {
		return errors.Errorf("descriptor sizes differ between frames: %d vs %d bytes",
			frameK.DescriptorSize(), frameKp1.DescriptorSize())
	}
	height := float64(t.camera.Intrinsics.Height)
	for i, kp := range frameKp1.Keypoints {
		if kp.Y < 0 || kp.Y >= height {
			return errors.Errorf("later frame keypoint %d row %f outside image height %d", i, kp.Y, t.camera.Intrinsics.Height)
		}
	}
	return nil
}

// matchFeatures runs the windowed search and greedy assignment over all
// earlier-frame keypoints.
func (t *GyroTracker) matchFeatures(data *matchingData) (Matches, error) {
	height := t.camera.Intrinsics.Height
	lut := buildRowLUT(data.byRow, height)

	small := t.cfg.SmallSearchDistance
	large := t.cfg.LargeSearchDistance
	threshold := int(float64(data.descriptorBits) * t.cfg.MatchingThresholdRatio)

	matches := make(Matches, 0, data.numEarlier)
	// later-frame keypoints claimed by an earlier match; claims are
	// irrevocable for the rest of the call.
	isMatched := make([]bool, data.numLater)
	// candidates already scored against the current earlier keypoint, so the
	// large window never rescores the small one.
	processed := make([]bool, data.numLater)

	for i := 0; i < data.numEarlier; i++ {
		predicted := data.predicted[i]
		descK := data.earlierDescs[i]
		predictedRow := int(math.Round(predicted.Y))

		smallBegin, smallEnd := lut.rowRange(predictedRow-small, predictedRow+small)
		largeBegin, largeEnd := lut.rowRange(predictedRow-large, predictedRow+large)

		for j := range processed {
			processed[j] = false
		}

		found := false
		bestIdx := -1
		// the threshold doubles as the initial best so any accepted match
		// must strictly beat it
		bestScore := threshold
		numChecked := 0

		boundLeft := predicted.X - float64(small)
		boundRight := predicted.X + float64(small)
		for s := smallBegin; s < smallEnd; s++ {
			kp := data.byRow[s]
			if kp.measurement.X < boundLeft || kp.measurement.X > boundRight {
				continue
			}
			if isMatched[kp.index] {
				continue
			}
			score, err := t.scoreCandidate(descK, data.laterDescs[kp.index], data.descriptorBits)
			if err != nil {
				return nil, err
			}
			if score > bestScore {
				bestScore = score
				bestIdx = kp.index
				found = true
			}
			processed[kp.index] = true
			numChecked++
		}

		// nothing above threshold nearby; widen the window
		if !found {
			boundLeft = predicted.X - float64(large)
			boundRight = predicted.X + float64(large)
			for s := largeBegin; s < largeEnd; s++ {
				kp := data.byRow[s]
				if processed[kp.index] || isMatched[kp.index] {
					continue
				}
				if kp.measurement.X < boundLeft || kp.measurement.X > boundRight {
					continue
				}
				score, err := t.scoreCandidate(descK, data.laterDescs[kp.index], data.descriptorBits)
				if err != nil {
					return nil, err
				}
				if score > bestScore {
					bestScore = score
					bestIdx = kp.index
					found = true
				}
				processed[kp.index] = true
				numChecked++
			}
		}

		if found {
			isMatched[bestIdx] = true
			score := 0.
			if t.cfg.UseDescriptorScore {
				score = float64(bestScore)
			}
			matches = append(matches, Match{LaterIdx: bestIdx, EarlierIdx: i, Score: score})
			t.stats.AddSample(StatMatchBits, float64(bestScore))
		} else {
			t.stats.AddSample(StatNoMatchNumChecked, float64(numChecked))
		}
	}
	return matches, nil
}

// scoreCandidate turns a descriptor distance into an agreement score in
// [0, bits]. A score outside that range is an internal defect, not caller
// misuse, and aborts the call.
func (t *GyroTracker) scoreCandidate(descK, descKp1 keypoints.Descriptor, bits int) (int, error) {
	distance, err := keypoints.HammingDistance(descK, descKp1)
	if err != nil {
		return 0, err
	}
	score := bits - distance
	if score < 0 || score > bits {
		return 0, errors.Errorf("descriptor score %d outside [0, %d]", score, bits)
	}
	return score, nil
}

// rowSpan is a convenience for tests and diagnostics: the number of
// row-sorted keypoints a row interval covers.
func rowSpan(lut rowLUT, r0, r1 int) int {
	begin, end := lut.rowRange(r0, r1)
	return utils.MaxInt(end-begin, 0)
}
