package tracker

import (
	"time"

	"github.com/pkg/errors"

	"github.com/kestrelrobotics/gyrotrack/keypoints"
	"github.com/kestrelrobotics/gyrotrack/transform"
)

// Camera identifies the calibrated sensor that produced both frames of a
// tracked pair.
type Camera struct {
	ID         string
	Intrinsics *transform.PinholeCameraIntrinsics
}

// CheckValid checks that the camera has an identity and valid intrinsics.
func (c *Camera) CheckValid() error {
	if c == nil {
		return errors.New("camera is nil")
	}
	if c.ID == "" {
		return errors.New("camera must have an ID")
	}
	return c.Intrinsics.CheckValid()
}

// Frame holds the keypoint measurements and binary descriptors detected in
// one image, along with the capture time and the producing camera's identity.
// A frame is immutable once handed to the tracker.
type Frame struct {
	CameraID    string
	CapturedAt  time.Time
	Keypoints   keypoints.KeyPoints
	Descriptors keypoints.Descriptors
}

// NumKeypoints returns the number of keypoints detected in the frame.
func (f *Frame) NumKeypoints() int {
	return len(f.Keypoints)
}

// DescriptorSize returns the descriptor byte length of the frame, or 0 for a
// frame without keypoints.
func (f *Frame) DescriptorSize() int {
	if len(f.Descriptors) == 0 {
		return 0
	}
	return len(f.Descriptors[0])
}

// checkValid verifies the internal consistency of one frame against the
// camera it claims to come from.
func (f *Frame) checkValid(cam *Camera) error {
	if f == nil {
		return errors.New("frame is nil")
	}
	if f.CameraID != cam.ID {
		return errors.Errorf("frame camera %q does not match tracker camera %q", f.CameraID, cam.ID)
	}
	if len(f.Descriptors) != len(f.Keypoints) {
		return errors.Errorf("frame has %d keypoints but %d descriptors", len(f.Keypoints), len(f.Descriptors))
	}
	descSize := f.DescriptorSize()
	if descSize*8 > keypoints.MaxDescriptorBits {
		return errors.Errorf("descriptor size %d bytes exceeds %d bits", descSize, keypoints.MaxDescriptorBits)
	}
	for i, d := range f.Descriptors {
		if len(d) == 0 {
			return errors.Errorf("keypoint %d has no descriptor", i)
		}
		if len(d) != descSize {
			return errors.Errorf("descriptor %d has %d bytes, frame descriptor size is %d", i, len(d), descSize)
		}
	}
	return nil
}
