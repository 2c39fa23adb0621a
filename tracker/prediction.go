package tracker

import (
	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/num/quat"

	"github.com/kestrelrobotics/gyrotrack/keypoints"
	"github.com/kestrelrobotics/gyrotrack/transform"
)

// PredictKeypointPositions projects keypoints of the earlier frame to their
// expected pixel positions in the later frame under a rotation-only motion
// model. qRel is the unit quaternion rotating the earlier camera frame into
// the later one. A keypoint whose bearing rotates behind the image plane
// keeps its measured position.
func PredictKeypointPositions(
	intrinsics *transform.PinholeCameraIntrinsics,
	qRel quat.Number,
	kps keypoints.KeyPoints,
) keypoints.KeyPoints {
	predicted := make(keypoints.KeyPoints, len(kps))
	for i, kp := range kps {
		// back-project to a unit-depth bearing in the earlier camera frame
		bx, by, bz := intrinsics.PixelToPoint(kp.X, kp.Y, 1.)
		rotated := rotateByQuaternion(qRel, bx, by, bz)
		if rotated.Kmag <= 0 {
			predicted[i] = kp
			continue
		}
		u, v := intrinsics.PointToPixel(rotated.Imag, rotated.Jmag, rotated.Kmag)
		predicted[i] = r2.Point{X: u, Y: v}
	}
	return predicted
}

// rotateByQuaternion rotates the vector (x, y, z) by the unit quaternion q.
func rotateByQuaternion(q quat.Number, x, y, z float64) quat.Number {
	return quat.Mul(quat.Mul(q, quat.Number{Imag: x, Jmag: y, Kmag: z}), quat.Conj(q))
}
