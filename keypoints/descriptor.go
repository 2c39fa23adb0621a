package keypoints

import (
	"math/bits"

	"github.com/pkg/errors"
)

// MaxDescriptorBits is the largest supported descriptor width. Binary
// descriptors (BRIEF, ORB, FREAK) are at most 512 bits in practice.
const MaxDescriptorBits = 512

type (
	// Descriptor is a fixed-width binary descriptor, byte-addressable.
	Descriptor []byte
	// Descriptors holds one descriptor per keypoint of a frame.
	Descriptors []Descriptor
)

// Bits returns the width of the descriptor in bits.
func (d Descriptor) Bits() int {
	return len(d) * 8
}

// HammingDistance returns the number of differing bits between two descriptors
// of the same byte length.
func HammingDistance(d1, d2 Descriptor) (int, error) {
	if len(d1) != len(d2) {
		return -1, errors.Errorf("descriptors must have the same length, got %d and %d", len(d1), len(d2))
	}
	if d1.Bits() > MaxDescriptorBits {
		return -1, errors.Errorf("descriptors longer than %d bits are not supported, got %d", MaxDescriptorBits, d1.Bits())
	}
	distance := 0
	for i := range d1 {
		distance += bits.OnesCount8(d1[i] ^ d2[i])
	}
	return distance, nil
}
