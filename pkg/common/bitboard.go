package common

import "math/bits"

// Row 0 is the most significant byte, column 0 the most significant bit of a byte.
const (
	TopEdgeMask    uint64 = 0xFF00000000000000
	BottomEdgeMask uint64 = 0x00000000000000FF
	LeftEdgeMask   uint64 = 0x8080808080808080
	RightEdgeMask  uint64 = 0x0101010101010101
	InnerMask      uint64 = 0x007E7E7E7E7E7E00
)

// Neighbour patterns. Inner and edge patterns are centred on the lowest square
// of their kind and shifted into place, corner patterns are used as is.
const (
	innerMesh       uint64 = 0x0000000000070507
	leftMesh        uint64 = 0x0000000000C040C0
	rightMesh       uint64 = 0x0000000000030203
	topMesh         uint64 = 0x0507000000000000
	bottomMesh      uint64 = 0x0000000000000705
	topLeftMesh     uint64 = 0x40C0000000000000
	topRightMesh    uint64 = 0x0203000000000000
	bottomLeftMesh  uint64 = 0x000000000000C040
	bottomRightMesh uint64 = 0x0000000000000302
)

var SquareMask [64]uint64

func BitboardString(b uint64) string {
	var s = ""
	for x := b; x != 0; {
		var sq = FirstOne(x)
		x &^= SquareMask[sq]
		if s != "" {
			s += ","
		}
		s += SquareName(sq)
	}
	return "(" + s + ")"
}

func PopCount(b uint64) int {
	return bits.OnesCount64(b)
}

// FirstOne returns the row-major index of the top-most, left-most set bit.
func FirstOne(b uint64) int {
	return bits.LeadingZeros64(b)
}

func MoreThanOne(value uint64) bool {
	return value != 0 && ((value-1)&value) != 0
}

func init() {
	for sq := 0; sq < 64; sq++ {
		SquareMask[sq] = uint64(1) << uint(63-sq)
	}
}
