package common

// SquareKind places a square relative to the board border.
type SquareKind int

const (
	Inner SquareKind = iota
	LeftEdge
	RightEdge
	TopEdge
	BottomEdge
	TopLeftCorner
	TopRightCorner
	BottomLeftCorner
	BottomRightCorner
)

var squareKindNames = [...]string{
	Inner:             "Inner",
	LeftEdge:          "LeftEdge",
	RightEdge:         "RightEdge",
	TopEdge:           "TopEdge",
	BottomEdge:        "BottomEdge",
	TopLeftCorner:     "TopLeftCorner",
	TopRightCorner:    "TopRightCorner",
	BottomLeftCorner:  "BottomLeftCorner",
	BottomRightCorner: "BottomRightCorner",
}

func (k SquareKind) String() string {
	if k < 0 || int(k) >= len(squareKindNames) {
		return "Unknown"
	}
	return squareKindNames[k]
}

// Classify expects a single-bit position. Corners win over single edges.
func Classify(position uint64) SquareKind {
	var (
		left   = position&LeftEdgeMask != 0
		right  = position&RightEdgeMask != 0
		top    = position&TopEdgeMask != 0
		bottom = position&BottomEdgeMask != 0
	)
	switch {
	case position&InnerMask != 0:
		return Inner
	case right && top:
		return TopRightCorner
	case left && top:
		return TopLeftCorner
	case right && bottom:
		return BottomRightCorner
	case left && bottom:
		return BottomLeftCorner
	case top:
		return TopEdge
	case left:
		return LeftEdge
	case right:
		return RightEdge
	default:
		return BottomEdge
	}
}

// NeighborMesh returns the up to 8 squares adjacent to position, clipped to the board.
func NeighborMesh(position uint64) uint64 {
	var kind = Classify(position)
	switch kind {
	case Inner:
		var row, column = RowColOf(position)
		return innerMesh << uint(8*(6-row)+(6-column))
	case LeftEdge:
		var row, _ = RowColOf(position)
		return leftMesh << uint(8*(6-row))
	case RightEdge:
		var row, _ = RowColOf(position)
		return rightMesh << uint(8*(6-row))
	case TopEdge:
		var _, column = RowColOf(position)
		return topMesh << uint(6-column)
	case BottomEdge:
		var _, column = RowColOf(position)
		return bottomMesh << uint(6-column)
	case TopLeftCorner:
		return topLeftMesh
	case TopRightCorner:
		return topRightMesh
	case BottomLeftCorner:
		return bottomLeftMesh
	case BottomRightCorner:
		return bottomRightMesh
	}
	panic("common: unknown square kind " + kind.String())
}
