package common

import "testing"

func TestClassify(t *testing.T) {
	var tests = []struct {
		row, column int
		kind        SquareKind
	}{
		{0, 0, TopLeftCorner},
		{0, 7, TopRightCorner},
		{7, 0, BottomLeftCorner},
		{7, 7, BottomRightCorner},
		{0, 3, TopEdge},
		{7, 4, BottomEdge},
		{2, 0, LeftEdge},
		{5, 7, RightEdge},
		{1, 1, Inner},
		{6, 6, Inner},
		{3, 2, Inner},
	}
	for _, test := range tests {
		if got := Classify(PositionOf(test.row, test.column)); got != test.kind {
			t.Error(test, got)
		}
	}
}

func TestNeighborMesh(t *testing.T) {
	if got := NeighborMesh(137438953472); got != 123490778742784 {
		t.Error(got)
	}
	var tests = []struct {
		row, column int
		want        uint64
	}{
		{0, 0, PositionOf(0, 1) | PositionOf(1, 0) | PositionOf(1, 1)},
		{0, 7, PositionOf(0, 6) | PositionOf(1, 6) | PositionOf(1, 7)},
		{7, 0, PositionOf(6, 0) | PositionOf(6, 1) | PositionOf(7, 1)},
		{7, 7, PositionOf(6, 6) | PositionOf(6, 7) | PositionOf(7, 6)},
		{0, 4, PositionOf(0, 3) | PositionOf(0, 5) | PositionOf(1, 3) | PositionOf(1, 4) | PositionOf(1, 5)},
		{3, 7, PositionOf(2, 6) | PositionOf(2, 7) | PositionOf(3, 6) | PositionOf(4, 6) | PositionOf(4, 7)},
	}
	for _, test := range tests {
		if got := NeighborMesh(PositionOf(test.row, test.column)); got != test.want {
			t.Error(test, BitboardString(got))
		}
	}
}

// Every square's mesh must equal its king neighbourhood, so nothing wraps around the board.
func TestNeighborMeshAllSquares(t *testing.T) {
	for sq := 0; sq < 64; sq++ {
		var want uint64
		for other := 0; other < 64; other++ {
			if other != sq && squareDistance(sq, other) == 1 {
				want |= SquareMask[other]
			}
		}
		var got = NeighborMesh(SquareMask[sq])
		if got != want {
			t.Error(SquareName(sq), Classify(SquareMask[sq]), BitboardString(got), BitboardString(want))
		}
		if got&SquareMask[sq] != 0 {
			t.Error(SquareName(sq), "mesh contains its own square")
		}
	}
}

func TestSquareKindString(t *testing.T) {
	if s := TopLeftCorner.String(); s != "TopLeftCorner" {
		t.Error(s)
	}
	if s := SquareKind(42).String(); s != "Unknown" {
		t.Error(s)
	}
}

func absDelta(x, y int) int {
	if x > y {
		return x - y
	}
	return y - x
}

// squareDistance is the king distance between two squares.
func squareDistance(sq1, sq2 int) int {
	return max(absDelta(Row(sq1), Row(sq2)), absDelta(Column(sq1), Column(sq2)))
}

func TestSquareDistance(t *testing.T) {
	if d := squareDistance(MakeSquare(0, 0), MakeSquare(7, 7)); d != 7 {
		t.Error(d)
	}
	if d := squareDistance(MakeSquare(3, 3), MakeSquare(4, 2)); d != 1 {
		t.Error(d)
	}
}
