package janggi

// Palace geometry is static: a 3x3 zone per side with a center and four
// corners. Computed once, read-only afterwards.
type palace struct {
	cells   map[Coord]bool
	center  Coord
	corners [4]Coord
}

func makePalace(center string) palace {
	p := palace{
		cells:  make(map[Coord]bool, 9),
		center: MustCoord(center),
	}
	n := 0
	for df := int8(-1); df <= 1; df++ {
		for dr := int8(-1); dr <= 1; dr++ {
			c := p.center.offset(df, dr)
			p.cells[c] = true
			if df != 0 && dr != 0 {
				p.corners[n] = c
				n++
			}
		}
	}
	return p
}

var palaces = [2]palace{
	Red:  makePalace("e2"),
	Blue: makePalace("e9"),
}

func InPalace(side Side, c Coord) bool {
	if side != Red && side != Blue {
		return false
	}
	return palaces[side].cells[c]
}

func PalaceCenter(side Side) Coord {
	return palaces[side].center
}

func PalaceCorners(side Side) [4]Coord {
	return palaces[side].corners
}

func IsPalaceCorner(side Side, c Coord) bool {
	for _, corner := range palaces[side].corners {
		if corner == c {
			return true
		}
	}
	return false
}

// cornerOf reports which side's palace has c as a corner.
func cornerOf(c Coord) (Side, bool) {
	for _, side := range [2]Side{Red, Blue} {
		if IsPalaceCorner(side, c) {
			return side, true
		}
	}
	return NoSide, false
}

// centerOf reports which side's palace has c as its center.
func centerOf(c Coord) (Side, bool) {
	for _, side := range [2]Side{Red, Blue} {
		if palaces[side].center == c {
			return side, true
		}
	}
	return NoSide, false
}

// oppositeCorner reflects a palace corner through that palace's center.
func oppositeCorner(side Side, corner Coord) Coord {
	center := palaces[side].center
	return Coord{
		File: 2*center.File - corner.File,
		Rank: 2*center.Rank - corner.Rank,
	}
}
