package janggi

// Horse: one orthogonal step then one diagonal step out. Destination plus
// the leg square that must be empty.
var horseLegMoves = [8]struct {
	DF, DR int8 // destination
	BF, BR int8 // leg
}{
	{-1, +2, 0, +1},
	{+1, +2, 0, +1},
	{-1, -2, 0, -1},
	{+1, -2, 0, -1},
	{-2, +1, -1, 0},
	{-2, -1, -1, 0},
	{+2, +1, +1, 0},
	{+2, -1, +1, 0},
}

func genHorseMoves(b *Board, p *Piece, moves *[]Coord) {
	for _, m := range horseLegMoves {
		to := p.Loc.offset(m.DF, m.DR)
		if !to.valid() {
			continue
		}
		if b.Get(p.Loc.offset(m.BF, m.BR)) != nil {
			continue
		}
		appendIfTakeable(b, p.Side, to, moves)
	}
}

// Elephant: one orthogonal step then two diagonal steps in the same general
// direction. Both traversed squares must be empty; only the destination may
// hold an enemy piece.
var elephantLegMoves = [8]struct {
	DF, DR   int8 // destination
	B1F, B1R int8 // orthogonal step
	B2F, B2R int8 // first diagonal step
}{
	{-2, +3, 0, +1, -1, +2},
	{+2, +3, 0, +1, +1, +2},
	{-2, -3, 0, -1, -1, -2},
	{+2, -3, 0, -1, +1, -2},
	{-3, +2, -1, 0, -2, +1},
	{-3, -2, -1, 0, -2, -1},
	{+3, +2, +1, 0, +2, +1},
	{+3, -2, +1, 0, +2, -1},
}

func genElephantMoves(b *Board, p *Piece, moves *[]Coord) {
	for _, m := range elephantLegMoves {
		to := p.Loc.offset(m.DF, m.DR)
		if !to.valid() {
			continue
		}
		if b.Get(p.Loc.offset(m.B1F, m.B1R)) != nil {
			continue
		}
		if b.Get(p.Loc.offset(m.B2F, m.B2R)) != nil {
			continue
		}
		appendIfTakeable(b, p.Side, to, moves)
	}
}
