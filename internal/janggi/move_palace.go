package janggi

// Guard and General share one rule: single orthogonal steps that stay inside
// the own palace, plus the corner<->center diagonals.
func genPalaceMoves(b *Board, p *Piece, moves *[]Coord) {
	for _, d := range orthoDirs {
		c := p.Loc.offset(d[0], d[1])
		if !InPalace(p.Side, c) {
			continue
		}
		appendIfTakeable(b, p.Side, c, moves)
	}

	center := PalaceCenter(p.Side)
	if IsPalaceCorner(p.Side, p.Loc) {
		appendIfTakeable(b, p.Side, center, moves)
	}
	if p.Loc == center {
		for _, corner := range PalaceCorners(p.Side) {
			appendIfTakeable(b, p.Side, corner, moves)
		}
	}
}
