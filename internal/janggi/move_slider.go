package janggi

// Chariot: orthogonal slides stopping at the first occupied square, plus
// palace diagonals. Diagonals resolve against whichever palace actually
// contains the square, so a chariot on either center reaches all four
// corners.
func genChariotMoves(b *Board, p *Piece, moves *[]Coord) {
	for _, d := range orthoDirs {
		for c := p.Loc.offset(d[0], d[1]); c.valid(); c = c.offset(d[0], d[1]) {
			dst := b.Get(c)
			if dst == nil {
				*moves = append(*moves, c)
				continue
			}
			if dst.Side != p.Side {
				*moves = append(*moves, c)
			}
			break
		}
	}

	if side, ok := cornerOf(p.Loc); ok {
		appendIfTakeable(b, p.Side, PalaceCenter(side), moves)
		appendIfTakeable(b, p.Side, oppositeCorner(side, p.Loc), moves)
	} else if side, ok := centerOf(p.Loc); ok {
		for _, corner := range PalaceCorners(side) {
			appendIfTakeable(b, p.Side, corner, moves)
		}
	}
}

// Cannon: slides over exactly one screen piece. A cannon never jumps a
// cannon and never captures one. From a palace corner it may jump the
// occupied center to the opposite corner, its only diagonal move.
func genCannonMoves(b *Board, p *Piece, moves *[]Coord) {
	for _, d := range orthoDirs {
		c := p.Loc.offset(d[0], d[1])
		for ; c.valid() && b.Get(c) == nil; c = c.offset(d[0], d[1]) {
		}
		if !c.valid() || b.Get(c).Kind == KindCannon {
			continue
		}
		for c = c.offset(d[0], d[1]); c.valid(); c = c.offset(d[0], d[1]) {
			dst := b.Get(c)
			if dst == nil {
				*moves = append(*moves, c)
				continue
			}
			if dst.Kind != KindCannon && dst.Side != p.Side {
				*moves = append(*moves, c)
			}
			break
		}
	}

	if side, ok := cornerOf(p.Loc); ok && b.Get(PalaceCenter(side)) != nil {
		appendIfTakeable(b, p.Side, oppositeCorner(side, p.Loc), moves)
	}
}
