package janggi

func (b *Board) findGeneral(side Side) *Piece {
	for _, c := range boardCoords {
		p := b.Get(c)
		if p != nil && p.Side == side && p.Kind == KindGeneral {
			return p
		}
	}
	return nil
}

// isInCheck reports whether side's General square is a destination of any
// opposing piece. Guards never leave their own palace, so they are skipped.
func (b *Board) isInCheck(side Side) bool {
	general := b.findGeneral(side)
	if general == nil {
		return false
	}
	target := general.Loc
	by := opposite(side)
	for _, c := range boardCoords {
		p := b.Get(c)
		if p == nil || p.Side != by || p.Kind == KindGuard {
			continue
		}
		for _, to := range b.MovesFor(p) {
			if to == target {
				return true
			}
		}
	}
	return false
}

// isInCheckmate tries every move of every piece of side on an independent
// board clone. Only if no trial escapes check is the side mated.
func (b *Board) isInCheckmate(side Side) bool {
	for _, c := range boardCoords {
		p := b.Get(c)
		if p == nil || p.Side != side {
			continue
		}
		for _, to := range b.MovesFor(p) {
			trial := b.Clone()
			trial.movePiece(c, to)
			if !trial.isInCheck(side) {
				return false
			}
		}
	}
	return true
}
