package janggi

// Soldier: one step sideways or forward (direction-signed), plus diagonal
// steps toward and from the palace center. Only the opponent's palace is
// consulted: a soldier can never re-enter its own palace, since it starts
// outside it and its rank only ever advances.
func genSoldierMoves(b *Board, p *Piece, moves *[]Coord) {
	appendIfTakeable(b, p.Side, p.Loc.offset(-1, 0), moves)
	appendIfTakeable(b, p.Side, p.Loc.offset(+1, 0), moves)
	if p.Loc.Rank > 1 && p.Loc.Rank < Ranks {
		appendIfTakeable(b, p.Side, p.Loc.offset(0, p.dir), moves)
	}

	opp := opposite(p.Side)
	center := PalaceCenter(opp)

	// corner to center, if the center lies one forward step away
	if IsPalaceCorner(opp, p.Loc) && center.Rank == p.Loc.Rank+p.dir {
		appendIfTakeable(b, p.Side, center, moves)
	}

	// center to either forward corner
	if p.Loc == center {
		for _, corner := range PalaceCorners(opp) {
			if corner.Rank == p.Loc.Rank+p.dir {
				appendIfTakeable(b, p.Side, corner, moves)
			}
		}
	}
}
