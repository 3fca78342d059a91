package janggi

var orthoDirs = [4][2]int8{{0, +1}, {0, -1}, {+1, 0}, {-1, 0}}

// appendIfTakeable adds c when it is on the board and empty or held by the
// other side. Shared occupancy test for every destination.
func appendIfTakeable(b *Board, side Side, c Coord, moves *[]Coord) {
	if !c.valid() {
		return
	}
	if dst := b.Get(c); dst == nil || dst.Side != side {
		*moves = append(*moves, c)
	}
}

// MovesFor returns every pseudo-legal destination for p, ignoring whether a
// move exposes p's own General. The standing pass (destination == source) is
// legal for every piece in this ruleset and always leads the list.
func (b *Board) MovesFor(p *Piece) []Coord {
	moves := []Coord{p.Loc}
	switch p.Kind {
	case KindSoldier:
		genSoldierMoves(b, p, &moves)
	case KindCannon:
		genCannonMoves(b, p, &moves)
	case KindChariot:
		genChariotMoves(b, p, &moves)
	case KindElephant:
		genElephantMoves(b, p, &moves)
	case KindHorse:
		genHorseMoves(b, p, &moves)
	case KindGuard, KindGeneral:
		genPalaceMoves(b, p, &moves)
	}
	return moves
}
