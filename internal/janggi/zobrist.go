package janggi

import "sync"

var (
	zobristOnce sync.Once

	zobristPieces [2][numPieceKinds][NumSquares]uint64
	zobristTurn   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for kind := 1; kind < numPieceKinds; kind++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[side][kind][sq] = next()
				}
			}
		}
		zobristTurn = next()
	})
}

func pieceHashKey(side Side, kind PieceKind, c Coord) uint64 {
	if side != Red && side != Blue {
		return 0
	}
	if kind <= KindNone || kind >= numPieceKinds || !c.valid() {
		return 0
	}
	return zobristPieces[side][kind][c.index()]
}

// calculateHash computes the full Zobrist hash of the board with the given
// side to move. The turn key is folded in when red is to move, so the
// initial position (blue to move) hashes to its bare piece keys.
func (b *Board) calculateHash(turn Side) uint64 {
	initZobrist()

	var h uint64
	for _, c := range boardCoords {
		if p := b.Get(c); p != nil {
			h ^= pieceHashKey(p.Side, p.Kind, c)
		}
	}
	if turn == Red {
		h ^= zobristTurn
	}
	return h
}
