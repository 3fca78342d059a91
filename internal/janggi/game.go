package janggi

// Game is the turn/outcome state machine over a Board. It exclusively owns
// the board; all mutation goes through AttemptMove.
type Game struct {
	board     *Board
	turn      Side
	outcome   Outcome
	inCheck   bool
	moveCount int
	hash      uint64
}

// NewGame sets up the standard starting layout. Blue moves first.
func NewGame() *Game {
	g := &Game{
		board: newInitialBoard(),
		turn:  Blue,
	}
	g.hash = g.board.calculateHash(g.turn)
	return g
}

func (g *Game) Turn() Side       { return g.turn }
func (g *Game) Outcome() Outcome { return g.outcome }
func (g *Game) MoveCount() int   { return g.moveCount }

// InCheck is the display flag: whether the side to move is currently in
// check, as evaluated after the last accepted move.
func (g *Game) InCheck() bool { return g.inCheck }

// Hash is the Zobrist hash of the current position, maintained
// incrementally per accepted move.
func (g *Game) Hash() uint64 { return g.hash }

func (g *Game) IsInCheck(side Side) bool {
	return g.board.isInCheck(side)
}

func (g *Game) IsInCheckmate(side Side) bool {
	return g.board.isInCheckmate(side)
}

// MovesFrom returns the pseudo-legal destinations of the piece on from, or
// nil for an empty square.
func (g *Game) MovesFrom(from Coord) []Coord {
	p := g.board.Get(from)
	if p == nil {
		return nil
	}
	return g.board.MovesFor(p)
}

// Square is the rendering view of one occupied board cell.
type Square struct {
	Side Side
	Kind PieceKind
}

// Snapshot maps every occupied coordinate to its piece; absent coordinates
// are empty.
func (g *Game) Snapshot() map[Coord]Square {
	out := make(map[Coord]Square)
	for _, c := range boardCoords {
		if p := g.board.Get(c); p != nil {
			out[c] = Square{Side: p.Side, Kind: p.Kind}
		}
	}
	return out
}

// EncodeBoard renders the position in the 10-row board text form.
func (g *Game) EncodeBoard() string { return g.board.Encode() }

// AttemptMove applies from->to if the game is unfinished, the piece belongs
// to the side to move, the destination is among the piece's moves, and the
// move does not leave the mover's own General in check. The move is atomic:
// a rejection leaves no observable board change. On commit the turn
// advances, the counter increments, and the opponent is evaluated for
// check and checkmate.
func (g *Game) AttemptMove(from, to Coord) bool {
	if g.outcome != Unfinished {
		return false
	}
	if !from.valid() || !to.valid() {
		return false
	}
	p := g.board.Get(from)
	if p == nil || p.Side != g.turn {
		return false
	}

	found := false
	for _, c := range g.board.MovesFor(p) {
		if c == to {
			found = true
			break
		}
	}
	if !found {
		return false
	}

	// trial on a clone: a self-check rejection must not touch the live board
	trial := g.board.Clone()
	trial.movePiece(from, to)
	if trial.isInCheck(g.turn) {
		return false
	}

	captured := g.board.Get(to)
	g.board.movePiece(from, to)
	g.updateHash(p, captured, from, to)
	g.moveCount++
	g.turn = opposite(g.turn)

	g.inCheck = g.board.isInCheck(g.turn)
	if g.inCheck && g.board.isInCheckmate(g.turn) {
		if g.turn == Red {
			g.outcome = BlueWon
		} else {
			g.outcome = RedWon
		}
	}
	return true
}

func (g *Game) updateHash(p *Piece, captured *Piece, from, to Coord) {
	h := g.hash
	if from != to {
		h ^= pieceHashKey(p.Side, p.Kind, from)
		if captured != nil {
			h ^= pieceHashKey(captured.Side, captured.Kind, to)
		}
		h ^= pieceHashKey(p.Side, p.Kind, to)
	}
	h ^= zobristTurn
	g.hash = h
}
