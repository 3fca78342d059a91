package janggi

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Blue   Side = 1
)

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Blue:
		return "blue"
	}
	return "none"
}

func opposite(side Side) Side {
	if side == Red {
		return Blue
	}
	if side == Blue {
		return Red
	}
	return NoSide
}

// Forward sign per side: red advances toward rank 10, blue toward rank 1.
func forwardDir(side Side) int8 {
	if side == Red {
		return +1
	}
	if side == Blue {
		return -1
	}
	return 0
}

type PieceKind int8

const (
	KindNone PieceKind = iota
	KindSoldier
	KindCannon
	KindChariot
	KindElephant
	KindHorse
	KindGuard
	KindGeneral
)

const numPieceKinds = 8 // KindNone..KindGeneral

func (k PieceKind) String() string {
	switch k {
	case KindSoldier:
		return "soldier"
	case KindCannon:
		return "cannon"
	case KindChariot:
		return "chariot"
	case KindElephant:
		return "elephant"
	case KindHorse:
		return "horse"
	case KindGuard:
		return "guard"
	case KindGeneral:
		return "general"
	}
	return "none"
}

// Abbrev is the two-letter board label used by console renderers.
func (k PieceKind) Abbrev() string {
	switch k {
	case KindSoldier:
		return "So"
	case KindCannon:
		return "Ca"
	case KindChariot:
		return "Ch"
	case KindElephant:
		return "El"
	case KindHorse:
		return "Ho"
	case KindGuard:
		return "Gu"
	case KindGeneral:
		return "Ge"
	}
	return ".."
}

// Piece is one man on the board. Loc mirrors the square the Board stores it
// under; the Board keeps both in sync on every mutation. dir is the forward
// sign, fixed at creation from the side.
type Piece struct {
	Kind PieceKind
	Side Side
	Loc  Coord

	dir int8
}

func newPiece(side Side, kind PieceKind, at Coord) *Piece {
	return &Piece{Kind: kind, Side: side, Loc: at, dir: forwardDir(side)}
}

type Outcome int8

const (
	Unfinished Outcome = iota
	RedWon
	BlueWon
)

func (o Outcome) String() string {
	switch o {
	case RedWon:
		return "RED_WON"
	case BlueWon:
		return "BLUE_WON"
	}
	return "UNFINISHED"
}
