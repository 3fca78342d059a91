package janggi

import (
	"errors"
	"strings"
	"unicode"
)

// Board is the total 9x10 occupancy mapping. A square holds at most one
// piece; a held piece's Loc always equals the square it sits on.
type Board struct {
	squares [NumSquares]*Piece
}

// Get returns the piece on c, or nil for an empty or off-board square.
func (b *Board) Get(c Coord) *Piece {
	if !c.valid() {
		return nil
	}
	return b.squares[c.index()]
}

// Place puts p on c, replacing any occupant, and records c on the piece.
func (b *Board) Place(c Coord, p *Piece) {
	if !c.valid() || p == nil {
		panic("janggi: place on " + c.String())
	}
	b.squares[c.index()] = p
	p.Loc = c
}

func (b *Board) Clear(c Coord) {
	if !c.valid() {
		panic("janggi: clear " + c.String())
	}
	b.squares[c.index()] = nil
}

// Clone copies the board and every piece on it. Clones share no mutable
// state with the original, so hypothetical moves on a clone never leak back.
func (b *Board) Clone() *Board {
	nb := &Board{}
	for i, p := range b.squares {
		if p == nil {
			continue
		}
		cp := *p
		nb.squares[i] = &cp
	}
	return nb
}

// movePiece applies a move, capturing any occupant of to. A pass (from ==
// to) leaves the board untouched.
func (b *Board) movePiece(from, to Coord) {
	p := b.Get(from)
	if p == nil {
		panic("janggi: move from empty square " + from.String())
	}
	if from == to {
		return
	}
	b.squares[to.index()] = p
	b.squares[from.index()] = nil
	p.Loc = to
}

var kindLetters = map[rune]PieceKind{
	's': KindSoldier,
	'c': KindCannon,
	'r': KindChariot,
	'e': KindElephant,
	'h': KindHorse,
	'a': KindGuard,
	'g': KindGeneral,
}

func pieceToChar(p *Piece) rune {
	if p == nil {
		return '.'
	}
	var base rune
	for k, v := range kindLetters {
		if v == p.Kind {
			base = k
			break
		}
	}
	if base == 0 {
		return '.'
	}
	if p.Side == Red {
		return unicode.ToUpper(base)
	}
	return base
}

// Standard starting layout, rank 1 (red back rank) on top. Upper case red,
// lower case blue.
const initialBoardString = `REHA.AEHR
....G....
.C.....C.
S.S.S.S.S
.........
.........
s.s.s.s.s
.c.....c.
....g....
reha.aehr`

var ErrInvalidBoard = errors.New("invalid board text")

// ParseBoard reads the 10-row board text used for the initial layout, test
// fixtures and rendering. Rows run rank 1 to rank 10, files a to i.
func ParseBoard(text string) (*Board, error) {
	lines := make([]string, 0, Ranks)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Ranks {
		return nil, ErrInvalidBoard
	}
	b := &Board{}
	for r, line := range lines {
		if len(line) != Files {
			return nil, ErrInvalidBoard
		}
		for f, ch := range line {
			if ch == '.' {
				continue
			}
			kind, ok := kindLetters[unicode.ToLower(ch)]
			if !ok {
				return nil, ErrInvalidBoard
			}
			side := Blue
			if unicode.IsUpper(ch) {
				side = Red
			}
			c := Coord{File: int8(f), Rank: int8(r) + 1}
			b.Place(c, newPiece(side, kind, c))
		}
	}
	return b, nil
}

// Encode renders the board in the same 10-row text form ParseBoard reads.
func (b *Board) Encode() string {
	var sb strings.Builder
	for r := int8(1); r <= Ranks; r++ {
		if r > 1 {
			sb.WriteByte('\n')
		}
		for f := int8(0); f < Files; f++ {
			sb.WriteRune(pieceToChar(b.Get(Coord{File: f, Rank: r})))
		}
	}
	return sb.String()
}

func newInitialBoard() *Board {
	b, err := ParseBoard(initialBoardString)
	if err != nil {
		panic(err)
	}
	return b
}
