package janggi

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	Files      = 9
	Ranks      = 10
	NumSquares = Files * Ranks
)

// Coord is a board square: file 0..8 (printed 'a'..'i') and rank 1..10.
type Coord struct {
	File int8
	Rank int8
}

func (c Coord) valid() bool {
	return c.File >= 0 && c.File < Files && c.Rank >= 1 && c.Rank <= Ranks
}

// Rank-major square index: rank 1 first, file a first within a rank. This is
// the one enumeration order used by every board scan.
func (c Coord) index() int {
	return int(c.Rank-1)*Files + int(c.File)
}

func coordAt(index int) Coord {
	return Coord{File: int8(index % Files), Rank: int8(index/Files) + 1}
}

func (c Coord) offset(df, dr int8) Coord {
	return Coord{File: c.File + df, Rank: c.Rank + dr}
}

func (c Coord) String() string {
	if !c.valid() {
		return fmt.Sprintf("coord(%d,%d)", c.File, c.Rank)
	}
	return string('a'+byte(c.File)) + strconv.Itoa(int(c.Rank))
}

var ErrInvalidCoord = errors.New("invalid coordinate")

// ParseCoord reads the textual form "a1".."i10". Malformed text is an input
// error, reported before any board lookup happens.
func ParseCoord(s string) (Coord, error) {
	if len(s) < 2 || len(s) > 3 {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoord, s)
	}
	if s[0] < 'a' || s[0] > 'i' {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoord, s)
	}
	// canonical rank text only: digits, no leading zero
	if s[1] < '1' || s[1] > '9' {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoord, s)
	}
	rank := int(s[1] - '0')
	if len(s) == 3 {
		if s[2] < '0' || s[2] > '9' {
			return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoord, s)
		}
		rank = rank*10 + int(s[2]-'0')
	}
	if rank < 1 || rank > Ranks {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoord, s)
	}
	return Coord{File: int8(s[0] - 'a'), Rank: int8(rank)}, nil
}

// MustCoord is ParseCoord for fixed layout tables and tests.
func MustCoord(s string) Coord {
	c, err := ParseCoord(s)
	if err != nil {
		panic(err)
	}
	return c
}

var boardCoords = func() []Coord {
	out := make([]Coord, NumSquares)
	for i := range out {
		out[i] = coordAt(i)
	}
	return out
}()

// AllCoords returns the 90 squares in the fixed rank-major enumeration order.
func AllCoords() []Coord {
	return append([]Coord(nil), boardCoords...)
}
