package janggi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func initialSnapshot() map[Coord]Square {
	layout := map[Side]map[PieceKind][]string{
		Red: {
			KindSoldier:  {"a4", "c4", "e4", "g4", "i4"},
			KindCannon:   {"b3", "h3"},
			KindChariot:  {"a1", "i1"},
			KindElephant: {"b1", "g1"},
			KindHorse:    {"c1", "h1"},
			KindGuard:    {"d1", "f1"},
			KindGeneral:  {"e2"},
		},
		Blue: {
			KindSoldier:  {"a7", "c7", "e7", "g7", "i7"},
			KindCannon:   {"b8", "h8"},
			KindChariot:  {"a10", "i10"},
			KindElephant: {"b10", "g10"},
			KindHorse:    {"c10", "h10"},
			KindGuard:    {"d10", "f10"},
			KindGeneral:  {"e9"},
		},
	}
	want := make(map[Coord]Square)
	for side, kinds := range layout {
		for kind, coords := range kinds {
			for _, s := range coords {
				want[MustCoord(s)] = Square{Side: side, Kind: kind}
			}
		}
	}
	return want
}

func TestNewGameInitialState(t *testing.T) {
	g := NewGame()

	if g.Turn() != Blue {
		t.Errorf("turn = %v, want blue", g.Turn())
	}
	if g.Outcome() != Unfinished {
		t.Errorf("outcome = %v, want UNFINISHED", g.Outcome())
	}
	if g.MoveCount() != 0 {
		t.Errorf("move count = %d, want 0", g.MoveCount())
	}
	if g.InCheck() {
		t.Errorf("fresh game reports check")
	}

	snap := g.Snapshot()
	if len(snap) != 32 {
		t.Fatalf("placed pieces = %d, want 32", len(snap))
	}
	if diff := cmp.Diff(initialSnapshot(), snap); diff != "" {
		t.Errorf("starting layout mismatch (-want +got):\n%s", diff)
	}

	// the back rank is not palindromic: elephants on b/g, horses on c/h
	for coord, kind := range map[string]PieceKind{
		"g1": KindElephant, "h1": KindHorse,
		"g10": KindElephant, "h10": KindHorse,
	} {
		if got := snap[MustCoord(coord)].Kind; got != kind {
			t.Errorf("%s = %v, want %v", coord, got, kind)
		}
	}
}

func TestWrongTurnRejected(t *testing.T) {
	g := NewGame()
	before := g.EncodeBoard()

	if g.AttemptMove(MustCoord("a4"), MustCoord("a5")) {
		t.Fatalf("red moved on blue's turn")
	}
	if g.EncodeBoard() != before {
		t.Fatalf("rejected move changed the board")
	}
	if g.Turn() != Blue || g.MoveCount() != 0 {
		t.Fatalf("rejected move changed turn state")
	}
}

func TestMalformedCoordinateDistinctFromRuleRejection(t *testing.T) {
	if _, err := ParseCoord("e11"); err == nil {
		t.Fatalf("malformed coordinate accepted")
	}
	g := NewGame()
	// off-board coordinates constructed directly are rejected like any
	// other illegal move, with no lookup panic
	if g.AttemptMove(Coord{File: 12, Rank: 3}, MustCoord("e5")) {
		t.Fatalf("off-board source accepted")
	}
}

func TestOpeningSequence(t *testing.T) {
	g := NewGame()

	if !g.AttemptMove(MustCoord("e7"), MustCoord("e6")) {
		t.Fatalf("blue opening soldier push rejected")
	}
	if g.Turn() != Red || g.MoveCount() != 1 {
		t.Fatalf("after move 1: turn=%v count=%d", g.Turn(), g.MoveCount())
	}

	// an illegal second attempt by blue leaves counter and turn unchanged
	if g.AttemptMove(MustCoord("a7"), MustCoord("a6")) {
		t.Fatalf("blue moved twice in a row")
	}
	if g.Turn() != Red || g.MoveCount() != 1 {
		t.Fatalf("rejected attempt advanced state")
	}

	if !g.AttemptMove(MustCoord("e4"), MustCoord("e5")) {
		t.Fatalf("red opening soldier push rejected")
	}
	if g.Turn() != Blue || g.MoveCount() != 2 {
		t.Fatalf("after move 2: turn=%v count=%d", g.Turn(), g.MoveCount())
	}
}

func TestPassMoveAdvancesTurn(t *testing.T) {
	g := NewGame()
	before := g.EncodeBoard()

	if !g.AttemptMove(MustCoord("e7"), MustCoord("e7")) {
		t.Fatalf("standing pass rejected")
	}
	if g.EncodeBoard() != before {
		t.Fatalf("pass changed the board")
	}
	if g.Turn() != Red || g.MoveCount() != 1 {
		t.Fatalf("pass did not advance the turn state")
	}
}

func TestCaptureRemovesPiece(t *testing.T) {
	g := NewGame()
	for _, mv := range [][2]string{{"a7", "a6"}, {"a4", "a5"}, {"a6", "a5"}} {
		if !g.AttemptMove(MustCoord(mv[0]), MustCoord(mv[1])) {
			t.Fatalf("move %s-%s rejected", mv[0], mv[1])
		}
	}
	snap := g.Snapshot()
	if len(snap) != 31 {
		t.Fatalf("pieces after capture = %d, want 31", len(snap))
	}
	got, ok := snap[MustCoord("a5")]
	if !ok || got.Side != Blue || got.Kind != KindSoldier {
		t.Fatalf("a5 = %+v, want blue soldier", got)
	}
}

func TestSelfCheckMoveRejected(t *testing.T) {
	g := &Game{
		board: testBoard(
			testPiece{Blue, KindGeneral, "e9"},
			testPiece{Blue, KindChariot, "e5"},
			testPiece{Red, KindChariot, "e3"},
			testPiece{Red, KindSoldier, "a5"},
		),
		turn: Blue,
	}
	before := g.EncodeBoard()

	// capturing the soldier is pseudo-legal but opens the e file
	if g.AttemptMove(MustCoord("e5"), MustCoord("a5")) {
		t.Fatalf("self-check move accepted")
	}
	if g.EncodeBoard() != before || g.Turn() != Blue || g.MoveCount() != 0 {
		t.Fatalf("rejected self-check move left a trace")
	}

	// capturing the checking chariot instead is fine
	if !g.AttemptMove(MustCoord("e5"), MustCoord("e3")) {
		t.Fatalf("legal capture rejected")
	}
}

func TestCheckmateSetsOutcome(t *testing.T) {
	g := &Game{
		board: testBoard(
			testPiece{Blue, KindGeneral, "e9"},
			testPiece{Red, KindChariot, "a1"},
			testPiece{Red, KindChariot, "d4"},
			testPiece{Red, KindChariot, "f4"},
		),
		turn: Red,
	}

	if !g.AttemptMove(MustCoord("a1"), MustCoord("e1")) {
		t.Fatalf("mating move rejected")
	}
	if !g.InCheck() {
		t.Fatalf("mated side not flagged in check")
	}
	if g.Outcome() != RedWon {
		t.Fatalf("outcome = %v, want RED_WON", g.Outcome())
	}

	// the game is terminal: every further attempt is rejected
	if g.AttemptMove(MustCoord("e9"), MustCoord("e8")) {
		t.Fatalf("move accepted after checkmate")
	}
	if g.AttemptMove(MustCoord("d4"), MustCoord("d5")) {
		t.Fatalf("winner moved after checkmate")
	}
}

func TestDetectionIdempotentOnGame(t *testing.T) {
	g := NewGame()
	before := g.EncodeBoard()
	hash := g.Hash()
	for i := 0; i < 3; i++ {
		g.IsInCheck(Red)
		g.IsInCheck(Blue)
		g.IsInCheckmate(Blue)
	}
	if g.EncodeBoard() != before || g.Hash() != hash {
		t.Fatalf("detection mutated game state")
	}
}

func TestHashIncrementalMatchesRecompute(t *testing.T) {
	g := NewGame()
	if g.Hash() != g.board.calculateHash(g.turn) {
		t.Fatalf("initial hash mismatch")
	}
	moves := [][2]string{
		{"a7", "a6"}, {"a4", "a5"}, {"e7", "e6"}, {"i4", "i5"},
		{"a6", "a5"}, {"e4", "e5"}, {"h8", "h8"},
	}
	for i, mv := range moves {
		if !g.AttemptMove(MustCoord(mv[0]), MustCoord(mv[1])) {
			t.Fatalf("move %d (%s-%s) rejected", i, mv[0], mv[1])
		}
		if got, want := g.Hash(), g.board.calculateHash(g.turn); got != want {
			t.Fatalf("hash mismatch after move %d: got=%d want=%d", i, got, want)
		}
	}
}
