package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"janggi/internal/janggi"
	"janggi/internal/session"
)

func main() {
	games := flag.Int("games", 1, "number of games to play")
	maxMoves := flag.Int("maxmoves", 200, "max moves per game")
	seed := flag.Int64("seed", time.Now().UnixNano(), "rng seed")
	flag.Parse()

	log.SetHandler(cli.New(os.Stderr))
	rng := rand.New(rand.NewSource(*seed))

	reg := session.NewRegistry()
	for i := 0; i < *games; i++ {
		playOne(reg, rng, *maxMoves)
	}
}

func playOne(reg *session.Registry, rng *rand.Rand, maxMoves int) {
	sess := reg.New()
	g := sess.Game
	ctx := log.WithField("session", sess.ID)

	start := time.Now()
	for g.Outcome() == janggi.Unfinished && g.MoveCount() < maxMoves {
		if !playRandomMove(g, rng) {
			ctx.WithField("turn", g.Turn().String()).Info("no accepted move")
			break
		}
		if err := reg.Touch(sess.ID); err != nil {
			ctx.WithError(err).Error("touch session")
		}
	}

	ctx.WithFields(log.Fields{
		"outcome": g.Outcome().String(),
		"moves":   g.MoveCount(),
		"elapsed": time.Since(start).String(),
	}).Info("selfplay finished")
}

type candidate struct {
	from, to janggi.Coord
}

// playRandomMove tries the side-to-move's pseudo-legal moves in random order
// until one is accepted. Passes are skipped so playouts make progress.
func playRandomMove(g *janggi.Game, rng *rand.Rand) bool {
	snap := g.Snapshot()
	var cands []candidate
	for _, from := range janggi.AllCoords() {
		sq, ok := snap[from]
		if !ok || sq.Side != g.Turn() {
			continue
		}
		for _, to := range g.MovesFrom(from) {
			if to == from {
				continue
			}
			cands = append(cands, candidate{from: from, to: to})
		}
	}
	rng.Shuffle(len(cands), func(i, j int) { cands[i], cands[j] = cands[j], cands[i] })
	for _, c := range cands {
		if g.AttemptMove(c.from, c.to) {
			return true
		}
	}
	return false
}
