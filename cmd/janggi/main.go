package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"janggi/internal/janggi"
	"janggi/internal/session"
)

const (
	ansiBlue  = "\033[94m"
	ansiRed   = "\033[31m"
	ansiEmpty = "\033[100;30m"
	ansiReset = "\033[0m"
)

func paint(color bool, code, s string) string {
	if !color {
		return s
	}
	return code + s + ansiReset
}

func renderBoard(g *janggi.Game, color bool) string {
	snap := g.Snapshot()
	var sb strings.Builder

	fmt.Fprintf(&sb, "\nMove %d - %s\n    ", g.MoveCount(), g.Turn())
	for f := 0; f < janggi.Files; f++ {
		fmt.Fprintf(&sb, "  %c  ", 'a'+f)
	}
	sb.WriteByte('\n')

	for r := 1; r <= janggi.Ranks; r++ {
		fmt.Fprintf(&sb, "%3d ", r)
		for f := 0; f < janggi.Files; f++ {
			c := janggi.Coord{File: int8(f), Rank: int8(r)}
			sq, ok := snap[c]
			if !ok {
				sb.WriteString(paint(color, ansiEmpty, " ___ "))
				continue
			}
			label := " " + sq.Side.String()[:1] + sq.Kind.Abbrev() + " "
			code := ansiBlue
			if sq.Side == janggi.Red {
				code = ansiRed
			}
			sb.WriteString(paint(color, code, label))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func prompt(in *bufio.Scanner, msg string) (string, bool) {
	fmt.Print(msg)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

func main() {
	noColor := flag.Bool("no-color", false, "disable ANSI colors")
	flag.Parse()

	log.SetHandler(cli.New(os.Stderr))

	reg := session.NewRegistry()
	sess := reg.New()
	game := sess.Game
	log.WithField("session", sess.ID).Info("new game")

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(renderBoard(game, !*noColor))

		if game.Outcome() != janggi.Unfinished {
			fmt.Println(game.Outcome())
			break
		}
		if game.IsInCheck(janggi.Red) {
			fmt.Println("Red player is in check")
		}
		if game.IsInCheck(janggi.Blue) {
			fmt.Println("Blue player is in check")
		}

		from, ok := prompt(in, "Enter a position to move from: ")
		if !ok || from == "exit" {
			break
		}
		to, ok := prompt(in, "Enter a position to move to: ")
		if !ok || to == "exit" {
			break
		}

		src, err := janggi.ParseCoord(from)
		if err != nil {
			log.WithError(err).Warn("bad input")
			continue
		}
		dst, err := janggi.ParseCoord(to)
		if err != nil {
			log.WithError(err).Warn("bad input")
			continue
		}

		if !game.AttemptMove(src, dst) {
			log.WithFields(log.Fields{
				"from": src.String(),
				"to":   dst.String(),
			}).Warn("move rejected")
			continue
		}
		if err := reg.Touch(sess.ID); err != nil {
			log.WithError(err).Error("touch session")
		}
	}

	fmt.Println("The game is now exiting")
}
