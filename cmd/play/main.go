package main

import (
	"bufio"
	"flag"
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var log = logrus.New()

const help = `commands:
  s ROW COL   select a cell
  f ROW COL   flag or unflag a cell
  c ROW COL   chord around a number
  n           new game
  r           give up
  q           quit
`

// render prints the board with row and column indices.
func render(w io.Writer, g *mines.Game) {
	grid := g.Grid()
	params := g.Params()
	fmt.Fprint(w, "   ")
	for x := range params.Width {
		fmt.Fprintf(w, "%2d", x%100)
	}
	fmt.Fprintln(w)
	for y := range params.Height {
		fmt.Fprintf(w, "%2d ", y%100)
		for x := range params.Width {
			fmt.Fprintf(w, "%2s", grid[y*params.Width+x].String())
		}
		fmt.Fprintln(w)
	}
	switch g.Status() {
	case mines.Won:
		fmt.Fprintln(w, "You win! (n to play again)")
	case mines.Lost:
		fmt.Fprintln(w, "Bad luck! (n to try again)")
	}
}

func play(in io.Reader, out io.Writer, g *mines.Game) error {
	render(out, g)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "q":
			return nil
		case "h", "?":
			fmt.Fprint(out, help)
			continue
		}

		cmd, err := mines.ParseCommand(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if err := g.Apply(cmd); err != nil {
			return err
		}
		render(out, g)
	}
}

func main() {
	var (
		preset = flag.String("preset", "", "board preset (beginner, intermediate, expert)")
		seed   = flag.String("params", mines.DefaultParams.Seed(), "board as height:width:mines")
		debug  = flag.Bool("debug", false, "log engine internals")
	)
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}
	mines.Log = log

	var params mines.GameParams
	if *preset != "" {
		p, ok := mines.Presets[*preset]
		if !ok {
			log.Fatalf("unknown preset %q", *preset)
		}
		params = p
	} else {
		p, err := mines.ParseSeed(*seed)
		if err != nil {
			log.Fatal(err)
		}
		params = *p
	}

	r := rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
	g, err := mines.NewGame(params, r)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(help)
	if err := play(os.Stdin, os.Stdout, g); err != nil {
		log.Fatal(err)
	}
}
