// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command replay is a terminal PGN viewer: it loads a game, renders the
// board at the currently selected ply, and steps forward/back through
// the move list on arrow-key input. It is a small single-purpose cmd/
// entry point in the same shape as cmd/nemo, built around the engine's
// own board and pgn packages rather than a protocol front-end.
package main

import (
	"fmt"
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/mitchellh/colorstring"
	"github.com/mitchellh/go-wordwrap"

	"nemo.dev/x/nemo/board"
	"nemo.dev/x/nemo/internal/piece"
	"nemo.dev/x/nemo/internal/square"
	"nemo.dev/x/nemo/move"
	"nemo.dev/x/nemo/pgn"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) != 2 {
		return fmt.Errorf("usage: replay <file.pgn>")
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		return err
	}
	defer f.Close()

	games, err := pgn.Games(f)
	if err != nil {
		return err
	}
	if len(games) == 0 {
		return fmt.Errorf("replay: %s contains no readable games", os.Args[1])
	}

	return newViewer(games).Run()
}

// viewer replays one game of a PGN archive ply by ply. It keeps its own
// scratch Position and replays from the start on every navigation step
// rather than storing a Position per ply, since a game is at most a few
// hundred plies and board.Position.MakeMove is cheap.
type viewer struct {
	games []pgn.Game
	game  int
	ply   int // 0 = starting position, len(moves) = final position

	board  *widgets.Paragraph
	detail *widgets.Paragraph
	moves  *widgets.Paragraph
}

func newViewer(games []pgn.Game) *viewer {
	v := &viewer{
		games:  games,
		board:  widgets.NewParagraph(),
		detail: widgets.NewParagraph(),
		moves:  widgets.NewParagraph(),
	}
	v.board.Title = "Board"
	v.detail.Title = "Game"
	v.moves.Title = "Moves"
	return v
}

func (v *viewer) Run() error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("replay: init terminal: %w", err)
	}
	defer ui.Close()

	v.layout()
	v.render()

	events := ui.PollEvents()
	for e := range events {
		switch e.ID {
		case "q", "<C-c>":
			return nil
		case "<Right>", "<Space>":
			v.step(1)
		case "<Left>":
			v.step(-1)
		case "<Down>":
			v.step(+1000) // jump to the end of the game
		case "<Up>":
			v.step(-1000) // jump to the start of the game
		case "<Resize>":
			v.layout()
		}
		v.render()
	}
	return nil
}

func (v *viewer) layout() {
	w, h := ui.TerminalDimensions()
	v.board.SetRect(0, 0, 21, 10)
	v.detail.SetRect(21, 0, w, 6)
	v.moves.SetRect(21, 6, w, h)
}

// step replays the current game from the start to ply+delta, clamped to
// [0, len(moves)].
func (v *viewer) step(delta int) {
	moves := v.games[v.game].Moves
	next := v.ply + delta
	switch {
	case next < 0:
		next = 0
	case next > len(moves):
		next = len(moves)
	}
	v.ply = next
}

func (v *viewer) position() *board.Position {
	p := board.New()
	for _, m := range v.games[v.game].Moves[:v.ply] {
		p.MakeMove(m)
	}
	return p
}

func (v *viewer) render() {
	p := v.position()

	v.board.Text = drawBoard(p)
	v.detail.Text = colorstring.Color(gameSummary(v.games[v.game], v.ply))
	v.moves.Text = wordwrap.WrapString(movetext(v.games[v.game].Moves, v.ply), uint(v.moves.Inner.Dx()))

	ui.Render(v.board, v.detail, v.moves)
}

// drawBoard renders p as an 8x8 diagram, white pieces in uppercase,
// black in lowercase, matching board.Position.String()'s own glyphs.
func drawBoard(p *board.Position) string {
	var b strings.Builder
	for r := int(square.Rank8); r >= int(square.Rank1); r-- {
		for f := square.FileA; f <= square.FileH; f++ {
			sq := square.New(f, square.Rank(r))
			b.WriteString(p.PieceAt(sq).String())
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// gameSummary renders the PGN tag roster plus whose turn it is at the
// currently selected ply, using colorstring markup so White/Black reads
// distinctly in a plain terminal.
func gameSummary(g pgn.Game, ply int) string {
	turn := "[white]White to move"
	if side := sideToMoveAt(g, ply); side == piece.Black {
		turn = "[red]Black to move"
	}

	return fmt.Sprintf(
		"[bold]%s vs %s[reset]\n%s - %s\nResult: %s\n%s[reset]\nPly %d/%d",
		g.Tags.White, g.Tags.Black, g.Tags.Event, g.Tags.Date, g.Tags.Result,
		turn, ply, len(g.Moves),
	)
}

func sideToMoveAt(g pgn.Game, ply int) piece.Color {
	if ply%2 == 0 {
		return piece.White
	}
	return piece.Black
}

// movetext renders the game's move list as move-numbered UCI long
// algebraic text ("1. e2e4 e7e5 2. ..."), highlighting the move just
// played with a leading marker. It is recomputed on every keypress; a
// PGN game's move count is small enough for that to be cheap.
func movetext(moves []move.Move, ply int) string {
	var b strings.Builder
	for i, m := range moves {
		if i%2 == 0 {
			fmt.Fprintf(&b, "%d.", i/2+1)
		}
		marker := " "
		if i == ply-1 {
			marker = ">"
		}
		fmt.Fprintf(&b, "%s%s ", marker, m.String())
	}
	return b.String()
}
