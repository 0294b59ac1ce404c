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

package pgn

import (
	"fmt"
	"io"
	"strings"

	pgnlib "gopkg.in/freeeve/pgn.v1"

	"nemo.dev/x/nemo/board"
	"nemo.dev/x/nemo/move"
)

// Game is one decoded PGN game: its tag pairs, the move list played
// from the standard starting position, and the resulting Position.
type Game struct {
	Tags     Tags
	Moves    []move.Move
	Position *board.Position
}

// Games decodes every game in r. It uses gopkg.in/freeeve/pgn.v1
// only to split the archive into tag pairs and resolved origin/target
// square pairs -- the library's own board model is consulted no
// further than that. Each of its moves is then re-resolved against
// this engine's own legal move generator, which supplies the move flag
// (capture, castle, en-passant, ...) the library doesn't carry.
//
// A game whose movetext doesn't resolve against the legal move set
// (a corrupt or foreign-variant record) is skipped rather than failing
// the whole archive; scripts/datagen's PGN ingestion path relies on
// this to tolerate the occasional bad record in a large collection.
func Games(r io.Reader) ([]Game, error) {
	scanner := pgnlib.NewPGNScanner(r)

	var games []Game
	for scanner.Next() {
		raw, err := scanner.Scan()
		if err != nil {
			return games, fmt.Errorf("pgn: decode: %w", err)
		}

		g, err := decodeGame(raw)
		if err != nil {
			continue
		}
		games = append(games, g)
	}

	return games, nil
}

// decodeGame replays raw's moves from the standard starting position,
// resolving each one against board.Position's legal move list through
// its UCI long-algebraic text.
func decodeGame(raw *pgnlib.Game) (Game, error) {
	p := board.New()

	moves := make([]move.Move, 0, len(raw.Moves))
	for _, libMove := range raw.Moves {
		m, err := p.MoveFromUCI(uciOf(libMove))
		if err != nil {
			return Game{}, fmt.Errorf("pgn: decode: %w", err)
		}
		p.MakeMove(m)
		moves = append(moves, m)
	}

	return Game{
		Tags:     tagsFromRaw(raw.Tags),
		Moves:    moves,
		Position: p,
	}, nil
}

// uciOf renders a library move as UCI long algebraic text ("e2e4",
// "e7e8q"), going through the library's own algebraic square
// formatting so no assumption about its internal square encoding is
// needed.
func uciOf(m pgnlib.Move) string {
	text := strings.ToLower(m.From.String() + m.To.String())
	if m.Promote != pgnlib.NoPiece {
		// Piece is a character-valued byte ('Q', 'q', ...)
		text += strings.ToLower(string(rune(m.Promote)))
	}
	return text
}

// tagsFromRaw converts freeeve/pgn.v1's raw string-keyed tag map into
// this package's own Tags struct.
func tagsFromRaw(raw map[string]string) Tags {
	return Tags{
		Event:  raw["Event"],
		Site:   raw["Site"],
		Date:   raw["Date"],
		Round:  raw["Round"],
		White:  raw["White"],
		Black:  raw["Black"],
		Result: raw["Result"],
	}
}
