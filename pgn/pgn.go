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

// Package pgn encodes and decodes games in Portable Game Notation. It
// writes PGN itself, but parses existing archives with the small
// third-party gopkg.in/freeeve/pgn.v1 library rather than a
// hand-rolled reader: a small library for reading arbitrary
// third-party input, our own formatter for writing what we already
// fully control.
package pgn

import (
	"fmt"
	"strings"
	"time"

	"nemo.dev/x/nemo/board"
	"nemo.dev/x/nemo/internal/piece"
	"nemo.dev/x/nemo/internal/square"
	"nemo.dev/x/nemo/move"
)

// Tags holds the PGN seven-tag roster; no other tag pairs are carried.
// Event, Site, Date, Round, White, Black, and Result are emitted first
// and in that order, matching the Seven Tag Roster every PGN reader
// expects; zero-value fields fall back to "?" or "*" as the PGN
// standard requires.
type Tags struct {
	Event  string
	Site   string
	Date   string // YYYY.MM.DD, or "????.??.??" if unknown
	Round  string
	White  string
	Black  string
	Result string // "1-0", "0-1", "1/2-1/2", or "*"
}

// NewTags builds a Tags value for a freshly finished game, stamping
// Date with today's date so datagen/self-play callers don't need to
// track it themselves.
func NewTags(event, white, black, result string) Tags {
	return Tags{
		Event:  event,
		Date:   nowDate(time.Now()),
		White:  white,
		Black:  black,
		Result: result,
	}
}

func (t Tags) fill() Tags {
	if t.Event == "" {
		t.Event = "?"
	}
	if t.Site == "" {
		t.Site = "?"
	}
	if t.Date == "" {
		t.Date = "????.??.??"
	}
	if t.Round == "" {
		t.Round = "?"
	}
	if t.White == "" {
		t.White = "?"
	}
	if t.Black == "" {
		t.Black = "?"
	}
	if t.Result == "" {
		t.Result = "*"
	}
	return t
}

// EncodeGame renders p's move history (board.Position.MoveHistory, read
// off the reversible State stack -- no separate move log is kept) as a
// full PGN document: the tag pairs from tags, followed by movetext
// built from SAN per move.
//
// EncodeGame replays the game from the standard starting position to
// recover, ply by ply, the board state each move was played from: SAN
// disambiguation and the check/mate suffix both depend on the position
// a move was played in, not just the move itself.
func EncodeGame(p *board.Position, tags Tags) string {
	tags = tags.fill()

	var doc strings.Builder
	fmt.Fprintf(&doc, "[Event %q]\n", tags.Event)
	fmt.Fprintf(&doc, "[Site %q]\n", tags.Site)
	fmt.Fprintf(&doc, "[Date %q]\n", tags.Date)
	fmt.Fprintf(&doc, "[Round %q]\n", tags.Round)
	fmt.Fprintf(&doc, "[White %q]\n", tags.White)
	fmt.Fprintf(&doc, "[Black %q]\n", tags.Black)
	fmt.Fprintf(&doc, "[Result %q]\n\n", tags.Result)

	doc.WriteString(Movetext(p))
	if tags.Result != "" {
		doc.WriteString(" " + tags.Result)
	}
	doc.WriteString("\n")

	return doc.String()
}

// Movetext renders just the movetext section (move numbers and SAN,
// without tag pairs or result) for p's move history.
func Movetext(p *board.Position) string {
	moves := p.MoveHistory()

	replay := board.New()

	var text strings.Builder
	for i, m := range moves {
		if replay.SideToMove == piece.White {
			if i > 0 {
				text.WriteByte(' ')
			}
			fmt.Fprintf(&text, "%d.", replay.FullMoves)
		}
		text.WriteByte(' ')
		text.WriteString(san(replay, m))
		replay.MakeMove(m)
	}

	return strings.TrimSpace(text.String())
}

// san returns the SAN text of m, which must be one of p.GenerateMoves,
// played from p. p is not modified.
//
// Disambiguation tries the bare destination square first, then the
// origin file, then the origin rank, then both.
func san(p *board.Position, m move.Move) string {
	if m.IsCastle() {
		text := castleSAN(m)
		return text + suffix(p, m)
	}

	mover := p.PieceAt(m.Origin())
	text := pieceLetter(mover)

	if mover.Type() == piece.Pawn {
		if m.IsCapture() {
			text += m.Origin().File().String()
		}
	} else {
		text += disambiguate(p, m, mover)
	}

	if m.IsCapture() {
		text += "x"
	}

	text += m.Dest().String()

	if m.IsPromotion() {
		text += "=" + pieceLetter(piece.New(m.PromotedType(), mover.Color()))
	}

	return text + suffix(p, m)
}

func pieceLetter(pc piece.Piece) string {
	if pc.Type() == piece.Pawn {
		return ""
	}
	return strings.ToUpper(pc.Type().String())
}

func castleSAN(m move.Move) string {
	if m.Dest().File() == square.FileG {
		return "O-O"
	}
	return "O-O-O"
}

// disambiguate returns the file/rank/both prefix needed to distinguish
// m from every other legal move by a piece of the same type landing on
// the same square.
func disambiguate(p *board.Position, m move.Move, mover piece.Piece) string {
	var sameFile, sameRank, ambiguous bool

	for _, other := range p.GenerateMoves() {
		if other == m || other.Dest() != m.Dest() {
			continue
		}
		if p.PieceAt(other.Origin()) != mover {
			continue
		}
		ambiguous = true
		if other.Origin().File() == m.Origin().File() {
			sameFile = true
		}
		if other.Origin().Rank() == m.Origin().Rank() {
			sameRank = true
		}
	}

	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return m.Origin().File().String()
	case !sameRank:
		return m.Origin().Rank().String()
	default:
		return m.Origin().String()
	}
}

// suffix plays m on a scratch copy of p and reports the "+"/"#" SAN
// suffix the resulting position requires.
func suffix(p *board.Position, m move.Move) string {
	after := *p
	after.MakeMove(m)

	if !after.InCheck() {
		return ""
	}
	if len(after.GenerateMoves()) == 0 {
		return "#"
	}
	return "+"
}

// nowDate formats t as a PGN Date tag value. Callers that care about
// reproducibility (tests, datagen) should pass an explicit Tags.Date
// instead of relying on this helper's current-time default.
func nowDate(t time.Time) string {
	return t.Format("2006.01.02")
}
