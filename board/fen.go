// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

package board

import (
	"fmt"
	"strconv"
	"strings"

	"nemo.dev/x/nemo/internal/castling"
	"nemo.dev/x/nemo/internal/piece"
	"nemo.dev/x/nemo/internal/square"
	"nemo.dev/x/nemo/internal/zobrist"
)

// StartFEN is the FEN record of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewFromFEN parses a FEN record into a new Position.
func NewFromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("board: invalid fen %q: want 6 fields, got %d", fen, len(fields))
	}

	p := &Position{EnPassantTarget: square.None}

	if err := p.parsePlacement(fields[0]); err != nil {
		return nil, fmt.Errorf("board: invalid fen %q: %w", fen, err)
	}

	switch fields[1] {
	case "w":
		p.SideToMove = piece.White
	case "b":
		p.SideToMove = piece.Black
		p.Hash ^= zobrist.SideToMove
	default:
		return nil, fmt.Errorf("board: invalid fen %q: bad side to move %q", fen, fields[1])
	}

	p.CastlingRights = castling.NewRights(fields[2])
	p.Hash ^= zobrist.Castling[p.CastlingRights]

	if ep := fields[3]; ep != "-" {
		if len(ep) != 2 || ep[0] < 'a' || ep[0] > 'h' || (ep[1] != '3' && ep[1] != '6') {
			return nil, fmt.Errorf("board: invalid fen %q: bad en passant square %q", fen, ep)
		}
		p.EnPassantTarget = square.NewFromString(ep)
		p.Hash ^= zobrist.EnPassant[p.EnPassantTarget.File()]
	}

	clock, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("board: invalid fen %q: bad halfmove clock: %w", fen, err)
	}
	p.DrawClock = clock

	moves, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("board: invalid fen %q: bad fullmove number: %w", fen, err)
	}
	p.FullMoves = moves
	p.Ply = 2*(moves-1) + int(p.SideToMove)

	return p, nil
}

// parsePlacement fills the StackedBitboard fields from a FEN piece
// placement field, read rank 8 down to rank 1 as FEN requires, and
// translated to this engine's bottom-up square numbering.
func (p *Position) parsePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("want 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := square.Rank8 - square.Rank(i)
		file := square.FileA

		for _, c := range rankStr {
			if file > square.FileH {
				return fmt.Errorf("rank %s overflows", rank)
			}

			if n := int(c - '0'); c >= '1' && c <= '8' {
				file += square.File(n)
				continue
			}

			if !strings.ContainsRune("KQRBNPkqrbnp", c) {
				return fmt.Errorf("bad piece %q", c)
			}

			p.place(square.New(file, rank), piece.NewFromString(string(c)))
			file++
		}
	}

	return nil
}

// FEN serializes the Position into a FEN record.
func (p *Position) FEN() string {
	var placement strings.Builder

	for r := int(square.Rank8); r >= int(square.Rank1); r-- {
		empty := 0
		for f := square.FileA; f <= square.FileH; f++ {
			pc := p.PieceAt(square.New(f, square.Rank(r)))
			if pc == piece.NoPiece {
				empty++
				continue
			}

			if empty > 0 {
				placement.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			placement.WriteString(pc.String())
		}

		if empty > 0 {
			placement.WriteString(strconv.Itoa(empty))
		}

		if r != int(square.Rank1) {
			placement.WriteByte('/')
		}
	}

	side := "w"
	if p.SideToMove == piece.Black {
		side = "b"
	}

	return fmt.Sprintf("%s %s %s %s %d %d",
		placement.String(), side, p.CastlingRights.String(),
		p.EnPassantTarget.String(), p.DrawClock, p.FullMoves)
}
