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

	"nemo.dev/x/nemo/internal/piece"
	"nemo.dev/x/nemo/internal/square"
	"nemo.dev/x/nemo/move"
)

// MoveFromUCI parses a UCI long algebraic move string ("e2e4", "e7e8q")
// and resolves it against the position's current legal moves, since the
// packed Move encoding needs the move's flag (capture, castle,
// en-passant, ...) which the bare origin/destination/promotion string
// doesn't carry on its own.
func (p *Position) MoveFromUCI(s string) (move.Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return move.Null, fmt.Errorf("move %q: invalid length", s)
	}

	for i := 0; i < 4; i += 2 {
		if s[i] < 'a' || s[i] > 'h' || s[i+1] < '1' || s[i+1] > '8' {
			return move.Null, fmt.Errorf("move %q: bad square %q", s, s[i:i+2])
		}
	}

	origin := square.NewFromString(s[0:2])
	dest := square.NewFromString(s[2:4])

	var promotion piece.Type
	if len(s) == 5 {
		promotion = piece.TypeFromString(s[4:5])
	}

	for _, m := range p.GenerateMoves() {
		if m.Origin() != origin || m.Dest() != dest {
			continue
		}

		if !m.IsPromotion() {
			return m, nil
		}

		if m.PromotedType() == promotion {
			return m, nil
		}
	}

	return move.Null, fmt.Errorf("move %q: illegal in current position", s)
}
