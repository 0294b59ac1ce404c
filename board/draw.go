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

import "nemo.dev/x/nemo/internal/util"

// IsDraw reports whether the current position is a draw by the fifty-move
// rule or by repetition. Threefold repetition isn't distinguished from a
// single repetition since the search treats both identically.
func (p *Position) IsDraw() bool {
	return p.DrawClock >= 100 || p.IsRepetition()
}

// IsRepetition reports whether the current Zobrist hash has occurred
// earlier in the game, probed back only as far as the last irreversible
// move (a pawn push or a capture), since no earlier position can recur.
func (p *Position) IsRepetition() bool {
	depth := util.Max(0, p.Ply-p.DrawClock)

	for i := p.Ply - 2; i >= depth; i -= 2 {
		if p.history[i].Hash == p.Hash {
			return true
		}
	}

	return false
}
