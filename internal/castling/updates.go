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

package castling

import "nemo.dev/x/nemo/internal/square"

// Lost maps each chessboard square to the rights that need to be cleared
// if a piece moves from or to that square: either the king has moved
// (clearing both of its color's rights) or a rook has moved off, or been
// captured on, its home square (clearing that side's single right).
// Squares not occupied by a king or rook's home position leave rights
// unaffected.
var Lost [square.N]Rights

func init() {
	Lost[square.E1] = White
	Lost[square.A1] = WhiteQueenside
	Lost[square.H1] = WhiteKingside

	Lost[square.E8] = Black
	Lost[square.A8] = BlackQueenside
	Lost[square.H8] = BlackKingside
}
