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
	"strings"
	"testing"

	"nemo.dev/x/nemo/board"
	"nemo.dev/x/nemo/move"
)

func mustMove(t *testing.T, p *board.Position, uci string) move.Move {
	t.Helper()
	m, err := p.MoveFromUCI(uci)
	if err != nil {
		t.Fatalf("move %s: %v", uci, err)
	}
	return m
}

func playUCI(t *testing.T, moves ...string) *board.Position {
	t.Helper()
	p := board.New()
	for _, uci := range moves {
		p.MakeMove(mustMove(t, p, uci))
	}
	return p
}

func TestMovetextFoolsMate(t *testing.T) {
	p := playUCI(t, "f2f3", "e7e5", "g2g4", "d8h4")

	const want = "1. f3 e5 2. g4 Qh4#"
	if got := Movetext(p); got != want {
		t.Errorf("Movetext = %q, want %q", got, want)
	}
}

func TestMovetextCastlingAndCapture(t *testing.T) {
	p := playUCI(t,
		"e2e4", "e7e5",
		"g1f3", "b8c6",
		"f1c4", "g8f6",
		"e1g1", "f6e4",
	)

	const want = "1. e4 e5 2. Nf3 Nc6 3. Bc4 Nf6 4. O-O Nxe4"
	if got := Movetext(p); got != want {
		t.Errorf("Movetext = %q, want %q", got, want)
	}
}

func TestSANDisambiguation(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		uci  string
		want string
	}{
		{
			name: "by file",
			fen:  "4k3/8/8/8/8/8/4K3/R6R w - - 0 1",
			uci:  "a1d1",
			want: "Rad1",
		},
		{
			name: "by rank",
			fen:  "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1",
			uci:  "a1a3",
			want: "R1a3",
		},
		{
			name: "no ambiguity",
			fen:  "4k3/8/8/8/8/8/8/R3K3 w - - 0 1",
			uci:  "a1d1",
			want: "Rd1",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, err := board.NewFromFEN(test.fen)
			if err != nil {
				t.Fatal(err)
			}

			m := mustMove(t, p, test.uci)
			if got := san(p, m); got != test.want {
				t.Errorf("san(%s) = %q, want %q", test.uci, got, test.want)
			}
		})
	}
}

func TestSANPromotionAndCheck(t *testing.T) {
	p, err := board.NewFromFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	m := mustMove(t, p, "a7a8q")
	if got := san(p, m); got != "a8=Q+" {
		t.Errorf("san(a7a8q) = %q, want %q", got, "a8=Q+")
	}
}

func TestSANEnPassant(t *testing.T) {
	p, err := board.NewFromFEN("rnbqkbnr/1pp1pppp/p7/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatal(err)
	}

	m := mustMove(t, p, "e5d6")
	if !m.IsEnPassant() {
		t.Fatal("e5d6 should resolve to an en-passant capture")
	}
	if got := san(p, m); got != "exd6" {
		t.Errorf("san(e5d6) = %q, want %q", got, "exd6")
	}
}

func TestEncodeGame(t *testing.T) {
	p := playUCI(t, "f2f3", "e7e5", "g2g4", "d8h4")

	doc := EncodeGame(p, Tags{
		Event:  "casual game",
		White:  "White",
		Black:  "Black",
		Result: "0-1",
	})

	for _, want := range []string{
		"[Event \"casual game\"]",
		"[Site \"?\"]",
		"[Date \"????.??.??\"]",
		"[Round \"?\"]",
		"[White \"White\"]",
		"[Black \"Black\"]",
		"[Result \"0-1\"]",
		"1. f3 e5 2. g4 Qh4# 0-1",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("EncodeGame output missing %q:\n%s", want, doc)
		}
	}
}
