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

package tt_test

import (
	"testing"

	"nemo.dev/x/nemo/eval"
	"nemo.dev/x/nemo/internal/square"
	"nemo.dev/x/nemo/move"
	"nemo.dev/x/nemo/search/tt"
)

func TestStoreAndProbe(t *testing.T) {
	table := tt.NewTable(1)

	entry := tt.Entry{
		Hash:  0xDEADBEEF,
		Move:  move.New(square.E2, square.E4, move.DoublePawnPush),
		Value: 25,
		Type:  tt.ExactEntry,
		Depth: 5,
	}
	table.Store(entry)

	got, hit := table.Probe(0xDEADBEEF)
	if !hit {
		t.Fatal("stored entry not found")
	}
	if got.Move != entry.Move || got.Value != entry.Value || got.Depth != entry.Depth || got.Type != entry.Type {
		t.Errorf("probe returned %+v, want %+v", got, entry)
	}

	if _, hit := table.Probe(0xCAFEBABE); hit {
		t.Error("probe of an unstored hash reported a hit")
	}
}

func TestClear(t *testing.T) {
	table := tt.NewTable(1)
	table.Store(tt.Entry{Hash: 42, Type: tt.ExactEntry, Depth: 3})

	table.Clear()

	if _, hit := table.Probe(42); hit {
		t.Error("probe hit after Clear")
	}
}

func TestDeeperEntryWinsSlot(t *testing.T) {
	table := tt.NewTable(1)

	table.Store(tt.Entry{Hash: 99, Type: tt.ExactEntry, Depth: 9, Value: 1})
	table.Store(tt.Entry{Hash: 99, Type: tt.ExactEntry, Depth: 2, Value: 2})

	got, hit := table.Probe(99)
	if !hit || got.Depth != 9 {
		t.Errorf("shallower re-store replaced a deeper entry: %+v", got)
	}
}

// TestMateScoreAdjustment checks the root-relative to node-relative
// mate score conversion: a mate found n plys below the node must probe
// back as the same mate regardless of the depth the probing search
// reached the node at.
func TestMateScoreAdjustment(t *testing.T) {
	found := eval.MatingIn(7) // mate 7 plys from the root, found at ply 3

	stored := tt.EvalFrom(found, 3) // "mate in 4 from this node"
	if got := stored.Eval(3); got != found {
		t.Errorf("mate score round-trip at the same ply: got %d, want %d", got, found)
	}

	// probing from a node reached at ply 5 sees the same 4-ply mate as
	// a mate 9 plys from its own root
	if got := stored.Eval(5); got != eval.MatingIn(9) {
		t.Errorf("mate score at a different ply: got %d, want %d", got, eval.MatingIn(9))
	}

	// regular scores pass through untouched
	if got := tt.EvalFrom(120, 9).Eval(4); got != 120 {
		t.Errorf("regular score adjusted: got %d", got)
	}
}
