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

// Package tt implements the transposition table, which caches the
// results of previous searches of a position (its score, best move, and
// bound type) so that later searches which transpose into the same
// position can reuse them instead of re-searching from scratch.
package tt

import (
	"math/bits"
	"unsafe"

	"nemo.dev/x/nemo/eval"
	"nemo.dev/x/nemo/internal/util"
	"nemo.dev/x/nemo/internal/zobrist"
	"nemo.dev/x/nemo/move"
)

// EntrySize is the size in bytes of a single tt entry.
var EntrySize = int(unsafe.Sizeof(Entry{}))

// NewTable creates a new transposition table sized to fit within the
// given number of megabytes.
func NewTable(mbs int) *Table {
	size := (mbs * 1024 * 1024) / EntrySize
	if size == 0 {
		size = 1
	}

	return &Table{
		table: make([]Entry, size),
		size:  size,
	}
}

// Table is a fixed-size hash table of search results, indexed by a fast
// range reduction of the position's Zobrist hash rather than the usual
// modulo, so that its size need not be a power of two.
type Table struct {
	table []Entry
	size  int
	epoch uint8
}

// Clear empties every entry in the table.
func (tt *Table) Clear() {
	clear(tt.table)
	tt.epoch = 0
}

// NextEpoch marks the start of a new search generation. Entries from
// earlier epochs are considered lower quality and are preferred
// overwrite targets, without being actively evicted.
func (tt *Table) NextEpoch() {
	tt.epoch++
}

// Resize rebuilds the table at a new size, discarding every entry; a
// resize is rare enough (driven by the UCI Hash option) that preserving
// old entries isn't worth the complexity.
func (tt *Table) Resize(mbs int) {
	size := (mbs * 1024 * 1024) / EntrySize
	if size == 0 {
		size = 1
	}

	*tt = Table{
		table: make([]Entry, size),
		size:  size,
	}
}

// Store inserts entry into the table, replacing the existing occupant of
// its slot only if entry is of equal or higher quality.
func (tt *Table) Store(entry Entry) {
	target := tt.fetch(entry.Hash)
	entry.epoch = tt.epoch

	if entry.quality() >= target.quality() {
		*target = entry
	}
}

// Probe fetches the entry for the given hash, and reports whether it is
// safe to use: the slot holds an entry, and that entry's hash matches
// (rather than being a collision from a different position).
func (tt *Table) Probe(hash zobrist.Key) (Entry, bool) {
	entry := *tt.fetch(hash)
	return entry, entry.Type != NoEntry && entry.Hash == hash
}

// Hashfull estimates the fraction of the table in use, in [0, 1], by
// sampling a fixed prefix of entries from the current epoch rather than
// scanning the whole (potentially huge) table.
func (tt *Table) Hashfull() float64 {
	sampleSize := util.Min(1000, tt.size)
	if sampleSize == 0 {
		return 0
	}

	used := 0
	for i := 0; i < sampleSize; i++ {
		if tt.table[i].Type != NoEntry && tt.table[i].epoch == tt.epoch {
			used++
		}
	}

	return float64(used) / float64(sampleSize)
}

func (tt *Table) fetch(hash zobrist.Key) *Entry {
	return &tt.table[tt.indexOf(hash)]
}

// indexOf maps a hash to a table slot using Lemire's fast range
// reduction instead of hash % size, avoiding a division on every probe.
// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
func (tt *Table) indexOf(hash zobrist.Key) uint {
	index, _ := bits.Mul(uint(hash), uint(tt.size))
	return index
}

// Entry is a single transposition table slot.
type Entry struct {
	Hash zobrist.Key // full hash, to detect index collisions

	Move move.Move // best move found in this position, or move.Null

	Value Eval      // position's value, see the Eval doc comment
	Type  EntryType // bound type of Value

	Depth uint8 // depth this entry was searched to
	epoch uint8 // search generation the entry was stored in
}

// quality ranks an entry for replacement purposes: newer and
// deeper-searched entries are worth more and are kept over shallower,
// older ones.
func (entry *Entry) quality() uint8 {
	return entry.epoch + entry.Depth/3
}

// EntryType records what kind of bound an entry's Value represents.
type EntryType uint8

// constants representing the possible entry bound types
const (
	NoEntry EntryType = iota // slot is empty

	ExactEntry // Value is the position's exact score
	LowerBound // Value is a lower bound (search failed high)
	UpperBound // Value is an upper bound (search failed low)
)

// Eval is a transposition-table-safe evaluation. Mate scores are stored
// relative to the node they were found in ("mate in n plys from here")
// rather than relative to the search root, so that an entry found at one
// depth remains valid when probed again from a different depth.
type Eval eval.Eval

// EvalFrom converts a search-relative score (mate distance counted from
// the root) into a table-relative one (mate distance counted from the
// current node), ready for storage.
func EvalFrom(score eval.Eval, plys int) Eval {
	switch {
	case score > eval.WinInMaxPly:
		score += eval.Eval(plys)
	case score < eval.LoseInMaxPly:
		score -= eval.Eval(plys)
	}

	return Eval(score)
}

// Eval converts a table-relative score back into a search-relative one
// for use at the given node depth.
func (e Eval) Eval(plys int) eval.Eval {
	score := eval.Eval(e)

	switch {
	case score > eval.WinInMaxPly:
		score -= eval.Eval(plys)
	case score < eval.LoseInMaxPly:
		score += eval.Eval(plys)
	}

	return score
}
