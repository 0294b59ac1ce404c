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

// Package time implements the various time managers used to bound how
// long a search is allowed to run for.
package time

import (
	"time"

	"nemo.dev/x/nemo/internal/piece"
)

// Manager decides how long a search may run for, given the limits
// reported by the GUI in a "go" command.
type Manager interface {
	// GetDeadline calculates the optimal amount of time to be used
	// and sets a deadline internally for the search's end.
	GetDeadline()

	// ExtendDeadline extends the search's allocated time. A deadline
	// extension may be a no-op depending on the manager. The search
	// package never calls it.
	ExtendDeadline()

	// Expired reports whether the search deadline has been crossed.
	Expired() bool
}

// NormalManager is the standard time manager, which divides the time
// left on the clock (plus incoming increments) by an estimate of the
// moves remaining until the next time control.
type NormalManager struct {
	Us piece.Color // side to move

	Time, Increment [piece.ColorN]int
	MovesToGo       int // moves to next time control; 0 means unknown

	deadline time.Time
}

// compile time check that NormalManager implements Manager
var _ Manager = (*NormalManager)(nil)

func (m *NormalManager) GetDeadline() {
	movesToGo := m.MovesToGo
	if movesToGo == 0 {
		// no time control info; assume a long game remains
		movesToGo = 30
	}

	budget := time.Duration(m.Time[m.Us])*time.Millisecond/time.Duration(movesToGo) +
		time.Duration(m.Increment[m.Us])*time.Millisecond/2

	m.deadline = time.Now().Add(budget)
}

func (m *NormalManager) ExtendDeadline() {
	m.deadline = m.deadline.Add((time.Duration(m.Time[m.Us]) * time.Millisecond) / 30)
}

func (m *NormalManager) Expired() bool {
	return time.Now().After(m.deadline)
}

// MoveManager is the time manager used when the GUI requests a fixed
// per-move search time ("go movetime"). Its deadline cannot be extended.
type MoveManager struct {
	Duration int // milliseconds
	deadline time.Time
}

// compile time check that MoveManager implements Manager
var _ Manager = (*MoveManager)(nil)

func (m *MoveManager) GetDeadline() {
	m.deadline = time.Now().Add(time.Duration(m.Duration) * time.Millisecond)
}

func (m *MoveManager) ExtendDeadline() {
	// fixed movetime search: nothing to extend
}

func (m *MoveManager) Expired() bool {
	return time.Now().After(m.deadline)
}

// InfiniteManager never expires; it is used for "go infinite" searches
// and for searches with only a node or depth limit, which are stopped
// by Context.shouldStop's other clauses instead of a deadline.
type InfiniteManager struct{}

// compile time check that InfiniteManager implements Manager
var _ Manager = (*InfiniteManager)(nil)

func (InfiniteManager) GetDeadline()    {}
func (InfiniteManager) ExtendDeadline() {}
func (InfiniteManager) Expired() bool   { return false }
