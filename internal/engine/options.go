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

package engine

import "nemo.dev/x/nemo/uci/option"

// newOptionHash builds the "Hash" UCI option, type spin: the hash table
// size in megabytes. setoption resizes the live transposition table in
// place rather than requiring a restart.
func newOptionHash(engine *Engine) option.Option {
	return &option.Spin{
		Default: 16,
		Min:     1,
		Max:     33554432,
		Storage: func(hash int) error {
			engine.Options.Hash = hash
			engine.Search.ResizeTT(hash)
			return nil
		},
	}
}

// newOptionPonder builds the "Ponder" UCI option, type check. It
// records whether the GUI has told the engine pondering is permitted;
// "go ponder" is rejected while it is off.
func newOptionPonder(engine *Engine) option.Option {
	return &option.Check{
		Default: false,
		Storage: func(ponder bool) error {
			engine.Options.Ponder = ponder
			return nil
		},
	}
}

// newOptionThreads builds the "Threads" UCI option, type spin. The
// search is single-threaded, so the value is fixed at 1 and stored
// only for GUI compatibility.
func newOptionThreads(engine *Engine) option.Option {
	return &option.Spin{
		Default: 1,
		Min:     1,
		Max:     1,
		Storage: func(threads int) error {
			engine.Options.Threads = threads
			return nil
		},
	}
}
