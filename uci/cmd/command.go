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

// Package cmd implements the schema of a UCI command: its name, flags,
// and work function, and the dispatch table a uci.Client runs them
// through.
package cmd

import (
	"fmt"
	"io"

	"nemo.dev/x/nemo/uci/flag"
)

// NewSchema initializes an empty command Schema that writes replies to
// replyWriter.
func NewSchema(replyWriter io.Writer) Schema {
	return Schema{
		replyWriter: replyWriter,
		commands:    make(map[string]Command),
	}
}

// Schema is the set of commands a uci.Client recognizes.
type Schema struct {
	replyWriter io.Writer
	commands    map[string]Command
}

// Add registers c under its own name, replacing any existing command of
// the same name.
func (s *Schema) Add(c Command) {
	s.commands[c.Name] = c
}

// Get looks up a command by name.
func (s *Schema) Get(name string) (Command, bool) {
	c, found := s.commands[name]
	return c, found
}

// Command is the schema of a single GUI-to-engine command: its name,
// accepted flags, and work function.
type Command struct {
	Name string

	// Parallel commands are dispatched on their own goroutine so the
	// read loop can keep accepting commands (most importantly "stop")
	// while this one is still running. "go" is the only Parallel
	// command the engine registers: a running search must remain
	// interruptible by a "stop" arriving on the same input stream.
	Parallel bool

	Run func(Interaction) error

	Flags flag.Schema
}

// RunWith parses args against c's flag schema and invokes c.Run. If c is
// Parallel and background is true, Run is dispatched on its own
// goroutine and RunWith returns immediately with a nil error; any error
// Run returns is written to schema's reply stream instead of being
// propagated, since there is no longer a caller waiting for it.
func (c Command) RunWith(args []string, background bool, schema Schema) error {
	values, err := c.Flags.Parse(args)
	if err != nil {
		return err
	}

	interaction := Interaction{
		stdout:  schema.replyWriter,
		Command: c,
		Values:  values,
	}

	if c.Parallel && background {
		go func() {
			if err := c.Run(interaction); err != nil {
				interaction.Reply(err)
			}
		}()
		return nil
	}

	return c.Run(interaction)
}

// Interaction carries everything a Command's Run function needs to know
// about one invocation of it.
type Interaction struct {
	stdout io.Writer

	Command

	Values flag.Values
}

// Reply writes a to the GUI, newline-terminated, like fmt.Println.
func (i *Interaction) Reply(a ...any) (int, error) {
	return fmt.Fprintln(i.stdout, a...)
}

// Replyf writes a newline-terminated, formatted reply to the GUI, like
// fmt.Printf with an appended "\n".
func (i *Interaction) Replyf(format string, a ...any) (int, error) {
	return fmt.Fprintf(i.stdout, format+"\n", a...)
}
