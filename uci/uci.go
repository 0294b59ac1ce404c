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

// Package uci implements a Universal Chess Interface client: a
// line-oriented read-eval-print loop dispatching GUI commands to
// registered handlers and writing their replies back to the GUI.
package uci

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"nemo.dev/x/nemo/uci/cmd"
	"nemo.dev/x/nemo/uci/option"
)

// NewClient creates a Client reading commands from stdin and writing
// replies to stdout, with the protocol-mandatory "isready" and "quit"
// commands already registered.
func NewClient() Client {
	client := Client{
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}

	client.commands = cmd.NewSchema(client.stdout)
	client.options = option.NewSchema()

	client.AddCommand(cmdQuit)
	client.AddCommand(cmdIsReady)

	return client
}

// Client is a UCI engine's protocol front-end: a command schema and the
// I/O streams it reads from and replies on.
type Client struct {
	stdin  io.Reader
	stdout io.Writer

	commands cmd.Schema
	options  option.Schema

	debug bool // "debug on"/"debug off": whether to emit extra "info string" diagnostics
}

// AddCommand registers c, making it reachable by name from the REPL.
func (c *Client) AddCommand(command cmd.Command) {
	c.commands.Add(command)
}

// AddOption registers an option for the "uci" identification reply and
// for "setoption" to target.
func (c *Client) AddOption(name string, opt option.Option) {
	c.options.AddOption(name, opt)
}

// SetDefaults applies every registered option's default value. Call once
// before Start.
func (c *Client) SetDefaults() error {
	return c.options.SetDefaults()
}

// Debug reports whether "debug on" is currently in effect.
func (c *Client) Debug() bool {
	return c.debug
}

// SetDebug implements the "debug [on|off]" command's effect.
func (c *Client) SetDebug(on bool) {
	c.debug = on
}

// OptionsString renders every registered option as "option name ..."
// lines, for the "uci" command's reply.
func (c *Client) OptionsString() string {
	return c.options.String()
}

// SetOption stores value into the named option, as requested by a
// "setoption name <name> value <value...>" command.
func (c *Client) SetOption(name string, value []string) error {
	return c.options.SetOption(name, value)
}

// Start runs the read-eval-print loop against stdin until "quit" is
// received or the input stream ends.
func (c *Client) Start() error {
	reader := bufio.NewReader(c.stdin)

	for {
		prompt, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		args := strings.Fields(prompt)
		if len(args) == 0 {
			continue
		}

		switch err := c.RunWith(args, true); {
		case err == nil:

		case errors.Is(err, errQuit):
			return nil

		default:
			c.Println(err)
		}
	}
}

// Run executes args as a single command, synchronously regardless of
// whether the command is Parallel.
func (c *Client) Run(args ...string) error {
	return c.RunWith(args, false)
}

// RunWith looks up the command named by args[0] and runs it with the
// remaining elements as its arguments, dispatching it on its own
// goroutine if it is Parallel and background is true.
func (c *Client) RunWith(args []string, background bool) error {
	name, args := args[0], args[1:]

	command, found := c.commands.Get(name)
	if !found {
		return fmt.Errorf("%s: command not found", name)
	}

	return command.RunWith(args, background, c.commands)
}

// Print writes to the client's reply stream, like fmt.Print.
func (c *Client) Print(a ...any) (int, error) {
	return fmt.Fprint(c.stdout, a...)
}

// Printf writes to the client's reply stream, like fmt.Printf.
func (c *Client) Printf(format string, a ...any) (int, error) {
	return fmt.Fprintf(c.stdout, format, a...)
}

// Println writes to the client's reply stream, like fmt.Println.
func (c *Client) Println(a ...any) (int, error) {
	return fmt.Fprintln(c.stdout, a...)
}
