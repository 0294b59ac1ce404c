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

// Command nemo is the engine's UCI entry point: it wires up a
// uci.Client and either starts a REPL or evaluates the command line
// arguments as a single UCI command.
package main

import (
	"fmt"
	"os"

	"nemo.dev/x/nemo/internal/build"
	"nemo.dev/x/nemo/internal/engine"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	client, err := engine.NewClient()
	if err != nil {
		return err
	}

	fmt.Printf("Nemo %s\n", build.Version)

	switch args := os.Args[1:]; {
	case len(args) == 0:
		// no command-line arguments: start repl
		return client.Start()

	default:
		// command-line arguments: evaluate arguments as a UCI command
		// since we are not in a repl don't run any commands in parallel
		return client.RunWith(args, false)
	}
}
