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

// Command build is a tiny flag-driven task runner, invoked as
// `go run ./scripts/build task...`: each positional argument names a
// task, and any NAME=value argument sets an environment variable first.
package main

import (
	"fmt"
	"os"
	"strings"

	"nemo.dev/x/nemo/scripts/util"
)

func main() {
	var args []string

	for _, arg := range os.Args[1:] {
		name, value, found := strings.Cut(arg, "=")
		if !found {
			args = append(args, arg)
			continue
		}
		os.Setenv(name, value)
	}

	for _, arg := range args {
		task, ok := tasks[arg]
		if !ok {
			fmt.Fprintf(os.Stderr, "Invalid task %v.\n", arg)
			continue
		}

		if err := task(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

var tasks = map[string]func() error{
	"--": nullTask, // used as separator for readability

	"dev-build":     devBuild,     // build a development binary
	"release-build": releaseBuild, // build a release binary

	"perft": perft, // run the perft regression tests
	"bench": bench, // run the fixed-depth search benchmark
}

func nullTask() error {
	return nil
}

func devBuild() error {
	version, err := util.RunWithOutput("git", "describe", "--tags")
	if err != nil {
		return err
	}
	return build(version)
}

func releaseBuild() error {
	version, err := util.RunWithOutput("git", "describe", "--tags", "--abbrev=0")
	if err != nil {
		return err
	}
	return build(version)
}

func build(version string) error {
	project := "nemo.dev/x/nemo"
	ldflags := fmt.Sprintf("-X %s/internal/build.Version=%s", project, version)

	exe := os.Getenv("EXE")
	if exe == "" {
		exe = "nemo"
	}
	if os.Getenv("GOOS") == "windows" {
		exe += ".exe"
	}

	return util.RunNormal("go", "build", "-ldflags", ldflags, "-o", exe, "./cmd/nemo")
}

func perft() error {
	return util.RunNormal("go", "test", "./board/...", "-run", "TestPerft", "-v")
}

func bench() error {
	return util.RunNormal("go", "run", "./cmd/bench")
}
