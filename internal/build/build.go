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

// Package build holds build-time information injected by scripts/build
// via -ldflags, so the binary can report its own version through the
// UCI "id" reply without a dependency on the VCS at runtime.
package build

// Version is the engine's version string, normally a git describe
// output like "v0.3.0-4-gabcdef1". It defaults to "dev" for builds that
// bypass scripts/build (e.g. a bare "go build").
var Version = "dev"
