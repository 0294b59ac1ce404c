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

// Package option implements the UCI "option" types a client advertises
// at startup and accepts values for via "setoption".
package option

import (
	"fmt"
	"strconv"
	"strings"
)

// NewSchema returns an empty option Schema.
func NewSchema() Schema {
	return Schema{options: make(map[string]Option)}
}

// Schema is the set of options a uci.Client advertises.
type Schema struct {
	options map[string]Option
}

// AddOption registers an option under the given name.
func (s *Schema) AddOption(name string, option Option) {
	s.options[name] = option
}

// SetDefaults initializes every option in the schema to its default
// value, called once before the client starts accepting commands.
func (s *Schema) SetDefaults() error {
	for _, option := range s.options {
		if err := option.Initialize(); err != nil {
			return err
		}
	}
	return nil
}

// SetOption stores value into the named option, as requested by a
// "setoption name <name> value <value...>" command.
func (s *Schema) SetOption(name string, value []string) error {
	option, found := s.options[name]
	if !found {
		return fmt.Errorf("set option: %q is not a valid option", name)
	}
	return option.Store(value)
}

// String renders the schema as the "option name ... type ..." lines the
// "uci" command replies with.
func (s *Schema) String() string {
	var str strings.Builder
	for name, option := range s.options {
		fmt.Fprintf(&str, "option name %s type %s\n", name, option.Type())
	}
	return str.String()
}

// Option is implemented by every supported UCI option kind.
type Option interface {
	Type() string

	Store(value []string) error
	Initialize() error
}

// Check is a boolean option ("type check").
type Check struct {
	Default bool
	Storage func(bool) error
}

var _ Option = (*Check)(nil)

func (o *Check) Type() string {
	return fmt.Sprintf("check default %v", o.Default)
}

func (o *Check) Store(value []string) error {
	if len(value) != 1 {
		return fmt.Errorf("option check: expected 1 value, received %d", len(value))
	}

	boolean, err := strconv.ParseBool(value[0])
	if err != nil {
		return err
	}

	return o.Storage(boolean)
}

func (o *Check) Initialize() error {
	return o.Storage(o.Default)
}

// Spin is a bounded-integer option ("type spin").
type Spin struct {
	Default  int
	Min, Max int
	Storage  func(int) error
}

var _ Option = (*Spin)(nil)

func (o *Spin) Type() string {
	return fmt.Sprintf("spin default %v min %d max %d", o.Default, o.Min, o.Max)
}

func (o *Spin) Store(value []string) error {
	if len(value) != 1 {
		return fmt.Errorf("option spin: expected 1 value, received %d", len(value))
	}

	n, err := strconv.Atoi(value[0])
	if err != nil {
		return err
	}

	if n < o.Min || n > o.Max {
		return fmt.Errorf("option spin: value %d out of bounds [%d, %d]", n, o.Min, o.Max)
	}

	return o.Storage(n)
}

func (o *Spin) Initialize() error {
	return o.Storage(o.Default)
}

// Button is a no-value option that triggers an action ("type button").
type Button struct {
	Ping func() error
}

var _ Option = (*Button)(nil)

func (o *Button) Type() string {
	return "button"
}

func (o *Button) Store(value []string) error {
	if len(value) > 0 {
		return fmt.Errorf("option button: expected 0 values, received %d", len(value))
	}
	return o.Ping()
}

func (o *Button) Initialize() error {
	return nil
}

// String is a freeform-text option ("type string").
type String struct {
	Default string
	Storage func(string) error
}

var _ Option = (*String)(nil)

func (o *String) Type() string {
	return fmt.Sprintf("string default %s", o.Default)
}

func (o *String) Store(value []string) error {
	return o.Storage(strings.Join(value, " "))
}

func (o *String) Initialize() error {
	return o.Storage(o.Default)
}
