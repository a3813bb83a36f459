// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import "strconv"

// Mode is a parameter addressing mode.
type Mode Cell

// Addressing modes.
const (
	Indirect  Mode = 0 // the parameter is the address of the value
	Immediate Mode = 1 // the parameter is the value itself
)

// Parameter is an instruction operand, tagged with its addressing mode.
type Parameter struct {
	Mode  Mode
	Value Cell
}

// Resolve builds a Parameter from a mode digit and a raw operand.
func Resolve(mode, raw Cell) (Parameter, error) {
	switch Mode(mode) {
	case Indirect, Immediate:
		return Parameter{Mode(mode), raw}, nil
	default:
		return Parameter{}, &InvalidModeError{mode}
	}
}

// Read returns the value of the parameter: the operand itself in immediate
// mode, or the memory cell it points to in indirect mode.
func (p Parameter) Read(m Memory) (Cell, error) {
	if p.Mode == Immediate {
		return p.Value, nil
	}
	return m.Read(p.Value)
}

// String returns the assembler form of the parameter: 42 in immediate mode,
// (42) in indirect mode.
func (p Parameter) String() string {
	v := strconv.FormatInt(int64(p.Value), 10)
	if p.Mode == Immediate {
		return v
	}
	return "(" + v + ")"
}
