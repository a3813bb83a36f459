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

// Opcode is the operation selector found in the two low order decimal digits
// of an instruction word.
type Opcode Cell

// Intcode opcodes.
const (
	OpAdd         Opcode = 1
	OpMul         Opcode = 2
	OpIn          Opcode = 3
	OpOut         Opcode = 4
	OpJumpIfTrue  Opcode = 5
	OpJumpIfFalse Opcode = 6
	OpLessThan    Opcode = 7
	OpEqual       Opcode = 8
	OpHalt        Opcode = 99
)

var opcodes = map[Opcode]struct {
	name  string
	width int
}{
	OpAdd:         {"add", 4},
	OpMul:         {"mul", 4},
	OpIn:          {"in", 2},
	OpOut:         {"out", 2},
	OpJumpIfTrue:  {"jt", 3},
	OpJumpIfFalse: {"jf", 3},
	OpLessThan:    {"lt", 4},
	OpEqual:       {"eq", 4},
	OpHalt:        {"hlt", 1},
}

var opcodeIndex = make(map[string]Opcode, len(opcodes))

func init() {
	for op, v := range opcodes {
		opcodeIndex[v.name] = op
	}
}

// Valid returns true if op is a supported opcode.
func (op Opcode) Valid() bool {
	_, ok := opcodes[op]
	return ok
}

// Width returns the number of memory cells used by an instruction with this
// opcode, including the instruction word. It returns 0 for invalid opcodes.
func (op Opcode) Width() int {
	return opcodes[op].width
}

// String returns the opcode's mnemonic, or "???" for an invalid opcode.
func (op Opcode) String() string {
	if v, ok := opcodes[op]; ok {
		return v.name
	}
	return "???"
}

// LookupOpcode returns the opcode for the given mnemonic.
func LookupOpcode(name string) (op Opcode, ok bool) {
	op, ok = opcodeIndex[name]
	return
}

// Writes returns true if the last operand of op is a write destination.
func (op Opcode) Writes() bool {
	switch op {
	case OpAdd, OpMul, OpIn, OpLessThan, OpEqual:
		return true
	}
	return false
}
