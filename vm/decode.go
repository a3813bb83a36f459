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

import "strings"

// Instruction is a decoded instruction.
//
// X and Y are the read operands. Dest is the write address of add, mul, in, lt
// and eq. Target is the jump target operand of jt and jf. Fields not used by
// an opcode are left to their zero value.
type Instruction struct {
	Op     Opcode
	X, Y   Parameter
	Dest   Cell
	Target Parameter
}

// Decode decodes the instruction at address pc in mem.
//
// The opcode is word%100 and the remaining digits hold the addressing modes of
// the operands, first operand in the lowest digit. Write destinations are
// always addresses: an immediate mode on a write destination is an error.
//
// Decode does not modify mem.
func Decode(mem Memory, pc int) (Instruction, error) {
	w, err := mem.Read(Cell(pc))
	if err != nil {
		return Instruction{}, err
	}
	op, flags := Opcode(w%100), w/100
	if !op.Valid() {
		return Instruction{}, &InvalidOpcodeError{Cell(op)}
	}
	n := op.Width() - 1
	if last := pc + n; last >= len(mem) {
		return Instruction{}, &OutOfBoundsError{Cell(last), len(mem)}
	}
	var p [3]Parameter
	for k := 0; k < n; k++ {
		if p[k], err = Resolve(flags%10, mem[pc+1+k]); err != nil {
			return Instruction{}, err
		}
		flags /= 10
	}
	if op.Writes() && p[n-1].Mode != Indirect {
		return Instruction{}, &InvalidModeError{Cell(p[n-1].Mode)}
	}

	ins := Instruction{Op: op}
	switch op {
	case OpAdd, OpMul, OpLessThan, OpEqual:
		ins.X, ins.Y, ins.Dest = p[0], p[1], p[2].Value
	case OpIn:
		ins.Dest = p[0].Value
	case OpOut:
		ins.X = p[0]
	case OpJumpIfTrue, OpJumpIfFalse:
		ins.X, ins.Target = p[0], p[1]
	}
	return ins, nil
}

// String returns the instruction in the syntax accepted by the asm package.
func (ins Instruction) String() string {
	var b strings.Builder
	b.WriteString(ins.Op.String())
	args := func(ps ...Parameter) {
		for _, p := range ps {
			b.WriteByte(' ')
			b.WriteString(p.String())
		}
	}
	switch ins.Op {
	case OpAdd, OpMul, OpLessThan, OpEqual:
		args(ins.X, ins.Y, Parameter{Indirect, ins.Dest})
	case OpIn:
		args(Parameter{Indirect, ins.Dest})
	case OpOut:
		args(ins.X)
	case OpJumpIfTrue, OpJumpIfFalse:
		args(ins.X, ins.Target)
	}
	return b.String()
}

// decode decodes the instruction at PC and moves PC past it.
func (i *Instance) decode() (Instruction, error) {
	if i.state == Halted {
		return Instruction{}, ErrHalted
	}
	ins, err := Decode(i.mem, i.PC)
	if err != nil {
		return ins, err
	}
	i.log.Debug().Int("pc", i.PC).Stringer("ins", ins).Msg("decode")
	i.jump(i.PC + ins.Op.Width())
	return ins, nil
}
