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

package asm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/intcode/internal/xio"
	"github.com/db47h/intcode/vm"
)

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting program and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) (vm.Memory, error) {
	return newParser().Parse(name, r)
}

// Encode returns the instruction word for ins.
func Encode(ins vm.Instruction) vm.Cell {
	w := vm.Cell(ins.Op)
	switch ins.Op {
	case vm.OpAdd, vm.OpMul, vm.OpLessThan, vm.OpEqual:
		w += vm.Cell(ins.X.Mode)*100 + vm.Cell(ins.Y.Mode)*1000
	case vm.OpOut:
		w += vm.Cell(ins.X.Mode) * 100
	case vm.OpJumpIfTrue, vm.OpJumpIfFalse:
		w += vm.Cell(ins.X.Mode)*100 + vm.Cell(ins.Target.Mode)*1000
	}
	return w
}

// Disassemble writes a disassembly of the instruction at position pc to the
// specified io.Writer and returns the position of the next instruction and any
// write error.
//
// Cells that do not hold a valid instruction, or hold one in a form that would
// not assemble back to the same value, are written as a .dat directive.
func Disassemble(m vm.Memory, pc int, w io.Writer) (next int, err error) {
	if pc < 0 || pc >= len(m) {
		return pc, &vm.OutOfBoundsError{Addr: vm.Cell(pc), Len: len(m)}
	}
	ew, _ := w.(*xio.ErrWriter)
	if ew == nil {
		ew = xio.NewErrWriter(w)
	}

	ins, err := vm.Decode(m, pc)
	if err != nil || Encode(ins) != m[pc] {
		io.WriteString(ew, ".dat ")
		io.WriteString(ew, strconv.FormatInt(int64(m[pc]), 10))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, ins.String())
	return pc + ins.Op.Width(), ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. The base argument specifies the real address of the
// frist cell (m[0]). It will return any write error.
func DisassembleAll(m vm.Memory, base int, w io.Writer) error {
	ew := xio.NewErrWriter(w)
	for pc := 0; pc < len(m); {
		fmt.Fprintf(ew, "% 6d\t", base+pc)
		pc, _ = Disassemble(m, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
