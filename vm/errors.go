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

import (
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrHalted is returned when an instance that has already executed a
	// halt instruction is asked to run again.
	ErrHalted = errors.New("machine halted")

	// ErrEndOfInput is returned by Input implementations that have no more
	// values to provide.
	ErrEndOfInput = errors.New("end of input")
)

// InvalidOpcodeError is returned when decoding an instruction word whose
// opcode is not supported.
type InvalidOpcodeError struct {
	Opcode Cell
}

func (e *InvalidOpcodeError) Error() string {
	return "invalid opcode " + strconv.FormatInt(int64(e.Opcode), 10)
}

// OutOfBoundsError is returned when an address falls outside of memory.
type OutOfBoundsError struct {
	Addr Cell
	Len  int
}

func (e *OutOfBoundsError) Error() string {
	return "address " + strconv.FormatInt(int64(e.Addr), 10) + " out of bounds [0, " + strconv.Itoa(e.Len) + ")"
}

// InvalidModeError is returned for an addressing mode digit that is neither
// 0 (indirect) nor 1 (immediate), or for an immediate write destination.
type InvalidModeError struct {
	Mode Cell
}

func (e *InvalidModeError) Error() string {
	return "invalid addressing mode " + strconv.FormatInt(int64(e.Mode), 10)
}
