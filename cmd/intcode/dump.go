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

package main

import (
	"fmt"
	"io"

	"github.com/db47h/intcode/internal/xio"
	"github.com/db47h/intcode/vm"
)

// dumpVM writes the instance state and its memory to w.
func dumpVM(i *vm.Instance, w io.Writer) error {
	ew := xio.NewErrWriter(w)
	fmt.Fprintf(ew, "PC: %d, state: %v, instructions executed: %d\n", i.PC, i.State(), i.InstructionCount())
	if ew.Err != nil {
		return ew.Err
	}
	_, err := i.Memory().WriteTo(ew)
	return err
}
