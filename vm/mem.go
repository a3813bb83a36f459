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

// Cell is the raw type stored in a memory location.
type Cell int64

// Memory is a program tape. Its length is fixed for the lifetime of a run.
type Memory []Cell

// Read returns the value at address addr.
func (m Memory) Read(addr Cell) (Cell, error) {
	if addr < 0 || addr >= Cell(len(m)) {
		return 0, &OutOfBoundsError{addr, len(m)}
	}
	return m[addr], nil
}

// Write stores v at address addr.
func (m Memory) Write(addr, v Cell) error {
	if addr < 0 || addr >= Cell(len(m)) {
		return &OutOfBoundsError{addr, len(m)}
	}
	m[addr] = v
	return nil
}

// Clone returns a copy of m that shares no storage with it.
func (m Memory) Clone() Memory {
	if m == nil {
		return nil
	}
	c := make(Memory, len(m))
	copy(c, m)
	return c
}
