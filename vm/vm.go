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
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// State is the execution state of an Instance.
type State int

// Execution states. Halted and Faulted are terminal.
const (
	Running State = iota
	Suspended
	Halted
	Faulted
)

var stateNames = [...]string{"running", "suspended", "halted", "faulted"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "invalid"
	}
	return stateNames[s]
}

// Instance represents an intcode machine instance.
type Instance struct {
	PC       int // Program Counter (aka. Instruction Pointer)
	mem      Memory
	state    State
	fault    error
	insCount int64
	input    Source
	output   Sink
	log      zerolog.Logger
}

// Option interface
type Option func(*Instance) error

// Input sets the channel read by the in instruction. The default is an empty
// Queue.
func Input(s Source) Option {
	return func(i *Instance) error {
		if s == nil {
			return errors.New("nil input")
		}
		i.input = s
		return nil
	}
}

// Output sets the channel written to by the out instruction. Values written by
// a program with no output channel are discarded.
func Output(s Sink) Option {
	return func(i *Instance) error { i.output = s; return nil }
}

// Trace sets the logger used to trace execution. Memory writes, PC changes
// and decoded instructions are logged at debug level. The default is
// zerolog.Nop().
func Trace(log zerolog.Logger) Option {
	return func(i *Instance) error { i.log = log; return nil }
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new intcode machine instance that will run a private copy of
// program, starting at address 0.
//
// Options will be set by calling SetOptions.
func New(program Memory, opts ...Option) (*Instance, error) {
	i := &Instance{
		mem: program.Clone(),
		log: zerolog.Nop(),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.input == nil {
		i.input = NewQueue()
	}
	return i, nil
}

// Memory returns the instance memory. Changes to the returned slice are
// reflected in the instance.
func (i *Instance) Memory() Memory {
	return i.mem
}

// State returns the current execution state.
func (i *Instance) State() State {
	return i.state
}

// Fault returns the error that stopped the instance, if its state is Faulted.
func (i *Instance) Fault() error {
	return i.fault
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

func (i *Instance) jump(pc int) {
	i.log.Debug().Int("pc", pc).Int("was", i.PC).Msg("jump")
	i.PC = pc
}

func (i *Instance) write(addr, v Cell) error {
	was, err := i.mem.Read(addr)
	if err != nil {
		return err
	}
	i.log.Debug().Int64("addr", int64(addr)).Int64("value", int64(v)).Int64("was", int64(was)).Msg("write")
	i.mem[addr] = v
	return nil
}
