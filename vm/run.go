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

import "github.com/pkg/errors"

// Run starts execution of the VM and returns when the program halts or when an
// error occurs.
//
// If an error occurs, the PC will point to the instruction that triggered the
// error and the instance will be in the Faulted state. Any further call to Run,
// Resume or Step returns the same error. Running out of input is an error: use
// Resume to drive a machine that is fed progressively.
//
// Calling Run on a halted instance returns ErrHalted.
func (i *Instance) Run() error {
	_, err := i.run(false)
	return err
}

// Resume is like Run, except that running out of input is not an error: the
// instance is suspended on the in instruction and Resume returns Suspended and
// a nil error. Execution continues with the next call to Resume once more
// input is available.
func (i *Instance) Resume() (State, error) {
	return i.run(true)
}

// Step executes a single instruction, with the same semantics as Resume.
func (i *Instance) Step() (State, error) {
	if err := i.check(); err != nil {
		return i.state, err
	}
	i.state = Running
	return i.handle(i.step(), true)
}

func (i *Instance) run(suspend bool) (State, error) {
	if err := i.check(); err != nil {
		return i.state, err
	}
	i.state = Running
	for {
		st, err := i.handle(i.step(), suspend)
		if err != nil || st != Running {
			return st, err
		}
	}
}

func (i *Instance) check() error {
	switch i.state {
	case Halted:
		return ErrHalted
	case Faulted:
		return i.fault
	}
	return nil
}

// step decodes and executes the instruction at PC. On error, PC is restored to
// the address of the instruction.
func (i *Instance) step() error {
	pc := i.PC
	ins, err := i.decode()
	if err == nil {
		err = i.execute(ins)
	}
	if err != nil {
		i.PC = pc
		return err
	}
	i.insCount++
	return nil
}

// handle updates the instance state after a step.
func (i *Instance) handle(err error, suspend bool) (State, error) {
	if err == nil {
		return i.state, nil
	}
	if suspend && errors.Cause(err) == ErrEndOfInput {
		i.log.Debug().Int("pc", i.PC).Msg("suspend")
		i.state = Suspended
		return Suspended, nil
	}
	i.state = Faulted
	i.fault = errors.Wrapf(err, "pc %d", i.PC)
	return Faulted, i.fault
}
