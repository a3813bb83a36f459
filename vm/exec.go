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

// execute applies the effects of ins. PC has already been moved past ins by
// decode; taken jumps overwrite it.
func (i *Instance) execute(ins Instruction) error {
	switch ins.Op {
	case OpAdd, OpMul, OpLessThan, OpEqual:
		x, err := ins.X.Read(i.mem)
		if err != nil {
			return err
		}
		y, err := ins.Y.Read(i.mem)
		if err != nil {
			return err
		}
		var v Cell
		switch ins.Op {
		case OpAdd:
			v = x + y
		case OpMul:
			v = x * y
		case OpLessThan:
			v = b2c(x < y)
		case OpEqual:
			v = b2c(x == y)
		}
		return i.write(ins.Dest, v)
	case OpIn:
		v, err := i.input.Next()
		if err != nil {
			return err
		}
		return i.write(ins.Dest, v)
	case OpOut:
		v, err := ins.X.Read(i.mem)
		if err != nil {
			return err
		}
		i.log.Debug().Int64("value", int64(v)).Bool("dropped", i.output == nil).Msg("output")
		if i.output == nil {
			return nil
		}
		return errors.Wrap(i.output.Emit(v), "output failed")
	case OpJumpIfTrue, OpJumpIfFalse:
		x, err := ins.X.Read(i.mem)
		if err != nil {
			return err
		}
		if (x != 0) != (ins.Op == OpJumpIfTrue) {
			return nil
		}
		t, err := ins.Target.Read(i.mem)
		if err != nil {
			return err
		}
		if t < 0 || t >= Cell(len(i.mem)) {
			return &OutOfBoundsError{t, len(i.mem)}
		}
		i.jump(int(t))
	case OpHalt:
		i.log.Debug().Int("pc", i.PC).Msg("halt")
		i.state = Halted
	default:
		return &InvalidOpcodeError{Cell(ins.Op)}
	}
	return nil
}

func b2c(b bool) Cell {
	if b {
		return 1
	}
	return 0
}
