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

package amp

import (
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// ErrSignal is returned when an amplifier does not emit the expected number of
// output values.
var ErrSignal = errors.New("bad amplifier signal")

// options returns a new slice holding opts followed by more. It never
// modifies the backing array of opts, which may be shared between goroutines.
func options(opts []vm.Option, more ...vm.Option) []vm.Option {
	o := make([]vm.Option, 0, len(opts)+len(more))
	o = append(o, opts...)
	return append(o, more...)
}

// Chain runs a linear chain of amplifiers, one per phase setting, and returns
// the output signal of the last amplifier.
//
// Each amplifier runs to completion with the input (phase, signal) and must
// emit exactly one value. The options opts are applied to every instance
// before its input and output channels are set.
func Chain(prog vm.Memory, phases []vm.Cell, signal vm.Cell, opts ...vm.Option) (vm.Cell, error) {
	for k, phase := range phases {
		out := vm.NewQueue()
		i, err := vm.New(prog, options(opts, vm.Input(vm.NewQueue(phase, signal)), vm.Output(out))...)
		if err != nil {
			return 0, err
		}
		if err = i.Run(); err != nil {
			return 0, errors.Wrapf(err, "amplifier %d", k)
		}
		v := out.Drain()
		if len(v) != 1 {
			return 0, errors.Wrapf(ErrSignal, "amplifier %d emitted %d values", k, len(v))
		}
		signal = v[0]
	}
	return signal, nil
}

// Feedback runs a feedback loop of amplifiers, one per phase setting, and
// returns the last signal emitted by the last amplifier once it has halted.
//
// Amplifiers are resumed in order. Each one gets the latest signal as input
// and runs until it halts or needs more input. It must emit at least one
// value, the last of which becomes the next signal. An amplifier that halts
// before the last one does is an error, reported the next time it is resumed.
func Feedback(prog vm.Memory, phases []vm.Cell, signal vm.Cell, opts ...vm.Option) (vm.Cell, error) {
	n := len(phases)
	if n == 0 {
		return signal, nil
	}
	var (
		ins  = make([]*vm.Queue, n)
		outs = make([]*vm.Queue, n)
		amps = make([]*vm.Instance, n)
		err  error
	)
	for k, phase := range phases {
		ins[k], outs[k] = vm.NewQueue(phase), vm.NewQueue()
		amps[k], err = vm.New(prog, options(opts, vm.Input(ins[k]), vm.Output(outs[k]))...)
		if err != nil {
			return 0, err
		}
	}
	for {
		for k, a := range amps {
			ins[k].Push(signal)
			st, err := a.Resume()
			if err != nil {
				return 0, errors.Wrapf(err, "amplifier %d", k)
			}
			v := outs[k].Drain()
			if len(v) == 0 {
				return 0, errors.Wrapf(ErrSignal, "amplifier %d emitted no value", k)
			}
			signal = v[len(v)-1]
			if k == n-1 && st == vm.Halted {
				return signal, nil
			}
		}
	}
}
