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

// The intcode command line tool runs intcode programs and searches amplifier
// phase settings. It is a showcase for the packages
// github.com/db47h/intcode/vm and github.com/db47h/intcode/amp.
//
// Usage:
//
//	intcode [flags] program
//
//	-amp
//		  search the amplifier chain phase settings producing the highest signal
//	-debug
//		  enable execution trace and debug diagnostics (also enabled by setting DEBUG)
//	-disasm
//		  disassemble the program and exit
//	-dump
//		  dump memory upon exit
//	-feedback
//		  like -amp, with the amplifiers in a feedback loop
//	-input list
//		  comma separated list of input values. If not set, input is read from stdin
//	-phases list
//		  comma separated list of amplifier phase settings (default 0,1,2,3,4 or 5,6,7,8,9 with -feedback)
//	-signal int
//		  initial amplifier input signal
//	-workers int
//		  number of concurrent amplifier trials (default GOMAXPROCS)
//
// The program file holds a comma separated list of integers. Malformed values
// are dropped with a warning.
//
// When running a program, every value it outputs is printed on its own line.
// If the program halts without producing any output, the value at address 0
// is printed instead. Without -input, the program reads its input from stdin,
// one value per line. Blank lines are skipped, except when stdin and stdout
// are both terminals: input is then read with a line editor, and an empty line
// or CTRL-D ends the input.
//
// -amp, -feedback: run every permutation of the phase settings through a
// chain of amplifiers and print the best permutation and its signal. Trials
// run concurrently. A progress bar is shown if stderr is a terminal.
//
// -debug: trace every decoded instruction, memory write and jump to stderr,
// and print a full stacktrace should the program fault.
//
// -dump: print the instruction pointer, state and memory of the machine upon
// exit, in the same format as program files.
//
// On fault, the kind of fault and the faulting instruction are printed to
// stderr and the exit status is 1.
package main
