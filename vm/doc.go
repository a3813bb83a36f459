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

// Package vm implements an intcode virtual machine.
//
// An intcode program is a flat list of integers, used both as code and data.
// Each instruction word holds an opcode in its two low order decimal digits and
// one addressing mode digit per operand in the remaining digits, the mode of
// the first operand being the hundreds digit. Mode 0 means the operand is an
// address, mode 1 that it is the value itself. Write destinations are always
// addresses.
//
//	opcode  mnemonic  operands   effect
//	1       add       x y dest   dest = x + y
//	2       mul       x y dest   dest = x * y
//	3       in        dest       dest = next input value
//	4       out       x          emit x
//	5       jt        x target   if x != 0, jump to target
//	6       jf        x target   if x == 0, jump to target
//	7       lt        x y dest   dest = x < y ? 1 : 0
//	8       eq        x y dest   dest = x == y ? 1 : 0
//	99      hlt                  halt
//
// Programs communicate with Go code through a Source for input and a Sink for
// output. Queue, Stack and Console cover the common cases. An instance driven
// with Resume instead of Run suspends when its input runs dry, which allows
// several instances to be chained together (see package amp).
//
// Memory is bounds checked: any access outside of the program's memory is
// reported as an *OutOfBoundsError and stops the machine.
package vm
