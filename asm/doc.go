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

// Package asm provides utility functions to assemble and disassemble intcode
// programs.
//
// Supported assembler mnemonics:
//
//	opcode	asm	operands	description
//	------	---	--------	----------------------------------------------
//	1	add	x y dest	dest = x + y
//	2	mul	x y dest	dest = x * y
//	3	in	dest		dest = next input value
//	4	out	x		output x
//	5	jt	x target	jump to target if x != 0
//	6	jf	x target	jump to target if x == 0
//	7	lt	x y dest	dest = 1 if x < y, 0 otherwise
//	8	eq	x y dest	dest = 1 if x == y, 0 otherwise
//	99	hlt			halt
//
// Operands:
//
// A bare operand is an immediate value. An operand enclosed in parentheses is
// an address (indirect mode): the instruction operates on the memory cell at
// that address. Write destinations (dest) must be addresses.
//
//	add 1 2 (10)	# 1101,1,2,10: store 1+2 at address 10
//	mul (10) 3 (10)	# 1002,10,3,10: multiply the value at address 10 by 3
//
// Operands can be integer literals in any base accepted by strconv.ParseInt
// (e.g. 42, -1, 0x2a), constants or labels. A label used as an operand stands
// for its address: "jt 1 loop" jumps to loop, "out (count)" outputs the value
// stored at count.
//
// Operands may be separated by commas.
//
// Comments:
//
// Comments start with '#' and extend to the end of the line.
//
// Labels:
//
// Labels are defined with a leading colon and may be used before their
// definition:
//
//	jt 1 skip
//	out 42
//	:skip
//	hlt
//
// Directives:
//
//	.org n		set the address of the next cell to n
//	.dat v...	write raw values, up to the next label, directive or mnemonic
//	.equ name v	define a constant
//
// Example: a program that reads a number and outputs 1 if it equals 8, 0
// otherwise.
//
//	in (n)
//	eq (n) 8 (n)
//	out (n)
//	hlt
//	:n .dat 0
package asm
