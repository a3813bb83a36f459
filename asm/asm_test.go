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

package asm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	data := []struct {
		name string
		code string
		mem  vm.Memory
	}{
		{"labels", "in (n)\neq (n) 8 (n)\nout (n)\nhlt\n:n .dat 0", vm.Memory{3, 9, 1008, 9, 8, 9, 4, 9, 99, 0}},
		{"equ", ".equ eight 8 in (9), eq (9), eight, (9) out (9) hlt .dat 0", vm.Memory{3, 9, 1008, 9, 8, 9, 4, 9, 99, 0}},
		{"backward", ":loop jt 1 loop", vm.Memory{1105, 1, 0}},
		{"indirect_label", "jf (z) end :z .dat 0 :end hlt", vm.Memory{1006, 3, 4, 0, 99}},
		{"org", ".org 4 hlt", vm.Memory{0, 0, 0, 0, 99}},
		{"org_back", "hlt hlt .org 0 out 1", vm.Memory{104, 1}},
		{"hex", "out 0x10 out -3", vm.Memory{104, 16, 104, -3}},
		{"comments", "# comment\nhlt # stop\n\t# end", vm.Memory{99}},
		{"data", ".dat 1 2 -3 x :x", vm.Memory{1, 2, -3, 4}},
		{"mul", "mul (4) 3 (4) .dat 33", vm.Memory{1002, 4, 3, 4, 33}},
		{"empty", "", nil},
	}
	for _, test := range data {
		t.Run(test.name, func(t *testing.T) {
			mem, err := asm.Assemble(test.name, strings.NewReader(test.code))
			require.NoError(t, err)
			assert.Equal(t, test.mem, mem)
		})
	}
}

// the assembled doc example runs.
func TestAssemble_run(t *testing.T) {
	prog, err := asm.Assemble("eq8", strings.NewReader("in (n)\neq (n) 8 (n)\nout (n)\nhlt\n:n .dat 0"))
	require.NoError(t, err)
	for in, want := range map[vm.Cell]vm.Cell{7: 0, 8: 1} {
		out := vm.NewQueue()
		i, err := vm.New(prog, vm.Input(vm.NewQueue(in)), vm.Output(out))
		require.NoError(t, err)
		require.NoError(t, i.Run())
		assert.Equal(t, []vm.Cell{want}, out.Drain())
	}
}

// check that errors point at the offending token.
func TestAssemble_errors(t *testing.T) {
	data := []struct {
		name string
		code string
		at   string // offending token
	}{
		{"immediate_dest", "add 1 2 3", "3"},
		{"immediate_in", "hlt in 7", "7"},
		{"missing_operand", "out hlt", "hlt"},
		{"undefined_label", "hlt jt 1 (nowhere)", "(nowhere)"},
		{"label_redefinition", ":a hlt :a", ":a"},
		{"unknown_directive", "hlt .foo", ".foo"},
		{"stray_operand", "hlt 5", "5"},
		{"bad_operand", "out 1x", "1x"},
		{"org", ".org bar", "bar"},
		{"equ", ".equ 12", "12"},
		{"character", "hlt ;", ";"},
		{"indirect_data", ".dat (3)", "(3)"},
	}
	for _, test := range data {
		t.Run(test.name, func(t *testing.T) {
			_, err := asm.Assemble(test.name, strings.NewReader(test.code))
			require.Error(t, err)
			errs, ok := err.(asm.ErrAsm)
			require.True(t, ok, "error type %T", err)
			require.Len(t, errs, 1, "%v", err)
			o := errs[0].Pos.Offset
			require.True(t, o >= 0 && o < len(test.code), "bad offset %d", o)
			assert.True(t, strings.HasPrefix(test.code[o:], test.at), "error %q points to %q", errs[0].Msg, test.code[o:])
			assert.True(t, strings.HasPrefix(err.Error(), test.name+":1:"), "%v", err)
		})
	}
}

func TestAssemble_maxErrors(t *testing.T) {
	_, err := asm.Assemble("many", strings.NewReader(strings.Repeat("1 ", 50)))
	require.Error(t, err)
	assert.Len(t, err.(asm.ErrAsm), 10)
}

func TestDisassemble(t *testing.T) {
	m := vm.Memory{1002, 4, 3, 4, 33, 10001, 3, 10104, 1}
	data := []struct {
		pc   int
		next int
		str  string
	}{
		{0, 4, "mul (4) 3 (4)"},
		{4, 5, ".dat 33"},
		{5, 6, ".dat 10001"}, // immediate destination
		{6, 8, "in (10104)"},
		{7, 8, ".dat 10104"}, // unused mode digits
		{8, 9, ".dat 1"},     // truncated
	}
	for _, test := range data {
		var b bytes.Buffer
		next, err := asm.Disassemble(m, test.pc, &b)
		require.NoError(t, err)
		assert.Equal(t, test.next, next, "pc %d", test.pc)
		assert.Equal(t, test.str, b.String(), "pc %d", test.pc)
	}
	_, err := asm.Disassemble(m, len(m), &bytes.Buffer{})
	assert.Equal(t, &vm.OutOfBoundsError{Addr: vm.Cell(len(m)), Len: len(m)}, err)
}

func TestDisassembleAll(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, asm.DisassembleAll(vm.Memory{1, 0, 0, 0, 99, 7}, 10, &b))
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	for k, want := range [][]string{
		{"10", "add", "(0)", "(0)", "(0)"},
		{"14", "hlt"},
		{"15", ".dat", "7"},
	} {
		assert.Equal(t, want, strings.Fields(lines[k]))
	}
}

func TestEncode(t *testing.T) {
	for _, w := range []vm.Cell{1, 1101, 1001, 2, 3, 4, 104, 5, 1105, 105, 1006, 7, 1107, 108, 99} {
		ins, err := vm.Decode(vm.Memory{w, 0, 0, 0}, 0)
		require.NoError(t, err)
		assert.Equal(t, w, asm.Encode(ins))
	}
}

// disassembling then assembling any memory gives back the same memory.
func TestDisassemble_roundTrip(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("round trip", prop.ForAll(
		func(v []int64) bool {
			m := make(vm.Memory, len(v))
			for k := range v {
				m[k] = vm.Cell(v[k])
			}
			var b bytes.Buffer
			for pc := 0; pc < len(m); {
				var err error
				if pc, err = asm.Disassemble(m, pc, &b); err != nil {
					return false
				}
				b.WriteByte('\n')
			}
			got, err := asm.Assemble("roundtrip", &b)
			if err != nil {
				t.Logf("%v", err)
				return false
			}
			if len(got) != len(m) {
				return false
			}
			for k := range m {
				if got[k] != m[k] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int64Range(-20, 1200)),
	))

	properties.TestingRun(t)
}
