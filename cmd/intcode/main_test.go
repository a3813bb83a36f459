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
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/intcode/amp"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_cellList(t *testing.T) {
	var l cellList
	require.NoError(t, l.Set("1, -2,,3"))
	assert.Equal(t, cellList{1, -2, 3}, l)
	assert.Equal(t, "[1 -2 3]", l.String())
	require.NoError(t, l.Set(""))
	assert.NotNil(t, l)
	assert.Empty(t, l)
	assert.Error(t, l.Set("1,x"))
}

func Test_faultKind(t *testing.T) {
	assert.Equal(t, "InvalidOpcode", faultKind(errors.Wrap(&vm.InvalidOpcodeError{Opcode: 42}, "pc 0")))
	assert.Equal(t, "OutOfBounds", faultKind(&vm.OutOfBoundsError{Addr: 3, Len: 1}))
	assert.Equal(t, "InvalidAddressingMode", faultKind(&vm.InvalidModeError{Mode: 2}))
	assert.Equal(t, "EndOfInput", faultKind(errors.Wrap(vm.ErrEndOfInput, "pc 4")))
	assert.Equal(t, "NoResult", faultKind(errors.Wrap(amp.ErrNoResult, "search")))
	assert.Equal(t, "error", faultKind(errors.New("foo")))
}

func Test_factorial(t *testing.T) {
	assert.Equal(t, int64(1), factorial(0))
	assert.Equal(t, int64(120), factorial(5))
}

func Test_runProgram(t *testing.T) {
	defer func() { input, dump = nil, false }()
	var b bytes.Buffer
	w := bufio.NewWriter(&b)

	input = cellList{8}
	_, err := runProgram(vm.Memory{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}, zerolog.Nop(), w)
	require.NoError(t, err)
	require.NoError(t, w.Flush())
	assert.Equal(t, "1\n", b.String())

	// no output: print memory[0]
	b.Reset()
	input, dump = cellList{}, true
	i, err := runProgram(vm.Memory{1, 0, 0, 0, 99}, zerolog.Nop(), w)
	require.NoError(t, err)
	require.NoError(t, w.Flush())
	assert.Equal(t, "2\nPC: 5, state: halted, instructions executed: 2\n2,0,0,0,99\n", b.String())
	assert.Equal(t, vm.Halted, i.State())

	b.Reset()
	dump = false
	i, err = runProgram(vm.Memory{1, 0, 0, 0, 42}, zerolog.Nop(), w)
	assert.Equal(t, &vm.InvalidOpcodeError{Opcode: 42}, errors.Cause(err))
	assert.Equal(t, 4, i.PC)
}

func Test_isTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f))

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()
	assert.False(t, isTerminal(r))
}

func Test_debugEnabled(t *testing.T) {
	data := []struct {
		name string
		flag bool
		env  map[string]string
		want bool
	}{
		{"off", false, nil, false},
		{"flag", true, nil, true},
		{"env", false, map[string]string{"DEBUG": "1"}, true},
		{"env_empty", false, map[string]string{"DEBUG": ""}, true},
		{"other_env", false, map[string]string{"NODEBUG": "1"}, false},
		{"both", true, map[string]string{"DEBUG": "1"}, true},
	}
	for _, test := range data {
		t.Run(test.name, func(t *testing.T) {
			lookup := func(k string) (string, bool) {
				v, ok := test.env[k]
				return v, ok
			}
			assert.Equal(t, test.want, debugEnabled(test.flag, lookup))
		})
	}
}

func Test_newLogger(t *testing.T) {
	defer func(d bool) { debug = d }(debug)
	debug = debugEnabled(false, func(k string) (string, bool) { return "", k == "DEBUG" })
	assert.Equal(t, zerolog.DebugLevel, newLogger().GetLevel())
	debug = false
	assert.Equal(t, zerolog.WarnLevel, newLogger().GetLevel())
}

// with stdout redirected, input is read from stdin without a line editor,
// even if stdin is a terminal. Blank lines are skipped.
func Test_newConsole_redirected(t *testing.T) {
	defer func(in *os.File, tty bool) { os.Stdin, isTTYIn, isTTYStd = in, tty, false }(os.Stdin, isTTYIn)
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	_, err = w.WriteString("\n5\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	os.Stdin, isTTYIn, isTTYStd = r, true, false
	var b bytes.Buffer
	c := newConsole(bufio.NewWriter(&b))
	v, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(5), v)
	_, err = c.Next()
	assert.Equal(t, vm.ErrEndOfInput, err)
}
