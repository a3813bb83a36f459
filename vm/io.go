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
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Source is the interface implemented by input channels.
//
// Next returns the next input value. It must return ErrEndOfInput, possibly
// wrapped, when no value is available.
type Source interface {
	Next() (Cell, error)
}

// Sink is the interface implemented by output channels.
type Sink interface {
	Emit(v Cell) error
}

// Queue is a FIFO of values. It implements both Source and Sink: the queue
// capturing the output of one instance can be used as the input of another.
//
// A Queue must not be used concurrently by different goroutines.
type Queue struct {
	v []Cell
}

// NewQueue returns a new Queue holding the given values. The first value
// will be the first one returned by Next.
func NewQueue(v ...Cell) *Queue {
	return &Queue{append([]Cell(nil), v...)}
}

// Push appends values to the end of the queue.
func (q *Queue) Push(v ...Cell) {
	q.v = append(q.v, v...)
}

// Next removes and returns the value at the head of the queue.
func (q *Queue) Next() (Cell, error) {
	if len(q.v) == 0 {
		return 0, ErrEndOfInput
	}
	v := q.v[0]
	q.v = q.v[1:]
	return v, nil
}

// Emit implements Sink. It is the same as Push(v).
func (q *Queue) Emit(v Cell) error {
	q.v = append(q.v, v)
	return nil
}

// Len returns the number of values in the queue.
func (q *Queue) Len() int {
	return len(q.v)
}

// Drain empties the queue and returns its contents.
func (q *Queue) Drain() []Cell {
	v := q.v
	q.v = nil
	return v
}

// Stack is a LIFO input channel: Next returns the most recently pushed value.
type Stack struct {
	v []Cell
}

// NewStack returns a new Stack holding the given values. The last value will
// be the first one returned by Next.
func NewStack(v ...Cell) *Stack {
	return &Stack{append([]Cell(nil), v...)}
}

// Push pushes values on top of the stack, in order.
func (s *Stack) Push(v ...Cell) {
	s.v = append(s.v, v...)
}

// Next pops the value on top of the stack.
func (s *Stack) Next() (Cell, error) {
	l := len(s.v) - 1
	if l < 0 {
		return 0, ErrEndOfInput
	}
	v := s.v[l]
	s.v = s.v[:l]
	return v, nil
}

// Len returns the number of values on the stack.
func (s *Stack) Len() int {
	return len(s.v)
}

// Console is a line based Source and Sink. Each input line holds one base 10
// integer; blank lines are skipped. Emitted values are written one per line.
type Console struct {
	readLine func() (string, error)
	w        io.Writer
}

// NewConsole returns a Console that reads lines from r and writes to w. If w
// is nil, emitted values are discarded.
func NewConsole(r io.Reader, w io.Writer) *Console {
	br := bufio.NewReader(r)
	return NewLineConsole(func() (string, error) {
		s, err := br.ReadString('\n')
		if err == io.EOF && s != "" {
			err = nil
		}
		return s, err
	}, w)
}

// NewLineConsole returns a Console that gets its input lines from readLine,
// which must return io.EOF at end of input. This is typically used with line
// editors.
func NewLineConsole(readLine func() (string, error), w io.Writer) *Console {
	return &Console{readLine, w}
}

// Next reads and parses the next non-blank line.
func (c *Console) Next() (Cell, error) {
	for {
		s, err := c.readLine()
		if err != nil {
			if err == io.EOF {
				return 0, ErrEndOfInput
			}
			return 0, errors.Wrap(err, "console read failed")
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, errors.Errorf("invalid input %q", s)
		}
		return Cell(v), nil
	}
}

// Emit writes v followed by a newline.
func (c *Console) Emit(v Cell) error {
	if c.w == nil {
		return nil
	}
	b := strconv.AppendInt(make([]byte, 0, 24), int64(v), 10)
	_, err := c.w.Write(append(b, '\n'))
	return errors.Wrap(err, "console write failed")
}
