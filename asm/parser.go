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

package asm

import (
	"io"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
)

// maximum number of errors reported by Assemble.
const maxErrors = 10

// ErrEntry is a single assembly error.
type ErrEntry struct {
	Pos scanner.Position
	Msg string
}

func (e *ErrEntry) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrAsm is the error type returned by Assemble.
type ErrAsm []ErrEntry

func (e ErrAsm) Error() string {
	var b strings.Builder
	for i := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e[i].Error())
	}
	return b.String()
}

func isIdentRune(ch rune, i int) bool {
	switch ch {
	case '_', '-', '+', ':', '.', '(', ')':
		return true
	}
	return unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

type labelUse struct {
	pos     scanner.Position
	address int
}

type label struct {
	pos     scanner.Position
	address int // -1 until defined
	uses    []labelUse
}

type parser struct {
	mem    vm.Memory
	pc     int
	size   int
	s      scanner.Scanner
	labels map[string]*label
	consts map[string]vm.Cell
	data   bool
	errs   ErrAsm
}

func newParser() *parser {
	return &parser{
		labels: make(map[string]*label),
		consts: make(map[string]vm.Cell),
	}
}

func (p *parser) error(pos scanner.Position, msg string) {
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, ErrEntry{pos, msg})
	}
}

func (p *parser) failed() bool {
	return len(p.errs) >= maxErrors
}

func (p *parser) write(v vm.Cell) {
	for p.pc >= len(p.mem) {
		p.mem = append(p.mem, make(vm.Memory, 256)...)
	}
	p.mem[p.pc] = v
	p.pc++
	if p.pc > p.size {
		p.size = p.pc
	}
}

// next returns the next token, skipping comments and commas.
func (p *parser) next() rune {
	for {
		tok := p.s.Scan()
		switch tok {
		case ',':
			continue
		case '#':
			for ch := p.s.Next(); ch != '\n' && ch != scanner.EOF; ch = p.s.Next() {
			}
			continue
		}
		return tok
	}
}

// value parses a number or constant. It returns ok == false if s is neither.
func (p *parser) value(s string) (v vm.Cell, ok bool) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return vm.Cell(n), true
	}
	if c, found := p.consts[s]; found {
		return c, true
	}
	return 0, false
}

func isName(s string) bool {
	if s == "" || !unicode.IsLetter(rune(s[0])) && s[0] != '_' {
		return false
	}
	return !strings.ContainsAny(s, ":.()")
}

// operand writes a single operand at the current position and returns its
// addressing mode.
func (p *parser) operand(pos scanner.Position, s string) vm.Mode {
	mode := vm.Immediate
	if len(s) > 2 && s[0] == '(' && s[len(s)-1] == ')' {
		mode = vm.Indirect
		s = s[1 : len(s)-1]
	}
	if v, ok := p.value(s); ok {
		p.write(v)
		return mode
	}
	if !isName(s) {
		p.error(pos, "invalid operand "+s)
		p.write(0)
		return mode
	}
	l := p.labels[s]
	if l == nil {
		l = &label{pos: pos, address: -1}
		p.labels[s] = l
	}
	l.uses = append(l.uses, labelUse{pos, p.pc})
	p.write(0)
	return mode
}

func (p *parser) instruction(op vm.Opcode) {
	name := op.String()
	n := op.Width() - 1
	at := p.pc
	p.write(vm.Cell(op))
	word := vm.Cell(op)
	scale := vm.Cell(100)
	for k := 0; k < n; k++ {
		tok := p.next()
		s := p.s.TokenText()
		if tok != scanner.Ident || isDirective(s) {
			p.error(p.s.Position, "missing operand for "+name)
			return
		}
		if _, isOp := vm.LookupOpcode(s); isOp {
			p.error(p.s.Position, "missing operand for "+name+", got opcode "+s)
			return
		}
		mode := p.operand(p.s.Position, s)
		if k == n-1 && op.Writes() && mode != vm.Indirect {
			p.error(p.s.Position, name+": write destination must be an address: "+s)
		}
		word += vm.Cell(mode) * scale
		scale *= 10
	}
	p.mem[at] = word
}

func isDirective(s string) bool {
	return s != "" && (s[0] == ':' || s[0] == '.' && len(s) > 1 && unicode.IsLetter(rune(s[1])))
}

// directive handles .org, .dat and .equ.
func (p *parser) directive(s string) {
	pos := p.s.Position
	switch s {
	case ".org":
		p.next()
		v, ok := p.value(p.s.TokenText())
		if !ok || v < 0 {
			p.error(p.s.Position, ".org: expected address, got "+p.s.TokenText())
			return
		}
		p.pc = int(v)
	case ".dat":
		p.data = true
	case ".equ":
		if p.next() != scanner.Ident || !isName(p.s.TokenText()) {
			p.error(p.s.Position, ".equ: expected identifier, got "+p.s.TokenText())
			return
		}
		name := p.s.TokenText()
		if l, ok := p.labels[name]; ok {
			p.error(p.s.Position, ".equ: redefinition of "+name+", previously defined/used as a label here: "+l.pos.String())
			return
		}
		p.next()
		v, ok := p.value(p.s.TokenText())
		if !ok {
			p.error(p.s.Position, ".equ: expected value, got "+p.s.TokenText())
			return
		}
		p.consts[name] = v
	default:
		p.error(pos, "unknown directive "+s)
	}
}

func (p *parser) defineLabel(pos scanner.Position, n string) {
	if !isName(n) {
		p.error(pos, "invalid label name: "+n)
		return
	}
	if _, ok := p.consts[n]; ok {
		p.error(pos, "label redefinition: "+n+", previously defined as a constant")
		return
	}
	l := p.labels[n]
	if l == nil {
		p.labels[n] = &label{pos: pos, address: p.pc}
		return
	}
	if l.address != -1 {
		p.error(pos, "label redefinition: "+n+", previous definition here: "+l.pos.String())
		return
	}
	l.pos, l.address = pos, p.pc
}

// Parse does the parsing and assembling.
func (p *parser) Parse(name string, r io.Reader) (vm.Memory, error) {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.error(s.Position, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.next(); tok != scanner.EOF && !p.failed(); tok = p.next() {
		s := p.s.TokenText()
		pos := p.s.Position
		if tok != scanner.Ident {
			p.error(pos, "unexpected character "+strconv.QuoteRune(tok))
			continue
		}
		switch {
		case s[0] == ':':
			p.data = false
			p.defineLabel(pos, s[1:])
		case isDirective(s):
			p.data = false
			p.directive(s)
		default:
			if op, ok := vm.LookupOpcode(s); ok {
				p.data = false
				p.instruction(op)
				continue
			}
			if !p.data {
				p.error(pos, "unexpected operand "+s)
				continue
			}
			if len(s) > 0 && s[0] == '(' {
				p.error(pos, "indirect operand in data: "+s)
				continue
			}
			p.operand(pos, s)
		}
	}

	for n, l := range p.labels {
		if l.address == -1 {
			p.error(l.uses[0].pos, "missing label definition for "+n)
			continue
		}
		for _, u := range l.uses {
			p.mem[u.address] = vm.Cell(l.address)
		}
	}

	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return p.mem[:p.size], nil
}
