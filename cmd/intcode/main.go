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
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/db47h/intcode/amp"
	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
	"github.com/logrusorgru/aurora/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
)

// cellList is a flag.Value for comma separated lists of values.
type cellList []vm.Cell

func (l *cellList) String() string { return fmt.Sprint([]vm.Cell(*l)) }
func (l *cellList) Set(s string) error {
	v := cellList{}
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return errors.Errorf("invalid value %q", tok)
		}
		v = append(v, vm.Cell(n))
	}
	*l = v
	return nil
}
func (l *cellList) Get() interface{} { return *l }

var (
	debug     bool
	dump      bool
	disasm    bool
	ampMode   bool
	feedback  bool
	input     cellList
	phases    cellList
	signalIn  int64
	workers   int
	isTTYOut  bool // stderr
	isTTYIn   bool
	isTTYStd  bool // stdout
	errOutput io.Writer = os.Stderr
)

// countingSink counts the values emitted by a program.
type countingSink struct {
	vm.Sink
	n int
}

func (c *countingSink) Emit(v vm.Cell) error {
	c.n++
	return c.Sink.Emit(v)
}

func noSuggestions(prompt.Document) []prompt.Suggest { return nil }

// newConsole returns a console reading from stdin and writing to w. When both
// stdin and stdout are terminals, input lines are read with a line editor. The
// line editor cannot tell CTRL-D from an empty line: both end the input.
func newConsole(w *bufio.Writer) *vm.Console {
	if !isTTYIn || !isTTYStd {
		return vm.NewConsole(os.Stdin, w)
	}
	return vm.NewLineConsole(func() (string, error) {
		w.Flush()
		s := prompt.Input("input> ", noSuggestions)
		if s == "" {
			return "", io.EOF
		}
		return s, nil
	}, w)
}

// debugEnabled returns true if debug mode is requested by the -debug flag or
// by setting DEBUG in the environment, whatever its value.
func debugEnabled(flagValue bool, lookupEnv func(string) (string, bool)) bool {
	if flagValue {
		return true
	}
	_, ok := lookupEnv("DEBUG")
	return ok
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:     zerolog.SyncWriter(os.Stderr),
		NoColor: !isTTYOut,
	}).Level(level).With().Timestamp().Logger()
}

func runProgram(prog vm.Memory, log zerolog.Logger, stdout *bufio.Writer) (*vm.Instance, error) {
	var in vm.Source
	console := newConsole(stdout)
	if input != nil {
		in = vm.NewQueue(input...)
	} else {
		in = console
	}
	out := &countingSink{Sink: console}
	i, err := vm.New(prog, vm.Input(in), vm.Output(out), vm.Trace(log))
	if err != nil {
		return nil, err
	}
	err = i.Run()
	if err == nil && out.n == 0 && len(i.Memory()) > 0 {
		fmt.Fprintln(stdout, i.Memory()[0])
	}
	if dump {
		if derr := dumpVM(i, stdout); err == nil {
			err = derr
		}
	}
	return i, err
}

func factorial(n int) int64 {
	f := int64(1)
	for ; n > 1; n-- {
		f *= int64(n)
	}
	return f
}

func search(prog vm.Memory, log zerolog.Logger, stdout io.Writer) error {
	set := []vm.Cell{0, 1, 2, 3, 4}
	if feedback {
		set = []vm.Cell{5, 6, 7, 8, 9}
	}
	if phases != nil {
		set = phases
	}
	cfg := amp.Config{
		Phases:   set,
		Signal:   vm.Cell(signalIn),
		Feedback: feedback,
		Workers:  workers,
		Options:  []vm.Option{vm.Trace(log)},
	}
	if isTTYOut && !debug {
		bar := progressbar.Default(factorial(len(set)), "searching")
		cfg.OnTrial = func(amp.Result) { bar.Add(1) }
		defer bar.Finish()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	r, err := amp.Search(ctx, prog, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%v %d\n", r.Phases, r.Signal)
	return nil
}

// faultKind returns a short name for the kind of error that stopped a
// program.
func faultKind(err error) string {
	switch e := errors.Cause(err); e.(type) {
	case *vm.InvalidOpcodeError:
		return "InvalidOpcode"
	case *vm.OutOfBoundsError:
		return "OutOfBounds"
	case *vm.InvalidModeError:
		return "InvalidAddressingMode"
	default:
		switch e {
		case vm.ErrHalted:
			return "Halted"
		case vm.ErrEndOfInput:
			return "EndOfInput"
		case amp.ErrNoResult:
			return "NoResult"
		}
	}
	return "error"
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	msg := faultKind(err) + ": " + err.Error()
	if debug {
		msg = fmt.Sprintf("%s: %+v", faultKind(err), err)
	}
	if isTTYOut {
		msg = aurora.Colorize(msg, aurora.RedFg|aurora.BoldFm).String()
	}
	fmt.Fprintf(errOutput, "%s\n", msg)
	if i != nil && i.State() == vm.Faulted {
		fmt.Fprintf(errOutput, "PC: %d, instructions executed: %d\n", i.PC, i.InstructionCount())
		if mem := i.Memory(); i.PC >= 0 && i.PC < len(mem) {
			fmt.Fprint(errOutput, "at: ")
			asm.Disassemble(mem, i.PC, errOutput)
			fmt.Fprintln(errOutput)
		}
	}
	os.Exit(1)
}

func main() {
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		stdout.Flush()
		atExit(i, err)
	}()

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] program\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Var(&input, "input", "comma separated `list` of input values. If not set, input is read from stdin")
	flag.BoolVar(&ampMode, "amp", false, "search the amplifier chain phase settings producing the highest signal")
	flag.BoolVar(&feedback, "feedback", false, "like -amp, with the amplifiers in a feedback loop")
	flag.Var(&phases, "phases", "comma separated `list` of amplifier phase settings (default 0,1,2,3,4 or 5,6,7,8,9 with -feedback)")
	flag.Int64Var(&signalIn, "signal", 0, "initial amplifier input signal")
	flag.IntVar(&workers, "workers", 0, "number of concurrent amplifier trials (default GOMAXPROCS)")
	flag.BoolVar(&dump, "dump", false, "dump memory upon exit")
	flag.BoolVar(&disasm, "disasm", false, "disassemble the program and exit")
	flag.BoolVar(&debug, "debug", false, "enable execution trace and debug diagnostics (also enabled by setting DEBUG)")
	flag.Parse()

	debug = debugEnabled(debug, os.LookupEnv)
	isTTYIn, isTTYStd, isTTYOut = isTerminal(os.Stdin), isTerminal(os.Stdout), isTerminal(os.Stderr)

	if flag.NArg() != 1 {
		flag.Usage()
		err = errors.New("missing program file")
		return
	}
	log := newLogger()

	var prog vm.Memory
	if prog, err = vm.Load(flag.Arg(0), log); err != nil {
		return
	}

	switch {
	case disasm:
		err = asm.DisassembleAll(prog, 0, stdout)
	case ampMode || feedback:
		err = search(prog, log, stdout)
	default:
		i, err = runProgram(prog, log, stdout)
	}
}
