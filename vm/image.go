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
	"os"
	"strconv"
	"strings"

	"github.com/db47h/intcode/internal/xio"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// programs are usually a single, possibly long, line.
const maxLineSize = 16 << 20

// Parse reads a program from r. Programs are comma separated lists of base 10
// integers and may span several lines. Blank tokens are ignored. Malformed
// tokens are dropped and reported as warnings to log; they do not fail the
// load.
func Parse(r io.Reader, log zerolog.Logger) (Memory, error) {
	var mem Memory
	s := bufio.NewScanner(r)
	s.Buffer(nil, maxLineSize)
	line := 0
	for s.Scan() {
		line++
		for _, tok := range strings.Split(s.Text(), ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				log.Warn().Int("line", line).Str("chunk", tok).Msg("dropping chunk")
				continue
			}
			mem = append(mem, Cell(v))
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "Parse")
	}
	return mem, nil
}

// Load loads a program from file fileName. See Parse.
func Load(fileName string, log zerolog.Logger) (Memory, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	mem, err := Parse(f, log.With().Str("file", fileName).Logger())
	if err != nil {
		return nil, errors.Wrapf(err, "Load %s", fileName)
	}
	return mem, nil
}

// WriteTo writes m to w in the format accepted by Parse, followed by a
// newline.
func (m Memory) WriteTo(w io.Writer) (n int64, err error) {
	ew := xio.NewErrWriter(w)
	var b []byte
	for k, v := range m {
		b = b[:0]
		if k > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(v), 10)
		ew.Write(b)
	}
	ew.Write([]byte{'\n'})
	return ew.N, ew.Err
}
