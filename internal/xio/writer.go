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

// Package xio provides the I/O helpers shared by the intcode packages.
package xio

import (
	"io"

	"github.com/pkg/errors"
)

// ErrWriter wraps an io.Writer for code that writes text in many small
// pieces, like memory dumps and disassembly listings. After the first failed
// write, Err holds the wrapped error and further writes are skipped, so that
// callers need only check Err once done. N is the number of bytes actually
// written, as reported by io.WriterTo implementations.
type ErrWriter struct {
	w   io.Writer
	N   int64
	Err error
}

// Write implements io.Writer.
func (w *ErrWriter) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	w.N += int64(n)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// NewErrWriter returns an ErrWriter writing to w.
func NewErrWriter(w io.Writer) *ErrWriter {
	return &ErrWriter{w: w}
}
