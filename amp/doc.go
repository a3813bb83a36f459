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

// Package amp composes intcode machines into amplifier networks and searches
// phase setting permutations for the one producing the strongest signal.
//
// In an amplifier chain, every amplifier runs the same program. Amplifier k
// first reads its phase setting, then the input signal, and emits an output
// signal that becomes the input signal of amplifier k+1. The first amplifier
// gets the initial signal, and the output of the last one is the result of
// the chain.
//
// In feedback mode, the output of the last amplifier is also fed back to the
// first one, and amplifiers keep running, one after another, until the last
// one halts.
package amp
