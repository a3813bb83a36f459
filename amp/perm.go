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

package amp

import "github.com/db47h/intcode/vm"

// Permutations returns all permutations of set, using Heap's algorithm. Each
// permutation is a new slice. The first permutation is a copy of set.
func Permutations(set []vm.Cell) [][]vm.Cell {
	a := append([]vm.Cell(nil), set...)
	perms := [][]vm.Cell{append([]vm.Cell(nil), a...)}
	c := make([]int, len(a))
	for i := 1; i < len(a); {
		if c[i] >= i {
			c[i] = 0
			i++
			continue
		}
		if i%2 == 0 {
			a[0], a[i] = a[i], a[0]
		} else {
			a[c[i]], a[i] = a[i], a[c[i]]
		}
		perms = append(perms, append([]vm.Cell(nil), a...))
		c[i]++
		i = 1
	}
	return perms
}
