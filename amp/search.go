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

import (
	"context"
	"runtime"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ErrNoResult is returned by Search when every trial failed.
var ErrNoResult = errors.New("no phase setting produced a signal")

var errNotRun = errors.New("trial not run")

// Result is the outcome of a single trial.
type Result struct {
	Phases []vm.Cell
	Signal vm.Cell
	Err    error // non nil if the trial failed. Signal is meaningless then.
}

// Config configures a Search.
type Config struct {
	Phases   []vm.Cell   // phase settings to permute, one per amplifier
	Signal   vm.Cell     // initial input signal
	Feedback bool        // use Feedback instead of Chain
	Workers  int         // number of concurrent trials. Defaults to GOMAXPROCS
	Options  []vm.Option // applied to every instance

	// OnTrial, if not nil, is called after each trial. It is called from
	// different goroutines and must be safe for concurrent use.
	OnTrial func(Result)
}

// Search runs the amplifier network described by cfg for every permutation
// of cfg.Phases and returns the best result, as selected by Best.
//
// Trials run concurrently and share no state. A failed trial does not stop
// the search. Search returns ErrNoResult if all trials failed, or the context
// error if ctx is done before all trials have run.
func Search(ctx context.Context, prog vm.Memory, cfg Config) (Result, error) {
	if len(cfg.Phases) == 0 {
		return Result{}, errors.New("no phase settings")
	}
	seen := make(map[vm.Cell]bool, len(cfg.Phases))
	for _, p := range cfg.Phases {
		if seen[p] {
			return Result{}, errors.Errorf("duplicate phase setting %d", p)
		}
		seen[p] = true
	}
	run := Chain
	if cfg.Feedback {
		run = Feedback
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	perms := Permutations(cfg.Phases)
	results := make([]Result, len(perms))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for k, p := range perms {
		results[k] = Result{Phases: p, Err: errNotRun}
		if gctx.Err() != nil {
			break
		}
		k, p := k, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := run(prog, p, cfg.Signal, cfg.Options...)
			if err != nil {
				err = errors.Wrapf(err, "phases %v", p)
			}
			results[k] = Result{Phases: p, Signal: s, Err: err}
			if cfg.OnTrial != nil {
				cfg.OnTrial(results[k])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	best, ok := Best(results)
	if !ok {
		return Result{}, errors.Wrapf(ErrNoResult, "%d trials failed, first error: %v", len(results), results[0].Err)
	}
	return best, nil
}

// Best returns the successful result with the highest signal. Ties are broken
// in favor of the lexicographically smallest phase sequence, so that the
// outcome does not depend on the order of results. ok is false if no result
// is successful.
func Best(results []Result) (best Result, ok bool) {
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if !ok || r.Signal > best.Signal || r.Signal == best.Signal && less(r.Phases, best.Phases) {
			best, ok = r, true
		}
	}
	return best, ok
}

func less(a, b []vm.Cell) bool {
	for k := 0; k < len(a) && k < len(b); k++ {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}
	return len(a) < len(b)
}
