/*
Copyright © 2025 Benny Powers

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
package loader

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/apitree/apitree/finder"
	"github.com/apitree/apitree/model"
	"github.com/apitree/apitree/visitor"
)

// visitJob is one file this pipeline needs to parse and lower.
type visitJob struct {
	found finder.Found
}

// visitOutcome is one job's result: either a lowered module or an error.
type visitOutcome struct {
	job       visitJob
	module    *model.Module
	wildcards []visitor.PendingWildcard
	err       error
}

// visitAll runs visit (the per-file parse+lower step) over every job on a
// bounded worker pool, grounded on the teacher's ModuleBatchProcessor
// worker-pool shape (runtime.NumCPU() workers capped to the job count) but
// built on golang.org/x/sync/errgroup's SetLimit instead of a hand-rolled
// channel-plus-WaitGroup, since every job still needs to run to completion
// and report its own outcome rather than aborting the batch on first
// error — each goroutine records its result into outcomes and always
// returns nil to the group, using errgroup purely as a bounded-concurrency
// primitive. Each worker produces an independent subtree; nothing here
// touches the shared ModulesCollection, which the caller attaches to
// afterward under its own single mutex-guarded step (spec §5).
func visitAll(ctx context.Context, jobs []visitJob, visit func(context.Context, visitJob) (*model.Module, []visitor.PendingWildcard, error)) []visitOutcome {
	if len(jobs) == 0 {
		return nil
	}

	numWorkers := min(len(jobs), runtime.NumCPU())

	outcomes := make([]visitOutcome, 0, len(jobs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)

	for _, job := range jobs {
		job := job
		g.Go(func() error {
			select {
			case <-gctx.Done():
				mu.Lock()
				outcomes = append(outcomes, visitOutcome{job: job, err: gctx.Err()})
				mu.Unlock()
				return nil
			default:
			}
			mod, wildcards, err := visit(gctx, job)
			mu.Lock()
			outcomes = append(outcomes, visitOutcome{job: job, module: mod, wildcards: wildcards, err: err})
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

// joinErrors collects every non-nil error from outcomes.
func joinErrors(outcomes []visitOutcome) error {
	var errs []error
	for _, o := range outcomes {
		if o.err != nil {
			errs = append(errs, WrapVisitError(o.job.found.Path, o.err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
