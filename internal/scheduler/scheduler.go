// Package scheduler orchestrates the pass/slice/lane sweep over the matrix
// (§4.7), enforcing the mandatory barrier between slices while leaving the
// actual concurrency substrate injectable via Executor (§5.1).
package scheduler

import (
	"context"
	"sync"
)

// Executor is the injectable concurrency capability the scheduler needs:
// the ability to launch a task and to wait for every launched task to
// finish. Implementations MAY run tasks sequentially.
type Executor interface {
	Spawn(task func())
	JoinAll()
}

// goroutineExecutor is the default Executor, grounded on
// sinhaashish-madmin-go's `go processSegment(...)` + sync.WaitGroup barrier
// per slice.
type goroutineExecutor struct {
	wg sync.WaitGroup
}

// NewGoroutineExecutor returns an Executor that runs every spawned task on
// its own goroutine and joins them all on JoinAll.
func NewGoroutineExecutor() Executor {
	return &goroutineExecutor{}
}

func (e *goroutineExecutor) Spawn(task func()) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		task()
	}()
}

func (e *goroutineExecutor) JoinAll() {
	e.wg.Wait()
}

// inlineExecutor runs every task synchronously on the caller's goroutine,
// used when parallelism == 1 to avoid spawning a goroutine for the common
// single-lane case (§5.1).
type inlineExecutor struct{}

// NewInlineExecutor returns an Executor that runs tasks immediately on Spawn.
func NewInlineExecutor() Executor {
	return inlineExecutor{}
}

func (inlineExecutor) Spawn(task func()) { task() }
func (inlineExecutor) JoinAll()          {}

// Run drives `iterations` passes of 4 slices each, invoking segment for
// every (pass, slice, lane) coordinate and joining the executor after each
// slice before advancing, per §4.7/§5. ctx is checked cooperatively only at
// slice barriers, never inside a single segment's fill loop (§5.1); a
// cancelled context stops the sweep after the in-flight slice completes.
func Run(ctx context.Context, exec Executor, iterations, parallelism uint32, segment func(pass, slice, lane uint32)) error {
	const slicesPerPass = 4

	for pass := uint32(0); pass < iterations; pass++ {
		for slice := uint32(0); slice < slicesPerPass; slice++ {
			for lane := uint32(0); lane < parallelism; lane++ {
				pass, slice, lane := pass, slice, lane
				exec.Spawn(func() {
					segment(pass, slice, lane)
				})
			}
			exec.JoinAll()

			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Default picks the executor §5.1 mandates when the engine is constructed
// without an explicit one: inline for a single lane, goroutine-per-lane
// otherwise.
func Default(parallelism uint32) Executor {
	if parallelism == 1 {
		return NewInlineExecutor()
	}
	return NewGoroutineExecutor()
}
