// Package taskpool provides bounded worker pools: a FIFO queue drained by a
// fixed set of workers, a parallelism-limited map, and a fire-and-forget
// background pool.
package taskpool

import (
	"context"
	"fmt"
	"sync"

	"github.com/ghetzel/go-stockutil/log"
)

// Task is a unit of work executed by a Pool.
type Task func(ctx context.Context) error

// Pool runs submitted tasks on a fixed number of workers.  Tasks are
// dispatched in submission (FIFO) order.  Accepted tasks are always run;
// Close drains the queue before returning.
type Pool struct {
	ctx     context.Context
	queue   chan Task
	wg      sync.WaitGroup
	errlock sync.Mutex
	errs    []error
	mu      sync.RWMutex
	closed  bool
}

// NewPool starts a pool with the given number of workers and queue capacity
// (workers*2 by default).  The context is passed to every task; canceling it
// signals tasks to stop, but does not abandon queued work.
func NewPool(ctx context.Context, workers int, queueSize ...int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	capacity := workers * 2

	if len(queueSize) > 0 && queueSize[0] > 0 {
		capacity = queueSize[0]
	}

	pool := &Pool{
		ctx:   ctx,
		queue: make(chan Task, capacity),
	}

	pool.wg.Add(workers)

	for i := 0; i < workers; i++ {
		go pool.worker(i)
	}

	return pool
}

func (self *Pool) worker(id int) {
	defer self.wg.Done()

	for task := range self.queue {
		if err := task(self.ctx); err != nil {
			log.Debugf("taskpool: worker %d: task failed: %v", id, err)

			self.errlock.Lock()
			self.errs = append(self.errs, err)
			self.errlock.Unlock()
		}
	}
}

// Submit enqueues a task, blocking if the queue is full.  Submitting to a
// closed pool returns an error instead of panicking.
func (self *Pool) Submit(task Task) error {
	self.mu.RLock()
	defer self.mu.RUnlock()

	if self.closed {
		return fmt.Errorf("pool is closed")
	}

	self.queue <- task
	return nil
}

// Close stops accepting tasks, waits for every queued task to finish, and
// returns all task errors in completion order.  Close is idempotent.
func (self *Pool) Close() []error {
	self.mu.Lock()

	if !self.closed {
		self.closed = true
		close(self.queue)
	}

	self.mu.Unlock()
	self.wg.Wait()

	self.errlock.Lock()
	defer self.errlock.Unlock()

	return self.errs
}
