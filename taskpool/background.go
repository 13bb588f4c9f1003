package taskpool

import (
	"github.com/panjf2000/ants/v2"
)

// Background is a fire-and-forget goroutine pool for work whose results are
// not collected, backed by ants.
type Background struct {
	pool *ants.Pool
}

// NewBackground returns a background pool with at most size concurrent
// goroutines.
func NewBackground(size int) (*Background, error) {
	if pool, err := ants.NewPool(size); err == nil {
		return &Background{
			pool: pool,
		}, nil
	} else {
		return nil, err
	}
}

// Submit schedules fn to run on the pool, blocking if all workers are busy.
func (self *Background) Submit(fn func()) error {
	return self.pool.Submit(fn)
}

// Running returns the number of goroutines currently executing work.
func (self *Background) Running() int {
	return self.pool.Running()
}

// Release stops the pool.  Submissions after Release fail.
func (self *Background) Release() {
	self.pool.Release()
}
