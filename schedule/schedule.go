// Package schedule is a small facade over cron for running named jobs on
// cron expressions or fixed intervals.
package schedule

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ghetzel/go-stockutil/log"
	cron "github.com/robfig/cron/v3"
)

// Job describes one scheduled job.
type Job struct {
	Name    string    `json:"name"`
	Spec    string    `json:"spec"`
	NextRun time.Time `json:"next_run"`
}

// Scheduler runs named jobs on cron specs ("*/5 * * * *") or interval specs
// ("@every 30s").
type Scheduler struct {
	cron *cron.Cron
	jobs map[string]cron.EntryID
	spec map[string]string
	lock sync.Mutex
}

// New returns a stopped scheduler; call Start to begin dispatching.
func New() *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		jobs: make(map[string]cron.EntryID),
		spec: make(map[string]string),
	}
}

// Add registers a named job.  Adding a name that already exists replaces the
// previous job.
func (self *Scheduler) Add(name string, spec string, fn func()) error {
	self.lock.Lock()
	defer self.lock.Unlock()

	if existing, ok := self.jobs[name]; ok {
		self.cron.Remove(existing)
	}

	id, err := self.cron.AddFunc(spec, func() {
		log.Debugf("schedule: running job %q", name)
		fn()
	})

	if err != nil {
		return fmt.Errorf("job %q: %v", name, err)
	}

	self.jobs[name] = id
	self.spec[name] = spec

	return nil
}

// Remove unregisters the named job.  Removing an unknown name is not an
// error.
func (self *Scheduler) Remove(name string) {
	self.lock.Lock()
	defer self.lock.Unlock()

	if id, ok := self.jobs[name]; ok {
		self.cron.Remove(id)
		delete(self.jobs, name)
		delete(self.spec, name)
	}
}

// Jobs returns the registered jobs sorted by name, with their next scheduled
// run times (zero until the scheduler is started).
func (self *Scheduler) Jobs() []Job {
	self.lock.Lock()
	defer self.lock.Unlock()

	out := make([]Job, 0, len(self.jobs))

	for name, id := range self.jobs {
		out = append(out, Job{
			Name:    name,
			Spec:    self.spec[name],
			NextRun: self.cron.Entry(id).Next,
		})
	}

	sort.Slice(out, func(i int, j int) bool {
		return out[i].Name < out[j].Name
	})

	return out
}

// NextRun returns the next scheduled run time of the named job.
func (self *Scheduler) NextRun(name string) (time.Time, error) {
	self.lock.Lock()
	defer self.lock.Unlock()

	if id, ok := self.jobs[name]; ok {
		return self.cron.Entry(id).Next, nil
	}

	return time.Time{}, fmt.Errorf("no such job %q", name)
}

// Start begins dispatching jobs in a background goroutine.
func (self *Scheduler) Start() {
	self.cron.Start()
}

// Stop halts dispatching and waits for running jobs to complete.
func (self *Scheduler) Stop() {
	ctx := self.cron.Stop()
	<-ctx.Done()
}
