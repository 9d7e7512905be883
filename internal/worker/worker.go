package worker

import "sync"

// Task is a queued unit of work, e.g. a farmers-list cache invalidation
// fired after a registration or status change.
type Task func()

// Pool runs submitted tasks on a fixed set of goroutines.
type Pool interface {
	Submit(Task)
	Stop()
}

// Invalidations are tiny, so a small buffer per worker is enough to keep
// Submit from blocking request handlers under normal load.
const queuePerWorker = 16

// NewPool starts n workers draining a bounded queue. n <= 0 starts one.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task, n*queuePerWorker)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.work()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
	once sync.Once
}

func (p *pool) work() {
	defer p.wg.Done()
	for job := range p.jobs {
		if job != nil {
			job()
		}
	}
}

// Submit enqueues a task. It blocks once the queue is full rather than
// dropping work.
func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Stop closes the queue, lets queued tasks drain and waits for the
// workers to exit. Safe to call more than once.
func (p *pool) Stop() {
	p.once.Do(func() {
		close(p.jobs)
		p.wg.Wait()
	})
}
