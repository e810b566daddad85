package queue

import (
	"context"

	"github.com/rs/zerolog"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

type job struct {
	fn   func()
	done chan struct{}
}

// Pool executes CPU-bound jobs on a fixed set of workers. Password hashing
// runs here so a burst of logins cannot spawn an unbounded number of
// concurrent bcrypt computations.
type Pool struct {
	jobs chan job
	size int
	log  zerolog.Logger
}

// NewPool creates a Pool with numWorkers workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewPool(numWorkers int, log zerolog.Logger) *Pool {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &Pool{
		jobs: make(chan job, channelBuffer),
		size: numWorkers,
		log:  log,
	}
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.size; i++ {
		go p.runWorker(ctx, i)
	}
	p.log.Debug().Int("workers", p.size).Msg("hash pool started")
}

// Run schedules fn on a worker and blocks until it has executed or ctx is
// done. On early ctx expiry the caller stops waiting; an already enqueued
// job still runs to completion and its result is discarded.
func (p *Pool) Run(ctx context.Context, fn func()) error {
	j := job{fn: fn, done: make(chan struct{})}
	select {
	case p.jobs <- j:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-j.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case j, ok := <-p.jobs:
			if !ok {
				return
			}
			j.fn()
			close(j.done)
		}
	}
}
