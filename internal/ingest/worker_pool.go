package ingest

import (
	"context"
	"sync"
	"time"
)

type Task func(ctx context.Context) error

type Result struct {
	Err error
}

// WorkerPool runs crawl and rescore tasks with an optional global rate
// limit shared across workers.
type WorkerPool struct {
	workers int
	tasks   chan Task
	wg      sync.WaitGroup
	mu      sync.RWMutex
	rate    <-chan time.Time
	ticker  *time.Ticker
}

func NewWorkerPool(workers, buffer int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &WorkerPool{
		workers: workers,
		tasks:   make(chan Task, buffer),
	}
}

func (p *WorkerPool) SetRateLimit(rps int) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
		p.rate = nil
	}
	if rps <= 0 {
		return
	}
	p.ticker = time.NewTicker(time.Second / time.Duration(rps))
	p.rate = p.ticker.C
}

// Submit queues a task, reporting whether it was accepted. It gives up
// when ctx is cancelled so producers never hang on a pool whose workers
// have already exited.
func (p *WorkerPool) Submit(ctx context.Context, t Task) bool {
	if p == nil || t == nil {
		return false
	}
	select {
	case <-ctx.Done():
		return false
	case p.tasks <- t:
		return true
	}
}

func (p *WorkerPool) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
		p.rate = nil
	}
	p.mu.Unlock()
	close(p.tasks)
}

// Run starts the workers and returns the result stream. The stream closes
// once every worker has exited, either after Close drains the queue or
// when ctx is cancelled.
func (p *WorkerPool) Run(ctx context.Context) <-chan Result {
	if p == nil {
		out := make(chan Result)
		close(out)
		return out
	}
	out := make(chan Result, p.workers)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.work(ctx, out)
	}

	go func() {
		p.wg.Wait()
		close(out)
	}()

	return out
}

func (p *WorkerPool) work(ctx context.Context, out chan<- Result) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case t, ok := <-p.tasks:
			if !ok {
				return
			}
			if t == nil {
				continue
			}
			if !p.waitRate(ctx) {
				return
			}
			err := t(ctx)
			select {
			case <-ctx.Done():
				return
			case out <- Result{Err: err}:
			}
		}
	}
}

func (p *WorkerPool) waitRate(ctx context.Context) bool {
	p.mu.RLock()
	rate := p.rate
	p.mu.RUnlock()
	if rate == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return false
	case <-rate:
		return true
	}
}
