package service

import (
	"context"
	"log"
	"sync"
	"time"
)

// PollTask fetches remote data. The returned apply func publishes the result
// and only runs when the fetch is still the latest one for its key.
type PollTask func(ctx context.Context) (apply func(), err error)

// Poller runs keyed fixed-interval tasks with at most one fetch in flight per
// key. Ticks that find the previous fetch still running are skipped. Trigger
// replaces the running fetch instead; results that arrive after a newer fetch
// started or after Stop are dropped.
type Poller struct {
	mu       sync.Mutex
	seq      map[string]uint64
	inflight map[string]context.CancelFunc
	stopped  bool
	cancel   context.CancelFunc
	ctx      context.Context
	wg       sync.WaitGroup
}

func NewPoller(ctx context.Context) *Poller {
	ctx, cancel := context.WithCancel(ctx)
	return &Poller{
		seq:      make(map[string]uint64),
		inflight: make(map[string]context.CancelFunc),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Every runs task immediately and then once per interval until Stop.
func (p *Poller) Every(key string, interval time.Duration, task PollTask) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		p.start(key, task, false)
		for {
			select {
			case <-p.ctx.Done():
				return
			case <-ticker.C:
				p.start(key, task, false)
			}
		}
	}()
}

// Trigger starts one fetch for key, replacing any fetch still in flight.
func (p *Poller) Trigger(key string, task PollTask) {
	p.start(key, task, true)
}

func (p *Poller) start(key string, task PollTask, replace bool) {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	if cancel, ok := p.inflight[key]; ok {
		if !replace {
			p.mu.Unlock()
			return
		}
		cancel()
	}
	p.seq[key]++
	mySeq := p.seq[key]
	fetchCtx, cancel := context.WithCancel(p.ctx)
	p.inflight[key] = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		defer cancel()

		apply, err := task(fetchCtx)

		p.mu.Lock()
		defer p.mu.Unlock()
		latest := !p.stopped && p.seq[key] == mySeq
		if latest {
			delete(p.inflight, key)
		}
		if err != nil {
			if latest && fetchCtx.Err() == nil {
				log.Printf("[POLL] %s: %v", key, err)
			}
			return
		}
		if latest && fetchCtx.Err() == nil && apply != nil {
			apply()
		}
	}()
}

func (p *Poller) Stop() {
	p.mu.Lock()
	p.stopped = true
	for key, cancel := range p.inflight {
		cancel()
		delete(p.inflight, key)
	}
	p.mu.Unlock()

	p.cancel()
	p.wg.Wait()
}
