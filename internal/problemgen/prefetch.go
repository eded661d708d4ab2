package problemgen

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// PrefetchConfig tunes the background fill of remote problems.
type PrefetchConfig struct {
	// Buffer is the number of ready problems kept per operation/difficulty.
	Buffer int

	// Timeout bounds a single remote generation.
	Timeout time.Duration

	// ErrorBackoff is the first pause after a failed generation. It doubles
	// on consecutive failures up to MaxBackoff.
	ErrorBackoff time.Duration
	MaxBackoff   time.Duration
}

// DefaultPrefetchConfig returns the settings used by the app.
func DefaultPrefetchConfig() PrefetchConfig {
	return PrefetchConfig{
		Buffer:       3,
		Timeout:      30 * time.Second,
		ErrorBackoff: 5 * time.Second,
		MaxBackoff:   time.Minute,
	}
}

type prefetchKey struct {
	op   Operation
	diff Difficulty
}

// Prefetcher keeps a small queue of remote problems per operation and
// difficulty. Problem never blocks: when the queue is empty it serves the
// fallback source instead.
type Prefetcher struct {
	remote   Generator
	fallback Source
	config   PrefetchConfig
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	queues map[prefetchKey]chan Problem
	closed bool
}

var _ Source = (*Prefetcher)(nil)

// NewPrefetcher starts no workers until a problem is first requested.
// fallback may be nil, in which case FallbackProblem is served.
func NewPrefetcher(remote Generator, fallback Source, cfg PrefetchConfig, logger *slog.Logger) *Prefetcher {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Buffer < 1 {
		cfg.Buffer = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Prefetcher{
		remote:   remote,
		fallback: fallback,
		config:   cfg,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
		queues:   make(map[prefetchKey]chan Problem),
	}
}

// Warm starts filling the queue for op and diff ahead of the first request.
func (p *Prefetcher) Warm(op Operation, diff Difficulty) {
	p.queue(prefetchKey{op: op, diff: diff})
}

// Problem returns a ready remote problem or a fallback one.
func (p *Prefetcher) Problem(ctx context.Context, op Operation, diff Difficulty) Problem {
	q := p.queue(prefetchKey{op: op, diff: diff})
	if q != nil {
		select {
		case prob := <-q:
			if err := prob.Validate(); err == nil {
				return prob
			}
		default:
		}
	}

	p.logger.Debug("no prefetched problem ready",
		"operation", op.String(), "difficulty", diff.String())
	if p.fallback != nil {
		return p.fallback.Problem(ctx, op, diff)
	}
	return FallbackProblem()
}

// Close stops all workers and waits for them to exit.
func (p *Prefetcher) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.cancel()
	p.wg.Wait()
	return nil
}

// queue returns the channel for key, starting its worker on first use.
func (p *Prefetcher) queue(key prefetchKey) chan Problem {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	if q, ok := p.queues[key]; ok {
		return q
	}

	q := make(chan Problem, p.config.Buffer)
	p.queues[key] = q
	p.wg.Add(1)
	go p.fill(key, q)
	return q
}

func (p *Prefetcher) fill(key prefetchKey, q chan Problem) {
	defer p.wg.Done()

	backoff := p.config.ErrorBackoff
	for {
		prob, err := p.generate(key)
		if err != nil {
			if p.ctx.Err() != nil {
				return
			}
			p.logger.Warn("prefetch failed",
				"operation", key.op.String(), "difficulty", key.diff.String(),
				"error", err, "retry_in", backoff)
			if !p.sleep(backoff) {
				return
			}
			backoff = min(backoff*2, p.config.MaxBackoff)
			continue
		}
		backoff = p.config.ErrorBackoff

		select {
		case q <- prob:
		case <-p.ctx.Done():
			return
		}
	}
}

func (p *Prefetcher) generate(key prefetchKey) (Problem, error) {
	ctx := p.ctx
	if p.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.config.Timeout)
		defer cancel()
	}
	prob, err := p.remote.Generate(ctx, key.op, key.diff)
	if err != nil {
		return Problem{}, err
	}
	if err := prob.Validate(); err != nil {
		return Problem{}, err
	}
	return prob, nil
}

func (p *Prefetcher) sleep(d time.Duration) bool {
	if d <= 0 {
		return p.ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-p.ctx.Done():
		return false
	}
}
