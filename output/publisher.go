package output

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrPublisherClosed is returned by Publish after Stop, and by Start
	// when called twice.
	ErrPublisherClosed = errors.New("publisher closed")
	// ErrFrameSize is returned for frames whose size does not match.
	ErrFrameSize = errors.New("frame size mismatch")
)

// Sink consumes published frames on the publisher's goroutine. Frames are
// only valid for the duration of the call.
type Sink interface {
	Send(ctx context.Context, f Frame) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, f Frame) error

func (fn SinkFunc) Send(ctx context.Context, f Frame) error { return fn(ctx, f) }

// Publisher hands frames from the render loop to a Sink through a double
// buffer. Publish copies into the back buffer and returns; a consumer
// goroutine swaps the buffers and sends the front one. While a frame is
// waiting, newer frames are dropped, so the render loop never waits on
// the sink.
type Publisher struct {
	width, height int
	sink          Sink
	logger        *slog.Logger

	mu       sync.Mutex
	bufs     [2][]byte
	back     int
	ready    bool
	bottomUp bool

	wake    chan struct{}
	cancel  context.CancelFunc
	group   *errgroup.Group
	started atomic.Bool
	closed  atomic.Bool

	sent    atomic.Uint64
	dropped atomic.Uint64
}

// NewPublisher returns a publisher for width x height RGBA frames.
func NewPublisher(width, height int, sink Sink, opts ...Option) *Publisher {
	o := applyOptions(opts)
	size := width * height * 4
	return &Publisher{
		width:  width,
		height: height,
		sink:   sink,
		logger: o.logger,
		bufs:   [2][]byte{make([]byte, size), make([]byte, size)},
		wake:   make(chan struct{}, 1),
	}
}

// Start runs the consumer until ctx is cancelled or Stop is called.
func (p *Publisher) Start(ctx context.Context) error {
	if p.closed.Load() || !p.started.CompareAndSwap(false, true) {
		return ErrPublisherClosed
	}
	ctx, p.cancel = context.WithCancel(ctx)
	p.group, ctx = errgroup.WithContext(ctx)
	p.group.Go(func() error { return p.run(ctx) })
	p.logger.Info("publisher started", "width", p.width, "height", p.height)
	return nil
}

// Stop cancels the consumer and waits for it. The publisher cannot be
// restarted.
func (p *Publisher) Stop() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	if p.cancel == nil {
		return nil
	}
	p.cancel()
	err := p.group.Wait()
	p.logger.Info("publisher stopped", "sent", p.sent.Load(), "dropped", p.dropped.Load())
	return err
}

// Running reports whether Start has been called and Stop has not.
func (p *Publisher) Running() bool {
	return p.started.Load() && !p.closed.Load()
}

// Publish queues a copy of f for the sink. It drops f and returns nil when
// an earlier frame has not been picked up yet.
func (p *Publisher) Publish(f Frame) error {
	if p.closed.Load() {
		return ErrPublisherClosed
	}
	if f.Width != p.width || f.Height != p.height {
		return ErrFrameSize
	}
	if err := f.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	if p.ready {
		p.mu.Unlock()
		p.dropped.Add(1)
		return nil
	}
	copy(p.bufs[p.back], f.Pix)
	p.bottomUp = f.BottomUp
	p.ready = true
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
	return nil
}

// Stats returns the number of frames sent and dropped so far.
func (p *Publisher) Stats() (sent, dropped uint64) {
	return p.sent.Load(), p.dropped.Load()
}

func (p *Publisher) run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-p.wake:
		}

		p.mu.Lock()
		if !p.ready {
			p.mu.Unlock()
			continue
		}
		front := p.back
		p.back = 1 - front
		p.ready = false
		bottomUp := p.bottomUp
		p.mu.Unlock()

		f := Frame{Width: p.width, Height: p.height, Pix: p.bufs[front], BottomUp: bottomUp}
		if err := p.sink.Send(ctx, f); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			p.logger.Warn("sink rejected frame", "err", err)
			continue
		}
		p.sent.Add(1)
	}
}
