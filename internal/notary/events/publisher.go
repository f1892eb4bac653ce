package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sink receives published events. Implementations must be safe for
// concurrent use.
type Sink interface {
	Append(ctx context.Context, event Event) error
}

// Publisher fans events out to its sinks. By default publishing is
// synchronous; WithAsyncBuffer switches to a buffered channel drained by a
// background worker so the commit path never blocks on a slow sink.
type Publisher struct {
	sinks  []Sink
	logger *slog.Logger

	inbox  chan Event
	wg     sync.WaitGroup
	closed sync.Once
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithLogger sets the logger used for sink failures.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) { p.logger = logger }
}

// WithAsyncBuffer makes publishing asynchronous with the given buffer size.
// When the buffer is full events are dropped with a warning rather than
// blocking a commit.
func WithAsyncBuffer(size int) Option {
	return func(p *Publisher) { p.inbox = make(chan Event, size) }
}

// NewPublisher creates a publisher over the given sinks.
func NewPublisher(sinks []Sink, opts ...Option) *Publisher {
	p := &Publisher{sinks: sinks, logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	if p.inbox != nil {
		p.wg.Add(1)
		go p.drain()
	}
	return p
}

// Emit publishes one event. ID and timestamp are filled in when absent.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	if p.inbox == nil {
		p.deliver(ctx, event)
		return
	}
	select {
	case p.inbox <- event:
	default:
		p.logger.Warn("event buffer full, dropping notification",
			"type", event.Type, "token", event.Token)
	}
}

// Close stops the worker after draining buffered events.
func (p *Publisher) Close() {
	p.closed.Do(func() {
		if p.inbox != nil {
			close(p.inbox)
			p.wg.Wait()
		}
	})
}

func (p *Publisher) drain() {
	defer p.wg.Done()
	for event := range p.inbox {
		p.deliver(context.Background(), event)
	}
}

func (p *Publisher) deliver(ctx context.Context, event Event) {
	for _, sink := range p.sinks {
		if err := sink.Append(ctx, event); err != nil {
			p.logger.Error("event sink append failed",
				"type", event.Type, "token", event.Token, "error", err)
		}
	}
}
