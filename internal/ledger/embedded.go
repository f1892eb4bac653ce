package ledger

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	dErrors "starnotary/pkg/domain-errors"

	"starnotary/internal/notary/events"
	"starnotary/internal/notary/store"
)

// Embedded executes submissions in-process. A single worker drains the
// submission channel, so state-changing ops run to completion one at a time
// with no interleaving. Callers rely on that serialization guarantee.
type Embedded struct {
	state       *store.Memory
	archive     EntryStore
	publisher   *events.Publisher
	logger      *slog.Logger
	tracer      trace.Tracer
	submissions chan submission
}

type submission struct {
	ctx    context.Context
	op     Op
	result chan outcome
}

type outcome struct {
	ref TxRef
	err error
}

// Option configures the embedded ledger.
type Option func(*Embedded)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Embedded) { e.logger = logger }
}

// WithPublisher sets the notification publisher invoked after each commit.
func WithPublisher(pub *events.Publisher) Option {
	return func(e *Embedded) { e.publisher = pub }
}

// NewEmbedded wires the ledger over the canonical store and entry archive.
// Run must be started for submissions to make progress.
func NewEmbedded(state *store.Memory, archive EntryStore, opts ...Option) *Embedded {
	e := &Embedded{
		state:       state,
		archive:     archive,
		logger:      slog.Default(),
		tracer:      otel.Tracer("starnotary/ledger"),
		submissions: make(chan submission),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run drains submissions until ctx is cancelled. Intended for an errgroup.
func (e *Embedded) Run(ctx context.Context) error {
	var seq uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sub := <-e.submissions:
			ref, err := e.commit(sub.ctx, &seq, sub.op)
			sub.result <- outcome{ref: ref, err: err}
		}
	}
}

// Submit queues one op and blocks until the ledger confirms commit. A
// context that expires after the op was accepted yields an indeterminate
// failure: the mutation may still commit, and there is no cancellation.
func (e *Embedded) Submit(ctx context.Context, op Op) (TxRef, error) {
	ctx, span := e.tracer.Start(ctx, "ledger.submit",
		trace.WithAttributes(attribute.String("ledger.op", op.Name)))
	defer span.End()

	sub := submission{ctx: ctx, op: op, result: make(chan outcome, 1)}

	select {
	case e.submissions <- sub:
	case <-ctx.Done():
		err := dErrors.Wrap(ctx.Err(), dErrors.CodeUnavailable,
			"ledger did not accept the submission")
		span.RecordError(err)
		return "", err
	}

	select {
	case out := <-sub.result:
		if out.err != nil {
			span.RecordError(out.err)
			return "", out.err
		}
		return out.ref, nil
	case <-ctx.Done():
		// Accepted but unconfirmed: the op may still commit after this
		// returns, so the caller must treat the outcome as unknown.
		err := dErrors.Wrap(ctx.Err(), dErrors.CodeUnavailable,
			"confirmation timed out; the submission may still commit")
		span.RecordError(err)
		return "", err
	}
}

func (e *Embedded) commit(ctx context.Context, seq *uint64, op Op) (TxRef, error) {
	if err := e.state.Execute(ctx, op.Mutate); err != nil {
		return "", err
	}

	*seq++
	ref := refFor(*seq, op)

	entry := Entry{Seq: *seq, Ref: ref, Op: op.Name, Payload: op.Payload, At: time.Now().UTC()}
	if err := e.archive.Append(ctx, entry); err != nil {
		// State is committed; the archive is a trailing record, not a
		// participant in the commit. Losing an entry is logged, not fatal.
		e.logger.Error("archive append failed", "op", op.Name, "seq", *seq, "error", err)
	}

	if e.publisher != nil && op.Events != nil {
		for _, event := range op.Events(ref) {
			e.publisher.Emit(ctx, event)
		}
	}
	return ref, nil
}
