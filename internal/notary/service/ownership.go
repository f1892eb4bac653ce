package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"starnotary/internal/ledger"
	"starnotary/internal/notary/events"
	"starnotary/internal/notary/metrics"
	"starnotary/internal/notary/models"
	"starnotary/internal/notary/store"
	dErrors "starnotary/pkg/domain-errors"
	"starnotary/pkg/platform/sentinel"
)

// Ownership maintains the owner-of-record mapping and transfer authorization.
type Ownership struct {
	ledger  ledger.Submitter
	state   StateReader
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewOwnership wires the ownership service.
func NewOwnership(led ledger.Submitter, state StateReader, opts ...Option) (*Ownership, error) {
	if led == nil {
		return nil, fmt.Errorf("ledger submitter is required")
	}
	if state == nil {
		return nil, fmt.Errorf("state reader is required")
	}
	o := buildOptions(opts)
	return &Ownership{ledger: led, state: state, logger: o.logger, metrics: o.metrics}, nil
}

// OwnerOf returns the recorded owner. Absence is a NotFound error here; the
// facade translates it to the zero-address sentinel.
func (s *Ownership) OwnerOf(ctx context.Context, token models.TokenID) (models.Address, error) {
	owner, ok := s.state.OwnerOf(ctx, token)
	if !ok {
		return "", dErrors.Newf(dErrors.CodeNotFound, "token %d has no owner record", token)
	}
	return owner, nil
}

// Transfer moves ownership of token from `from` to `to` on behalf of caller.
// The caller must be the owner, the token's delegate, or an approved
// operator for the owner. Transfer clears any single-token approval, even
// on a self-transfer.
func (s *Ownership) Transfer(ctx context.Context, from, to models.Address, token models.TokenID, caller models.Address) (ledger.TxRef, error) {
	if to.IsZero() {
		return "", dErrors.New(dErrors.CodeBadRequest, "recipient address is required")
	}
	if caller.IsZero() {
		return "", dErrors.New(dErrors.CodeBadRequest, "caller address is required")
	}

	op := ledger.Op{
		Name: "safeTransferFrom",
		Payload: map[string]string{
			"token":  strconv.FormatUint(uint64(token), 10),
			"from":   string(from),
			"to":     string(to),
			"caller": string(caller),
		},
		Mutate: func(tx *store.Tx) error {
			owner, ok := tx.Owner(token)
			if !ok {
				return sentinel.ErrNotFound
			}
			if owner != from {
				return dErrors.New(dErrors.CodeUnauthorized, "from is not the recorded owner")
			}
			if caller != from && tx.Approved(token) != caller && !tx.IsOperator(from, caller) {
				return dErrors.New(dErrors.CodeUnauthorized, "caller may not transfer this token")
			}
			if err := tx.SetOwner(token, to); err != nil {
				return err
			}
			tx.ClearApproval(token)
			return nil
		},
		Events: func(ref ledger.TxRef) []events.Event {
			return []events.Event{{
				Type:  events.TypeTransfer,
				Token: token,
				From:  from,
				To:    to,
				TxRef: string(ref),
			}}
		},
	}

	ref, err := s.ledger.Submit(ctx, op)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return "", dErrors.Newf(dErrors.CodeNotFound, "token %d does not exist", token)
		}
		return "", err
	}

	if s.metrics != nil {
		s.metrics.Transfers.Inc()
	}
	s.logger.InfoContext(ctx, "token transferred",
		"token", token, "from", from, "to", to, "caller", caller)
	return ref, nil
}
