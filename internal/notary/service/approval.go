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

// Approval maintains the per-token delegate and per-owner operator grants.
type Approval struct {
	ledger  ledger.Submitter
	state   StateReader
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewApproval wires the approval service.
func NewApproval(led ledger.Submitter, state StateReader, opts ...Option) (*Approval, error) {
	if led == nil {
		return nil, fmt.Errorf("ledger submitter is required")
	}
	if state == nil {
		return nil, fmt.Errorf("state reader is required")
	}
	o := buildOptions(opts)
	return &Approval{ledger: led, state: state, logger: o.logger, metrics: o.metrics}, nil
}

// Approve sets `to` as the token's single delegate. Only the owner or one of
// the owner's operators may approve; approving the current owner is invalid.
// Re-approving replaces the previous delegate.
func (s *Approval) Approve(ctx context.Context, to models.Address, token models.TokenID, caller models.Address) (ledger.TxRef, error) {
	if caller.IsZero() {
		return "", dErrors.New(dErrors.CodeBadRequest, "caller address is required")
	}

	var owner models.Address
	op := ledger.Op{
		Name: "approve",
		Payload: map[string]string{
			"token":  strconv.FormatUint(uint64(token), 10),
			"to":     string(to),
			"caller": string(caller),
		},
		Mutate: func(tx *store.Tx) error {
			var ok bool
			owner, ok = tx.Owner(token)
			if !ok {
				return sentinel.ErrNotFound
			}
			if to == owner {
				return dErrors.New(dErrors.CodeBadRequest, "delegate equals the current owner")
			}
			if caller != owner && !tx.IsOperator(owner, caller) {
				return dErrors.New(dErrors.CodeUnauthorized, "caller may not approve for this token")
			}
			tx.SetApproval(token, to)
			return nil
		},
		Events: func(ref ledger.TxRef) []events.Event {
			return []events.Event{{
				Type:  events.TypeApproval,
				Token: token,
				Owner: owner,
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

	s.logger.InfoContext(ctx, "delegate approved", "token", token, "to", to, "caller", caller)
	return ref, nil
}

// Approved returns the token's delegate, or the zero address when none is
// set or the token is unknown. Lookup-miss is not a failure.
func (s *Approval) Approved(ctx context.Context, token models.TokenID) models.Address {
	return s.state.Approved(ctx, token)
}

// SetApprovalForAll grants or revokes blanket operator rights over all of
// the owner's tokens. Idempotent; no token needs to exist.
func (s *Approval) SetApprovalForAll(ctx context.Context, operator models.Address, approved bool, owner models.Address) (ledger.TxRef, error) {
	if owner.IsZero() {
		return "", dErrors.New(dErrors.CodeBadRequest, "owner address is required")
	}
	if operator.IsZero() {
		return "", dErrors.New(dErrors.CodeBadRequest, "operator address is required")
	}

	op := ledger.Op{
		Name: "setApprovalForAll",
		Payload: map[string]string{
			"owner":    string(owner),
			"operator": string(operator),
			"approved": strconv.FormatBool(approved),
		},
		Mutate: func(tx *store.Tx) error {
			tx.SetOperator(owner, operator, approved)
			return nil
		},
		Events: func(ref ledger.TxRef) []events.Event {
			return []events.Event{{
				Type:     events.TypeApprovalForAll,
				Owner:    owner,
				Operator: operator,
				Approved: approved,
				TxRef:    string(ref),
			}}
		},
	}

	ref, err := s.ledger.Submit(ctx, op)
	if err != nil {
		return "", err
	}

	s.logger.InfoContext(ctx, "operator approval set",
		"owner", owner, "operator", operator, "approved", approved)
	return ref, nil
}

// IsApprovedForAll reports whether operator holds blanket approval for
// owner. Pure lookup, default false.
func (s *Approval) IsApprovedForAll(ctx context.Context, owner, operator models.Address) bool {
	return s.state.IsOperator(ctx, owner, operator)
}
