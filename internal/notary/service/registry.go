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

// Registry owns star registration and the two uniqueness constraints.
type Registry struct {
	ledger  ledger.Submitter
	state   StateReader
	cache   InfoCache
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewRegistry wires the registry service.
func NewRegistry(led ledger.Submitter, state StateReader, opts ...Option) (*Registry, error) {
	if led == nil {
		return nil, fmt.Errorf("ledger submitter is required")
	}
	if state == nil {
		return nil, fmt.Errorf("state reader is required")
	}
	o := buildOptions(opts)
	return &Registry{
		ledger:  led,
		state:   state,
		cache:   o.cache,
		logger:  o.logger,
		metrics: o.metrics,
	}, nil
}

// CreateStar registers a star with its coordinate data and owner. It fails
// with a conflict when either the token identifier or the coordinate tuple
// is already taken; both constraints are checked before anything commits.
func (s *Registry) CreateStar(ctx context.Context, name, story, cent, dec, mag string, token models.TokenID, owner models.Address) (ledger.TxRef, error) {
	if token == 0 {
		return "", dErrors.New(dErrors.CodeBadRequest, "token must be a positive integer")
	}
	if owner.IsZero() {
		return "", dErrors.New(dErrors.CodeBadRequest, "owner address is required")
	}

	star := models.Star{Token: token, Name: name, Story: story, Cent: cent, Dec: dec, Mag: mag}
	op := ledger.Op{
		Name: "createStar",
		Payload: map[string]string{
			"token": strconv.FormatUint(uint64(token), 10),
			"owner": string(owner),
			"cent":  cent,
			"dec":   dec,
			"mag":   mag,
		},
		Mutate: func(tx *store.Tx) error {
			return tx.CreateStar(star, owner)
		},
		Events: func(ref ledger.TxRef) []events.Event {
			return []events.Event{{
				Type:  events.TypeStarCreated,
				Token: token,
				Owner: owner,
				TxRef: string(ref),
			}}
		},
	}

	ref, err := s.ledger.Submit(ctx, op)
	if err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return "", dErrors.New(dErrors.CodeConflict, "star already exists")
		}
		return "", err
	}

	s.invalidateInfo(ctx, token)
	if s.metrics != nil {
		s.metrics.StarsCreated.Inc()
	}
	s.logger.InfoContext(ctx, "star created", "token", token, "owner", owner)
	return ref, nil
}

// Mint registers a bare token with no coordinate data.
func (s *Registry) Mint(ctx context.Context, token models.TokenID, owner models.Address) (ledger.TxRef, error) {
	if token == 0 {
		return "", dErrors.New(dErrors.CodeBadRequest, "token must be a positive integer")
	}
	if owner.IsZero() {
		return "", dErrors.New(dErrors.CodeBadRequest, "owner address is required")
	}

	op := ledger.Op{
		Name: "mint",
		Payload: map[string]string{
			"token": strconv.FormatUint(uint64(token), 10),
			"owner": string(owner),
		},
		Mutate: func(tx *store.Tx) error {
			return tx.MintStar(token, owner)
		},
		Events: func(ref ledger.TxRef) []events.Event {
			return []events.Event{{
				Type:  events.TypeTransfer,
				Token: token,
				From:  models.ZeroAddress,
				To:    owner,
				TxRef: string(ref),
			}}
		},
	}

	ref, err := s.ledger.Submit(ctx, op)
	if err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return "", dErrors.New(dErrors.CodeConflict, "token already minted")
		}
		return "", err
	}

	if s.metrics != nil {
		s.metrics.StarsMinted.Inc()
	}
	s.logger.InfoContext(ctx, "token minted", "token", token, "owner", owner)
	return ref, nil
}

// StarExists reports whether the coordinate tuple is already registered.
// Pure lookup, never fails.
func (s *Registry) StarExists(ctx context.Context, cent, dec, mag string) bool {
	return s.state.CoordinatesInUse(ctx, cent, dec, mag)
}

// StarInfo renders the public 5-tuple for a token. A missing or bare token
// renders as five empty strings; lookup-miss is a valid result, not a failure.
func (s *Registry) StarInfo(ctx context.Context, token models.TokenID) models.Info {
	if s.cache != nil {
		if info, ok := s.cache.Get(ctx, token); ok {
			if s.metrics != nil {
				s.metrics.CacheHits.Inc()
			}
			return info
		}
		if s.metrics != nil {
			s.metrics.CacheMisses.Inc()
		}
	}

	star, ok := s.state.Star(ctx, token)
	if !ok {
		return models.Info{}
	}
	info := star.Info()

	if s.cache != nil && info.Name != "" {
		if err := s.cache.Set(ctx, token, info); err != nil {
			s.logger.WarnContext(ctx, "star info cache set failed", "token", token, "error", err)
		}
	}
	return info
}

func (s *Registry) invalidateInfo(ctx context.Context, token models.TokenID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, token); err != nil {
		s.logger.WarnContext(ctx, "star info cache invalidation failed", "token", token, "error", err)
	}
}
