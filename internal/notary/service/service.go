// Package service implements the registry core: star registration, ownership
// transfer, delegated approval and the marketplace. Every mutating operation
// is exactly one ledger submission; reads are served from confirmed state.
package service

import (
	"context"
	"log/slog"

	"github.com/holiman/uint256"

	"starnotary/internal/notary/metrics"
	"starnotary/internal/notary/models"
)

// StateReader is the confirmed-state read surface the services consume.
// *store.Memory satisfies it.
type StateReader interface {
	Star(ctx context.Context, token models.TokenID) (models.Star, bool)
	OwnerOf(ctx context.Context, token models.TokenID) (models.Address, bool)
	CoordinatesInUse(ctx context.Context, cent, dec, mag string) bool
	Approved(ctx context.Context, token models.TokenID) models.Address
	IsOperator(ctx context.Context, owner, operator models.Address) bool
	ListingPrice(ctx context.Context, token models.TokenID) *uint256.Int
	Payout(ctx context.Context, addr models.Address) *uint256.Int
}

// InfoCache is the optional read cache for rendered star info.
type InfoCache interface {
	Get(ctx context.Context, token models.TokenID) (models.Info, bool)
	Set(ctx context.Context, token models.TokenID, info models.Info) error
	Invalidate(ctx context.Context, token models.TokenID) error
}

type options struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	cache   InfoCache
}

// Option configures a service.
type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithInfoCache enables the star info read cache.
func WithInfoCache(c InfoCache) Option {
	return func(o *options) { o.cache = c }
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
