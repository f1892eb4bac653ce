package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/holiman/uint256"

	"starnotary/internal/ledger"
	"starnotary/internal/notary/events"
	"starnotary/internal/notary/metrics"
	"starnotary/internal/notary/models"
	"starnotary/internal/notary/store"
	dErrors "starnotary/pkg/domain-errors"
	"starnotary/pkg/platform/sentinel"
)

// Market implements the sale listing and escrowed purchase protocol.
type Market struct {
	ledger  ledger.Submitter
	state   StateReader
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewMarket wires the marketplace service.
func NewMarket(led ledger.Submitter, state StateReader, opts ...Option) (*Market, error) {
	if led == nil {
		return nil, fmt.Errorf("ledger submitter is required")
	}
	if state == nil {
		return nil, fmt.Errorf("state reader is required")
	}
	o := buildOptions(opts)
	return &Market{ledger: led, state: state, logger: o.logger, metrics: o.metrics}, nil
}

// PutUpForSale lists a token at the given price. Only the recorded owner may
// list; delegates and operators are deliberately excluded, unlike transfer.
// A zero price delists.
func (s *Market) PutUpForSale(ctx context.Context, token models.TokenID, price *uint256.Int, caller models.Address) (ledger.TxRef, error) {
	if caller.IsZero() {
		return "", dErrors.New(dErrors.CodeBadRequest, "caller address is required")
	}
	if price == nil {
		return "", dErrors.New(dErrors.CodeBadRequest, "price is required")
	}

	op := ledger.Op{
		Name: "putStarUpForSale",
		Payload: map[string]string{
			"token":  strconv.FormatUint(uint64(token), 10),
			"price":  price.Dec(),
			"caller": string(caller),
		},
		Mutate: func(tx *store.Tx) error {
			owner, ok := tx.Owner(token)
			if !ok {
				return sentinel.ErrNotFound
			}
			if caller != owner {
				return dErrors.New(dErrors.CodeUnauthorized, "only the owner can put a star up for sale")
			}
			tx.SetListing(token, price)
			return nil
		},
		Events: func(ref ledger.TxRef) []events.Event {
			return []events.Event{{
				Type:  events.TypeStarListed,
				Token: token,
				Owner: caller,
				Price: price.Dec(),
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
		s.metrics.Listings.Inc()
	}
	s.logger.InfoContext(ctx, "star listed", "token", token, "price", price.Dec())
	return ref, nil
}

// SalePrice returns the listed price, or zero when unlisted or unknown.
// Never fails.
func (s *Market) SalePrice(ctx context.Context, token models.TokenID) *uint256.Int {
	return s.state.ListingPrice(ctx, token)
}

// Buy purchases a listed token. The offered value is escrowed: on success
// ownership moves to the buyer, the listing is removed, the seller is
// credited exactly the listed price and the buyer is refunded the surplus.
// All effects commit as one atomic unit.
func (s *Market) Buy(ctx context.Context, token models.TokenID, buyer models.Address, value *uint256.Int) (ledger.TxRef, error) {
	if buyer.IsZero() {
		return "", dErrors.New(dErrors.CodeBadRequest, "buyer address is required")
	}
	if value == nil {
		return "", dErrors.New(dErrors.CodeBadRequest, "value is required")
	}

	var (
		seller models.Address
		price  *uint256.Int
	)
	op := ledger.Op{
		Name: "buyStar",
		Payload: map[string]string{
			"token": strconv.FormatUint(uint64(token), 10),
			"buyer": string(buyer),
			"value": value.Dec(),
		},
		Mutate: func(tx *store.Tx) error {
			price = tx.ListingPrice(token)
			if price.IsZero() {
				// Unlisted and nonexistent are indistinguishable here.
				return sentinel.ErrNotListed
			}
			if value.Lt(price) {
				return dErrors.New(dErrors.CodeInsufficientPayment, "offer is below the listed price")
			}
			var ok bool
			seller, ok = tx.Owner(token)
			if !ok {
				return sentinel.ErrNotFound
			}

			if err := tx.SetOwner(token, buyer); err != nil {
				return err
			}
			tx.ClearApproval(token)
			tx.RemoveListing(token)

			tx.Credit(seller, price)
			refund := new(uint256.Int).Sub(value, price)
			tx.Credit(buyer, refund)
			return nil
		},
		Events: func(ref ledger.TxRef) []events.Event {
			return []events.Event{{
				Type:  events.TypeStarSold,
				Token: token,
				From:  seller,
				To:    buyer,
				Price: price.Dec(),
				Value: value.Dec(),
				TxRef: string(ref),
			}}
		},
	}

	ref, err := s.ledger.Submit(ctx, op)
	if err != nil {
		switch {
		case errors.Is(err, sentinel.ErrNotListed):
			return "", dErrors.Newf(dErrors.CodeUnavailable, "token %d is not for sale", token)
		case errors.Is(err, sentinel.ErrNotFound):
			return "", dErrors.Newf(dErrors.CodeNotFound, "token %d does not exist", token)
		default:
			return "", err
		}
	}

	if s.metrics != nil {
		s.metrics.Sales.Inc()
		s.metrics.Transfers.Inc()
	}
	s.logger.InfoContext(ctx, "star sold",
		"token", token, "seller", seller, "buyer", buyer, "price", price.Dec())
	return ref, nil
}

// Proceeds returns the accumulated settlement balance for an address:
// sale proceeds for sellers, refunds for overpaying buyers.
func (s *Market) Proceeds(ctx context.Context, addr models.Address) *uint256.Int {
	return s.state.Payout(ctx, addr)
}
