// Package store holds the canonical registry state: star records, the two
// uniqueness indexes, ownership, approvals, sale listings and settlement
// payouts. All mutating operations go through Execute, which stages changes
// and applies them all-or-nothing under a single lock, mirroring the
// per-call atomic commit the execution environment guarantees.
package store

import (
	"context"
	"sync"

	"github.com/holiman/uint256"

	"starnotary/internal/notary/models"
	"starnotary/pkg/platform/sentinel"
)

// Memory is the in-memory canonical store.
type Memory struct {
	mu        sync.RWMutex
	stars     map[models.TokenID]models.Star
	coords    map[string]models.TokenID
	owners    map[models.TokenID]models.Address
	approvals map[models.TokenID]models.Address
	operators map[models.Address]map[models.Address]bool
	listings  map[models.TokenID]*uint256.Int
	payouts   map[models.Address]*uint256.Int
}

// NewMemory creates an empty canonical store.
func NewMemory() *Memory {
	return &Memory{
		stars:     make(map[models.TokenID]models.Star),
		coords:    make(map[string]models.TokenID),
		owners:    make(map[models.TokenID]models.Address),
		approvals: make(map[models.TokenID]models.Address),
		operators: make(map[models.Address]map[models.Address]bool),
		listings:  make(map[models.TokenID]*uint256.Int),
		payouts:   make(map[models.Address]*uint256.Int),
	}
}

// -----------------------------------------------------------------------------
// Reads (confirmed state only)
// -----------------------------------------------------------------------------

// Star returns the record for a token, if registered.
func (m *Memory) Star(_ context.Context, token models.TokenID) (models.Star, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.stars[token]
	return s, ok
}

// OwnerOf returns the recorded owner for a token.
func (m *Memory) OwnerOf(_ context.Context, token models.TokenID) (models.Address, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	owner, ok := m.owners[token]
	return owner, ok
}

// CoordinatesInUse reports whether the coordinate tuple already maps to a token.
func (m *Memory) CoordinatesInUse(_ context.Context, cent, dec, mag string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.coords[models.CoordinateKey(cent, dec, mag)]
	return ok
}

// Approved returns the single-delegate approval for a token, or the zero
// address when none is set or the token is unknown. Lookup-miss is not an error.
func (m *Memory) Approved(_ context.Context, token models.TokenID) models.Address {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.approvals[token]; ok {
		return a
	}
	return models.ZeroAddress
}

// IsOperator reports whether operator holds blanket approval for owner.
func (m *Memory) IsOperator(_ context.Context, owner, operator models.Address) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.operators[owner][operator]
}

// ListingPrice returns the listed sale price, or zero when unlisted or unknown.
func (m *Memory) ListingPrice(_ context.Context, token models.TokenID) *uint256.Int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.listings[token]; ok {
		return p.Clone()
	}
	return uint256.NewInt(0)
}

// Payout returns the accumulated settlement balance for an address.
func (m *Memory) Payout(_ context.Context, addr models.Address) *uint256.Int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.payouts[addr]; ok {
		return b.Clone()
	}
	return uint256.NewInt(0)
}

// -----------------------------------------------------------------------------
// Atomic mutation
// -----------------------------------------------------------------------------

// Tx stages mutations against a consistent snapshot of the store. Reads see
// committed state plus the Tx's own staged writes; nothing is visible outside
// until the Execute callback returns nil.
type Tx struct {
	m       *Memory
	pending []func(*Memory)

	// staged overlay for reads within the transaction
	stagedOwners    map[models.TokenID]models.Address
	stagedApprovals map[models.TokenID]*models.Address // nil value = cleared
}

// Execute runs fn with exclusive access to the store. Staged mutations apply
// only when fn returns nil; any error leaves zero observable state change.
func (m *Memory) Execute(_ context.Context, fn func(tx *Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &Tx{
		m:               m,
		stagedOwners:    make(map[models.TokenID]models.Address),
		stagedApprovals: make(map[models.TokenID]*models.Address),
	}
	if err := fn(tx); err != nil {
		return err
	}
	for _, apply := range tx.pending {
		apply(m)
	}
	return nil
}

// Owner returns the owner as seen inside the transaction.
func (tx *Tx) Owner(token models.TokenID) (models.Address, bool) {
	if o, ok := tx.stagedOwners[token]; ok {
		return o, true
	}
	o, ok := tx.m.owners[token]
	return o, ok
}

// Approved returns the delegate as seen inside the transaction.
func (tx *Tx) Approved(token models.TokenID) models.Address {
	if staged, ok := tx.stagedApprovals[token]; ok {
		if staged == nil {
			return models.ZeroAddress
		}
		return *staged
	}
	if a, ok := tx.m.approvals[token]; ok {
		return a
	}
	return models.ZeroAddress
}

// IsOperator reports blanket approval as seen inside the transaction.
func (tx *Tx) IsOperator(owner, operator models.Address) bool {
	return tx.m.operators[owner][operator]
}

// ListingPrice returns the committed listing price for a token.
func (tx *Tx) ListingPrice(token models.TokenID) *uint256.Int {
	if p, ok := tx.m.listings[token]; ok {
		return p.Clone()
	}
	return uint256.NewInt(0)
}

// CreateStar stages a full star record with its owner. Both uniqueness
// constraints are checked before anything is staged.
func (tx *Tx) CreateStar(star models.Star, owner models.Address) error {
	if _, exists := tx.m.stars[star.Token]; exists {
		return sentinel.ErrConflict
	}
	key := models.CoordinateKey(star.Cent, star.Dec, star.Mag)
	if _, exists := tx.m.coords[key]; exists {
		return sentinel.ErrConflict
	}
	tx.stagedOwners[star.Token] = owner
	tx.pending = append(tx.pending, func(m *Memory) {
		m.stars[star.Token] = star
		m.coords[key] = star.Token
		m.owners[star.Token] = owner
	})
	return nil
}

// MintStar stages a bare record (no coordinate data) with its owner.
func (tx *Tx) MintStar(token models.TokenID, owner models.Address) error {
	if _, exists := tx.m.stars[token]; exists {
		return sentinel.ErrConflict
	}
	tx.stagedOwners[token] = owner
	tx.pending = append(tx.pending, func(m *Memory) {
		m.stars[token] = models.Star{Token: token}
		m.owners[token] = owner
	})
	return nil
}

// SetOwner stages an ownership change. The token must already be owned.
func (tx *Tx) SetOwner(token models.TokenID, to models.Address) error {
	if _, ok := tx.Owner(token); !ok {
		return sentinel.ErrNotFound
	}
	tx.stagedOwners[token] = to
	tx.pending = append(tx.pending, func(m *Memory) {
		m.owners[token] = to
	})
	return nil
}

// SetApproval stages the single-delegate approval for a token (last write wins).
func (tx *Tx) SetApproval(token models.TokenID, delegate models.Address) {
	d := delegate
	tx.stagedApprovals[token] = &d
	tx.pending = append(tx.pending, func(m *Memory) {
		m.approvals[token] = delegate
	})
}

// ClearApproval stages removal of the single-delegate approval.
func (tx *Tx) ClearApproval(token models.TokenID) {
	tx.stagedApprovals[token] = nil
	tx.pending = append(tx.pending, func(m *Memory) {
		delete(m.approvals, token)
	})
}

// SetOperator stages blanket operator approval for an owner. Idempotent.
func (tx *Tx) SetOperator(owner, operator models.Address, approved bool) {
	tx.pending = append(tx.pending, func(m *Memory) {
		ops := m.operators[owner]
		if ops == nil {
			ops = make(map[models.Address]bool)
			m.operators[owner] = ops
		}
		ops[operator] = approved
	})
}

// SetListing stages the sale price for a token. A zero price delists.
func (tx *Tx) SetListing(token models.TokenID, price *uint256.Int) {
	p := price.Clone()
	tx.pending = append(tx.pending, func(m *Memory) {
		if p.IsZero() {
			delete(m.listings, token)
			return
		}
		m.listings[token] = p
	})
}

// RemoveListing stages removal of the sale listing for a token.
func (tx *Tx) RemoveListing(token models.TokenID) {
	tx.pending = append(tx.pending, func(m *Memory) {
		delete(m.listings, token)
	})
}

// Credit stages adding amount to an address's settlement payout balance.
func (tx *Tx) Credit(addr models.Address, amount *uint256.Int) {
	if amount.IsZero() {
		return
	}
	amt := amount.Clone()
	tx.pending = append(tx.pending, func(m *Memory) {
		cur, ok := m.payouts[addr]
		if !ok {
			cur = uint256.NewInt(0)
			m.payouts[addr] = cur
		}
		cur.Add(cur, amt)
	})
}
