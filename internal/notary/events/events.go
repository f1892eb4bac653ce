// Package events carries the notifications the registry produces after a
// confirmed commit: creation, transfer, approval, operator approval, listing
// and sale. Consumers (facade, audit trail) subscribe through sinks; the core
// only publishes.
package events

import (
	"time"

	"starnotary/internal/notary/models"
)

// Type names a notification kind.
type Type string

const (
	TypeStarCreated    Type = "star_created"
	TypeTransfer       Type = "transfer"
	TypeApproval       Type = "approval"
	TypeApprovalForAll Type = "approval_for_all"
	TypeStarListed     Type = "star_listed"
	TypeStarSold       Type = "star_sold"
)

// Event is a single notification. TxRef ties it to the ledger entry that
// produced it. Amount fields are decimal strings so sinks stay
// serialization-friendly.
type Event struct {
	ID        string         `json:"id"`
	Type      Type           `json:"type"`
	Token     models.TokenID `json:"token,omitempty"`
	From      models.Address `json:"from,omitempty"`
	To        models.Address `json:"to,omitempty"`
	Owner     models.Address `json:"owner,omitempty"`
	Operator  models.Address `json:"operator,omitempty"`
	Approved  bool           `json:"approved,omitempty"`
	Price     string         `json:"price,omitempty"`
	Value     string         `json:"value,omitempty"`
	TxRef     string         `json:"tx_ref"`
	Timestamp time.Time      `json:"timestamp"`
}
