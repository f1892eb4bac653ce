// Package ledger is the submission boundary between the registry core and
// the execution environment. Every mutating registry operation becomes
// exactly one submitted Op; the ledger serializes ops, commits each one
// atomically against the canonical store, and acknowledges with a fixed
// transaction reference. Reads never pass through here.
package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"starnotary/internal/notary/events"
	"starnotary/internal/notary/store"
)

// TxRef is a 32-byte hash rendered as "0x" plus 64 hex digits. It is an
// acknowledgment only; callers do not interpret it.
type TxRef string

// Op is one state-changing submission. Mutate runs inside the store's
// atomic commit; Events is invoked only after a confirmed commit so failed
// preconditions never produce notifications.
type Op struct {
	Name    string
	Payload map[string]string
	Mutate  func(tx *store.Tx) error
	Events  func(ref TxRef) []events.Event
}

// Submitter is what services depend on. A submission blocks until the
// ledger confirms commit or the caller's context expires; expiry is
// reported as indeterminate, never as "did not happen".
type Submitter interface {
	Submit(ctx context.Context, op Op) (TxRef, error)
}

// Entry is the immutable archive record of one confirmed submission.
type Entry struct {
	Seq     uint64
	Ref     TxRef
	Op      string
	Payload map[string]string
	At      time.Time
}

// EntryStore archives confirmed submissions in order.
type EntryStore interface {
	Append(ctx context.Context, entry Entry) error
	List(ctx context.Context) ([]Entry, error)
}

// refFor derives the transaction reference from the commit sequence number,
// the op name and the canonical payload rendering.
func refFor(seq uint64, op Op) TxRef {
	keys := make([]string, 0, len(op.Payload))
	for k := range op.Payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "%d|%s", seq, op.Name)
	for _, k := range keys {
		fmt.Fprintf(&b, "|%s=%s", k, op.Payload[k])
	}
	sum := sha256.Sum256([]byte(b.String()))
	return TxRef("0x" + hex.EncodeToString(sum[:]))
}
