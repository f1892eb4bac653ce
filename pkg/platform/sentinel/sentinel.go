package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into coded domain errors.
//
// These represent factual states about stored entities, not rule violations:
// - ErrNotFound: entity does not exist in the store
// - ErrConflict: a uniqueness constraint would be violated
// - ErrNotListed: token has no active sale listing
//
// For authorization and validation failures, use pkg/domain-errors directly.
var (
	ErrNotFound  = errors.New("not found")
	ErrConflict  = errors.New("conflict")
	ErrNotListed = errors.New("not listed")
)
