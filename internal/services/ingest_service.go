// Package services defines the business logic for play ingestion, erasure,
// history, and aggregation. Services return explicit result values for
// predictable outcomes so handlers can map them to HTTP results
// consistently; only infrastructure failures travel as errors.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-play-history/internal/domain"
	"github.com/tbourn/go-play-history/internal/repo"
)

// SubmitResult is the outcome of submitting a play event for ingestion.
type SubmitResult int

const (
	// SubmitAccepted means a new row was created for the event.
	SubmitAccepted SubmitResult = iota
	// SubmitDuplicate means the event_id was already stored; the retry is a
	// success with a distinguishing status, never an error.
	SubmitDuplicate
	// SubmitRejectedErased means the user's data was previously erased and
	// ingestion is permanently blocked for them.
	SubmitRejectedErased
)

// String returns a stable label for logs and metrics.
func (r SubmitResult) String() string {
	switch r {
	case SubmitAccepted:
		return "accepted"
	case SubmitDuplicate:
		return "duplicate"
	case SubmitRejectedErased:
		return "rejected_erased"
	default:
		return "unknown"
	}
}

// IngestService decides accept/duplicate/reject for incoming play events.
//
// The decision consults only committed store state: the tombstone ledger
// first, then a conditional insert whose NOT EXISTS guard re-checks the
// ledger inside the same statement. Two concurrent submissions of the same
// event_id are arbitrated solely by the unique key (exactly one creates the
// row); a concurrent erasure cannot lose to a later insert because the
// guard and the insert are one write.
type IngestService struct {
	// DB is the GORM handle used for all ingestion reads and writes.
	DB *gorm.DB
}

// Submit ingests a play event and reports the outcome.
//
// Steps:
//  1. Read the tombstone ledger; an erased user is rejected without
//     touching the plays table.
//  2. Attempt the guarded insert-if-absent. One row written → accepted.
//  3. Zero rows written means either the event_id already existed or an
//     erasure landed between steps 1 and 2. The ledger is re-read to tell
//     the two apart.
//
// Any store failure during these steps is returned as an error for the
// caller to surface as a retryable infrastructure failure; it is never
// folded into the duplicate or rejected outcomes.
func (s *IngestService) Submit(ctx context.Context, ev *domain.PlayEvent) (SubmitResult, error) {
	erased, err := repo.TombstoneExists(ctx, s.DB, ev.UserID)
	if err != nil {
		return SubmitRejectedErased, err
	}
	if erased {
		return SubmitRejectedErased, nil
	}

	inserted, err := repo.InsertPlay(ctx, s.DB, ev)
	if err != nil {
		return SubmitRejectedErased, err
	}
	if inserted {
		return SubmitAccepted, nil
	}

	// Disambiguate the zero-row outcome.
	erased, err = repo.TombstoneExists(ctx, s.DB, ev.UserID)
	if err != nil {
		return SubmitRejectedErased, err
	}
	if erased {
		return SubmitRejectedErased, nil
	}
	return SubmitDuplicate, nil
}
