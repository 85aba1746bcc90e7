package storage

import (
	"context"

	"github.com/mediashelf/mediashelf/core"
)

// MediaRepository provides operations for the archive of extracted media
// records. Implementations must be thread-safe: ingestion writes and
// renderer reads arrive from independent goroutines, and each call must be
// atomic with respect to other calls (a reader never observes a
// half-written record).
//
// The repository is append-only. There is deliberately no update or delete
// operation, and no uniqueness constraint on OriginMessageID: reprocessing
// the same channel message creates a second record.
type MediaRepository interface {
	// Insert persists a new record, assigning Id from the store sequence
	// and CreatedAt from the clock. Returns the stored record. Insert fails
	// only when the backing medium is unavailable, which is fatal for the
	// caller.
	Insert(ctx context.Context, record *core.MediaRecord) (*core.MediaRecord, error)

	// ListAll retrieves every stored record ordered by CreatedAt
	// descending, ties broken by Id descending.
	ListAll(ctx context.Context) ([]*core.MediaRecord, error)

	// ListByKind retrieves the records of one kind, in the same order as
	// ListAll.
	ListByKind(ctx context.Context, kind core.MediaKind) ([]*core.MediaRecord, error)

	// Get retrieves a single record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	Get(ctx context.Context, id core.ID) (*core.MediaRecord, error)

	// Close releases the repository's resources.
	Close() error
}
