package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mediashelf/mediashelf/core"
	"github.com/mediashelf/mediashelf/storage"
)

// maxIndexTime is the upper bound used when seeking the recency and kind
// indexes in reverse.
var maxIndexTime = time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC)

// MediaRepository implements storage.MediaRepository for BadgerDB.
type MediaRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.MediaRepository = (*MediaRepository)(nil)

// NewMediaRepository creates a new MediaRepository.
func NewMediaRepository(backend *Backend) (*MediaRepository, error) {
	idSeq, err := backend.GetSequence(mediaRecordIDSeq)
	if err != nil {
		return nil, err
	}

	return &MediaRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *MediaRepository) Close() error {
	return r.idSeq.Release()
}

// Insert persists a new media record, assigning Id and CreatedAt.
// The record, its recency index entry, and its kind index entry are written
// in one transaction, so concurrent readers never observe a partial record.
func (r *MediaRepository) Insert(ctx context.Context, record *core.MediaRecord) (*core.MediaRecord, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Always generate new ID from sequence
		nextID, err := r.idSeq.Next()
		if err != nil {
			return err
		}
		// BadgerDB sequences can return 0 on first call, so we skip it
		if nextID == 0 {
			nextID, err = r.idSeq.Next()
			if err != nil {
				return err
			}
		}
		record.Id = core.ID(nextID)
		record.CreatedAt = time.Now().UTC()

		// Store primary record
		key := makeMediaRecordKey(record.Id)
		value := storage.MarshalMediaRecord(record)
		if err := tx.Set(key, value); err != nil {
			return err
		}

		// Update recency index
		timeKey := makeMediaTimeKey(record.CreatedAt, record.Id)
		if err := tx.Set(timeKey, storage.MarshalID(record.Id)); err != nil {
			return err
		}

		// Update kind index
		kindKey := makeMediaKindKey(record.Kind, record.CreatedAt, record.Id)
		if err := tx.Set(kindKey, storage.MarshalID(record.Id)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)

	return record, err
}

// ListAll retrieves every stored record ordered by CreatedAt descending,
// ties broken by Id descending.
func (r *MediaRepository) ListAll(ctx context.Context) ([]*core.MediaRecord, error) {
	return r.scanIndex(
		makePartialMediaTimeKey(maxIndexTime),
		[]byte(mediaRecordTimePrefix+":"),
	)
}

// ListByKind retrieves the records of one kind, in the same order as ListAll.
func (r *MediaRepository) ListByKind(ctx context.Context, kind core.MediaKind) ([]*core.MediaRecord, error) {
	return r.scanIndex(
		makePartialMediaKindKey(kind, maxIndexTime),
		[]byte(mediaRecordKindPrefix+":"+string(kind)+":"),
	)
}

// Get retrieves a single media record by ID.
func (r *MediaRepository) Get(ctx context.Context, id core.ID) (*core.MediaRecord, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var result *core.MediaRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeMediaRecordKey(id)
		var err error
		result, err = r.readMediaRecord(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// scanIndex walks an index in reverse from startKey, resolving every entry
// under prefix to its full record. Reverse iteration over the
// BigEndian(createdAt)+BigEndian(id) suffix yields recency order with ID
// ties broken descending.
func (r *MediaRepository) scanIndex(startKey, prefix []byte) ([]*core.MediaRecord, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var results []*core.MediaRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()

			// Check if we're still in the index
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			// Read the ID from the index
			var recordID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				recordID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full record
			recordKey := makeMediaRecordKey(recordID)
			record, err := r.readMediaRecord(tx, recordKey)
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)

	return results, err
}

// readMediaRecord reads a media record from the transaction.
func (r *MediaRepository) readMediaRecord(tx *badger.Txn, key []byte) (*core.MediaRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.MediaRecord
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		record, unmarshalErr = storage.UnmarshalMediaRecord(val)
		return unmarshalErr
	})
	return record, err
}
