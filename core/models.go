package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for stored records.
// It is assigned from a database sequence and is monotonically increasing.
type ID uint64

// Fingerprint generates a deterministic 64-bit digest of caption text using
// BLAKE2b hashing. Identical captions produce identical fingerprints, which
// makes reprocessed messages visible in the logs without enforcing a
// uniqueness constraint on the store.
func Fingerprint(text string) uint64 {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return binary.LittleEndian.Uint64(sum)
}

// MediaKind identifies the payload type of an archived item.
type MediaKind string

const (
	// MediaKindVideo represents a video payload.
	MediaKindVideo MediaKind = "video"
	// MediaKindPDF represents a document payload.
	MediaKindPDF MediaKind = "pdf"
)

// UnknownLabel is stored in place of a course or attribution value when the
// caption carries no matching marker line. Stored records never hold an
// empty course or attribution.
const UnknownLabel = "Unknown"

// MediaRecord is the persisted unit of extracted metadata for one
// qualifying channel message. Records are immutable after creation; the
// store exposes no update or delete path.
type MediaRecord struct {
	Id              ID
	OriginMessageID int64     // Identifier of the source channel message
	Kind            MediaKind // "video" or "pdf"
	Title           string    // Required; a record is never created without it
	Course          string    // Grouping label, "Unknown" when absent from the caption
	ExtractedBy     string    // Attribution, "Unknown" when absent from the caption
	PayloadRef      string    // Opaque handle for fetching the binary via the transport
	CreatedAt       time.Time // Set at insertion time
}
