package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/mediashelf/mediashelf/core"
)

// Key prefixes for different data types
const (
	mediaRecordPrefix     = "medrec"
	mediaRecordTimePrefix = "medrecr"
	mediaRecordKindPrefix = "medreck"
	mediaRecordIDSeq      = "medrecseq"
)

// makeMediaRecordKey generates a key for a media record by ID.
func makeMediaRecordKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", mediaRecordPrefix, id))
}

// makeMediaTimeKey generates a composite key for the recency index.
// Format: prefix:createdAt:id
func makeMediaTimeKey(createdAt time.Time, id core.ID) []byte {
	prefix := mediaRecordTimePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(createdAt.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialMediaTimeKey generates a partial key for recency scans.
// Format: prefix:createdAt
func makePartialMediaTimeKey(createdAt time.Time) []byte {
	prefix := mediaRecordTimePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for timestamp
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(createdAt.UnixMicro()))
	return buf
}

// makeMediaKindKey generates a composite key for the kind index.
// Format: prefix:kind:createdAt:id
func makeMediaKindKey(kind core.MediaKind, createdAt time.Time, id core.ID) []byte {
	prefix := mediaRecordKindPrefix + ":" + string(kind) + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(createdAt.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialMediaKindKey generates a partial key for kind scans.
// Format: prefix:kind:createdAt
func makePartialMediaKindKey(kind core.MediaKind, createdAt time.Time) []byte {
	prefix := mediaRecordKindPrefix + ":" + string(kind) + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for timestamp
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(createdAt.UnixMicro()))
	return buf
}
