package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/mediashelf/mediashelf/core"
)

func TestMediaRecordRoundTrip(t *testing.T) {
	original := &core.MediaRecord{
		Id:              7,
		OriginMessageID: 1042,
		Kind:            core.MediaKindVideo,
		Title:           "Intro to Graphs",
		Course:          "CS201",
		ExtractedBy:     "alice",
		PayloadRef:      "BAACAgQAAx0add",
		CreatedAt:       time.Now().UTC().Truncate(time.Microsecond),
	}

	data := MarshalMediaRecord(original)
	decoded, err := UnmarshalMediaRecord(data)
	if err != nil {
		t.Fatalf("Failed to unmarshal record: %v", err)
	}

	if *decoded != *original {
		t.Fatalf("Round trip mismatch:\n got %+v\nwant %+v", decoded, original)
	}
}

func TestUnmarshalMediaRecordTruncated(t *testing.T) {
	record := &core.MediaRecord{
		Kind:       core.MediaKindPDF,
		Title:      "Notes",
		Course:     core.UnknownLabel,
		PayloadRef: "ref",
		CreatedAt:  time.Now().UTC(),
	}
	data := MarshalMediaRecord(record)

	_, err := UnmarshalMediaRecord(data[:len(data)/2])
	if err == nil {
		t.Fatal("Expected error for truncated data")
	}
	if !errors.Is(err, ErrSerializationFailed) {
		t.Fatalf("Expected ErrSerializationFailed, got %v", err)
	}
}

func TestUnmarshalIDInvalid(t *testing.T) {
	if _, err := UnmarshalID(nil); !errors.Is(err, ErrSerializationFailed) {
		t.Fatalf("Expected ErrSerializationFailed, got %v", err)
	}
}

func TestIDRoundTrip(t *testing.T) {
	id := core.ID(123456789)

	decoded, err := UnmarshalID(MarshalID(id))
	if err != nil {
		t.Fatalf("Failed to unmarshal ID: %v", err)
	}
	if decoded != id {
		t.Fatalf("Expected %d, got %d", id, decoded)
	}
}
