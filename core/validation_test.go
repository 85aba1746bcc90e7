package core

import (
	"errors"
	"testing"
)

func validRecord() *MediaRecord {
	return &MediaRecord{
		OriginMessageID: 42,
		Kind:            MediaKindVideo,
		Title:           "Intro to Graphs",
		Course:          "CS201",
		ExtractedBy:     "alice",
		PayloadRef:      "BAACAgQAAx0add",
	}
}

func TestValidateMediaRecord(t *testing.T) {
	if err := ValidateMediaRecord(validRecord()); err != nil {
		t.Fatalf("Expected valid record, got %v", err)
	}

	if err := ValidateMediaRecord(nil); !errors.Is(err, ErrInvalidMediaRecord) {
		t.Fatalf("Expected ErrInvalidMediaRecord for nil record, got %v", err)
	}

	r := validRecord()
	r.Title = ""
	if err := ValidateMediaRecord(r); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("Expected ErrEmptyTitle, got %v", err)
	}

	r = validRecord()
	r.Course = ""
	if err := ValidateMediaRecord(r); !errors.Is(err, ErrEmptyCourse) {
		t.Fatalf("Expected ErrEmptyCourse, got %v", err)
	}

	r = validRecord()
	r.ExtractedBy = ""
	if err := ValidateMediaRecord(r); !errors.Is(err, ErrEmptyExtractedBy) {
		t.Fatalf("Expected ErrEmptyExtractedBy, got %v", err)
	}

	r = validRecord()
	r.PayloadRef = ""
	if err := ValidateMediaRecord(r); !errors.Is(err, ErrEmptyPayloadRef) {
		t.Fatalf("Expected ErrEmptyPayloadRef, got %v", err)
	}

	r = validRecord()
	r.Kind = "audio"
	if err := ValidateMediaRecord(r); !errors.Is(err, ErrInvalidMediaKind) {
		t.Fatalf("Expected ErrInvalidMediaKind, got %v", err)
	}
}

func TestValidateMediaKind(t *testing.T) {
	if err := ValidateMediaKind(MediaKindVideo); err != nil {
		t.Fatalf("Expected video to be valid, got %v", err)
	}
	if err := ValidateMediaKind(MediaKindPDF); err != nil {
		t.Fatalf("Expected pdf to be valid, got %v", err)
	}
	if err := ValidateMediaKind(""); !errors.Is(err, ErrInvalidMediaKind) {
		t.Fatalf("Expected ErrInvalidMediaKind for empty kind, got %v", err)
	}
}
