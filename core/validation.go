// Copyright 2025 Mediashelf Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidateMediaRecord validates a MediaRecord according to domain rules.
//
// Validation rules:
//   - Kind must be "video" or "pdf"
//   - Title must not be empty (title-gated creation)
//   - Course and ExtractedBy must not be empty (absent caption values are
//     normalized to "Unknown" before storage)
//   - PayloadRef must not be empty
//
// NOT validated (populated by the store):
//   - Id (0 is valid before insertion)
//   - CreatedAt (set at insertion time)
func ValidateMediaRecord(record *MediaRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidMediaRecord)
	}

	if err := ValidateMediaKind(record.Kind); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMediaRecord, err)
	}

	if record.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMediaRecord, ErrEmptyTitle)
	}

	if record.Course == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMediaRecord, ErrEmptyCourse)
	}

	if record.ExtractedBy == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMediaRecord, ErrEmptyExtractedBy)
	}

	if record.PayloadRef == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMediaRecord, ErrEmptyPayloadRef)
	}

	return nil
}

// ValidateMediaKind validates that a MediaKind has a valid value.
func ValidateMediaKind(kind MediaKind) error {
	if kind != MediaKindVideo && kind != MediaKindPDF {
		return fmt.Errorf("%w: value %q", ErrInvalidMediaKind, string(kind))
	}
	return nil
}
