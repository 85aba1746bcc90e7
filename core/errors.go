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

import "errors"

// Domain validation errors
var (
	// ErrInvalidMediaRecord indicates a MediaRecord failed validation.
	ErrInvalidMediaRecord = errors.New("invalid media record")

	// ErrInvalidMediaKind indicates a MediaKind value outside "video"/"pdf".
	ErrInvalidMediaKind = errors.New("invalid media kind")

	// ErrEmptyTitle indicates the Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyCourse indicates the Course field is empty instead of "Unknown".
	ErrEmptyCourse = errors.New("course cannot be empty")

	// ErrEmptyExtractedBy indicates the ExtractedBy field is empty instead of "Unknown".
	ErrEmptyExtractedBy = errors.New("extracted-by cannot be empty")

	// ErrEmptyPayloadRef indicates the PayloadRef field is empty.
	ErrEmptyPayloadRef = errors.New("payload reference cannot be empty")
)
