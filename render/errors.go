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


package render

import "errors"

var (
	// ErrRepositoryRequired is returned when a media repository is not provided.
	ErrRepositoryRequired = errors.New("media repository required")

	// ErrLinkResolverRequired is returned when a link resolver is not provided.
	ErrLinkResolverRequired = errors.New("link resolver required")

	// ErrNoRecords indicates the store holds no records at all. This is an
	// empty-result condition, not a failure; callers render it as a fixed
	// "nothing found" message.
	ErrNoRecords = errors.New("no media files found")

	// ErrNoVideos indicates the store holds no video records.
	ErrNoVideos = errors.New("no videos found")

	// ErrNoPDFs indicates the store holds no PDF records.
	ErrNoPDFs = errors.New("no pdfs found")
)
