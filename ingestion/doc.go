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


// Package ingestion bridges the incoming channel-message stream to the
// media record store.
//
// The Pipeline handles one message at a time, in arrival order:
//   - admit only messages carrying a video or document payload
//   - extract labeled fields from the caption (title-gated)
//   - normalize absent course/attribution values to "Unknown"
//   - insert exactly one record per qualifying message
//
// Extraction misses are defined no-ops. Storage failures propagate to the
// caller and stop the loop rather than silently dropping data.
package ingestion
