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


// Package caption extracts structured fields from channel-message captions.
//
// Captions follow an informal label convention: one marker per line, each
// marker followed by a separator glyph and the field value. Extraction is
// title-gated — a caption whose title marker is missing produces no fields
// at all, regardless of other markers. Captions that do not follow the
// convention are silently dropped; that is the defined outcome, not an
// error.
package caption
