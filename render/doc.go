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


// Package render turns stored media records into digest text.
//
// Two digests exist: the full summary (records grouped by course, capped
// sub-lists per kind) and the flat per-kind listing (uncapped, recency
// order). Both produce bounded, text-only output that is transmitted
// unchanged as a single outgoing message. Empty-store conditions surface as
// sentinel errors, distinct from storage failures.
package render
