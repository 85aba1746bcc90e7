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


// Package bot is the operator command front end.
//
// It authorizes the single admin, dispatches the recognized commands
// (/start, /post_summary, /get_videos, /get_pdfs) to the renderer, and
// transmits the results: the full summary to the channel, everything else
// as a private reply. Commands never touch storage directly and never
// expose raw errors to the operator.
package bot
