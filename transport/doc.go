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


// Package transport defines the chat-transport collaborator interfaces:
// the incoming message stream, the operator command source, outgoing text
// delivery, binary retrieval by payload reference, and origin-message link
// resolution.
//
// The core pipeline and renderer depend only on these interfaces; the
// gateway subpackage provides a websocket implementation.
package transport
