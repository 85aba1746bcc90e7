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


// Package storage provides the storage abstraction layer for mediashelf.
//
// This package defines the repository interface that decouples storage
// implementation from business logic, so different backends (BadgerDB,
// in-memory, etc.) can be used interchangeably.
//
// # Repository Interface
//
// Backend constructors return their concrete type; consumers hold the
// result as a storage.MediaRepository:
//
//	var repo storage.MediaRepository
//	repo, err := badger.NewMediaRepository(backend)
//
// This keeps consumers decoupled from BadgerDB specifics and lets tests
// substitute an in-memory implementation without modification.
//
// # Thread Safety
//
// Repository implementations must be thread-safe. The ingestion pipeline
// and the summary renderer operate on independent event sources and share
// only the repository; every call must be atomic with respect to other
// calls.
//
// # Context Support
//
// All repository methods accept context.Context. Pass context.Background()
// for operations without specific timeout requirements.
package storage
