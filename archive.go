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


package mediashelf

import (
	"log/slog"

	"github.com/mediashelf/mediashelf/ingestion"
	"github.com/mediashelf/mediashelf/render"
	"github.com/mediashelf/mediashelf/storage"
	"github.com/mediashelf/mediashelf/storage/badger"
	"github.com/mediashelf/mediashelf/transport"
)

// Archive bundles the storage backend and media repository behind one
// handle. It is the embedding entry point: open it once per process, hand
// its repository to the pipeline and renderer, close it on shutdown.
type Archive struct {
	backend   *badger.Backend
	mediaRepo storage.MediaRepository
	logger    *slog.Logger
}

// ArchiveOption configures an Archive.
type ArchiveOption func(*archiveOptions)

type archiveOptions struct {
	inMemory bool
}

// WithInMemory keeps the store in memory instead of on disk. Useful for
// tests and throwaway runs; nothing survives Close.
func WithInMemory() ArchiveOption {
	return func(o *archiveOptions) {
		o.inMemory = true
	}
}

func OpenArchive(filePath string, opts ...ArchiveOption) (*Archive, error) {
	options := &archiveOptions{}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	mediaRepo, err := badger.NewMediaRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Archive{
		backend:   backend,
		mediaRepo: mediaRepo,
		logger:    slog.Default(),
	}, nil
}

func (a *Archive) Close() error {
	if err := a.mediaRepo.Close(); err != nil {
		a.logger.Error("error closing media repository", "err", err)
		return err
	}
	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (a *Archive) MediaRepository() storage.MediaRepository {
	return a.mediaRepo
}

func (a *Archive) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(a.mediaRepo, opts...)
}

func (a *Archive) NewRenderer(links transport.LinkResolver, opts ...render.Option) (*render.Renderer, error) {
	return render.NewRenderer(a.mediaRepo, links, opts...)
}
