package ingestion

import "errors"

var (
	// ErrRepositoryRequired is returned when a media repository is not provided.
	ErrRepositoryRequired = errors.New("media repository required")
)
