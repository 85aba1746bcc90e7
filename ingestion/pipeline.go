package ingestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mediashelf/mediashelf/caption"
	"github.com/mediashelf/mediashelf/core"
	"github.com/mediashelf/mediashelf/storage"
	"github.com/mediashelf/mediashelf/transport"
)

// Pipeline bridges incoming channel messages to stored media records.
type Pipeline struct {
	repository storage.MediaRepository
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(repository storage.MediaRepository, opts ...Option) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	p := &Pipeline{
		repository: repository,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// HandleMessage processes one incoming message into zero or one stored
// record. Messages without a video or document payload are ignored, as are
// captions whose title marker doesn't match — both are defined no-ops, not
// errors. A storage failure is returned to the caller: silently dropping a
// qualifying message is not acceptable.
//
// Returns the stored record, or nil when the message was ignored.
func (p *Pipeline) HandleMessage(ctx context.Context, msg transport.Message) (*core.MediaRecord, error) {
	// Resolve the payload; video takes precedence if both were ever set.
	payload := msg.Video
	kind := core.MediaKindVideo
	if payload == nil {
		payload = msg.Document
		kind = core.MediaKindPDF
	}
	if payload == nil {
		return nil, nil
	}

	fields, ok := caption.Extract(msg.Caption)
	if !ok {
		p.logger.Debug("skipping message without a title marker", "message_id", msg.ID)
		return nil, nil
	}

	record := &core.MediaRecord{
		OriginMessageID: msg.ID,
		Kind:            kind,
		Title:           fields.Title,
		Course:          orUnknown(fields.Course),
		ExtractedBy:     orUnknown(fields.ExtractedBy),
		PayloadRef:      payload.FileID,
	}

	if err := core.ValidateMediaRecord(record); err != nil {
		return nil, err
	}

	stored, err := p.repository.Insert(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("inserting record for message %d: %w", msg.ID, err)
	}

	// The caption fingerprint makes reprocessed messages visible in the
	// logs; the store itself enforces no uniqueness on the origin message.
	p.logger.Info("stored media record",
		"kind", string(stored.Kind),
		"title", stored.Title,
		"message_id", stored.OriginMessageID,
		"caption_fp", core.Fingerprint(msg.Caption),
	)

	return stored, nil
}

// Run consumes the message stream in arrival order until it closes or ctx
// is cancelled. A storage failure aborts the loop and propagates.
func (p *Pipeline) Run(ctx context.Context, messages <-chan transport.Message) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			if _, err := p.HandleMessage(ctx, msg); err != nil {
				return err
			}
		}
	}
}

func orUnknown(value string) string {
	if value == "" {
		return core.UnknownLabel
	}
	return value
}
