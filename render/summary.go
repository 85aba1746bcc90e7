package render

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mediashelf/mediashelf/core"
	"github.com/mediashelf/mediashelf/storage"
	"github.com/mediashelf/mediashelf/transport"
)

// perKindLimit caps how many entries of each kind a course block shows in
// the full summary. Kind listings are uncapped.
const perKindLimit = 5

// Renderer formats stored media records into digest text. It owns all
// formatting; the command front end only transmits what it returns.
type Renderer struct {
	repository storage.MediaRepository
	links      transport.LinkResolver
	logger     *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRenderer creates a new renderer.
func NewRenderer(repository storage.MediaRepository, links transport.LinkResolver, opts ...Option) (*Renderer, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if links == nil {
		return nil, ErrLinkResolverRequired
	}

	r := &Renderer{
		repository: repository,
		links:      links,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// StartNotice returns the fixed onboarding text listing available actions.
func (r *Renderer) StartNotice() string {
	return "Bot started! Monitoring channel for videos and PDFs.\n\n" +
		"Available commands:\n" +
		"/post_summary - Post organized summary to channel\n" +
		"/get_videos - Get list of all videos\n" +
		"/get_pdfs - Get list of all PDFs"
}

// FullSummary renders every stored record as one message body: records are
// grouped by course in first-seen order (scanning the store's recency
// order), and each course block lists up to five videos and five PDFs as
// link-bearing lines. Returns ErrNoRecords when the store is empty.
func (r *Renderer) FullSummary(ctx context.Context) (string, error) {
	records, err := r.repository.ListAll(ctx)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", ErrNoRecords
	}

	// Group by course, preserving the order courses are first encountered.
	courses := make([]string, 0)
	byCourse := make(map[string][]*core.MediaRecord)
	for _, record := range records {
		if _, seen := byCourse[record.Course]; !seen {
			courses = append(courses, record.Course)
		}
		byCourse[record.Course] = append(byCourse[record.Course], record)
	}

	var b strings.Builder
	b.WriteString("📚 **Course Materials Summary**\n\n")

	for _, course := range courses {
		b.WriteString("**")
		b.WriteString(course)
		b.WriteString("**\n")

		videos, pdfs := partitionByKind(byCourse[course])
		r.writeKindBlock(&b, "🎥 **Videos:**", videos)
		r.writeKindBlock(&b, "📄 **PDFs:**", pdfs)

		b.WriteString("\n")
	}

	return b.String(), nil
}

// KindListing renders the records of one kind as link-bearing lines, each
// followed by its course label, in the store's recency order and without a
// cap. Returns ErrNoVideos or ErrNoPDFs when no record of the kind exists.
func (r *Renderer) KindListing(ctx context.Context, kind core.MediaKind) (string, error) {
	if err := core.ValidateMediaKind(kind); err != nil {
		return "", err
	}

	records, err := r.repository.ListByKind(ctx, kind)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		if kind == core.MediaKindVideo {
			return "", ErrNoVideos
		}
		return "", ErrNoPDFs
	}

	var b strings.Builder
	if kind == core.MediaKindVideo {
		b.WriteString("🎥 **All Videos**\n\n")
	} else {
		b.WriteString("📄 **All PDFs**\n\n")
	}

	for _, record := range records {
		r.writeEntry(&b, record)
		b.WriteString("  Course: ")
		b.WriteString(record.Course)
		b.WriteString("\n\n")
	}

	return b.String(), nil
}

// writeKindBlock emits a sub-list header and up to perKindLimit entries.
// Courses with no entries of the kind omit the header entirely.
func (r *Renderer) writeKindBlock(b *strings.Builder, header string, records []*core.MediaRecord) {
	if len(records) == 0 {
		return
	}
	if len(records) > perKindLimit {
		records = records[:perKindLimit]
	}

	b.WriteString(header)
	b.WriteString("\n")
	for _, record := range records {
		r.writeEntry(b, record)
	}
}

// writeEntry emits one clickable line linking back to the origin message.
func (r *Renderer) writeEntry(b *strings.Builder, record *core.MediaRecord) {
	b.WriteString("• [")
	b.WriteString(record.Title)
	b.WriteString("](")
	b.WriteString(r.links.MessageLink(record.OriginMessageID))
	b.WriteString(")\n")
}

// partitionByKind splits records into videos and PDFs, preserving order.
func partitionByKind(records []*core.MediaRecord) (videos, pdfs []*core.MediaRecord) {
	for _, record := range records {
		switch record.Kind {
		case core.MediaKindVideo:
			videos = append(videos, record)
		case core.MediaKindPDF:
			pdfs = append(pdfs, record)
		}
	}
	return videos, pdfs
}
