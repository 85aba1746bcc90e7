package bot

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/mediashelf/mediashelf/core"
	"github.com/mediashelf/mediashelf/render"
	"github.com/mediashelf/mediashelf/transport"
)

const defaultWorkers = 4

// Fixed reply texts. Every command receives exactly one reply; failures and
// empty-result conditions are reported with these instead of raw errors.
const (
	replyUnauthorizedBot     = "You are not authorized to use this bot."
	replyUnauthorizedCommand = "You are not authorized to use this command."

	replyNoRecords     = "No media files found in database."
	replyNoVideos      = "No videos found in database."
	replyNoPDFs        = "No PDFs found in database."
	replySummaryPosted = "Summary posted successfully!"
	replySummaryFailed = "Failed to post summary."
	replyListingFailed = "Failed to fetch media list."
)

// Bot dispatches operator commands to the renderer and sender. Only the
// configured admin may invoke commands; everyone else gets a fixed refusal.
type Bot struct {
	renderer *render.Renderer
	sender   transport.Sender
	adminID  int64
	workers  int
	logger   *slog.Logger
}

// Option configures a Bot.
type Option func(*Bot) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bot) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// WithWorkers sets the size of the command worker pool.
// Default is 4.
func WithWorkers(workers int) Option {
	return func(b *Bot) error {
		if workers < 1 {
			return ErrInvalidWorkerCount
		}
		b.workers = workers
		return nil
	}
}

// NewBot creates a new command front end.
func NewBot(renderer *render.Renderer, sender transport.Sender, adminID int64, opts ...Option) (*Bot, error) {
	if renderer == nil {
		return nil, ErrRendererRequired
	}
	if sender == nil {
		return nil, ErrSenderRequired
	}

	b := &Bot{
		renderer: renderer,
		sender:   sender,
		adminID:  adminID,
		workers:  defaultWorkers,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Run consumes commands until the channel closes or the context is
// canceled. Commands are handled on a worker pool; in-flight handlers are
// drained before Run returns.
func (b *Bot) Run(ctx context.Context, commands <-chan transport.Command) error {
	pool, err := ants.NewPool(b.workers)
	if err != nil {
		return err
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			return ctx.Err()
		case cmd, ok := <-commands:
			if !ok {
				wg.Wait()
				return nil
			}
			wg.Add(1)
			command := cmd
			if err := pool.Submit(func() {
				defer wg.Done()
				b.HandleCommand(ctx, command)
			}); err != nil {
				wg.Done()
				b.logger.Error("failed to submit command", "error", err, "user_id", command.UserID)
			}
		}
	}
}

// HandleCommand dispatches a single command. Unrecognized commands are
// ignored for everyone, admin included; every recognized command produces
// exactly one private reply.
func (b *Bot) HandleCommand(ctx context.Context, cmd transport.Command) {
	name, _, _ := strings.Cut(cmd.Text, " ")
	switch name {
	case "/start", "/post_summary", "/get_videos", "/get_pdfs":
	default:
		b.logger.Debug("ignoring unknown command", "text", cmd.Text, "user_id", cmd.UserID)
		return
	}

	if cmd.UserID != b.adminID {
		b.logger.Warn("unauthorized command", "user_id", cmd.UserID, "command", name)
		if name == "/start" {
			b.reply(ctx, cmd.UserID, replyUnauthorizedBot)
		} else {
			b.reply(ctx, cmd.UserID, replyUnauthorizedCommand)
		}
		return
	}

	switch name {
	case "/start":
		b.reply(ctx, cmd.UserID, b.renderer.StartNotice())
	case "/post_summary":
		b.postSummary(ctx, cmd.UserID)
	case "/get_videos":
		b.sendListing(ctx, cmd.UserID, core.MediaKindVideo)
	case "/get_pdfs":
		b.sendListing(ctx, cmd.UserID, core.MediaKindPDF)
	}
}

// postSummary renders the full digest and posts it to the channel. The
// admin gets a private confirmation or a fixed failure notice; the summary
// itself goes to the channel only.
func (b *Bot) postSummary(ctx context.Context, userID int64) {
	text, err := b.renderer.FullSummary(ctx)
	if errors.Is(err, render.ErrNoRecords) {
		b.reply(ctx, userID, replyNoRecords)
		return
	}
	if err != nil {
		b.logger.Error("failed to render summary", "error", err)
		b.reply(ctx, userID, replySummaryFailed)
		return
	}

	if err := b.sender.SendText(ctx, text); err != nil {
		b.logger.Error("failed to post summary", "error", err)
		b.reply(ctx, userID, replySummaryFailed)
		return
	}

	b.reply(ctx, userID, replySummaryPosted)
}

// sendListing replies privately with the uncapped per-kind listing.
func (b *Bot) sendListing(ctx context.Context, userID int64, kind core.MediaKind) {
	text, err := b.renderer.KindListing(ctx, kind)
	switch {
	case errors.Is(err, render.ErrNoVideos):
		b.reply(ctx, userID, replyNoVideos)
		return
	case errors.Is(err, render.ErrNoPDFs):
		b.reply(ctx, userID, replyNoPDFs)
		return
	case err != nil:
		b.logger.Error("failed to render listing", "error", err, "kind", kind)
		b.reply(ctx, userID, replyListingFailed)
		return
	}

	b.reply(ctx, userID, text)
}

func (b *Bot) reply(ctx context.Context, userID int64, text string) {
	if err := b.sender.ReplyText(ctx, userID, text); err != nil {
		b.logger.Error("failed to send reply", "error", err, "user_id", userID)
	}
}
