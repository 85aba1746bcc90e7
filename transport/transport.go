package transport

import (
	"context"
	"io"
)

// Attachment describes a binary payload carried by a channel message.
// Only the opaque reference is kept; the binary itself stays with the
// transport and can be fetched later through BinaryFetcher.
type Attachment struct {
	FileID   string // Opaque payload reference
	FileName string
	MimeType string
	Size     int64
}

// Message is one incoming channel message. A message carries at most one
// attachment; Video and Document are never both set by the source stream.
type Message struct {
	ID       int64
	Caption  string
	Video    *Attachment
	Document *Attachment
}

// Command is an operator-triggered action received from the chat transport.
type Command struct {
	UserID int64
	Text   string // e.g. "/post_summary"
}

// Stream delivers channel messages in arrival order. The channel is closed
// when the underlying session ends.
type Stream interface {
	Messages() <-chan Message
}

// CommandSource delivers operator commands.
type CommandSource interface {
	Commands() <-chan Command
}

// Sender delivers rendered text back over the chat transport.
type Sender interface {
	// SendText posts text to the monitored channel.
	SendText(ctx context.Context, text string) error

	// ReplyText sends text to one operator.
	ReplyText(ctx context.Context, userID int64, text string) error
}

// BinaryFetcher retrieves the binary content behind a payload reference.
type BinaryFetcher interface {
	FetchBinary(ctx context.Context, ref string) (io.ReadCloser, error)
}

// LinkResolver renders a channel-relative locator for an origin message,
// suitable for embedding in digest text.
type LinkResolver interface {
	MessageLink(messageID int64) string
}
