package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mediashelf/mediashelf/transport"
)

// ErrNotConnected is returned by send operations while no session is up.
var ErrNotConnected = errors.New("gateway is not connected")

// Options tunes the gateway session.
type Options struct {
	HandshakeTimeout time.Duration
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	PingInterval     time.Duration
	InitialBackoff   time.Duration
	MaxBackoff       time.Duration
}

func (o Options) withDefaults() Options {
	if o.HandshakeTimeout <= 0 {
		o.HandshakeTimeout = 10 * time.Second
	}
	if o.ReadTimeout <= 0 {
		o.ReadTimeout = 60 * time.Second
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = 10 * time.Second
	}
	if o.PingInterval <= 0 {
		o.PingInterval = 25 * time.Second
	}
	if o.InitialBackoff <= 0 {
		o.InitialBackoff = 500 * time.Millisecond
	}
	if o.MaxBackoff <= 0 {
		o.MaxBackoff = 10 * time.Second
	}
	return o
}

// Gateway is a websocket client for the chat server. It implements
// transport.Stream, transport.CommandSource, transport.Sender,
// transport.BinaryFetcher, and transport.LinkResolver.
type Gateway struct {
	wsURL   string
	token   string
	channel string
	opts    Options
	logger  *slog.Logger

	httpClient *http.Client
	fileBase   string // HTTP base URL for payload fetches, derived from wsURL

	messages chan transport.Message
	commands chan transport.Command

	mu   sync.Mutex
	conn *websocket.Conn
}

var (
	_ transport.Stream        = (*Gateway)(nil)
	_ transport.CommandSource = (*Gateway)(nil)
	_ transport.Sender        = (*Gateway)(nil)
	_ transport.BinaryFetcher = (*Gateway)(nil)
	_ transport.LinkResolver  = (*Gateway)(nil)
)

// New creates a Gateway for the given websocket URL, auth token, and
// monitored channel name.
func New(wsURL, token, channel string, opts Options, logger *slog.Logger) (*Gateway, error) {
	if wsURL == "" {
		return nil, fmt.Errorf("gateway URL is required")
	}
	if channel == "" {
		return nil, fmt.Errorf("channel is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	fileBase, err := fileBaseFromWS(wsURL)
	if err != nil {
		return nil, err
	}

	return &Gateway{
		wsURL:      wsURL,
		token:      token,
		channel:    channel,
		opts:       opts.withDefaults(),
		logger:     logger,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		fileBase:   fileBase,
		messages:   make(chan transport.Message, 16),
		commands:   make(chan transport.Command, 16),
	}, nil
}

// Messages returns the incoming channel-message stream.
func (g *Gateway) Messages() <-chan transport.Message {
	return g.messages
}

// Commands returns the operator command stream.
func (g *Gateway) Commands() <-chan transport.Command {
	return g.commands
}

// MessageLink renders the channel-relative locator for an origin message.
func (g *Gateway) MessageLink(messageID int64) string {
	return fmt.Sprintf("https://t.me/%s/%d", g.channel, messageID)
}

// Run connects to the chat server and pumps events into the message and
// command streams until ctx is cancelled. Dropped sessions are re-dialed
// with exponential backoff. The streams are closed on return.
func (g *Gateway) Run(ctx context.Context) error {
	defer close(g.messages)
	defer close(g.commands)

	backoff := g.opts.InitialBackoff
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err := g.runOnce(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		g.logger.Warn("gateway session ended, reconnecting", "err", err, "backoff", backoff)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		if backoff < g.opts.MaxBackoff {
			backoff *= 2
			if backoff > g.opts.MaxBackoff {
				backoff = g.opts.MaxBackoff
			}
		}
	}
}

// runOnce dials one session, authenticates, subscribes to the channel, and
// reads envelopes until the connection drops.
func (g *Gateway) runOnce(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: g.opts.HandshakeTimeout}
	conn, _, err := dialer.DialContext(ctx, g.wsURL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(g.opts.ReadTimeout))
	})

	// Subscribe before publishing the connection: once setConn runs, send
	// operations may write concurrently, and the websocket permits only one
	// data-frame writer at a time.
	if err := g.writeEnvelope(conn, eventSubscribe, subscribeData{Token: g.token, Channel: g.channel}); err != nil {
		return err
	}

	g.setConn(conn)
	defer g.setConn(nil)

	stop := make(chan struct{})
	defer close(stop)
	go g.keepalive(ctx, conn, stop)

	for {
		_ = conn.SetReadDeadline(time.Now().Add(g.opts.ReadTimeout))
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		if err := g.dispatch(ctx, raw); err != nil {
			g.logger.Error("error handling gateway event", "err", err)
		}
	}
}

// keepalive sends protocol pings until the session or the context ends.
// It also closes the connection on shutdown so the read loop unblocks.
func (g *Gateway) keepalive(ctx context.Context, conn *websocket.Conn, stop <-chan struct{}) {
	ticker := time.NewTicker(g.opts.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "shutdown"),
				time.Now().Add(2*time.Second))
			_ = conn.Close()
			return
		case <-stop:
			return
		case <-ticker.C:
			_ = conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(g.opts.WriteTimeout))
		}
	}
}

func (g *Gateway) dispatch(ctx context.Context, raw []byte) error {
	event, data, err := decodeEnvelope(raw)
	if err != nil {
		return err
	}

	switch event {
	case eventChannelMessage:
		msg, err := decodeChannelMessage(data)
		if err != nil {
			return err
		}
		select {
		case g.messages <- msg:
		case <-ctx.Done():
			return ctx.Err()
		}
	case eventCommand:
		cmd, err := decodeCommand(data)
		if err != nil {
			return err
		}
		select {
		case g.commands <- cmd:
		case <-ctx.Done():
			return ctx.Err()
		}
	default:
		// Events this archiver doesn't consume (presence, edits, ...)
	}
	return nil
}

// SendText posts text to the monitored channel.
func (g *Gateway) SendText(ctx context.Context, text string) error {
	return g.send(eventSendMessage, sendMessageData{Channel: g.channel, Text: text})
}

// ReplyText sends text to one operator.
func (g *Gateway) ReplyText(ctx context.Context, userID int64, text string) error {
	return g.send(eventReply, replyData{UserID: userID, Text: text})
}

func (g *Gateway) send(event string, data any) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.conn == nil {
		return ErrNotConnected
	}
	return g.writeEnvelope(g.conn, event, data)
}

// writeEnvelope assumes the caller serializes writes: either via g.mu or by
// owning the connection during session setup.
func (g *Gateway) writeEnvelope(conn *websocket.Conn, event string, data any) error {
	raw, err := encodeEnvelope(event, data)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(g.opts.WriteTimeout))
	return conn.WriteMessage(websocket.TextMessage, raw)
}

func (g *Gateway) setConn(conn *websocket.Conn) {
	g.mu.Lock()
	g.conn = conn
	g.mu.Unlock()
}

// FetchBinary retrieves the binary content behind a payload reference from
// the chat server's file endpoint. The caller must close the reader.
func (g *Gateway) FetchBinary(ctx context.Context, ref string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.fileBase+"/files/"+url.PathEscape(ref), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch binary %s: unexpected status %s", ref, resp.Status)
	}
	return resp.Body, nil
}

// fileBaseFromWS derives the HTTP base URL for file fetches from the
// websocket URL (ws -> http, wss -> https, path dropped).
func fileBaseFromWS(wsURL string) (string, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return "", fmt.Errorf("invalid gateway URL: %w", err)
	}
	switch u.Scheme {
	case "ws":
		u.Scheme = "http"
	case "wss":
		u.Scheme = "https"
	default:
		return "", fmt.Errorf("invalid gateway URL scheme %q", u.Scheme)
	}
	u.Path = ""
	u.RawQuery = ""
	return u.String(), nil
}
