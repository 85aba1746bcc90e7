package gateway

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mediashelf/mediashelf/transport"
)

// Event names on the gateway wire.
const (
	eventSubscribe      = "subscribe"
	eventChannelMessage = "channel_message"
	eventCommand        = "command"
	eventSendMessage    = "send_message"
	eventReply          = "reply"
)

// envelope is the JSON frame exchanged with the chat server.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type subscribeData struct {
	Token   string `json:"token"`
	Channel string `json:"channel"`
}

type sendMessageData struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

type replyData struct {
	UserID int64  `json:"user_id"`
	Text   string `json:"text"`
}

type wireAttachment struct {
	FileID   string `json:"file_id"`
	FileName string `json:"file_name,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

type wireMessage struct {
	ID       int64           `json:"id"`
	Caption  string          `json:"caption,omitempty"`
	Video    *wireAttachment `json:"video,omitempty"`
	Document *wireAttachment `json:"document,omitempty"`
}

type wireCommand struct {
	UserID  int64  `json:"user_id"`
	Command string `json:"command"`
}

func encodeEnvelope(event string, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Event: event, Data: raw})
}

func decodeEnvelope(raw []byte) (event string, data json.RawMessage, err error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", nil, err
	}
	if strings.TrimSpace(env.Event) == "" {
		return "", nil, fmt.Errorf("envelope without event name")
	}
	return env.Event, env.Data, nil
}

func decodeChannelMessage(data json.RawMessage) (transport.Message, error) {
	var wire wireMessage
	if err := json.Unmarshal(data, &wire); err != nil {
		return transport.Message{}, err
	}
	return transport.Message{
		ID:       wire.ID,
		Caption:  wire.Caption,
		Video:    attachmentFromWire(wire.Video),
		Document: attachmentFromWire(wire.Document),
	}, nil
}

func decodeCommand(data json.RawMessage) (transport.Command, error) {
	var wire wireCommand
	if err := json.Unmarshal(data, &wire); err != nil {
		return transport.Command{}, err
	}
	return transport.Command{
		UserID: wire.UserID,
		Text:   strings.TrimSpace(wire.Command),
	}, nil
}

func attachmentFromWire(wire *wireAttachment) *transport.Attachment {
	if wire == nil {
		return nil
	}
	return &transport.Attachment{
		FileID:   wire.FileID,
		FileName: wire.FileName,
		MimeType: wire.MimeType,
		Size:     wire.Size,
	}
}
