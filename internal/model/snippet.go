package model

import (
	"encoding/json"
	"time"
)

type MessageType string

const (
	TextMessageType     MessageType = "text"
	ImageMessageType    MessageType = "image"
	VideoMessageType    MessageType = "video"
	AudioMessageType    MessageType = "audio"
	DocumentMessageType MessageType = "document"
	LocationMessageType MessageType = "location"
	UnknownMessageType  MessageType = "unknown"
)

const (
	// MediaOmittedContent replaces the body of messages whose attachment was
	// not included in the export.
	MediaOmittedContent = "Media not available in export"
	// MediaFailedContent replaces the body when a declared attachment could
	// not be resolved to a public URL (file missing or upload rejected).
	MediaFailedContent = "Media upload failed"
)

// Snippet is one normalized message record as persisted in whatsapp_snippets.
type Snippet struct {
	ID          int64           `db:"id" json:"id"`
	SenderJID   string          `db:"sender_jid" json:"sender_jid"`
	Timestamp   time.Time       `db:"timestamp" json:"timestamp"`
	MessageType MessageType     `db:"message_type" json:"message_type"`
	Content     string          `db:"content" json:"content"`
	SenderName  *string         `db:"sender_name" json:"sender_name,omitempty"`
	Caption     *string         `db:"caption" json:"caption,omitempty"`
	GroupName   *string         `db:"group_name" json:"group_name,omitempty"`
	IsGroup     bool            `db:"is_group" json:"is_group"`
	MediaURL    *string         `db:"media_url" json:"media_url,omitempty"`
	RawMessage  json.RawMessage `db:"raw_message" json:"raw_message,omitempty"`

	// MediaFilename is the marker extracted from a transcript line. It is a
	// parse-time field only: by insert time the filename has been resolved
	// into Content (public URL or failure placeholder).
	MediaFilename string `db:"-" json:"-"`
}

// HasPendingMedia reports whether the record still carries an unresolved
// attachment reference.
func (s *Snippet) HasPendingMedia() bool {
	return s.MediaFilename != ""
}
