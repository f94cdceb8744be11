package model

import "strings"

const groupJIDSuffix = "@g.us"

// MessageEnvelope is one decoded event from the live feed. The protocol
// adapter has already resolved addressing, push name and (for groups) the
// group subject before publishing it to the bus.
type MessageEnvelope struct {
	Key              MessageKey     `json:"key"`
	PushName         string         `json:"push_name,omitempty"`
	MessageTimestamp int64          `json:"message_timestamp"`
	GroupSubject     string         `json:"group_subject,omitempty"`
	Message          MessagePayload `json:"message"`
}

type MessageKey struct {
	RemoteJID   string `json:"remote_jid"`
	Participant string `json:"participant,omitempty"`
	FromMe      bool   `json:"from_me,omitempty"`
}

// MessagePayload is a tagged union over the message shapes the feed
// delivers. Exactly one variant is expected to be set.
type MessagePayload struct {
	Conversation *string          `json:"conversation,omitempty"`
	ExtendedText *ExtendedText    `json:"extended_text_message,omitempty"`
	Image        *MediaContent    `json:"image_message,omitempty"`
	Video        *MediaContent    `json:"video_message,omitempty"`
	Document     *DocumentContent `json:"document_message,omitempty"`
	Audio        *MediaContent    `json:"audio_message,omitempty"`
	Location     *LocationContent `json:"location_message,omitempty"`
}

type ExtendedText struct {
	Text string `json:"text"`
}

type MediaContent struct {
	Caption  string `json:"caption,omitempty"`
	MimeType string `json:"mimetype,omitempty"`
	// URL points at the adapter's media gateway for download.
	URL string `json:"url"`
}

type DocumentContent struct {
	Title    string `json:"title,omitempty"`
	MimeType string `json:"mimetype,omitempty"`
	URL      string `json:"url"`
}

type LocationContent struct {
	Latitude  float64 `json:"degrees_latitude"`
	Longitude float64 `json:"degrees_longitude"`
}

// SenderJID returns the participant for group messages, otherwise the
// conversation JID itself.
func (e *MessageEnvelope) SenderJID() string {
	if e.Key.Participant != "" {
		return e.Key.Participant
	}
	return e.Key.RemoteJID
}

// IsGroup is derived from the conversation identifier shape.
func (e *MessageEnvelope) IsGroup() bool {
	return strings.HasSuffix(e.Key.RemoteJID, groupJIDSuffix)
}

// Type resolves the message type from the union variant that is set.
func (p *MessagePayload) Type() MessageType {
	switch {
	case p.Conversation != nil, p.ExtendedText != nil:
		return TextMessageType
	case p.Image != nil:
		return ImageMessageType
	case p.Video != nil:
		return VideoMessageType
	case p.Document != nil:
		return DocumentMessageType
	case p.Audio != nil:
		return AudioMessageType
	case p.Location != nil:
		return LocationMessageType
	default:
		return UnknownMessageType
	}
}

// Content extracts the primary text body per variant.
func (p *MessagePayload) Content() string {
	switch {
	case p.Conversation != nil:
		return *p.Conversation
	case p.ExtendedText != nil:
		return p.ExtendedText.Text
	case p.Image != nil && p.Image.Caption != "":
		return p.Image.Caption
	case p.Video != nil && p.Video.Caption != "":
		return p.Video.Caption
	case p.Document != nil && p.Document.Title != "":
		return p.Document.Title
	case p.Audio != nil:
		return "Voice note"
	case p.Location != nil:
		return "Location shared"
	default:
		return "Message content"
	}
}

// Caption returns the declared caption of a media variant, nil otherwise.
func (p *MessagePayload) Caption() *string {
	var caption string
	switch {
	case p.Image != nil:
		caption = p.Image.Caption
	case p.Video != nil:
		caption = p.Video.Caption
	}
	if caption == "" {
		return nil
	}
	return &caption
}

// Media returns the downloadable attachment of a media-bearing variant.
func (p *MessagePayload) Media() *MediaContent {
	switch {
	case p.Image != nil:
		return p.Image
	case p.Video != nil:
		return p.Video
	case p.Audio != nil:
		return p.Audio
	case p.Document != nil:
		return &MediaContent{MimeType: p.Document.MimeType, URL: p.Document.URL}
	default:
		return nil
	}
}
