package event

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/archivehq/whatsapp-import/internal/config"
	"github.com/archivehq/whatsapp-import/internal/model"
)

var (
	mimeExtensions = map[string]string{
		"image/jpeg":      "jpg",
		"image/png":       "png",
		"image/gif":       "gif",
		"video/mp4":       "mp4",
		"video/quicktime": "mov",
		"audio/ogg":       "ogg",
		"audio/mpeg":      "mp3",
		"audio/mp4":       "m4a",
		"application/pdf": "pdf",
		"application/msword": "doc",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": "docx",
	}

	typeExtensions = map[model.MessageType]string{
		model.ImageMessageType:    "jpg",
		model.VideoMessageType:    "mp4",
		model.AudioMessageType:    "ogg",
		model.DocumentMessageType: "pdf",
	}

	typeMimes = map[model.MessageType]string{
		model.ImageMessageType:    "image/jpeg",
		model.VideoMessageType:    "video/mp4",
		model.AudioMessageType:    "audio/ogg",
		model.DocumentMessageType: "application/octet-stream",
	}
)

// Handler normalizes one live feed event into a record and inserts it.
// Events are independent units of work: any failure is logged and the event
// dropped, so the consumer keeps processing the feed.
type Handler struct {
	repo        SnippetRepo
	blob        BlobClient
	media       MediaClient
	validator   Validator
	storagePath string
}

func New(repo SnippetRepo, blob BlobClient, media MediaClient, validator Validator, storagePath string) *Handler {
	return &Handler{
		repo:        repo,
		blob:        blob,
		media:       media,
		validator:   validator,
		storagePath: storagePath,
	}
}

func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("ProcessMessageEvent")

	var envelope model.MessageEnvelope
	if err := json.Unmarshal(in, &envelope); err != nil {
		logger.Error(fmt.Sprintf("failed to decode message event: %v", err))
		return
	}

	if err := h.validator.ValidateEnvelope(&envelope); err != nil {
		logger.Error(fmt.Sprintf("invalid message event: %v", err))
		return
	}

	snippet := h.buildSnippet(ctx, &envelope, in)

	if err := h.repo.SaveSnippet(ctx, snippet); err != nil {
		logger.Error(fmt.Sprintf("failed to save snippet: %v", err))
		return
	}
}

func (h *Handler) buildSnippet(ctx context.Context, e *model.MessageEnvelope, raw []byte) *model.Snippet {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	messageType := e.Message.Type()

	snippet := &model.Snippet{
		SenderJID:   e.SenderJID(),
		Timestamp:   time.Unix(e.MessageTimestamp, 0).UTC(),
		MessageType: messageType,
		Content:     e.Message.Content(),
		Caption:     e.Message.Caption(),
		IsGroup:     e.IsGroup(),
		RawMessage:  json.RawMessage(raw),
	}

	if e.PushName != "" {
		pushName := e.PushName
		snippet.SenderName = &pushName
	}

	if snippet.IsGroup && e.GroupSubject != "" {
		subject := e.GroupSubject
		snippet.GroupName = &subject
	}

	// Media-bearing events are resolved synchronously: the inserted record
	// always carries a public URL or the failure placeholder, never a
	// pending reference.
	if media := e.Message.Media(); media != nil {
		url, err := h.resolveMedia(ctx, media, messageType, snippet.Timestamp)
		if err != nil {
			logger.Error(fmt.Sprintf("media resolution failed: %v", err))
			snippet.Content = model.MediaFailedContent
			return snippet
		}
		snippet.Content = url
		snippet.MediaURL = &url
	}

	return snippet
}

func (h *Handler) resolveMedia(ctx context.Context, media *model.MediaContent, messageType model.MessageType, ts time.Time) (string, error) {
	data, err := h.media.Download(ctx, media.URL)
	if err != nil {
		return "", fmt.Errorf("failed to download media: %w", err)
	}

	key := fmt.Sprintf("%s/%s_%s.%s",
		h.storagePath,
		uuid.New().String(),
		sanitizeTimestamp(ts),
		extensionFor(media.MimeType, messageType),
	)

	url, err := h.blob.Upload(ctx, key, data, mimeTypeFor(media.MimeType, messageType))
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrMediaUploadFailed, err)
	}

	return url, nil
}

// sanitizeTimestamp makes an RFC 3339 instant safe for object keys.
func sanitizeTimestamp(ts time.Time) string {
	return strings.NewReplacer(":", "-", ".", "-").Replace(ts.Format(time.RFC3339))
}

func extensionFor(mimeType string, messageType model.MessageType) string {
	if ext, ok := mimeExtensions[mimeType]; ok {
		return ext
	}
	if ext, ok := typeExtensions[messageType]; ok {
		return ext
	}
	return "bin"
}

func mimeTypeFor(mimeType string, messageType model.MessageType) string {
	if mimeType != "" {
		return mimeType
	}
	if mime, ok := typeMimes[messageType]; ok {
		return mime
	}
	return "application/octet-stream"
}
