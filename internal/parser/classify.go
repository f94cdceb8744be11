package parser

import (
	"regexp"
	"strings"

	"github.com/archivehq/whatsapp-import/internal/model"
)

var mediaMarkerRe = regexp.MustCompile(`(?i)(IMG|VID|AUD|DOC)-[\w-]+\.(jpg|jpeg|png|mp4|mov|opus|pdf|docx?)`)

const mediaOmittedMarker = "<Media omitted>"

// ClassifyContent inspects a message text segment for an embedded media
// filename marker or the export's "omitted" placeholder and assigns a type.
//
// A matched marker clears the content: it is filled in later with the
// uploaded URL or a failure placeholder. Plain text passes through trimmed.
func ClassifyContent(text string) (model.MessageType, string, string) {
	if marker := mediaMarkerRe.FindString(text); marker != "" {
		var messageType model.MessageType
		switch strings.ToUpper(marker[:3]) {
		case "IMG":
			messageType = model.ImageMessageType
		case "VID":
			messageType = model.VideoMessageType
		case "AUD":
			messageType = model.AudioMessageType
		default:
			messageType = model.DocumentMessageType
		}
		return messageType, marker, ""
	}

	if strings.Contains(text, mediaOmittedMarker) {
		return model.UnknownMessageType, "", model.MediaOmittedContent
	}

	return model.TextMessageType, "", strings.TrimSpace(text)
}
