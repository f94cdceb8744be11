package validator

import (
	"fmt"
	"strings"

	"github.com/archivehq/whatsapp-import/internal/model"
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateEnvelope checks that an inbound live event carries enough to build
// a record. Anything rejected here is dropped as an isolated event failure.
func (v *Validator) ValidateEnvelope(e *model.MessageEnvelope) error {
	if strings.TrimSpace(e.Key.RemoteJID) == "" {
		return fmt.Errorf("remote_jid is required")
	}

	if e.MessageTimestamp <= 0 {
		return fmt.Errorf("message_timestamp must be positive, got %d", e.MessageTimestamp)
	}

	if e.Message.Type() == model.UnknownMessageType {
		return fmt.Errorf("unsupported message payload")
	}

	if media := e.Message.Media(); media != nil && strings.TrimSpace(media.URL) == "" {
		return fmt.Errorf("media message without download url")
	}

	return nil
}
