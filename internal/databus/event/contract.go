//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package event

import (
	"context"

	"github.com/archivehq/whatsapp-import/internal/model"
)

type SnippetRepo interface {
	SaveSnippet(ctx context.Context, snippet *model.Snippet) error
}

type BlobClient interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type MediaClient interface {
	Download(ctx context.Context, url string) ([]byte, error)
}

type Validator interface {
	ValidateEnvelope(e *model.MessageEnvelope) error
}
