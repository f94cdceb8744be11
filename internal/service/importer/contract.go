//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package importer

import (
	"context"
	"time"

	"github.com/archivehq/whatsapp-import/internal/model"
)

type SnippetRepo interface {
	SaveSnippets(ctx context.Context, snippets []model.Snippet) error
	LatestTimestamp(ctx context.Context, groupName string) (time.Time, error)
}

type BlobClient interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
