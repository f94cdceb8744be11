//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"
	"time"
)

type DBRepo interface {
	CountSnippets(ctx context.Context) (int64, error)
	LatestTimestamp(ctx context.Context, groupName string) (time.Time, error)
}
