package importer

import (
	"time"

	"github.com/archivehq/whatsapp-import/internal/model"
)

// FilterNew partitions parsed records against the watermark: only records
// strictly after the cutoff survive, in original order. A record exactly at
// the cutoff counts as already imported, which makes re-runs idempotent.
// A positive limit truncates from the head.
func FilterNew(snippets []model.Snippet, cutoff time.Time, limit int) []model.Snippet {
	var fresh []model.Snippet
	for _, s := range snippets {
		if !s.Timestamp.After(cutoff) {
			continue
		}
		fresh = append(fresh, s)
		if limit > 0 && len(fresh) == limit {
			break
		}
	}
	return fresh
}
