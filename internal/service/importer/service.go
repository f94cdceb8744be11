package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/archivehq/whatsapp-import/internal/config"
	"github.com/archivehq/whatsapp-import/internal/model"
	"github.com/archivehq/whatsapp-import/internal/parser"
)

const sampleSize = 5

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".opus": "audio/opus",
	".pdf":  "application/pdf",
}

// Service sequences a batch run: parse transcript, apply the watermark
// filter and batch limit, upload media, bulk-insert the records.
type Service struct {
	repo SnippetRepo
	blob BlobClient
	cfg  *config.Config
}

func New(repo SnippetRepo, blob BlobClient, cfg *config.Config) *Service {
	return &Service{
		repo: repo,
		blob: blob,
		cfg:  cfg,
	}
}

// Summary reports per-stage counts of one run.
type Summary struct {
	Parsed    int
	New       int
	Processed int

	Text      int
	Images    int
	Videos    int
	Audio     int
	Documents int
	Other     int

	Uploaded     int
	UploadFailed int
	Inserted     int

	Cutoff time.Time
	// Sample holds the first records of a dry run for rendering.
	Sample []model.Snippet
}

// Run executes the import. In dry-run mode parsing, filtering and
// classification happen exactly as in a live run, but neither the blob
// store nor the record store is written to.
func (s *Service) Run(ctx context.Context, dryRun bool, limit int) (*Summary, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Run")

	messages, warnings, err := parser.ParseChatFile(s.cfg.Import.ChatFolder, s.cfg.Import.ChatFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse chat file: %w", err)
	}
	for _, w := range warnings {
		logger.Error(w)
	}

	cutoff, err := s.resolveCutoff(ctx)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = s.cfg.Import.BatchLimit
	}
	batch := FilterNew(messages, cutoff, limit)

	summary := &Summary{
		Parsed:    len(messages),
		New:       len(FilterNew(messages, cutoff, 0)),
		Processed: len(batch),
		Cutoff:    cutoff,
	}
	countTypes(batch, summary)

	logger.Info(fmt.Sprintf("parsed %d messages, %d new after cutoff %s, processing %d",
		summary.Parsed, summary.New, cutoff.Format(time.RFC3339), summary.Processed))

	if len(batch) == 0 {
		return summary, nil
	}

	if dryRun {
		n := len(batch)
		if n > sampleSize {
			n = sampleSize
		}
		summary.Sample = batch[:n]
		return summary, nil
	}

	groupName := s.cfg.Import.GroupName
	for i := range batch {
		batch[i].GroupName = &groupName
		batch[i].IsGroup = true

		if !batch[i].HasPendingMedia() {
			continue
		}

		url, err := s.uploadMedia(ctx, batch[i].MediaFilename)
		if err != nil {
			// One bad media file must not block unrelated records.
			logger.Error(fmt.Sprintf("media resolution failed for %s: %v", batch[i].MediaFilename, err))
			batch[i].Content = model.MediaFailedContent
			summary.UploadFailed++
			continue
		}
		batch[i].Content = url
		batch[i].MediaURL = &url
		summary.Uploaded++
	}

	if err := s.repo.SaveSnippets(ctx, batch); err != nil {
		return summary, fmt.Errorf("%w: %v", model.ErrBulkInsertFailed, err)
	}
	summary.Inserted = len(batch)

	logger.Info(fmt.Sprintf("imported %d messages (%d media uploaded, %d failed)",
		summary.Inserted, summary.Uploaded, summary.UploadFailed))

	return summary, nil
}

// resolveCutoff prefers the configured watermark and falls back to the
// newest stored timestamp for the group.
func (s *Service) resolveCutoff(ctx context.Context) (time.Time, error) {
	cutoff, err := s.cfg.Import.CutoffInstant()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse configured cutoff: %w", err)
	}
	if !cutoff.IsZero() {
		return cutoff, nil
	}

	cutoff, err = s.repo.LatestTimestamp(ctx, s.cfg.Import.GroupName)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to derive cutoff from store: %w", err)
	}
	return cutoff, nil
}

func (s *Service) uploadMedia(ctx context.Context, filename string) (string, error) {
	path := filepath.Join(s.cfg.Import.ChatFolder, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", model.ErrMediaNotFound, filename)
		}
		return "", fmt.Errorf("failed to read media file %s: %w", filename, err)
	}

	key := s.cfg.Storage.Path + "/" + filename
	url, err := s.blob.Upload(ctx, key, data, contentTypeFor(filename))
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrMediaUploadFailed, err)
	}

	return url, nil
}

func contentTypeFor(filename string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return ct
	}
	return "application/octet-stream"
}

func countTypes(batch []model.Snippet, summary *Summary) {
	for _, s := range batch {
		switch s.MessageType {
		case model.TextMessageType:
			summary.Text++
		case model.ImageMessageType:
			summary.Images++
		case model.VideoMessageType:
			summary.Videos++
		case model.AudioMessageType:
			summary.Audio++
		case model.DocumentMessageType:
			summary.Documents++
		default:
			summary.Other++
		}
	}
}
