package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/archivehq/whatsapp-import/internal/client/blob"
	"github.com/archivehq/whatsapp-import/internal/config"
	"github.com/archivehq/whatsapp-import/internal/model"
	db "github.com/archivehq/whatsapp-import/internal/repository/postgres"
	"github.com/archivehq/whatsapp-import/internal/service/importer"
)

var (
	dryRun bool
	limit  int
)

var rootCmd = &cobra.Command{
	Use:   "importer",
	Short: "Import a WhatsApp chat export into the snippet store",
	Long: `importer parses an exported WhatsApp transcript, filters out messages
already imported (watermark cutoff), uploads referenced media to the blob
store and bulk-inserts the new records.`,
	RunE: runImport,
}

func init() {
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "preview the import without writing to storage or database")
	rootCmd.Flags().IntVar(&limit, "limit", 0, "cap on new messages processed (default from IMPORT_BATCH_LIMIT)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	ctx := context.WithValue(cmd.Context(), config.KeyLogger, logger)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	blobClient, err := blob.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open blob store: %w", err)
	}
	defer blobClient.Close()

	svc := importer.New(dbRepo, blobClient, cfg)

	mode := "LIVE IMPORT"
	if dryRun {
		mode = "DRY RUN"
	}
	fmt.Printf("=== WhatsApp Import ===\nMode: %s\n\n", mode)

	summary, err := svc.Run(ctx, dryRun, limit)
	if err != nil {
		return err
	}

	printSummary(summary, dryRun)
	return nil
}

func printSummary(summary *importer.Summary, dryRun bool) {
	fmt.Printf("Parsed:  %d messages\n", summary.Parsed)
	fmt.Printf("New:     %d after cutoff %s\n", summary.New, summary.Cutoff.Format(time.RFC3339))
	fmt.Printf("Batch:   %d (text %d, images %d, videos %d, audio %d, documents %d, other %d)\n",
		summary.Processed, summary.Text, summary.Images, summary.Videos,
		summary.Audio, summary.Documents, summary.Other)

	if dryRun {
		fmt.Println("\nDRY RUN - sample of records that would be imported:")
		for i, s := range summary.Sample {
			printSample(i+1, s)
		}
		fmt.Println("\nDRY RUN COMPLETE - no data was imported")
		return
	}

	fmt.Printf("Uploads: %d uploaded, %d failed\n", summary.Uploaded, summary.UploadFailed)
	fmt.Printf("\nImported %d messages\n", summary.Inserted)
}

func printSample(n int, s model.Snippet) {
	sender := ""
	if s.SenderName != nil {
		sender = *s.SenderName
	}
	fmt.Printf("%d. [%s] %s (%s)\n", n, s.Timestamp.Format(time.RFC3339), sender, s.MessageType)
	if s.MediaFilename != "" {
		fmt.Printf("   Media: %s\n", s.MediaFilename)
	}
	if s.Caption != nil {
		fmt.Printf("   Caption: %s\n", *s.Caption)
	}
	if s.Content != "" && s.MessageType == model.TextMessageType {
		content := s.Content
		if len(content) > 50 {
			content = content[:50] + "..."
		}
		fmt.Printf("   Content: %s\n", content)
	}
}
