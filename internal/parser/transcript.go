package parser

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/archivehq/whatsapp-import/internal/model"
)

// headerRe matches the start of a message:
// "D/M/YY, H:MM am - Sender: Text" with case-insensitive meridiem.
// The sender label is terminated by the first colon.
var headerRe = regexp.MustCompile(`(?i)^(\d{1,2}/\d{1,2}/\d{2}),\s+(\d{1,2}:\d{2})\s+(am|pm)\s+-\s+([^:]+):\s*(.*)$`)

// ParseChatFile reads and parses a transcript export from the configured
// chat folder. A missing file is fatal for the run.
func ParseChatFile(chatFolder, chatFile string) ([]model.Snippet, []string, error) {
	path := filepath.Join(chatFolder, chatFile)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", model.ErrChatFileNotFound, path)
		}
		return nil, nil, fmt.Errorf("failed to open chat file: %w", err)
	}
	defer f.Close()

	return ParseTranscript(f)
}

// ParseTranscript consumes a transcript line by line and emits normalized
// message records in line order.
//
// The parser is a two-state machine: a header line always finalizes the
// accumulating record and starts a new one; any other non-blank line is a
// continuation. The first non-empty continuation after an unclaimed media
// marker becomes that record's caption; every other continuation appends to
// the content with a newline. Exports do not escape embedded newlines, so
// continuation detection is the only boundary signal there is.
//
// Returned warnings describe lines that matched the header grammar but
// carried an unusable timestamp; those lines are consumed without producing
// a record.
func ParseTranscript(r io.Reader) ([]model.Snippet, []string, error) {
	var (
		messages []model.Snippet
		warnings []string
		current  *model.Snippet
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	for scanner.Scan() {
		line := stripInvisible(scanner.Text())

		if m := headerRe.FindStringSubmatch(line); m != nil {
			if current != nil {
				messages = append(messages, *current)
			}

			timestamp, err := NormalizeTimestamp(m[1], m[2], m[3])
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("skipping message %q: %v", line, err))
				current = nil
				continue
			}

			sender := strings.TrimSpace(m[4])
			messageType, mediaFilename, content := ClassifyContent(m[5])

			raw, _ := json.Marshal(map[string]string{"original": line})
			senderName := sender
			current = &model.Snippet{
				Timestamp:     timestamp,
				SenderName:    &senderName,
				SenderJID:     SenderID(sender),
				MessageType:   messageType,
				Content:       content,
				MediaFilename: mediaFilename,
				RawMessage:    raw,
			}
			continue
		}

		if current == nil || strings.TrimSpace(line) == "" {
			continue
		}

		// One caption line per media record; further continuations fold
		// into the content.
		if current.HasPendingMedia() && current.Caption == nil {
			caption := strings.TrimSpace(line)
			current.Caption = &caption
		} else {
			current.Content += "\n" + strings.TrimSpace(line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, warnings, fmt.Errorf("failed to scan transcript: %w", err)
	}

	if current != nil {
		messages = append(messages, *current)
	}

	return messages, warnings, nil
}

// stripInvisible removes direction marks, zero-width spaces and BOMs that
// WhatsApp embeds in exported lines.
func stripInvisible(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\u200E', '\u200F', '\u200B', '\u200C', '\u200D', '\uFEFF':
			return -1
		default:
			return r
		}
	}, s)
}
