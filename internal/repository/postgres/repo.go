package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/archivehq/whatsapp-import/internal/config"
	"github.com/archivehq/whatsapp-import/internal/model"
)

const snippetsTable = "whatsapp_snippets"

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// SaveSnippets inserts one batch of records in a single statement. The
// statement is atomic: either every record lands or none does.
func (r *Repository) SaveSnippets(ctx context.Context, snippets []model.Snippet) error {
	if len(snippets) == 0 {
		return nil
	}

	query := sq.Insert(snippetsTable).
		Columns(
			"sender_jid",
			"timestamp",
			"message_type",
			"content",
			"sender_name",
			"caption",
			"group_name",
			"is_group",
			"media_url",
			"raw_message",
		).
		PlaceholderFormat(sq.Dollar)

	for _, s := range snippets {
		query = query.Values(
			s.SenderJID,
			s.Timestamp,
			s.MessageType,
			s.Content,
			s.SenderName,
			s.Caption,
			s.GroupName,
			s.IsGroup,
			s.MediaURL,
			s.RawMessage,
		)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("failed to insert snippets: %w", err)
	}

	return nil
}

// SaveSnippet inserts a single live-captured record.
func (r *Repository) SaveSnippet(ctx context.Context, snippet *model.Snippet) error {
	query, args, err := sq.Insert(snippetsTable).
		Columns(
			"sender_jid",
			"timestamp",
			"message_type",
			"content",
			"sender_name",
			"caption",
			"group_name",
			"is_group",
			"media_url",
			"raw_message",
		).
		Values(
			snippet.SenderJID,
			snippet.Timestamp,
			snippet.MessageType,
			snippet.Content,
			snippet.SenderName,
			snippet.Caption,
			snippet.GroupName,
			snippet.IsGroup,
			snippet.MediaURL,
			snippet.RawMessage,
		).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save snippet: %w", err)
	}

	return nil
}

// LatestTimestamp returns the newest stored timestamp for a group, used as
// the watermark when no explicit cutoff is configured. A group with no
// imported rows yields the zero time.
func (r *Repository) LatestTimestamp(ctx context.Context, groupName string) (time.Time, error) {
	query, args, err := sq.Select("timestamp").
		From(snippetsTable).
		Where(sq.Eq{"group_name": groupName}).
		OrderBy("timestamp DESC").
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to build sql query: %v", err)
	}

	var latest time.Time
	err = r.connection.GetContext(ctx, &latest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get latest timestamp: %w", err)
	}

	return latest, nil
}

// CountSnippets reports the total number of stored records.
func (r *Repository) CountSnippets(ctx context.Context) (int64, error) {
	query, args, err := sq.Select("COUNT(*)").
		From(snippetsTable).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var total int64
	err = r.connection.GetContext(ctx, &total, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count snippets: %w", err)
	}

	return total, nil
}
