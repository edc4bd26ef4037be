// Package postgres stores board documents as JSONB rows.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bnema/neon-boards/internal/adapters/documents"
	"github.com/bnema/neon-boards/internal/domain"
	"github.com/bnema/neon-boards/internal/ports"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrateTimeout = time.Minute

type Store struct {
	db *sql.DB
}

var _ ports.DocumentStore = (*Store)(nil)

func Open(ctx context.Context, databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetMaxIdleConns(4)
	db.SetMaxOpenConns(8)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return db, nil
}

// Migrate applies the embedded schema migrations.
func Migrate(ctx context.Context, db *sql.DB, log *slog.Logger) error {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("configure goose: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, migrateTimeout)
	defer cancel()

	log.Info("applying migrations")
	if err := goose.UpContext(runCtx, db, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	log.Info("migrations applied")

	return nil
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Query(ctx context.Context, q ports.DocumentQuery) (domain.BoardCollection, error) {
	if err := documents.Validate(q); err != nil {
		return nil, err
	}

	var body []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE collection = $1 AND account_id = $2 AND document_id = $3`,
		q.Collection, string(q.AccountID), q.DocumentID,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select document %s/%s: %w", q.AccountID, q.DocumentID, err)
	}

	return documents.Decode(body)
}

func (s *Store) Save(ctx context.Context, q ports.DocumentQuery, boards domain.BoardCollection) error {
	if err := documents.Validate(q); err != nil {
		return err
	}

	body, err := documents.Encode(boards)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (collection, account_id, document_id, body, updated_at)
		VALUES ($1, $2, $3, $4::jsonb, now())
		ON CONFLICT (collection, account_id, document_id)
		DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`,
		q.Collection, string(q.AccountID), q.DocumentID, string(body),
	)
	if err != nil {
		return fmt.Errorf("upsert document %s/%s: %w", q.AccountID, q.DocumentID, err)
	}

	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
