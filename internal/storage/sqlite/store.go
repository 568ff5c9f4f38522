// Package sqlite provides a SQLite-backed export store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/gamedata/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/gamedata/internal/storage"
	"github.com/louisbranch/gamedata/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists exported game data in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var (
	_ storage.NPCClassExporter = (*Store)(nil)
	_ storage.NPCClassReader   = (*Store)(nil)
)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite export store and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ReplaceNPCClasses swaps every stored class for records in one transaction.
func (s *Store) ReplaceNPCClasses(ctx context.Context, records []storage.NPCClassRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	for _, record := range records {
		if strings.TrimSpace(record.ID) == "" {
			return fmt.Errorf("npc class id is required")
		}
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM npc_classes`); err != nil {
		return fmt.Errorf("clear npc classes: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO npc_classes (
		   id,
		   position,
		   name,
		   job_description,
		   common,
		   bonus_str,
		   bonus_dex,
		   bonus_int,
		   bonus_per,
		   exported_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare npc class insert: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		exportedAt := record.ExportedAt
		if exportedAt.IsZero() {
			exportedAt = time.Now()
		}
		if _, err := stmt.ExecContext(ctx,
			record.ID,
			record.Position,
			record.Name,
			record.JobDescription,
			boolToInt(record.Common),
			orZero(record.BonusStr),
			orZero(record.BonusDex),
			orZero(record.BonusInt),
			orZero(record.BonusPer),
			toMillis(exportedAt),
		); err != nil {
			return fmt.Errorf("insert npc class %s: %w", record.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	return nil
}

// ListNPCClasses returns the stored classes in position order.
func (s *Store) ListNPCClasses(ctx context.Context) ([]storage.NPCClassRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `SELECT id, position, name, job_description, common,
		bonus_str, bonus_dex, bonus_int, bonus_per, exported_at
		FROM npc_classes ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("list npc classes: %w", err)
	}
	defer rows.Close()

	var records []storage.NPCClassRecord
	for rows.Next() {
		var (
			record     storage.NPCClassRecord
			common     int64
			exportedAt int64
		)
		if err := rows.Scan(
			&record.ID,
			&record.Position,
			&record.Name,
			&record.JobDescription,
			&common,
			&record.BonusStr,
			&record.BonusDex,
			&record.BonusInt,
			&record.BonusPer,
			&exportedAt,
		); err != nil {
			return nil, fmt.Errorf("scan npc class: %w", err)
		}
		record.Common = common != 0
		record.ExportedAt = fromMillis(exportedAt)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate npc classes: %w", err)
	}
	return records, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func orZero(shape string) string {
	if shape == "" {
		return "0"
	}
	return shape
}
