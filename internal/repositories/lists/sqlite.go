package lists

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"path/filepath"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
	"github.com/KirkDiggler/crusade-api/internal/pkg/sqlitemigrate"
	"github.com/KirkDiggler/crusade-api/internal/repositories/lists/migrations"
)

const sqliteDSNParams = "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"

const listColumns = `id, owner_id, name, army, faction, allegiance,
	points_limit, total_points, detachments, created_at, updated_at`

// SQLite persists lists in a local SQLite file
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens the database at path and applies the embedded migrations
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("storage path is required")
	}

	db, err := sql.Open("sqlite", filepath.Clean(path)+sqliteDSNParams)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to ping sqlite db")
	}
	if err := sqlitemigrate.Apply(ctx, db, migrations.FS, ""); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to run migrations")
	}

	return &SQLite{db: db}, nil
}

// Close closes the database handle
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLite) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errListIDEmpty)
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+listColumns+` FROM army_lists WHERE id = ?`, input.ID)
	l, err := scanList(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("list with ID %s not found", input.ID)
		}
		return nil, wrapSQLite(err, "failed to get list")
	}

	return &GetOutput{List: l}, nil
}

func (s *SQLite) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateList(input.List); err != nil {
		return nil, err
	}
	l := input.List

	detachments, err := json.Marshal(l.Detachments)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal detachments")
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO army_lists (`+listColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			owner_id = excluded.owner_id,
			name = excluded.name,
			army = excluded.army,
			faction = excluded.faction,
			allegiance = excluded.allegiance,
			points_limit = excluded.points_limit,
			total_points = excluded.total_points,
			detachments = excluded.detachments,
			updated_at = excluded.updated_at`,
		l.ID, l.OwnerID, l.Name, l.Army, l.Faction, l.Allegiance,
		l.PointsLimit, l.TotalPoints, string(detachments), l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return nil, wrapSQLite(err, "failed to save list")
	}

	return &SaveOutput{}, nil
}

func (s *SQLite) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errListIDEmpty)
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM army_lists WHERE id = ?`, input.ID)
	if err != nil {
		return nil, wrapSQLite(err, "failed to delete list")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read affected rows")
	}
	if n == 0 {
		return nil, errors.NotFoundf("list with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (s *SQLite) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerEmpty)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT `+listColumns+` FROM army_lists
		WHERE owner_id = ?
		ORDER BY updated_at DESC, id ASC`, input.OwnerID)
	if err != nil {
		return nil, wrapSQLite(err, "failed to list owner lists")
	}
	defer func() { _ = rows.Close() }()

	out := []*armylist.List{}
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, wrapSQLite(err, "failed to scan list")
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapSQLite(err, "failed to iterate lists")
	}

	return &ListByOwnerOutput{Lists: out}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanList(row rowScanner) (*armylist.List, error) {
	var (
		l           armylist.List
		detachments string
	)
	if err := row.Scan(
		&l.ID, &l.OwnerID, &l.Name, &l.Army, &l.Faction, &l.Allegiance,
		&l.PointsLimit, &l.TotalPoints, &detachments, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(detachments), &l.Detachments); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal detachments")
	}
	return &l, nil
}

// wrapSQLite maps lock contention to Unavailable so callers can retry
func wrapSQLite(err error, message string) error {
	var sqliteErr *msqlite.Error
	if stderrors.As(err, &sqliteErr) {
		switch sqliteErr.Code() & 0xff {
		case sqlite3lib.SQLITE_BUSY, sqlite3lib.SQLITE_LOCKED:
			return errors.WrapWithCode(err, errors.CodeUnavailable, message)
		}
	}
	return errors.Wrap(err, message)
}

var (
	_ Repository = (*SQLite)(nil)
	_ Repository = (*redisRepository)(nil)
)
