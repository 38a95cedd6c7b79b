package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/SkillSync/aiq/internal/aiq"
)

// timeNow is replaced in tests to pin created_at.
var timeNow = time.Now

// sqliteTimeFormat is fixed width so stored timestamps sort lexically.
const sqliteTimeFormat = "2006-01-02T15:04:05.000000000Z"

// SQLiteStore keeps assessments in a single SQLite file. It suits local
// development and single-node deployments.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite: database path required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("sqlite: create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite: pragma %q: %w", p, err)
		}
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: migration: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS aiq_assessments (
			aiq_assessment_id TEXT PRIMARY KEY,
			user_id           TEXT,
			answers           TEXT NOT NULL,
			capabilities      TEXT NOT NULL,
			aiq_type          TEXT NOT NULL,
			confidence_level  REAL NOT NULL,
			completed_at      TEXT NOT NULL,
			created_at        TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_aiq_assessments_user ON aiq_assessments (user_id, completed_at);
		CREATE INDEX IF NOT EXISTS idx_aiq_assessments_type ON aiq_assessments (aiq_type);
	`)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateAssessment(ctx context.Context, a *Assessment) error {
	answersJSON, err := json.Marshal(a.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	capabilitiesJSON, err := json.Marshal(a.Capabilities)
	if err != nil {
		return fmt.Errorf("marshal capabilities: %w", err)
	}

	id := a.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := timeNow().UTC()
	var userID sql.NullString
	if a.UserID != "" {
		userID = sql.NullString{String: a.UserID, Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO aiq_assessments (aiq_assessment_id, user_id, answers, capabilities,
			aiq_type, confidence_level, completed_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id.String(), userID, string(answersJSON), string(capabilitiesJSON),
		string(a.Type), a.Confidence,
		a.CompletedAt.UTC().Format(sqliteTimeFormat), createdAt.Format(sqliteTimeFormat),
	)
	if err != nil {
		return err
	}
	a.ID = id
	a.CreatedAt = createdAt
	return nil
}

func (s *SQLiteStore) GetAssessment(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+assessmentColumns+`
		FROM aiq_assessments WHERE aiq_assessment_id = ?`, id.String())
	a, err := scanSQLiteAssessment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *SQLiteStore) ListAssessments(ctx context.Context, filter AssessmentFilter) ([]*Assessment, error) {
	query := `SELECT ` + assessmentColumns + ` FROM aiq_assessments WHERE 1=1`
	args := []interface{}{}

	if filter.UserID != "" {
		query += " AND user_id = ?"
		args = append(args, filter.UserID)
	}
	if filter.Type != nil {
		query += " AND aiq_type = ?"
		args = append(args, string(*filter.Type))
	}

	query += " ORDER BY completed_at DESC, created_at DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	query += " LIMIT ? OFFSET ?"
	args = append(args, limit, max(filter.Offset, 0))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Assessment
	for rows.Next() {
		a, err := scanSQLiteAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) GetTypeStats(ctx context.Context) (*TypeStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT aiq_type, COUNT(*), COALESCE(AVG(confidence_level), 0)
		FROM aiq_assessments
		GROUP BY aiq_type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[aiq.Type]TypeCount)
	for rows.Next() {
		var typ string
		var tc TypeCount
		if err := rows.Scan(&typ, &tc.Count, &tc.AvgConfidence); err != nil {
			return nil, err
		}
		tc.Type = aiq.Type(typ)
		counts[tc.Type] = tc
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return completeStats(counts), nil
}

type sqlScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteAssessment(row sqlScanner) (*Assessment, error) {
	a := &Assessment{}
	var id, answersJSON, capabilitiesJSON, typ, completedAt, createdAt string
	var userID sql.NullString
	if err := row.Scan(
		&id, &userID, &answersJSON, &capabilitiesJSON,
		&typ, &a.Confidence, &completedAt, &createdAt,
	); err != nil {
		return nil, err
	}

	var err error
	if a.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("decode id: %w", err)
	}
	if userID.Valid {
		a.UserID = userID.String
	}
	if err := json.Unmarshal([]byte(answersJSON), &a.Answers); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	if err := json.Unmarshal([]byte(capabilitiesJSON), &a.Capabilities); err != nil {
		return nil, fmt.Errorf("decode capabilities: %w", err)
	}
	a.Type = aiq.Type(typ)
	if a.CompletedAt, err = time.Parse(sqliteTimeFormat, completedAt); err != nil {
		return nil, fmt.Errorf("decode completed_at: %w", err)
	}
	if a.CreatedAt, err = time.Parse(sqliteTimeFormat, createdAt); err != nil {
		return nil, fmt.Errorf("decode created_at: %w", err)
	}
	return a, nil
}
