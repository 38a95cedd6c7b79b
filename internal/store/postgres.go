package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SkillSync/aiq/internal/aiq"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const assessmentColumns = `aiq_assessment_id, user_id, answers, capabilities,
	aiq_type, confidence_level, completed_at, created_at`

func (s *PostgresStore) CreateAssessment(ctx context.Context, a *Assessment) error {
	capabilitiesJSON, err := json.Marshal(a.Capabilities)
	if err != nil {
		return fmt.Errorf("marshal capabilities: %w", err)
	}
	var userID *string
	if a.UserID != "" {
		userID = &a.UserID
	}

	// Answers go to pgx as []int: it range-checks each element against
	// INTEGER rather than truncating.
	return s.pool.QueryRow(ctx, `
		INSERT INTO aiq_assessments (user_id, answers, capabilities,
			aiq_type, confidence_level, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING aiq_assessment_id, created_at`,
		userID, a.Answers, capabilitiesJSON,
		string(a.Type), a.Confidence, a.CompletedAt,
	).Scan(&a.ID, &a.CreatedAt)
}

func (s *PostgresStore) GetAssessment(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+assessmentColumns+`
		FROM aiq_assessments WHERE aiq_assessment_id = $1`, id)
	a, err := scanAssessment(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *PostgresStore) ListAssessments(ctx context.Context, filter AssessmentFilter) ([]*Assessment, error) {
	query := `SELECT ` + assessmentColumns + ` FROM aiq_assessments WHERE 1=1`
	args := []interface{}{}
	n := 0

	if filter.UserID != "" {
		n++
		query += fmt.Sprintf(" AND user_id = $%d", n)
		args = append(args, filter.UserID)
	}
	if filter.Type != nil {
		n++
		query += fmt.Sprintf(" AND aiq_type = $%d", n)
		args = append(args, string(*filter.Type))
	}

	query += " ORDER BY completed_at DESC, created_at DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	n++
	query += fmt.Sprintf(" LIMIT $%d", n)
	args = append(args, limit)

	if filter.Offset > 0 {
		n++
		query += fmt.Sprintf(" OFFSET $%d", n)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *PostgresStore) GetTypeStats(ctx context.Context) (*TypeStats, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT aiq_type, COUNT(*), COALESCE(AVG(confidence_level), 0)::float8
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

func scanAssessment(row pgx.Row) (*Assessment, error) {
	a := &Assessment{}
	var userID sql.NullString
	var answers []int32
	var capabilitiesJSON []byte
	var typ string
	if err := row.Scan(
		&a.ID, &userID, &answers, &capabilitiesJSON,
		&typ, &a.Confidence, &a.CompletedAt, &a.CreatedAt,
	); err != nil {
		return nil, err
	}
	if userID.Valid {
		a.UserID = userID.String
	}
	a.Answers = make([]int, len(answers))
	for i, v := range answers {
		a.Answers[i] = int(v)
	}
	if capabilitiesJSON != nil {
		if err := json.Unmarshal(capabilitiesJSON, &a.Capabilities); err != nil {
			return nil, fmt.Errorf("decode capabilities: %w", err)
		}
	}
	a.Type = aiq.Type(typ)
	return a, nil
}
