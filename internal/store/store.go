package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SkillSync/aiq/internal/aiq"
)

// Assessment is a persisted AIQ result together with the raw answers.
type Assessment struct {
	ID           uuid.UUID        `json:"assessment_id"`
	UserID       string           `json:"user_id,omitempty"`
	Answers      []int            `json:"answers"`
	Capabilities aiq.Capabilities `json:"capabilities"`
	Type         aiq.Type         `json:"aiq_type"`
	Confidence   float64          `json:"confidence_level"`
	CompletedAt  time.Time        `json:"completed_at"`
	CreatedAt    time.Time        `json:"created_at"`
}

// NewAssessment builds an unsaved record from a scoring result.
func NewAssessment(userID string, answers []int, r aiq.Result) *Assessment {
	return &Assessment{
		UserID:       userID,
		Answers:      append([]int(nil), answers...),
		Capabilities: r.Capabilities,
		Type:         r.Type,
		Confidence:   r.Confidence,
		CompletedAt:  r.CompletedAt,
	}
}

type AssessmentFilter struct {
	UserID string
	Type   *aiq.Type
	Limit  int
	Offset int
}

type TypeCount struct {
	Type          aiq.Type `json:"aiq_type"`
	Count         int      `json:"count"`
	AvgConfidence float64  `json:"avg_confidence"`
}

type TypeStats struct {
	Total         int         `json:"total"`
	AvgConfidence float64     `json:"avg_confidence"`
	Types         []TypeCount `json:"types"`
}

const defaultListLimit = 100

type Store interface {
	// CreateAssessment persists a and fills in ID and CreatedAt.
	CreateAssessment(ctx context.Context, a *Assessment) error
	// GetAssessment returns nil, nil when id is unknown.
	GetAssessment(ctx context.Context, id uuid.UUID) (*Assessment, error)
	ListAssessments(ctx context.Context, filter AssessmentFilter) ([]*Assessment, error)
	GetTypeStats(ctx context.Context) (*TypeStats, error)
	Close() error
}

// completeStats orders counts by type enumeration, adds zero rows for unseen
// types and derives the overall average.
func completeStats(counts map[aiq.Type]TypeCount) *TypeStats {
	stats := &TypeStats{Types: make([]TypeCount, 0, len(aiq.Types()))}
	var confidenceSum float64
	for _, t := range aiq.Types() {
		tc, ok := counts[t]
		if !ok {
			tc = TypeCount{Type: t}
		}
		stats.Types = append(stats.Types, tc)
		stats.Total += tc.Count
		confidenceSum += tc.AvgConfidence * float64(tc.Count)
	}
	if stats.Total > 0 {
		stats.AvgConfidence = confidenceSum / float64(stats.Total)
	}
	return stats
}

// Open connects the backend named by driver ("postgres" or "sqlite").
func Open(ctx context.Context, driver, url string) (Store, error) {
	switch driver {
	case "postgres":
		s, err := NewPostgresStore(ctx, url)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "sqlite":
		s, err := NewSQLiteStore(ctx, url)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
