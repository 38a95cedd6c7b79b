package hermes

import "time"

// AssessmentCompletedEvent is published once per persisted assessment.
type AssessmentCompletedEvent struct {
	AssessmentID    string         `json:"assessment_id"`
	UserID          string         `json:"user_id,omitempty"`
	AIQType         string         `json:"aiq_type"`
	ConfidenceLevel float64        `json:"confidence_level"`
	Capabilities    map[string]int `json:"capabilities"`
	CompletedAt     time.Time      `json:"completed_at"`
}
