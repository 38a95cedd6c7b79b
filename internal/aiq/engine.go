// Package aiq scores the AIQ self-assessment: it turns a questionnaire's
// answers into capability scores, an archetype and a confidence value.
//
// Everything here is pure except the completion timestamp, which comes from
// the Engine's clock. An Engine is safe for concurrent use.
package aiq

import (
	"errors"
	"fmt"
	"time"
)

// ErrAnswerCount is returned by Engine.Score when the answer count does not
// match the questionnaire.
var ErrAnswerCount = errors.New("answer count does not match questionnaire")

// Result is the outcome of one completed assessment.
type Result struct {
	Capabilities Capabilities `json:"capabilities"`
	Type         Type         `json:"aiq_type"`
	Confidence   float64      `json:"confidence_level"`
	CompletedAt  time.Time    `json:"completed_at"`
}

// Engine binds a questionnaire and a clock.
type Engine struct {
	questionnaire *Questionnaire
	now           func() time.Time
}

// NewEngine creates an Engine. A nil clock uses time.Now.
func NewEngine(q *Questionnaire, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{questionnaire: q, now: now}
}

// Questionnaire returns the engine's question table.
func (e *Engine) Questionnaire() *Questionnaire {
	return e.questionnaire
}

// Generate scores answers leniently and never fails. Answers are assumed to be
// aligned with the questionnaire; a shifted vector cannot be detected.
func (e *Engine) Generate(answers []int) Result {
	capabilities := ComputeCapabilities(answers, e.questionnaire)
	return Result{
		Capabilities: capabilities,
		Type:         ClassifyType(capabilities),
		Confidence:   ComputeConfidence(answers),
		CompletedAt:  e.now().UTC(),
	}
}

// Score is Generate for complete submissions: it rejects answer vectors whose
// length differs from the questionnaire. Individual out-of-range values are
// still skipped.
func (e *Engine) Score(answers []int) (Result, error) {
	if len(answers) != e.questionnaire.Len() {
		return Result{}, fmt.Errorf("%w: got %d, want %d", ErrAnswerCount, len(answers), e.questionnaire.Len())
	}
	return e.Generate(answers), nil
}
