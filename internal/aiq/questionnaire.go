package aiq

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidQuestionnaire is returned when a questionnaire fails validation.
var ErrInvalidQuestionnaire = errors.New("invalid questionnaire")

// Question is one item of the assessment. Dimension is a display label only;
// scoring uses Affects and Weight.
type Question struct {
	ID        int         `json:"id" yaml:"id"`
	Dimension string      `json:"dimension" yaml:"dimension"`
	Text      string      `json:"question" yaml:"question"`
	Affects   []Dimension `json:"affects" yaml:"affects"`
	Weight    float64     `json:"weight" yaml:"weight"`
}

// Questionnaire is an ordered, read-only question table. Answers align with it
// positionally.
type Questionnaire struct {
	questions []Question
}

// NewQuestionnaire validates and copies qs.
func NewQuestionnaire(qs []Question) (*Questionnaire, error) {
	q := &Questionnaire{questions: cloneQuestions(qs)}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

// Validate checks ids are unique, every question affects at least one known
// dimension and every weight is positive.
func (q *Questionnaire) Validate() error {
	if len(q.questions) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidQuestionnaire)
	}
	seen := make(map[int]bool, len(q.questions))
	for i, question := range q.questions {
		if seen[question.ID] {
			return fmt.Errorf("%w: duplicate question id %d", ErrInvalidQuestionnaire, question.ID)
		}
		seen[question.ID] = true
		if len(question.Affects) == 0 {
			return fmt.Errorf("%w: question %d (index %d) affects no dimension", ErrInvalidQuestionnaire, question.ID, i)
		}
		for _, d := range question.Affects {
			if !d.Valid() {
				return fmt.Errorf("%w: question %d affects unknown dimension %q", ErrInvalidQuestionnaire, question.ID, d)
			}
		}
		if !(question.Weight > 0) {
			return fmt.Errorf("%w: question %d has non-positive weight %v", ErrInvalidQuestionnaire, question.ID, question.Weight)
		}
	}
	return nil
}

// Len returns the number of questions, i.e. the expected answer count.
func (q *Questionnaire) Len() int {
	return len(q.questions)
}

// Questions returns a copy of the question table.
func (q *Questionnaire) Questions() []Question {
	return cloneQuestions(q.questions)
}

func cloneQuestions(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, question := range qs {
		out[i] = question
		out[i].Affects = append([]Dimension(nil), question.Affects...)
	}
	return out
}

type questionnaireFile struct {
	Questions []Question `yaml:"questions"`
}

// LoadQuestionnaire reads a YAML questionnaire from path. An empty path yields
// the built-in default.
func LoadQuestionnaire(path string) (*Questionnaire, error) {
	if path == "" {
		return DefaultQuestionnaire(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questionnaire: %w", err)
	}
	var f questionnaireFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse questionnaire: %w", err)
	}
	return NewQuestionnaire(f.Questions)
}

// DefaultQuestionnaire returns the standard ten-question AIQ table.
func DefaultQuestionnaire() *Questionnaire {
	return &Questionnaire{questions: []Question{
		{ID: 1, Dimension: "Speed vs. completeness", Text: "When I use AI, I feel that moving the work forward quickly matters most.", Affects: []Dimension{Usage}, Weight: 1.0},
		{ID: 2, Dimension: "Accuracy", Text: "Rather than using AI-generated code as is, I review and fix it carefully.", Affects: []Dimension{Performance, Ethics}, Weight: 1.0},
		{ID: 3, Dimension: "AI reliance", Text: "I let AI generate most of the code while I design the overall structure.", Affects: []Dimension{Contribution}, Weight: 1.0},
		{ID: 4, Dimension: "Prompting", Text: "I take time to give AI clear and specific instructions.", Affects: []Dimension{Prompting}, Weight: 1.0},
		{ID: 5, Dimension: "Ethics", Text: "I check AI-generated code for security and licensing problems.", Affects: []Dimension{Ethics}, Weight: 1.0},
		{ID: 6, Dimension: "Strategic use", Text: "I mainly use AI for repetitive work such as boilerplate and CRUD.", Affects: []Dimension{Strategic, Usage}, Weight: 1.0},
		{ID: 7, Dimension: "Collaboration", Text: "I share AI know-how with my teammates.", Affects: []Dimension{Collaboration}, Weight: 1.0},
		{ID: 8, Dimension: "Fundamentals", Text: "I understand how AI works (LLMs, tokens, context windows).", Affects: []Dimension{Fundamentals}, Weight: 1.0},
		{ID: 9, Dimension: "Problem solving", Text: "I use AI as a debugging tool to resolve errors.", Affects: []Dimension{Usage, Prompting}, Weight: 1.0},
		{ID: 10, Dimension: "Learning", Text: "I learn new things by analysing the code AI generates.", Affects: []Dimension{Fundamentals, Performance}, Weight: 1.0},
	}}
}

// AnswerOption is one point of the four-point agreement scale.
type AnswerOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

const (
	MinAnswer = 1
	MaxAnswer = 4
)

// AnswerOptions returns the answer scale in ascending order.
func AnswerOptions() []AnswerOption {
	return []AnswerOption{
		{Value: 1, Label: "Strongly disagree"},
		{Value: 2, Label: "Disagree"},
		{Value: 3, Label: "Agree"},
		{Value: 4, Label: "Strongly agree"},
	}
}
