package hermes

import "time"

const (
	SubjectAll = "skillsync.aiq.>"

	StreamName   = "AIQ_EVENTS"
	StreamMaxAge = 90 * 24 * time.Hour
)

func SubjectAssessmentCompleted(assessmentID string) string {
	return "skillsync.aiq." + assessmentID + ".completed"
}
