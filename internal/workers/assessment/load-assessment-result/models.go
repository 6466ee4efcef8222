// internal/workers/assessment/load-assessment-result/models.go
package loadassessmentresult

import (
	"encoding/json"

	"career-risk-workers/internal/models"
)

type Input struct {
	AssessmentID string `json:"assessmentId"`
}

type Output struct {
	AssessmentID  string                `json:"assessmentId"`
	UserID        string                `json:"userId,omitempty"`
	ScoringResult *models.ScoringResult `json:"scoringResult"`
	Report        json.RawMessage       `json:"report,omitempty"`
	StoredAt      string                `json:"storedAt"`
}
