// internal/workers/assessment/store-assessment-result/models.go
package storeassessmentresult

import (
	"encoding/json"

	"career-risk-workers/internal/models"
)

type Input struct {
	AssessmentID  string                `json:"assessmentId,omitempty"`
	UserID        string                `json:"userId,omitempty"`
	ScoringResult *models.ScoringResult `json:"scoringResult"`
	// Report is stored as-is; either report shape is accepted.
	Report json.RawMessage `json:"report,omitempty"`
}

type Output struct {
	AssessmentID string `json:"assessmentId"`
	StoredAt     string `json:"storedAt"` // ISO 8601
}
