// internal/workers/assessment/score-assessment/models.go
package scoreassessment

import "career-risk-workers/internal/models"

type Input struct {
	AssessmentID string              `json:"assessmentId,omitempty"`
	OccupationID string              `json:"occupationId"`
	Answers      []models.QuizAnswer `json:"answers"`
}

type Output struct {
	ScoringResult *models.ScoringResult `json:"scoringResult"`
	Cached        bool                  `json:"cached"`
}
