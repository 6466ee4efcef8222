// internal/workers/assessment/build-enhanced-report/models.go
package buildenhancedreport

import "career-risk-workers/internal/models"

type Input struct {
	ScoringResult *models.ScoringResult `json:"scoringResult"`
	// Answers feed the answer insights; without them the report has none.
	Answers []models.QuizAnswer `json:"answers,omitempty"`
}

type Output struct {
	Report *models.EnhancedPremiumReport `json:"report"`
}
