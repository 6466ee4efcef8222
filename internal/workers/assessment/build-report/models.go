// internal/workers/assessment/build-report/models.go
package buildreport

import "career-risk-workers/internal/models"

type Input struct {
	ScoringResult *models.ScoringResult `json:"scoringResult"`
}

type Output struct {
	Report *models.PremiumReport `json:"report"`
}
