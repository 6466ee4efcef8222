package assessment

import (
	"career-risk-workers/internal/catalog"
	"career-risk-workers/internal/models"
)

// BuildEnhancedReport layers answer insights, a six-month roadmap and tool
// picks on top of BuildReport. answers may be nil, in which case the insight
// list is empty.
func (e *Engine) BuildEnhancedReport(result *models.ScoringResult, answers []models.QuizAnswer) *models.EnhancedPremiumReport {
	base := e.BuildReport(result)
	kit := e.toolKit(result.OccupationID)
	highest, lowest := extremeDimensions(canonicalDimensions(result.Dimensions))

	return &models.EnhancedPremiumReport{
		PremiumReport:     *base,
		AnswerInsights:    e.answerInsights(answers),
		Roadmap:           buildRoadmap(result, highest, lowest, kit),
		Tools:             kit.Tools,
		FreeResources:     kit.FreeResources,
		InvestmentSummary: investmentSummary(result.OverallScore, kit.Tools),
	}
}

// toolKit returns the occupation's curated kit, or the general kit when the
// occupation has none.
func (e *Engine) toolKit(occupationID string) catalog.ToolKit {
	if kit, ok := e.catalog.ToolKit(occupationID); ok {
		return kit
	}
	kit, _ := e.catalog.ToolKit(catalog.DefaultToolKitID)
	return kit
}
