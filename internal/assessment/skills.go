package assessment

import (
	"fmt"

	"career-risk-workers/internal/models"
)

// fallbackSkillOffset shifts the estimated score of a skill missing from the
// knowledge base away from the overall score. Zero: unmapped skills inherit
// the overall score unchanged.
const fallbackSkillOffset = 0

// skillBreakdown returns one entry per typical skill, in input order.
func (e *Engine) skillBreakdown(skills []string, overall int) []models.SkillRiskEntry {
	out := make([]models.SkillRiskEntry, 0, len(skills))
	for _, name := range skills {
		if entry, ok := e.catalog.SkillRisk(name); ok {
			out = append(out, entry)
			continue
		}
		out = append(out, estimateSkillRisk(name, overall))
	}
	return out
}

// estimateSkillRisk derives an occupation-level estimate for an unmapped skill.
func estimateSkillRisk(name string, overall int) models.SkillRiskEntry {
	score := clamp(overall + fallbackSkillOffset)

	level := models.RiskLevelLow
	switch {
	case score >= 65:
		level = models.RiskLevelHigh
	case score >= 35:
		level = models.RiskLevelMedium
	}

	horizon := "5+ years"
	if score > 60 {
		horizon = "2-3 years"
	}

	return models.SkillRiskEntry{
		Skill:     name,
		RiskLevel: level,
		RiskScore: score,
		Explanation: fmt.Sprintf("No skill-specific data is available for %s; this estimate reflects the "+
			"overall automation exposure of your occupation.", name),
		TimeHorizon: horizon,
		Estimated:   true,
	}
}
