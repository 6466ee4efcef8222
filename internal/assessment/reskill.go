package assessment

import (
	"sort"

	"career-risk-workers/internal/models"
)

const (
	reskillScoreThreshold = 65
	maxReskillSkills      = 5
)

// universalRecommendation closes every reskilling list.
func universalRecommendation() models.ReskillRecommendation {
	return models.ReskillRecommendation{
		TargetSkill: "AI tool proficiency",
		Rationale: "Professionals who use AI tools effectively in their daily work are far less likely to be " +
			"displaced by them, whatever their field.",
		Effort: models.EffortWeeks,
		Resources: []string{
			"AI For Everyone (DeepLearning.AI)",
			"Prompt Engineering Guide (DAIR.AI)",
			"Generative AI for Beginners (Microsoft)",
		},
	}
}

// reskilling picks the most exposed skills and maps them to curated paths.
// Skills without a curated path are left out.
func (e *Engine) reskilling(skills []models.SkillRiskEntry) []models.ReskillRecommendation {
	atRisk := make([]models.SkillRiskEntry, 0, len(skills))
	for _, s := range skills {
		if s.RiskLevel == models.RiskLevelHigh || s.RiskScore >= reskillScoreThreshold {
			atRisk = append(atRisk, s)
		}
	}
	sort.SliceStable(atRisk, func(i, j int) bool {
		return atRisk[i].RiskScore > atRisk[j].RiskScore
	})
	if len(atRisk) > maxReskillSkills {
		atRisk = atRisk[:maxReskillSkills]
	}

	out := make([]models.ReskillRecommendation, 0, len(atRisk)+1)
	for _, s := range atRisk {
		path, ok := e.catalog.ReskillPath(s.Skill)
		if !ok {
			continue
		}
		out = append(out, path)
	}
	return append(out, universalRecommendation())
}
