package assessment

import (
	"sort"

	"career-risk-workers/internal/models"
)

const (
	riskDimensionThreshold     = 60
	strengthDimensionThreshold = 40
	mitigationThreshold        = 60
	actionMitigateThreshold    = 50

	maxRiskDimensions     = 3
	maxRiskSkills         = 2
	maxTopRisks           = 5
	maxStrengthDimensions = 3
	maxStrengthSkills     = 2
)

// BuildReport composes the premium report for a scoring result. The result is
// not modified.
func (e *Engine) BuildReport(result *models.ScoringResult) *models.PremiumReport {
	dims := canonicalDimensions(result.Dimensions)
	highest, lowest := extremeDimensions(dims)

	return &models.PremiumReport{
		OccupationID:      result.OccupationID,
		OccupationLabel:   result.OccupationLabel,
		OverallScore:      result.OverallScore,
		RiskLabel:         result.RiskLabel,
		ExecutiveSummary:  executiveSummary(result.OverallScore, result.OccupationLabel, highest, lowest),
		DimensionAnalysis: dimensionAnalysis(dims),
		TopRisks:          topRisks(dims, result.SkillBreakdown),
		TopStrengths:      topStrengths(dims, result.SkillBreakdown),
		ActionPlan:        actionPlan(result, highest),
		CareerOutlook:     careerOutlook(result.OverallScore, result.OccupationLabel),
		SkillBreakdown:    append([]models.SkillRiskEntry(nil), result.SkillBreakdown...),
		Reskilling:        append([]models.ReskillRecommendation(nil), result.Reskilling...),
	}
}

// canonicalDimensions returns a copy of dims in catalog order. Results built by
// Score are already ordered; results decoded from job variables may not be.
func canonicalDimensions(dims []models.DimensionScore) []models.DimensionScore {
	out := append([]models.DimensionScore(nil), dims...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Dimension.Index() < out[j].Dimension.Index()
	})
	return out
}

// extremeDimensions returns the highest and lowest scoring dimensions. Ties go
// to the dimension that comes first in catalog order.
func extremeDimensions(dims []models.DimensionScore) (highest, lowest models.DimensionScore) {
	for i, d := range dims {
		if i == 0 || d.Score > highest.Score {
			highest = d
		}
		if i == 0 || d.Score < lowest.Score {
			lowest = d
		}
	}
	return highest, lowest
}

func dimensionAnalysis(dims []models.DimensionScore) []models.DimensionAnalysis {
	out := make([]models.DimensionAnalysis, 0, len(dims))
	for _, d := range dims {
		out = append(out, models.DimensionAnalysis{
			Dimension:       d.Dimension,
			Label:           d.Label,
			Score:           d.Score,
			Analysis:        d.Explanation + " " + dimensionElaboration(dimensionBandFor(d.Score)),
			Recommendations: dimensionRecommendations(d.Dimension, d.Score >= mitigationThreshold),
		})
	}
	return out
}

func topRisks(dims []models.DimensionScore, skills []models.SkillRiskEntry) []models.RiskItem {
	risky := make([]models.DimensionScore, 0, len(dims))
	for _, d := range dims {
		if d.Score >= riskDimensionThreshold {
			risky = append(risky, d)
		}
	}
	sort.SliceStable(risky, func(i, j int) bool { return risky[i].Score > risky[j].Score })
	if len(risky) > maxRiskDimensions {
		risky = risky[:maxRiskDimensions]
	}

	exposed := make([]models.SkillRiskEntry, 0, len(skills))
	for _, s := range skills {
		if s.RiskLevel == models.RiskLevelHigh {
			exposed = append(exposed, s)
		}
	}
	sort.SliceStable(exposed, func(i, j int) bool { return exposed[i].RiskScore > exposed[j].RiskScore })
	if len(exposed) > maxRiskSkills {
		exposed = exposed[:maxRiskSkills]
	}

	out := make([]models.RiskItem, 0, len(risky)+len(exposed))
	for _, d := range risky {
		out = append(out, models.RiskItem{
			Title:       d.Label,
			Description: d.Explanation,
			Severity:    dimensionSeverity(d.Score),
			Score:       d.Score,
			Source:      models.SourceDimension,
		})
	}
	for _, s := range exposed {
		out = append(out, models.RiskItem{
			Title:       s.Skill,
			Description: s.Explanation,
			Severity:    skillSeverity(s.RiskScore),
			Score:       s.RiskScore,
			Source:      models.SourceSkill,
		})
	}
	if len(out) > maxTopRisks {
		out = out[:maxTopRisks]
	}
	return out
}

func dimensionSeverity(score int) models.Severity {
	switch {
	case score >= 75:
		return models.SeverityCritical
	case score >= 65:
		return models.SeverityHigh
	default:
		return models.SeverityModerate
	}
}

func skillSeverity(score int) models.Severity {
	if score >= 80 {
		return models.SeverityCritical
	}
	return models.SeverityHigh
}

func topStrengths(dims []models.DimensionScore, skills []models.SkillRiskEntry) []models.StrengthItem {
	strong := make([]models.DimensionScore, 0, len(dims))
	for _, d := range dims {
		if d.Score < strengthDimensionThreshold {
			strong = append(strong, d)
		}
	}
	sort.SliceStable(strong, func(i, j int) bool { return strong[i].Score < strong[j].Score })
	if len(strong) > maxStrengthDimensions {
		strong = strong[:maxStrengthDimensions]
	}

	durable := make([]models.SkillRiskEntry, 0, len(skills))
	for _, s := range skills {
		if s.RiskLevel == models.RiskLevelLow {
			durable = append(durable, s)
		}
	}
	sort.SliceStable(durable, func(i, j int) bool { return durable[i].RiskScore < durable[j].RiskScore })
	if len(durable) > maxStrengthSkills {
		durable = durable[:maxStrengthSkills]
	}

	out := make([]models.StrengthItem, 0, len(strong)+len(durable))
	for _, d := range strong {
		out = append(out, models.StrengthItem{
			Title:       d.Label,
			Description: d.Explanation,
			Score:       d.Score,
			Source:      models.SourceDimension,
		})
	}
	for _, s := range durable {
		out = append(out, models.StrengthItem{
			Title:       s.Skill,
			Description: s.Explanation,
			Score:       s.RiskScore,
			Source:      models.SourceSkill,
		})
	}
	return out
}

// actionPlan appends steps in a fixed order; priorities are always 1..n.
func actionPlan(result *models.ScoringResult, highest models.DimensionScore) []models.ActionItem {
	var plan []models.ActionItem
	add := func(title, description, timeframe string) {
		plan = append(plan, models.ActionItem{
			Priority:    len(plan) + 1,
			Title:       title,
			Description: description,
			Timeframe:   timeframe,
		})
	}

	add("Adopt AI tools in your daily work", adoptToolsAction(result.OccupationLabel), "Next 30 days")
	if highest.Score >= actionMitigateThreshold {
		add("Reduce your exposure in "+highest.Label, mitigateAction(highest), "Next 3 months")
	}
	if len(result.Reskilling) > 0 {
		top := result.Reskilling[0]
		add("Build "+top.TargetSkill, pursueReskillAction(top), effortTimeframe(top.Effort))
	}
	add("Strengthen your professional network", networkAction(), "Ongoing")
	add("Reposition your career stance", repositionAction(result.OverallScore), "Next 6-12 months")
	return plan
}

func effortTimeframe(effort models.EffortClass) string {
	switch effort {
	case models.EffortWeeks:
		return "Next 4-8 weeks"
	case models.EffortMonths:
		return "Next 3-6 months"
	case models.EffortSixMonths:
		return "Next 6-12 months"
	default:
		return "Next 3-6 months"
	}
}
