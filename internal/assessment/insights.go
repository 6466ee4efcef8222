package assessment

import (
	"fmt"
	"sort"

	"career-risk-workers/internal/models"
)

const (
	maxInsightsPerDimension = 2
	maxInsights             = 8

	increasesRiskThreshold = 65
	decreasesRiskThreshold = 35
)

// answerInsights explains the most informative answers of each dimension.
// Within a dimension answers are ranked by distance from the neutral score;
// the combined list keeps catalog dimension order and is cut at maxInsights.
func (e *Engine) answerInsights(answers []models.QuizAnswer) []models.AnswerInsight {
	var grouped [len(models.Dimensions)][]models.AnswerInsight
	for _, a := range answers {
		q, ok := e.catalog.Question(a.QuestionID)
		if !ok {
			continue
		}
		opt, ok := q.Option(a.AnswerID)
		if !ok {
			continue
		}
		impact := classifyImpact(opt.Score)
		i := q.Dimension.Index()
		grouped[i] = append(grouped[i], models.AnswerInsight{
			QuestionID:  q.ID,
			Question:    q.Text,
			Dimension:   q.Dimension,
			AnswerID:    opt.ID,
			Answer:      opt.Text,
			Score:       opt.Score,
			Impact:      impact,
			Rationale:   opt.Rationale,
			CoachingTip: coachingTip(impact, q.Dimension),
		})
	}

	out := make([]models.AnswerInsight, 0, maxInsights)
	for _, group := range grouped {
		sort.SliceStable(group, func(i, j int) bool {
			return distanceFromNeutral(group[i].Score) > distanceFromNeutral(group[j].Score)
		})
		if len(group) > maxInsightsPerDimension {
			group = group[:maxInsightsPerDimension]
		}
		out = append(out, group...)
	}
	if len(out) > maxInsights {
		out = out[:maxInsights]
	}
	return out
}

func distanceFromNeutral(score int) int {
	d := score - int(neutralScore)
	if d < 0 {
		return -d
	}
	return d
}

func classifyImpact(score int) models.Impact {
	switch {
	case score >= increasesRiskThreshold:
		return models.ImpactIncreasesRisk
	case score <= decreasesRiskThreshold:
		return models.ImpactDecreasesRisk
	default:
		return models.ImpactNeutral
	}
}

func coachingTip(impact models.Impact, d models.Dimension) string {
	switch impact {
	case models.ImpactIncreasesRisk:
		return fmt.Sprintf("This answer raises your %s exposure. Pick one concrete change this quarter that "+
			"would let you answer it differently next time.", d.Label())
	case models.ImpactDecreasesRisk:
		return fmt.Sprintf("This answer is a strength in %s. Make it visible to your employer and clients, "+
			"and protect it as your role changes.", d.Label())
	default:
		return fmt.Sprintf("This answer is neutral for %s. Small, deliberate shifts here can move it into "+
			"strength territory.", d.Label())
	}
}
