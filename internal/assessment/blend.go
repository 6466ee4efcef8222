package assessment

import (
	"math"

	"career-risk-workers/internal/catalog"
	"career-risk-workers/internal/models"
)

const (
	quizBlendWeight     = 0.7
	baselineBlendWeight = 0.3
)

type blended struct {
	scores    rawScores
	quizScore float64
	overall   int
}

// blend applies the industry modifier, computes the weighted quiz score and
// anchors it to the occupation baseline.
func blend(raw rawScores, occupation catalog.Occupation) blended {
	scores := raw
	iv := models.DimensionIndustryVelocity.Index()
	scores[iv] = clampFloat(scores[iv] + float64(occupation.IndustryModifier))

	var quiz float64
	for i, d := range models.Dimensions {
		quiz += scores[i] * d.Weight()
	}

	overall := math.Round(quiz*quizBlendWeight + float64(occupation.BaselineRisk)*baselineBlendWeight)
	return blended{
		scores:    scores,
		quizScore: quiz,
		overall:   clamp(int(overall)),
	}
}

// dimensionScores rounds each dimension and attaches its explanation, in
// canonical order.
func (b blended) dimensionScores() []models.DimensionScore {
	out := make([]models.DimensionScore, 0, len(models.Dimensions))
	for i, d := range models.Dimensions {
		score := clamp(int(math.Round(b.scores[i])))
		out = append(out, models.DimensionScore{
			Dimension:   d,
			Label:       d.Label(),
			Score:       score,
			Explanation: dimensionExplanation(d, dimensionBandFor(score)),
		})
	}
	return out
}
