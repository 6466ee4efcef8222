package assessment

import (
	"errors"
	"math"
	"testing"

	"career-risk-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Scoring Pipeline
// ==========================

func TestScore_WorkedExample(t *testing.T) {
	engine := createTestEngine(t)

	result, err := engine.Score(workedExampleAnswers(), "finance-accounting")
	require.NoError(t, err)

	assert.Equal(t, 80, scoreOf(t, result, models.DimensionTaskComposition))
	assert.Equal(t, 70, scoreOf(t, result, models.DimensionSkillReplaceability))
	assert.Equal(t, 68, scoreOf(t, result, models.DimensionIndustryVelocity), "modifier applies to industry velocity")
	assert.Equal(t, 50, scoreOf(t, result, models.DimensionExperienceMoat))
	assert.Equal(t, 40, scoreOf(t, result, models.DimensionHumanInteraction))

	assert.Equal(t, 68, result.OverallScore)
	assert.Equal(t, "High Risk", result.RiskLabel)
	assert.Contains(t, result.Summary, "Finance & Accounting")
	assert.Equal(t, "finance-accounting", result.OccupationID)
	assert.Equal(t, "Finance & Accounting", result.OccupationLabel)
	assert.Equal(t, "test-1", result.CatalogVersion)
}

func TestScore_BlendStages(t *testing.T) {
	engine := createTestEngine(t)
	occupation, ok := engine.Catalog().Occupation("finance-accounting")
	require.True(t, ok)

	raw := engine.dimensionScores(workedExampleAnswers())
	b := blend(raw, occupation)

	assert.InDelta(t, 66.1, b.quizScore, 1e-9)
	assert.Equal(t, 68, b.overall)
	assert.InDelta(t, 60.0, raw[models.DimensionIndustryVelocity.Index()], 1e-9, "raw scores are not modified")
}

func TestScore_DimensionsInCanonicalOrder(t *testing.T) {
	engine := createTestEngine(t)

	answers := workedExampleAnswers()
	reversed := make([]models.QuizAnswer, len(answers))
	for i, a := range answers {
		reversed[len(answers)-1-i] = a
	}

	result, err := engine.Score(reversed, "finance-accounting")
	require.NoError(t, err)
	require.Len(t, result.Dimensions, len(models.Dimensions))
	for i, d := range models.Dimensions {
		assert.Equal(t, d, result.Dimensions[i].Dimension)
		assert.Equal(t, d.Label(), result.Dimensions[i].Label)
		assert.NotEmpty(t, result.Dimensions[i].Explanation)
	}
}

func TestScore_AveragesAnswersWithinDimension(t *testing.T) {
	engine := createTestEngine(t)

	answers := []models.QuizAnswer{
		answer(models.DimensionTaskComposition, "a", 90),
		answer(models.DimensionTaskComposition, "b", 60),
		answer(models.DimensionTaskComposition, "c", 25),
	}
	raw := engine.dimensionScores(answers)

	assert.InDelta(t, 175.0/3.0, raw[models.DimensionTaskComposition.Index()], 1e-9)
	assert.InDelta(t, neutralScore, raw[models.DimensionSkillReplaceability.Index()], 1e-9)
}

func TestScore_UnresolvableAnswersAreNeutral(t *testing.T) {
	engine := createTestEngine(t)

	answers := []models.QuizAnswer{
		{QuestionID: "no-such-question", AnswerID: "x"},
		{QuestionID: "taskComposition-a", AnswerID: "no-such-answer"},
		{QuestionID: "", AnswerID: ""},
	}

	result, err := engine.Score(answers, "steady-role")
	require.NoError(t, err)

	for _, ds := range result.Dimensions {
		assert.Equal(t, 50, ds.Score, ds.Dimension)
	}
	expected := int(math.Round(50*1.0*0.7 + 40*0.3))
	assert.Equal(t, expected, result.OverallScore)

	empty, err := engine.Score(nil, "steady-role")
	require.NoError(t, err)
	assert.Equal(t, result, empty)
}

func TestScore_NeutralAnswersWithIndustryModifier(t *testing.T) {
	engine := createTestEngine(t)

	result, err := engine.Score(nil, "finance-accounting")
	require.NoError(t, err)

	assert.Equal(t, 58, scoreOf(t, result, models.DimensionIndustryVelocity))
	// quiz 50 + 8*0.2 = 51.6; 51.6*0.7 + 72*0.3 = 57.72
	assert.Equal(t, 58, result.OverallScore)
}

func TestScore_ClampsAtBothEnds(t *testing.T) {
	engine := createTestEngine(t)

	high, err := engine.Score(uniformAnswers(100), "ceiling-role")
	require.NoError(t, err)
	assert.Equal(t, 100, scoreOf(t, high, models.DimensionIndustryVelocity))
	assert.Equal(t, 100, high.OverallScore)
	assert.Equal(t, 100, high.SkillBreakdown[0].RiskScore)

	low, err := engine.Score(uniformAnswers(0), "floor-role")
	require.NoError(t, err)
	assert.Equal(t, 0, scoreOf(t, low, models.DimensionIndustryVelocity))
	assert.Equal(t, 0, low.OverallScore)
	assert.Equal(t, "Minimal Risk", low.RiskLabel)
	assert.Equal(t, 0, low.SkillBreakdown[0].RiskScore)
}

func TestScore_AllScoresInRange(t *testing.T) {
	engine := createDefaultEngine(t)
	questions := engine.Catalog().Questions()

	answerSets := [][]models.QuizAnswer{nil}
	for optionIdx := 0; optionIdx < 4; optionIdx++ {
		var set []models.QuizAnswer
		for _, q := range questions {
			opt := q.Options[optionIdx%len(q.Options)]
			set = append(set, models.QuizAnswer{QuestionID: q.ID, AnswerID: opt.ID})
		}
		answerSets = append(answerSets, set)
	}

	for _, occupation := range engine.Catalog().Occupations() {
		for _, answers := range answerSets {
			result, err := engine.Score(answers, occupation.ID)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, result.OverallScore, 0)
			assert.LessOrEqual(t, result.OverallScore, 100)
			for _, ds := range result.Dimensions {
				assert.GreaterOrEqual(t, ds.Score, 0)
				assert.LessOrEqual(t, ds.Score, 100)
			}
			for _, s := range result.SkillBreakdown {
				assert.GreaterOrEqual(t, s.RiskScore, 0)
				assert.LessOrEqual(t, s.RiskScore, 100)
			}
			assert.Len(t, result.SkillBreakdown, len(occupation.TypicalSkills))
		}
	}
}

func TestScore_Idempotent(t *testing.T) {
	engine := createTestEngine(t)

	first, err := engine.Score(workedExampleAnswers(), "finance-accounting")
	require.NoError(t, err)
	second, err := engine.Score(workedExampleAnswers(), "finance-accounting")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScore_UnknownOccupation(t *testing.T) {
	engine := createTestEngine(t)

	result, err := engine.Score(workedExampleAnswers(), "does-not-exist")

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownOccupation))

	var unknown *UnknownOccupationError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "does-not-exist", unknown.OccupationID)
}

func TestDimensionWeightsSumToOne(t *testing.T) {
	var sum float64
	for _, d := range models.Dimensions {
		sum += d.Weight()
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

// ==========================
// Banding
// ==========================

func TestRiskLabelBands(t *testing.T) {
	tests := []struct {
		score int
		label string
	}{
		{100, "Very High Risk"},
		{75, "Very High Risk"},
		{74, "High Risk"},
		{55, "High Risk"},
		{54, "Moderate Risk"},
		{35, "Moderate Risk"},
		{34, "Low Risk"},
		{20, "Low Risk"},
		{19, "Minimal Risk"},
		{0, "Minimal Risk"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.label, riskLabel(tt.score), "score %d", tt.score)
		assert.NotEmpty(t, summaryText(tt.score, "Example"))
	}
}

func TestDimensionExplanationsAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range models.Dimensions {
		for _, band := range []dimensionBand{dimensionBandLow, dimensionBandModerate, dimensionBandHigh} {
			text := dimensionExplanation(d, band)
			assert.NotEmpty(t, text)
			assert.False(t, seen[text], "duplicate explanation %q", text)
			seen[text] = true
		}
	}
	assert.Len(t, seen, 15)
}

func TestDimensionBandFor(t *testing.T) {
	assert.Equal(t, dimensionBandHigh, dimensionBandFor(70))
	assert.Equal(t, dimensionBandModerate, dimensionBandFor(69))
	assert.Equal(t, dimensionBandModerate, dimensionBandFor(40))
	assert.Equal(t, dimensionBandLow, dimensionBandFor(39))
}
