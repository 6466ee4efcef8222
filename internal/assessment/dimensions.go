package assessment

import "career-risk-workers/internal/models"

// neutralScore is used for a dimension that received no resolvable answer.
const neutralScore = 50.0

// rawScores holds unrounded dimension scores indexed by canonical order.
type rawScores [len(models.Dimensions)]float64

// dimensionScores averages the resolved answer scores per dimension.
// Answers whose question or option is not in the catalog are discarded.
func (e *Engine) dimensionScores(answers []models.QuizAnswer) rawScores {
	var (
		sums   rawScores
		counts [len(models.Dimensions)]int
	)
	for _, a := range answers {
		q, ok := e.catalog.Question(a.QuestionID)
		if !ok {
			continue
		}
		opt, ok := q.Option(a.AnswerID)
		if !ok {
			continue
		}
		i := q.Dimension.Index()
		sums[i] += float64(opt.Score)
		counts[i]++
	}

	var out rawScores
	for i := range out {
		if counts[i] == 0 {
			out[i] = neutralScore
			continue
		}
		out[i] = sums[i] / float64(counts[i])
	}
	return out
}
