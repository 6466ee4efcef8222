package assessment

import (
	"fmt"

	"career-risk-workers/internal/models"
)

// dimensionBand buckets a single dimension score.
type dimensionBand int

const (
	dimensionBandLow dimensionBand = iota
	dimensionBandModerate
	dimensionBandHigh
)

func dimensionBandFor(score int) dimensionBand {
	switch {
	case score >= 70:
		return dimensionBandHigh
	case score >= 40:
		return dimensionBandModerate
	default:
		return dimensionBandLow
	}
}

// riskBand buckets the overall score for the label and summary.
type riskBand int

const (
	riskBandMinimal riskBand = iota
	riskBandLow
	riskBandModerate
	riskBandHigh
	riskBandVeryHigh
)

func riskBandFor(score int) riskBand {
	switch {
	case score >= 75:
		return riskBandVeryHigh
	case score >= 55:
		return riskBandHigh
	case score >= 35:
		return riskBandModerate
	case score >= 20:
		return riskBandLow
	default:
		return riskBandMinimal
	}
}

func riskLabel(score int) string {
	switch riskBandFor(score) {
	case riskBandVeryHigh:
		return "Very High Risk"
	case riskBandHigh:
		return "High Risk"
	case riskBandModerate:
		return "Moderate Risk"
	case riskBandLow:
		return "Low Risk"
	default:
		return "Minimal Risk"
	}
}

func summaryText(score int, occupationLabel string) string {
	switch riskBandFor(score) {
	case riskBandVeryHigh:
		return fmt.Sprintf("Your role in %s faces very high exposure to AI automation. A large share of your "+
			"current tasks can already be performed or heavily assisted by AI systems, and adoption in your "+
			"field is moving quickly. Acting now to reposition your skills is strongly advised.", occupationLabel)
	case riskBandHigh:
		return fmt.Sprintf("Your role in %s faces high exposure to AI automation. Significant parts of your work "+
			"are likely to change within the next few years. Building AI fluency and strengthening the human "+
			"elements of your role will protect your position.", occupationLabel)
	case riskBandModerate:
		return fmt.Sprintf("Your role in %s faces moderate exposure to AI automation. Some tasks will be "+
			"automated or augmented, while the core of your role remains dependent on human judgement. "+
			"Targeted upskilling will keep you ahead of the change.", occupationLabel)
	case riskBandLow:
		return fmt.Sprintf("Your role in %s has low exposure to AI automation. AI is more likely to assist you "+
			"than replace you. Learning to use AI tools well will make you more productive and valuable.",
			occupationLabel)
	default:
		return fmt.Sprintf("Your role in %s has minimal exposure to AI automation. Your work relies on skills "+
			"that current AI systems cannot replicate. Staying curious about new tools is still worthwhile.",
			occupationLabel)
	}
}

func dimensionExplanation(d models.Dimension, band dimensionBand) string {
	switch d {
	case models.DimensionTaskComposition:
		switch band {
		case dimensionBandHigh:
			return "Most of your tasks are routine and digital, which makes them prime candidates for automation."
		case dimensionBandModerate:
			return "Your work mixes routine tasks with judgement-driven work; the routine share is exposed."
		default:
			return "Your tasks are varied and judgement-heavy, which makes them hard to automate."
		}
	case models.DimensionSkillReplaceability:
		switch band {
		case dimensionBandHigh:
			return "Current AI tools can already reproduce much of your core skill set."
		case dimensionBandModerate:
			return "AI tools overlap with part of your skill set, but key capabilities remain distinctly human."
		default:
			return "Your skills are specialised or tacit and are poorly matched by current AI tools."
		}
	case models.DimensionIndustryVelocity:
		switch band {
		case dimensionBandHigh:
			return "Your industry is adopting AI quickly, which shortens the time available to adapt."
		case dimensionBandModerate:
			return "Your industry is adopting AI at a steady pace; change will arrive within a few years."
		default:
			return "Your industry is adopting AI slowly, giving you time to prepare."
		}
	case models.DimensionExperienceMoat:
		switch band {
		case dimensionBandHigh:
			return "Your experience offers limited protection; entry-level work is the first to be automated."
		case dimensionBandModerate:
			return "Your experience provides some protection, though parts of it overlap with automatable work."
		default:
			return "Your depth of experience, network and learning habits form a strong moat against automation."
		}
	case models.DimensionHumanInteraction:
		switch band {
		case dimensionBandHigh:
			return "Your work involves little direct human interaction, so it is easier to hand off to AI."
		case dimensionBandModerate:
			return "Your work involves regular human interaction, which offers partial protection."
		default:
			return "Your work depends on empathy, presence and trust, which AI cannot replicate."
		}
	default:
		return ""
	}
}
