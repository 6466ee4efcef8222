package assessment

import (
	"fmt"
	"strings"

	"career-risk-workers/internal/models"
)

// outlookBand is the three-way split used by report paragraphs.
type outlookBand int

const (
	outlookBandModerate outlookBand = iota
	outlookBandElevated
	outlookBandSevere
)

func outlookBandFor(score int) outlookBand {
	switch {
	case score >= 75:
		return outlookBandSevere
	case score >= 50:
		return outlookBandElevated
	default:
		return outlookBandModerate
	}
}

func executiveSummary(score int, occupationLabel string, highest, lowest models.DimensionScore) string {
	switch outlookBandFor(score) {
	case outlookBandSevere:
		return fmt.Sprintf("With an overall risk score of %d, your work in %s is among the most exposed to AI "+
			"automation. Your greatest vulnerability is %s (%d), while %s (%d) is your strongest protection. "+
			"The changes are already under way, so the priority is to act within months rather than years.",
			score, occupationLabel, highest.Label, highest.Score, lowest.Label, lowest.Score)
	case outlookBandElevated:
		return fmt.Sprintf("With an overall risk score of %d, your work in %s is meaningfully exposed to AI "+
			"automation. %s (%d) drives most of that exposure, while %s (%d) gives you a foundation to build "+
			"on. A deliberate plan over the next year will keep you ahead of the shift.",
			score, occupationLabel, highest.Label, highest.Score, lowest.Label, lowest.Score)
	default:
		return fmt.Sprintf("With an overall risk score of %d, your work in %s is relatively well protected from "+
			"AI automation. Keep an eye on %s (%d), your most exposed area, and keep investing in %s (%d), "+
			"which is your strongest protection.",
			score, occupationLabel, highest.Label, highest.Score, lowest.Label, lowest.Score)
	}
}

func careerOutlook(score int, occupationLabel string) string {
	switch outlookBandFor(score) {
	case outlookBandSevere:
		return fmt.Sprintf("Over the next two to three years, many routine %s roles are likely to be consolidated "+
			"or redesigned around AI systems. The people who thrive will be those who supervise, direct and "+
			"quality-check AI output, or who move toward client-facing and strategic work.", occupationLabel)
	case outlookBandElevated:
		return fmt.Sprintf("Over the next three to five years, %s work will be reshaped rather than eliminated. "+
			"Expect the task mix to shift toward judgement, coordination and communication, with AI handling "+
			"more of the preparatory work. Early adopters will set the new standard.", occupationLabel)
	default:
		return fmt.Sprintf("The outlook for %s remains stable. AI is likely to act as an assistant in your field, "+
			"removing administrative load while the core of the work stays human. Professionals who combine "+
			"their expertise with AI fluency will stand out.", occupationLabel)
	}
}

func dimensionElaboration(band dimensionBand) string {
	switch band {
	case dimensionBandHigh:
		return "This is one of the areas where automation pressure on your role is strongest and where change is most urgent."
	case dimensionBandModerate:
		return "This area is in transition; deliberate effort here can shift the balance in your favour."
	default:
		return "This area is a source of resilience and is worth protecting as your role evolves."
	}
}

// dimensionRecommendations returns the mitigation set when mitigate is true and
// the reinforcement set otherwise.
func dimensionRecommendations(d models.Dimension, mitigate bool) []string {
	switch d {
	case models.DimensionTaskComposition:
		if mitigate {
			return []string{
				"Automate your most repetitive tasks yourself before someone else does.",
				"Volunteer for exception handling and escalations that need human judgement.",
				"Track the share of your week spent on routine work and aim to reduce it each quarter.",
			}
		}
		return []string{
			"Document the judgement calls you make so their value is visible.",
			"Use AI to clear remaining admin so more of your time goes to non-routine work.",
		}
	case models.DimensionSkillReplaceability:
		if mitigate {
			return []string{
				"Learn to direct and review AI output for your core work product.",
				"Develop a niche specialisation that general-purpose tools handle poorly.",
				"Pair your technical skills with domain or client knowledge.",
			}
		}
		return []string{
			"Keep deepening your specialist knowledge and share it through mentoring.",
			"Experiment with AI tools to extend, not replace, your distinctive skills.",
		}
	case models.DimensionIndustryVelocity:
		if mitigate {
			return []string{
				"Follow how leading employers in your industry are deploying AI.",
				"Join internal AI pilots so you help shape how they change your role.",
				"Consider adjacent sectors where adoption is slower and your skills transfer.",
			}
		}
		return []string{
			"Use the extra time your industry gives you to build AI fluency early.",
			"Position yourself as the person who helps your team adopt AI responsibly.",
		}
	case models.DimensionExperienceMoat:
		if mitigate {
			return []string{
				"Seek projects that build deep, domain-specific expertise.",
				"Invest in professional relationships and visible work inside your field.",
				"Commit to learning one significant new tool or method every six months.",
			}
		}
		return []string{
			"Turn your experience into leadership by mentoring and reviewing others' work.",
			"Keep your network active; it is one of your strongest assets.",
		}
	case models.DimensionHumanInteraction:
		if mitigate {
			return []string{
				"Look for client-facing or collaborative responsibilities.",
				"Build communication, facilitation and negotiation skills.",
				"Shift toward work where trust and accountability matter to the outcome.",
			}
		}
		return []string{
			"Lean into the relationship-driven parts of your role.",
			"Let AI handle preparation so you have more time with people.",
		}
	default:
		return nil
	}
}

func adoptToolsAction(occupationLabel string) string {
	return fmt.Sprintf("Pick one AI assistant and use it every working day for drafting, research or analysis "+
		"in your %s work. Fluency comes from daily use, not from occasional experiments.", occupationLabel)
}

func mitigateAction(d models.DimensionScore) string {
	text := fmt.Sprintf("%s is your most exposed dimension at %d.", d.Label, d.Score)
	if recs := dimensionRecommendations(d.Dimension, d.Score >= mitigationThreshold); len(recs) > 0 {
		text += " " + recs[0]
	}
	return text
}

func pursueReskillAction(r models.ReskillRecommendation) string {
	var b strings.Builder
	b.WriteString(r.Rationale)
	if r.CurrentSkill != "" {
		fmt.Fprintf(&b, " It builds on your experience with %s.", r.CurrentSkill)
	}
	if len(r.Resources) > 0 {
		fmt.Fprintf(&b, " Start with %s.", r.Resources[0])
	}
	return b.String()
}

func networkAction() string {
	return "Reconnect with former colleagues, join a professional community and share what you are learning " +
		"about AI in your field. Relationships are the hardest part of a career to automate."
}

func repositionAction(score int) string {
	switch outlookBandFor(score) {
	case outlookBandSevere:
		return "Reframe your role around supervising and improving AI-driven work, and explore adjacent roles " +
			"where your domain knowledge is an advantage."
	case outlookBandElevated:
		return "Update how you describe your role to emphasise judgement, relationships and AI fluency rather " +
			"than the tasks that are being automated."
	default:
		return "Present yourself as an expert who uses AI to work faster and better, and keep an eye on how your " +
			"field evolves."
	}
}
