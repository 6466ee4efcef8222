package assessment

import (
	"fmt"

	"career-risk-workers/internal/catalog"
	"career-risk-workers/internal/models"
)

// roadmapResourceSlots maps a roadmap month to the position of the free
// resource it cites in the occupation's kit. Selection is positional, not
// topical: reordering a kit's freeResources changes which month cites which
// course. A month whose slot is past the end of the list cites nothing.
var roadmapResourceSlots = map[int]int{
	1: 0,
	2: 1,
	3: 2,
}

func buildRoadmap(result *models.ScoringResult, highest, lowest models.DimensionScore, kit catalog.ToolKit) models.SixMonthRoadmap {
	months := []models.RoadmapMonth{
		{
			Month: 1,
			Title: "Build your AI foundation",
			Focus: "Daily use of core AI tools",
			Actions: []string{
				"Set up the mandatory tools in your kit and use them every working day.",
				"Keep a log of tasks where AI saved you time and where it fell short.",
			},
			Tools: toolNames(kit.Tools, models.TierMandatory),
		},
		{
			Month:   2,
			Title:   "Reduce exposure in " + highest.Label,
			Focus:   fmt.Sprintf("%s is your most exposed dimension (%d)", highest.Label, highest.Score),
			Actions: dimensionRecommendations(highest.Dimension, highest.Score >= mitigationThreshold),
		},
		{
			Month:   3,
			Title:   "Reinforce " + lowest.Label,
			Focus:   fmt.Sprintf("%s is your strongest protection (%d)", lowest.Label, lowest.Score),
			Actions: dimensionRecommendations(lowest.Dimension, lowest.Score >= mitigationThreshold),
		},
		reskillMonth(result.Reskilling),
		{
			Month: 5,
			Title: "Automate and scale your workflow",
			Focus: "Hand routine work to AI and move up the value chain",
			Actions: []string{
				"Automate one recurring workflow end to end.",
				"Share what you have automated with your team or manager.",
			},
			Tools: toolNames(kit.Tools, models.TierRecommended),
		},
		{
			Month: 6,
			Title: "Reposition and review",
			Focus: "Turn six months of progress into a stronger career position",
			Actions: []string{
				"Update your CV and professional profiles with the AI skills you have built.",
				"Retake the assessment and compare your dimension scores.",
			},
			Tools: toolNames(kit.Tools, models.TierAdvanced),
		},
	}

	for i := range months {
		if idx, ok := roadmapResourceSlots[months[i].Month]; ok {
			months[i].Resources = resourceAt(kit.FreeResources, idx)
		}
	}

	return models.SixMonthRoadmap{
		Overview: roadmapOverview(result.OverallScore, result.OccupationLabel),
		Months:   months,
	}
}

func reskillMonth(recs []models.ReskillRecommendation) models.RoadmapMonth {
	if len(recs) == 0 {
		return models.RoadmapMonth{
			Month:   4,
			Title:   "Broaden your skill set",
			Focus:   "Pick one adjacent skill that complements AI tools",
			Actions: []string{"Choose a skill your colleagues rely on and start a structured course."},
		}
	}
	top := recs[0]
	return models.RoadmapMonth{
		Month: 4,
		Title: "Start reskilling: " + top.TargetSkill,
		Focus: top.Rationale,
		Actions: []string{
			fmt.Sprintf("Commit to the %s path (%s).", top.TargetSkill, top.Effort),
			"Apply what you learn to a real project at work as soon as possible.",
		},
		Resources: append([]string(nil), top.Resources...),
	}
}

func toolNames(tools []models.ToolRecommendation, tier models.ToolTier) []string {
	var names []string
	for _, t := range tools {
		if t.Tier == tier {
			names = append(names, t.Name)
		}
	}
	return names
}

func resourceAt(resources []models.FreeResource, idx int) []string {
	if idx < 0 || idx >= len(resources) {
		return nil
	}
	r := resources[idx]
	if r.Provider == "" {
		return []string{r.Title}
	}
	return []string{fmt.Sprintf("%s (%s)", r.Title, r.Provider)}
}

func roadmapOverview(score int, occupationLabel string) string {
	switch outlookBandFor(score) {
	case outlookBandSevere:
		return fmt.Sprintf("This roadmap is built for urgency. Your %s role faces rapid change, so the first "+
			"three months focus on AI fluency and on your most exposed areas before moving into reskilling.",
			occupationLabel)
	case outlookBandElevated:
		return fmt.Sprintf("This roadmap balances adaptation with growth. Over six months you will build AI "+
			"fluency, reduce your main exposure in %s work and start a reskilling path.", occupationLabel)
	default:
		return fmt.Sprintf("This roadmap is about staying ahead. Your %s role is relatively well protected, so "+
			"the focus is on using AI to amplify your strengths and keep your skills current.", occupationLabel)
	}
}
