package assessment

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"career-risk-workers/internal/models"
)

var priceNumber = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

// parseMonthlyPrice reads the first numeric run of a free-text price such as
// "$30/user/month". ok is false when the string holds no number.
func parseMonthlyPrice(price string) (float64, bool) {
	m := priceNumber.FindString(price)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// investmentSummary partitions tools by tier and totals the mandatory tier.
// Tools with an unparseable price stay listed but are left out of the total.
func investmentSummary(score int, tools []models.ToolRecommendation) models.PaidInvestmentSummary {
	summary := models.PaidInvestmentSummary{
		MandatoryTools:   []models.ToolRecommendation{},
		RecommendedTools: []models.ToolRecommendation{},
		AdvancedTools:    []models.ToolRecommendation{},
	}
	for _, t := range tools {
		switch t.Tier {
		case models.TierMandatory:
			summary.MandatoryTools = append(summary.MandatoryTools, t)
			if v, ok := parseMonthlyPrice(t.Price); ok {
				summary.MonthlyMandatoryCost += v
			} else {
				summary.UnpricedTools = append(summary.UnpricedTools, t.Name)
			}
		case models.TierRecommended:
			summary.RecommendedTools = append(summary.RecommendedTools, t)
		case models.TierAdvanced:
			summary.AdvancedTools = append(summary.AdvancedTools, t)
		}
	}
	summary.ROIExplanation = roiExplanation(score, summary.MonthlyMandatoryCost, summary.UnpricedTools)
	return summary
}

// roiExplanation pairs a cost sentence with band-specific advice. When no
// mandatory tool has a parseable price the dollar figure is dropped; otherwise
// unpriced tools are named as excluded from the total.
func roiExplanation(score int, monthly float64, unpriced []string) string {
	cost, advice := roiSentences(score, fmt.Sprintf("$%.2f", monthly))
	if len(unpriced) == 0 {
		return cost + " " + advice
	}

	names := strings.Join(unpriced, ", ")
	if monthly == 0 {
		return fmt.Sprintf("Pricing for %s depends on your plan or employer, so no monthly total is shown. %s", names, advice)
	}
	return fmt.Sprintf("%s The total excludes %s, which has no fixed monthly price. %s", cost, names, advice)
}

func roiSentences(score int, cost string) (string, string) {
	switch outlookBandFor(score) {
	case outlookBandSevere:
		return fmt.Sprintf("At %s per month, the mandatory tools are a small price against the risk of being displaced.", cost),
			"Saving even two hours a week pays for them many times over, and the fluency you build is what employers will screen for."
	case outlookBandElevated:
		return fmt.Sprintf("An investment of %s per month in the mandatory tools typically pays back within the first month.", cost),
			"The time saved on routine work positions you ahead of peers who wait."
	default:
		return fmt.Sprintf("The mandatory tools cost %s per month.", cost),
			"Your role is relatively well protected, so treat this as a productivity investment: add recommended " +
				"and advanced tools only when they save you real time."
	}
}
