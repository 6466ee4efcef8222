package assessment

import (
	"fmt"
	"strings"
	"testing"

	"career-risk-workers/internal/catalog"
	"career-risk-workers/internal/models"

	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

// Every dimension gets questions "a", "b" and "c"; each question offers an
// option for every multiple of 5 so tests can pick exact raw scores.
var testQuestionSuffixes = []string{"a", "b", "c"}

const testTablesYAML = `
occupations:
  - id: finance-accounting
    label: Finance & Accounting
    baselineRisk: 72
    industryModifier: 8
    typicalSkills: [Data Entry, Bookkeeping, Financial Reporting, Tax Preparation, Client Advisory, Unmapped Skill]
  - id: steady-role
    label: Steady Role
    baselineRisk: 40
    industryModifier: 0
    typicalSkills: [Client Advisory, Mentoring]
  - id: cap-role
    label: Cap Role
    baselineRisk: 10
    industryModifier: 0
    typicalSkills: [Data Entry, Bookkeeping, Financial Reporting, Tax Preparation, Filing, Archiving]
  - id: ceiling-role
    label: Ceiling Role
    baselineRisk: 100
    industryModifier: 20
    typicalSkills: [Unmapped Skill]
  - id: floor-role
    label: Floor Role
    baselineRisk: 0
    industryModifier: -20
    typicalSkills: [Unmapped Skill]

skillRisks:
  Data Entry:
    riskLevel: high
    riskScore: 92
    explanation: Data entry is automated.
    timeHorizon: 1-2 years
  Bookkeeping:
    riskLevel: high
    riskScore: 85
    explanation: Bookkeeping is automated.
    timeHorizon: 1-2 years
  Financial Reporting:
    riskLevel: high
    riskScore: 74
    explanation: Reports are generated.
    timeHorizon: 2-3 years
  Tax Preparation:
    riskLevel: high
    riskScore: 78
    explanation: Returns are rule based.
    timeHorizon: 2-3 years
  Filing:
    riskLevel: high
    riskScore: 66
    explanation: Filing is automated.
    timeHorizon: 1-2 years
  Archiving:
    riskLevel: high
    riskScore: 65
    explanation: Archiving is automated.
    timeHorizon: 1-2 years
  Client Advisory:
    riskLevel: low
    riskScore: 24
    explanation: Advice needs trust.
    timeHorizon: 5+ years
  Mentoring:
    riskLevel: low
    riskScore: 9
    explanation: Mentoring needs people.
    timeHorizon: 5+ years

reskillPaths:
  Data Entry:
    targetSkill: Automation Oversight
    rationale: Supervise the pipelines.
    effort: weeks
    resources: [Course DE]
  Bookkeeping:
    targetSkill: FP&A
    rationale: Look forward.
    effort: months
    resources: [Course BK]
  Financial Reporting:
    targetSkill: Business Partnering
    rationale: Explain the numbers.
    effort: months
    resources: [Course FR]
  Filing:
    targetSkill: Records Governance
    rationale: Own the policy.
    effort: weeks
    resources: [Course FI]
  Archiving:
    targetSkill: Information Management
    rationale: Own the archive.
    effort: weeks
    resources: [Course AR]

toolKits:
  general:
    tools:
      - name: General Assistant
        category: Assistant
        tier: mandatory
        price: $20/month
        useCase: Everything.
    freeResources:
      - title: General Course
        provider: Provider G
        kind: course
  finance-accounting:
    tools:
      - name: Ledger AI
        category: Accounting
        tier: mandatory
        price: $20/month
        useCase: Ledger.
      - name: Sheet AI
        category: Spreadsheets
        tier: mandatory
        price: $30.50/user/month
        useCase: Sheets.
      - name: Enterprise FP&A
        category: FP&A
        tier: mandatory
        price: Custom pricing
        useCase: Planning.
      - name: Receipt Bot
        category: Capture
        tier: recommended
        price: $24/month
        useCase: Receipts.
      - name: Research Lab
        category: Research
        tier: advanced
        price: Free
        useCase: Research.
    freeResources:
      - title: Course Zero
        provider: Provider A
        kind: course
      - title: Course One
        provider: Provider B
        kind: course
`

func testCatalogYAML() string {
	var b strings.Builder
	b.WriteString("version: test-1\nquestions:\n")
	for _, d := range models.Dimensions {
		for _, suffix := range testQuestionSuffixes {
			id := fmt.Sprintf("%s-%s", d, suffix)
			fmt.Fprintf(&b, "  - id: %s\n    dimension: %s\n    text: Question %s\n    options:\n", id, d, id)
			for score := 0; score <= 100; score += 5 {
				fmt.Fprintf(&b, "      - id: %s-%d\n        text: Answer %d\n        score: %d\n        rationale: Rationale %d\n",
					id, score, score, score, score)
			}
		}
	}
	b.WriteString(testTablesYAML)
	return b.String()
}

func createTestEngine(t *testing.T) *Engine {
	t.Helper()
	c, err := catalog.Load(strings.NewReader(testCatalogYAML()))
	require.NoError(t, err)
	return NewEngine(c)
}

func createDefaultEngine(t *testing.T) *Engine {
	t.Helper()
	c, err := catalog.LoadDefault()
	require.NoError(t, err)
	return NewEngine(c)
}

func answer(d models.Dimension, suffix string, score int) models.QuizAnswer {
	return models.QuizAnswer{
		QuestionID: fmt.Sprintf("%s-%s", d, suffix),
		AnswerID:   fmt.Sprintf("%s-%s-%d", d, suffix, score),
	}
}

// uniformAnswers answers question "a" of every dimension with the same score.
func uniformAnswers(score int) []models.QuizAnswer {
	out := make([]models.QuizAnswer, 0, len(models.Dimensions))
	for _, d := range models.Dimensions {
		out = append(out, answer(d, "a", score))
	}
	return out
}

// workedExampleAnswers yields raw scores 80/70/60/50/40 in catalog order.
func workedExampleAnswers() []models.QuizAnswer {
	return []models.QuizAnswer{
		answer(models.DimensionTaskComposition, "a", 80),
		answer(models.DimensionSkillReplaceability, "a", 70),
		answer(models.DimensionIndustryVelocity, "a", 60),
		answer(models.DimensionExperienceMoat, "a", 50),
		answer(models.DimensionHumanInteraction, "a", 40),
	}
}

func scoreOf(t *testing.T, result *models.ScoringResult, d models.Dimension) int {
	t.Helper()
	ds, ok := result.Dimension(d)
	require.True(t, ok, "dimension %s missing", d)
	return ds.Score
}
