// internal/models/assessment.go
package models

// QuizAnswer is a single completed question as supplied by the caller.
type QuizAnswer struct {
	QuestionID string `json:"questionId"`
	AnswerID   string `json:"answerId"`
}

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

func (l RiskLevel) Valid() bool {
	switch l {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh:
		return true
	}
	return false
}

// EffortClass is how long a reskilling path takes.
type EffortClass string

const (
	EffortWeeks     EffortClass = "weeks"
	EffortMonths    EffortClass = "months"
	EffortSixMonths EffortClass = "6+ months"
)

func (e EffortClass) Valid() bool {
	switch e {
	case EffortWeeks, EffortMonths, EffortSixMonths:
		return true
	}
	return false
}

type SkillRiskEntry struct {
	Skill          string    `json:"skill" yaml:"-"`
	RiskLevel      RiskLevel `json:"riskLevel" yaml:"riskLevel"`
	RiskScore      int       `json:"riskScore" yaml:"riskScore"`
	Explanation    string    `json:"explanation" yaml:"explanation"`
	CapabilityNote string    `json:"capabilityNote,omitempty" yaml:"capabilityNote,omitempty"`
	TimeHorizon    string    `json:"timeHorizon" yaml:"timeHorizon"`
	Estimated      bool      `json:"estimated,omitempty" yaml:"-"`
}

type ReskillRecommendation struct {
	CurrentSkill string      `json:"currentSkill,omitempty" yaml:"-"`
	TargetSkill  string      `json:"targetSkill" yaml:"targetSkill"`
	Rationale    string      `json:"rationale" yaml:"rationale"`
	Effort       EffortClass `json:"effort" yaml:"effort"`
	Resources    []string    `json:"resources" yaml:"resources"`
}

type DimensionScore struct {
	Dimension   Dimension `json:"dimension"`
	Label       string    `json:"label"`
	Score       int       `json:"score"`
	Explanation string    `json:"explanation"`
}

// ScoringResult is the primary output of the scoring pipeline and the input to
// the report builders.
type ScoringResult struct {
	OccupationID    string                  `json:"occupationId"`
	OccupationLabel string                  `json:"occupationLabel"`
	CatalogVersion  string                  `json:"catalogVersion,omitempty"`
	OverallScore    int                     `json:"overallScore"`
	RiskLabel       string                  `json:"riskLabel"`
	Summary         string                  `json:"summary"`
	Dimensions      []DimensionScore        `json:"dimensions"`
	SkillBreakdown  []SkillRiskEntry        `json:"skillBreakdown"`
	Reskilling      []ReskillRecommendation `json:"reskilling"`
}

// Dimension returns the score entry for d, if present.
func (r *ScoringResult) Dimension(d Dimension) (DimensionScore, bool) {
	for _, ds := range r.Dimensions {
		if ds.Dimension == d {
			return ds, true
		}
	}
	return DimensionScore{}, false
}
