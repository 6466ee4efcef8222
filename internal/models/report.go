// internal/models/report.go
package models

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityModerate Severity = "moderate"
)

// ItemSource tells whether a risk or strength came from a dimension or a skill.
type ItemSource string

const (
	SourceDimension ItemSource = "dimension"
	SourceSkill     ItemSource = "skill"
)

type DimensionAnalysis struct {
	Dimension       Dimension `json:"dimension"`
	Label           string    `json:"label"`
	Score           int       `json:"score"`
	Analysis        string    `json:"analysis"`
	Recommendations []string  `json:"recommendations"`
}

type RiskItem struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Severity    Severity   `json:"severity"`
	Score       int        `json:"score"`
	Source      ItemSource `json:"source"`
}

type StrengthItem struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Score       int        `json:"score"`
	Source      ItemSource `json:"source"`
}

type ActionItem struct {
	Priority    int    `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Timeframe   string `json:"timeframe"`
}

// PremiumReport is the composed, read-only report built from a ScoringResult.
type PremiumReport struct {
	OccupationID      string                  `json:"occupationId"`
	OccupationLabel   string                  `json:"occupationLabel"`
	OverallScore      int                     `json:"overallScore"`
	RiskLabel         string                  `json:"riskLabel"`
	ExecutiveSummary  string                  `json:"executiveSummary"`
	DimensionAnalysis []DimensionAnalysis     `json:"dimensionAnalysis"`
	TopRisks          []RiskItem              `json:"topRisks"`
	TopStrengths      []StrengthItem          `json:"topStrengths"`
	ActionPlan        []ActionItem            `json:"actionPlan"`
	CareerOutlook     string                  `json:"careerOutlook"`
	SkillBreakdown    []SkillRiskEntry        `json:"skillBreakdown"`
	Reskilling        []ReskillRecommendation `json:"reskilling"`
}

type Impact string

const (
	ImpactIncreasesRisk Impact = "increases risk"
	ImpactDecreasesRisk Impact = "decreases risk"
	ImpactNeutral       Impact = "neutral"
)

type AnswerInsight struct {
	QuestionID  string    `json:"questionId"`
	Question    string    `json:"question"`
	Dimension   Dimension `json:"dimension"`
	AnswerID    string    `json:"answerId"`
	Answer      string    `json:"answer"`
	Score       int       `json:"score"`
	Impact      Impact    `json:"impact"`
	Rationale   string    `json:"rationale"`
	CoachingTip string    `json:"coachingTip"`
}

type RoadmapMonth struct {
	Month     int      `json:"month"`
	Title     string   `json:"title"`
	Focus     string   `json:"focus"`
	Actions   []string `json:"actions"`
	Tools     []string `json:"tools,omitempty"`
	Resources []string `json:"resources,omitempty"`
}

type SixMonthRoadmap struct {
	Overview string         `json:"overview"`
	Months   []RoadmapMonth `json:"months"`
}

// ToolTier is the priority tier of a tool inside an occupation's kit.
type ToolTier string

const (
	TierMandatory   ToolTier = "mandatory"
	TierRecommended ToolTier = "recommended"
	TierAdvanced    ToolTier = "advanced"
)

func (t ToolTier) Valid() bool {
	switch t {
	case TierMandatory, TierRecommended, TierAdvanced:
		return true
	}
	return false
}

type ToolRecommendation struct {
	Name     string   `json:"name" yaml:"name"`
	Category string   `json:"category" yaml:"category"`
	Tier     ToolTier `json:"tier" yaml:"tier"`
	Price    string   `json:"price" yaml:"price"`
	UseCase  string   `json:"useCase" yaml:"useCase"`
	URL      string   `json:"url,omitempty" yaml:"url,omitempty"`
}

type FreeResource struct {
	Title    string `json:"title" yaml:"title"`
	Provider string `json:"provider" yaml:"provider"`
	Kind     string `json:"kind" yaml:"kind"`
	Duration string `json:"duration,omitempty" yaml:"duration,omitempty"`
	URL      string `json:"url,omitempty" yaml:"url,omitempty"`
}

type PaidInvestmentSummary struct {
	MandatoryTools       []ToolRecommendation `json:"mandatoryTools"`
	RecommendedTools     []ToolRecommendation `json:"recommendedTools"`
	AdvancedTools        []ToolRecommendation `json:"advancedTools"`
	MonthlyMandatoryCost float64              `json:"monthlyMandatoryCost"`
	UnpricedTools        []string             `json:"unpricedTools,omitempty"`
	ROIExplanation       string               `json:"roiExplanation"`
}

// EnhancedPremiumReport extends PremiumReport with coaching, roadmap and tool picks.
type EnhancedPremiumReport struct {
	PremiumReport
	AnswerInsights    []AnswerInsight       `json:"answerInsights"`
	Roadmap           SixMonthRoadmap       `json:"roadmap"`
	Tools             []ToolRecommendation  `json:"tools"`
	FreeResources     []FreeResource        `json:"freeResources"`
	InvestmentSummary PaidInvestmentSummary `json:"investmentSummary"`
}
