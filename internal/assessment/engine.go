// Package assessment is the risk assessment and report pipeline.
//
// An Engine turns quiz answers and an occupation id into a ScoringResult, and
// a ScoringResult into a PremiumReport or EnhancedPremiumReport. Every method
// is a pure function of its arguments and the catalog the engine was built
// with; nothing is cached, logged or persisted here, so one Engine can serve
// every worker goroutine.
package assessment

import (
	"errors"
	"fmt"

	"career-risk-workers/internal/catalog"
	"career-risk-workers/internal/models"
)

// ErrUnknownOccupation is matched by every *UnknownOccupationError.
var ErrUnknownOccupation = errors.New("unknown occupation")

// UnknownOccupationError is the only error Score returns.
type UnknownOccupationError struct {
	OccupationID string
}

func (e *UnknownOccupationError) Error() string {
	return fmt.Sprintf("unknown occupation %q", e.OccupationID)
}

func (e *UnknownOccupationError) Is(target error) bool {
	return target == ErrUnknownOccupation
}

type Engine struct {
	catalog *catalog.Catalog
}

func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Catalog returns the reference tables the engine reads.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Score runs the scoring pipeline for one assessment. Unresolvable answers are
// ignored; an occupation id missing from the catalog aborts with
// *UnknownOccupationError and a nil result.
func (e *Engine) Score(answers []models.QuizAnswer, occupationID string) (*models.ScoringResult, error) {
	occupation, ok := e.catalog.Occupation(occupationID)
	if !ok {
		return nil, &UnknownOccupationError{OccupationID: occupationID}
	}

	raw := e.dimensionScores(answers)
	b := blend(raw, occupation)
	skills := e.skillBreakdown(occupation.TypicalSkills, b.overall)

	return &models.ScoringResult{
		OccupationID:    occupation.ID,
		OccupationLabel: occupation.Label,
		CatalogVersion:  e.catalog.Version(),
		OverallScore:    b.overall,
		RiskLabel:       riskLabel(b.overall),
		Summary:         summaryText(b.overall, occupation.Label),
		Dimensions:      b.dimensionScores(),
		SkillBreakdown:  skills,
		Reskilling:      e.reskilling(skills),
	}, nil
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clampFloat(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
