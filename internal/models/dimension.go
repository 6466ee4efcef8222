// internal/models/dimension.go
package models

import "fmt"

// Dimension is one of the five fixed axes of AI-automation exposure.
type Dimension string

const (
	DimensionTaskComposition     Dimension = "taskComposition"
	DimensionSkillReplaceability Dimension = "skillReplaceability"
	DimensionIndustryVelocity    Dimension = "industryVelocity"
	DimensionExperienceMoat      Dimension = "experienceMoat"
	DimensionHumanInteraction    Dimension = "humanInteraction"
)

// Dimensions lists every dimension in canonical catalog order.
// Scoring output, report sections and insight grouping all follow this order.
var Dimensions = [...]Dimension{
	DimensionTaskComposition,
	DimensionSkillReplaceability,
	DimensionIndustryVelocity,
	DimensionExperienceMoat,
	DimensionHumanInteraction,
}

// Weight returns the fixed contribution of the dimension to the quiz score.
// The five weights sum to exactly 1.0.
func (d Dimension) Weight() float64 {
	switch d {
	case DimensionTaskComposition:
		return 0.30
	case DimensionSkillReplaceability:
		return 0.25
	case DimensionIndustryVelocity:
		return 0.20
	case DimensionExperienceMoat:
		return 0.10
	case DimensionHumanInteraction:
		return 0.15
	default:
		return 0
	}
}

// Label returns the display name of the dimension.
func (d Dimension) Label() string {
	switch d {
	case DimensionTaskComposition:
		return "Task Composition"
	case DimensionSkillReplaceability:
		return "Skill Replaceability"
	case DimensionIndustryVelocity:
		return "Industry Adoption Velocity"
	case DimensionExperienceMoat:
		return "Experience & Expertise Moat"
	case DimensionHumanInteraction:
		return "Human Interaction Dependency"
	default:
		return string(d)
	}
}

// Index returns the position of the dimension in canonical order, or -1.
func (d Dimension) Index() int {
	for i, dim := range Dimensions {
		if dim == d {
			return i
		}
	}
	return -1
}

func (d Dimension) Valid() bool {
	return d.Index() >= 0
}

// ParseDimension converts a catalog string into a Dimension.
func ParseDimension(s string) (Dimension, error) {
	d := Dimension(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown dimension %q", s)
	}
	return d, nil
}
