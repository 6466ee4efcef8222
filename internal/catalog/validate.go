// internal/catalog/validate.go
package catalog

import (
	"errors"
	"fmt"

	"career-risk-workers/internal/models"
)

const (
	minIndustryModifier = -20
	maxIndustryModifier = 20
)

// ValidationError lists every problem found in a catalog document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid catalog: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid catalog: %d problems, first: %s", len(e.Problems), e.Problems[0])
}

// ErrInvalidCatalog is matched by every *ValidationError.
var ErrInvalidCatalog = errors.New("invalid catalog")

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidCatalog
}

func validate(doc document) error {
	var problems []string
	addf := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if doc.Version == "" {
		addf("version is required")
	}

	perDimension := map[models.Dimension]int{}
	seenQuestions := map[string]bool{}
	for i, q := range doc.Questions {
		if q.ID == "" {
			addf("questions[%d]: id is required", i)
		} else if seenQuestions[q.ID] {
			addf("questions[%d]: duplicate id %q", i, q.ID)
		}
		seenQuestions[q.ID] = true

		if !q.Dimension.Valid() {
			addf("question %q: unknown dimension %q", q.ID, q.Dimension)
		} else {
			perDimension[q.Dimension]++
		}
		if len(q.Options) == 0 {
			addf("question %q: has no answer options", q.ID)
		}
		seenOptions := map[string]bool{}
		for _, opt := range q.Options {
			if opt.ID == "" {
				addf("question %q: option id is required", q.ID)
			} else if seenOptions[opt.ID] {
				addf("question %q: duplicate option id %q", q.ID, opt.ID)
			}
			seenOptions[opt.ID] = true
			if opt.Score < 0 || opt.Score > 100 {
				addf("question %q option %q: score %d out of range [0,100]", q.ID, opt.ID, opt.Score)
			}
		}
	}
	for _, d := range models.Dimensions {
		if perDimension[d] == 0 {
			addf("dimension %q has no questions", d)
		}
	}

	seenOccupations := map[string]bool{}
	for i, o := range doc.Occupations {
		if o.ID == "" {
			addf("occupations[%d]: id is required", i)
		} else if seenOccupations[o.ID] {
			addf("occupations[%d]: duplicate id %q", i, o.ID)
		}
		seenOccupations[o.ID] = true

		if o.Label == "" {
			addf("occupation %q: label is required", o.ID)
		}
		if o.BaselineRisk < 0 || o.BaselineRisk > 100 {
			addf("occupation %q: baselineRisk %d out of range [0,100]", o.ID, o.BaselineRisk)
		}
		if o.IndustryModifier < minIndustryModifier || o.IndustryModifier > maxIndustryModifier {
			addf("occupation %q: industryModifier %d out of range [%d,%d]",
				o.ID, o.IndustryModifier, minIndustryModifier, maxIndustryModifier)
		}
		if len(o.TypicalSkills) == 0 {
			addf("occupation %q: typicalSkills is empty", o.ID)
		}
	}
	if len(doc.Occupations) == 0 {
		addf("occupation catalog is empty")
	}

	for name, entry := range doc.SkillRisks {
		if !entry.RiskLevel.Valid() {
			addf("skill %q: unknown riskLevel %q", name, entry.RiskLevel)
		}
		if entry.RiskScore < 0 || entry.RiskScore > 100 {
			addf("skill %q: riskScore %d out of range [0,100]", name, entry.RiskScore)
		}
	}

	for name, path := range doc.ReskillPaths {
		if path.TargetSkill == "" {
			addf("reskill path %q: targetSkill is required", name)
		}
		if !path.Effort.Valid() {
			addf("reskill path %q: unknown effort %q", name, path.Effort)
		}
	}

	if _, ok := doc.ToolKits[DefaultToolKitID]; !ok {
		addf("tool kit %q is required", DefaultToolKitID)
	}
	for id, kit := range doc.ToolKits {
		if id != DefaultToolKitID && !seenOccupations[id] {
			addf("tool kit %q does not match any occupation", id)
		}
		for _, tool := range kit.Tools {
			if !tool.Tier.Valid() {
				addf("tool kit %q tool %q: unknown tier %q", id, tool.Name, tool.Tier)
			}
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
