// Package catalog holds the static reference tables the assessment engine
// reads: the quiz, the occupation catalog, the skill-risk knowledge base,
// curated reskilling paths and per-occupation tool kits.
//
// A Catalog is built once at startup and never mutated afterwards, so a
// single value can be shared by every worker goroutine.
package catalog

import (
	"career-risk-workers/internal/models"
)

// DefaultToolKitID names the kit used for occupations without a curated one.
const DefaultToolKitID = "general"

type AnswerOption struct {
	ID        string `yaml:"id" json:"id"`
	Text      string `yaml:"text" json:"text"`
	Score     int    `yaml:"score" json:"score"`
	Rationale string `yaml:"rationale" json:"rationale"`
}

type Question struct {
	ID        string           `yaml:"id" json:"id"`
	Dimension models.Dimension `yaml:"dimension" json:"dimension"`
	Text      string           `yaml:"text" json:"text"`
	Options   []AnswerOption   `yaml:"options" json:"options"`
}

// Option resolves an answer id within the question.
func (q Question) Option(answerID string) (AnswerOption, bool) {
	for _, opt := range q.Options {
		if opt.ID == answerID {
			return opt, true
		}
	}
	return AnswerOption{}, false
}

type Occupation struct {
	ID               string   `yaml:"id" json:"id"`
	Label            string   `yaml:"label" json:"label"`
	BaselineRisk     int      `yaml:"baselineRisk" json:"baselineRisk"`
	IndustryModifier int      `yaml:"industryModifier" json:"industryModifier"`
	TypicalSkills    []string `yaml:"typicalSkills" json:"typicalSkills"`
}

type ToolKit struct {
	Tools         []models.ToolRecommendation `yaml:"tools" json:"tools"`
	FreeResources []models.FreeResource       `yaml:"freeResources" json:"freeResources"`
}

// Catalog is the immutable set of reference tables.
type Catalog struct {
	version      string
	questions    []Question
	occupations  []Occupation
	skillRisks   map[string]models.SkillRiskEntry
	reskillPaths map[string]models.ReskillRecommendation
	toolKits     map[string]ToolKit

	questionIndex   map[string]int
	occupationIndex map[string]int
}

func (c *Catalog) Version() string {
	return c.version
}

// Questions returns the quiz in catalog order.
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	for i, q := range c.questions {
		out[i] = cloneQuestion(q)
	}
	return out
}

func (c *Catalog) Question(id string) (Question, bool) {
	i, ok := c.questionIndex[id]
	if !ok {
		return Question{}, false
	}
	return cloneQuestion(c.questions[i]), true
}

func cloneQuestion(q Question) Question {
	q.Options = append([]AnswerOption(nil), q.Options...)
	return q
}

// Occupations returns the occupation catalog in declaration order.
func (c *Catalog) Occupations() []Occupation {
	out := make([]Occupation, len(c.occupations))
	for i, o := range c.occupations {
		out[i] = cloneOccupation(o)
	}
	return out
}

func (c *Catalog) Occupation(id string) (Occupation, bool) {
	i, ok := c.occupationIndex[id]
	if !ok {
		return Occupation{}, false
	}
	return cloneOccupation(c.occupations[i]), true
}

func cloneOccupation(o Occupation) Occupation {
	o.TypicalSkills = append([]string(nil), o.TypicalSkills...)
	return o
}

// SkillRisk looks up a skill by exact name in the knowledge base.
func (c *Catalog) SkillRisk(skill string) (models.SkillRiskEntry, bool) {
	entry, ok := c.skillRisks[skill]
	if !ok {
		return models.SkillRiskEntry{}, false
	}
	entry.Skill = skill
	return entry, true
}

// ReskillPath looks up the curated path for an at-risk skill by exact name.
func (c *Catalog) ReskillPath(skill string) (models.ReskillRecommendation, bool) {
	path, ok := c.reskillPaths[skill]
	if !ok {
		return models.ReskillRecommendation{}, false
	}
	path.CurrentSkill = skill
	path.Resources = append([]string(nil), path.Resources...)
	return path, true
}

// ToolKit returns the kit curated for an occupation.
func (c *Catalog) ToolKit(occupationID string) (ToolKit, bool) {
	kit, ok := c.toolKits[occupationID]
	if !ok {
		return ToolKit{}, false
	}
	return ToolKit{
		Tools:         append([]models.ToolRecommendation(nil), kit.Tools...),
		FreeResources: append([]models.FreeResource(nil), kit.FreeResources...),
	}, true
}

// Stats summarises table sizes, used by the catalog-check tool and startup logs.
type Stats struct {
	Version      string `json:"version"`
	Questions    int    `json:"questions"`
	Occupations  int    `json:"occupations"`
	SkillRisks   int    `json:"skillRisks"`
	ReskillPaths int    `json:"reskillPaths"`
	ToolKits     int    `json:"toolKits"`

	// OccupationsWithoutKit lists occupations that fall back to the general kit.
	OccupationsWithoutKit []string `json:"occupationsWithoutKit,omitempty"`
}

func (c *Catalog) Stats() Stats {
	return Stats{
		Version:               c.version,
		Questions:             len(c.questions),
		Occupations:           len(c.occupations),
		SkillRisks:            len(c.skillRisks),
		ReskillPaths:          len(c.reskillPaths),
		ToolKits:              len(c.toolKits),
		OccupationsWithoutKit: c.OccupationsWithoutKit(),
	}
}

// OccupationsWithoutKit returns, in declaration order, the occupations with no
// curated tool kit of their own.
func (c *Catalog) OccupationsWithoutKit() []string {
	var missing []string
	for _, o := range c.occupations {
		if _, ok := c.toolKits[o.ID]; !ok {
			missing = append(missing, o.ID)
		}
	}
	return missing
}
