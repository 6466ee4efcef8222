package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"career-risk-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalCatalog = `
version: "v-min"
questions:
  - id: q-tc
    dimension: taskComposition
    text: TC
    options: [{id: tc-1, text: One, score: 10, rationale: r}]
  - id: q-sr
    dimension: skillReplaceability
    text: SR
    options: [{id: sr-1, text: One, score: 20, rationale: r}]
  - id: q-iv
    dimension: industryVelocity
    text: IV
    options: [{id: iv-1, text: One, score: 30, rationale: r}]
  - id: q-em
    dimension: experienceMoat
    text: EM
    options: [{id: em-1, text: One, score: 40, rationale: r}]
  - id: q-hi
    dimension: humanInteraction
    text: HI
    options: [{id: hi-1, text: One, score: 50, rationale: r}]
occupations:
  - id: clerk
    label: Clerk
    baselineRisk: 70
    industryModifier: 5
    typicalSkills: [Filing]
skillRisks:
  Filing: {riskLevel: high, riskScore: 80, explanation: e, timeHorizon: 1-2 years}
reskillPaths:
  Filing: {targetSkill: Records Governance, rationale: r, effort: weeks, resources: [Course]}
toolKits:
  general:
    tools: [{name: Assistant, category: c, tier: mandatory, price: $10/month, useCase: u}]
    freeResources: [{title: Intro, provider: P, kind: course}]
`

// ==========================
// Default Catalog
// ==========================

func TestLoadDefault(t *testing.T) {
	c, err := LoadDefault()
	require.NoError(t, err)

	stats := c.Stats()
	assert.NotEmpty(t, stats.Version)
	assert.Equal(t, 15, stats.Questions)
	assert.Equal(t, 12, stats.Occupations)
	assert.NotZero(t, stats.SkillRisks)
	assert.NotZero(t, stats.ReskillPaths)

	occupation, ok := c.Occupation("finance-accounting")
	require.True(t, ok)
	assert.Equal(t, 72, occupation.BaselineRisk)
	assert.Equal(t, 8, occupation.IndustryModifier)

	_, ok = c.ToolKit(DefaultToolKitID)
	assert.True(t, ok)
}

func TestLoadDefault_EveryOccupationHasToolKit(t *testing.T) {
	c, err := LoadDefault()
	require.NoError(t, err)

	assert.Empty(t, c.OccupationsWithoutKit())
	assert.Equal(t, len(c.Occupations())+1, c.Stats().ToolKits, "one kit per occupation plus general")

	for _, o := range c.Occupations() {
		kit, ok := c.ToolKit(o.ID)
		require.True(t, ok, o.ID)
		assert.GreaterOrEqual(t, len(kit.FreeResources), 3, o.ID)

		hasMandatory := false
		for _, tool := range kit.Tools {
			if tool.Tier == models.TierMandatory {
				hasMandatory = true
			}
		}
		assert.True(t, hasMandatory, o.ID)
	}
}

func TestLoadDefault_EveryDimensionHasQuestions(t *testing.T) {
	c, err := LoadDefault()
	require.NoError(t, err)

	counts := map[models.Dimension]int{}
	for _, q := range c.Questions() {
		counts[q.Dimension]++
		assert.NotEmpty(t, q.Options, q.ID)
	}
	for _, d := range models.Dimensions {
		assert.Equal(t, 3, counts[d], d)
	}
}

// ==========================
// Lookups
// ==========================

func TestLookups(t *testing.T) {
	c, err := Load(strings.NewReader(minimalCatalog))
	require.NoError(t, err)

	assert.Equal(t, "v-min", c.Version())

	q, ok := c.Question("q-iv")
	require.True(t, ok)
	assert.Equal(t, models.DimensionIndustryVelocity, q.Dimension)
	opt, ok := q.Option("iv-1")
	require.True(t, ok)
	assert.Equal(t, 30, opt.Score)
	_, ok = q.Option("missing")
	assert.False(t, ok)
	_, ok = c.Question("missing")
	assert.False(t, ok)

	entry, ok := c.SkillRisk("Filing")
	require.True(t, ok)
	assert.Equal(t, "Filing", entry.Skill)
	assert.Equal(t, models.RiskLevelHigh, entry.RiskLevel)
	_, ok = c.SkillRisk("filing")
	assert.False(t, ok, "lookups are exact")

	path, ok := c.ReskillPath("Filing")
	require.True(t, ok)
	assert.Equal(t, "Filing", path.CurrentSkill)
	assert.Equal(t, models.EffortWeeks, path.Effort)

	_, ok = c.ToolKit("clerk")
	assert.False(t, ok, "no fallback at the catalog level")
}

func TestLookupsReturnCopies(t *testing.T) {
	c, err := Load(strings.NewReader(minimalCatalog))
	require.NoError(t, err)

	path, _ := c.ReskillPath("Filing")
	path.Resources[0] = "changed"
	again, _ := c.ReskillPath("Filing")
	assert.Equal(t, "Course", again.Resources[0])

	kit, _ := c.ToolKit(DefaultToolKitID)
	kit.Tools[0].Name = "changed"
	kitAgain, _ := c.ToolKit(DefaultToolKitID)
	assert.Equal(t, "Assistant", kitAgain.Tools[0].Name)

	questions := c.Questions()
	questions[0].ID = "changed"
	_, ok := c.Question("q-tc")
	assert.True(t, ok)
	assert.Equal(t, "q-tc", c.Questions()[0].ID)

	q, _ := c.Question("q-tc")
	q.Options[0].Score = 99
	c.Questions()[0].Options[0].Score = 99
	qAgain, _ := c.Question("q-tc")
	assert.Equal(t, 10, qAgain.Options[0].Score)

	occ, _ := c.Occupation("clerk")
	occ.TypicalSkills[0] = "changed"
	c.Occupations()[0].TypicalSkills[0] = "changed"
	occAgain, _ := c.Occupation("clerk")
	assert.Equal(t, []string{"Filing"}, occAgain.TypicalSkills)
}

func TestOccupationsWithoutKit(t *testing.T) {
	c, err := Load(strings.NewReader(minimalCatalog))
	require.NoError(t, err)

	assert.Equal(t, []string{"clerk"}, c.OccupationsWithoutKit())
	assert.Equal(t, []string{"clerk"}, c.Stats().OccupationsWithoutKit)
}

// ==========================
// Loading
// ==========================

func TestLoadFS_MergesFilesInOrder(t *testing.T) {
	parts := strings.SplitN(minimalCatalog, "occupations:", 2)
	fsys := fstest.MapFS{
		"a-quiz.yaml":   {Data: []byte(parts[0])},
		"b-rest.yaml":   {Data: []byte("occupations:" + parts[1])},
		"c-empty.yaml":  {Data: []byte("")},
		"ignored.json":  {Data: []byte("{not yaml")},
		"sub/skip.yaml": {Data: []byte("version: other")},
	}

	c, err := LoadFS(fsys)
	require.NoError(t, err)
	assert.Equal(t, "v-min", c.Version())
	assert.Equal(t, 5, c.Stats().Questions)
	assert.Equal(t, 1, c.Stats().Occupations)
}

func TestLoadFS_NoFiles(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{})
	assert.Error(t, err)
}

func TestLoadPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(file, []byte(minimalCatalog), 0o600))

	fromFile, err := LoadPath(file)
	require.NoError(t, err)
	assert.Equal(t, "v-min", fromFile.Version())

	fromDir, err := LoadPath(dir)
	require.NoError(t, err)
	assert.Equal(t, "v-min", fromDir.Version())

	fromDefault, err := LoadPath("")
	require.NoError(t, err)
	assert.Equal(t, 12, fromDefault.Stats().Occupations)

	_, err = LoadPath(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader(minimalCatalog + "\nsurprise: true\n"))
	assert.Error(t, err)
}

// ==========================
// Validation
// ==========================

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
		problem string
	}{
		{"missing version", [2]string{`version: "v-min"`, ``}, "version is required"},
		{"unknown dimension", [2]string{"dimension: humanInteraction", "dimension: vibes"}, `unknown dimension "vibes"`},
		{"option score out of range", [2]string{"score: 50", "score: 150"}, "out of range"},
		{"duplicate question", [2]string{"id: q-sr", "id: q-tc"}, `duplicate id "q-tc"`},
		{"baseline out of range", [2]string{"baselineRisk: 70", "baselineRisk: 101"}, "baselineRisk 101"},
		{"modifier out of range", [2]string{"industryModifier: 5", "industryModifier: 25"}, "industryModifier 25"},
		{"unknown risk level", [2]string{"riskLevel: high", "riskLevel: extreme"}, `unknown riskLevel "extreme"`},
		{"unknown effort", [2]string{"effort: weeks", "effort: years"}, `unknown effort "years"`},
		{"unknown tier", [2]string{"tier: mandatory", "tier: optional"}, `unknown tier "optional"`},
		{"missing general kit", [2]string{"  general:", "  clerk:"}, `tool kit "general" is required`},
		{"empty skills", [2]string{"typicalSkills: [Filing]", "typicalSkills: []"}, "typicalSkills is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := strings.Replace(minimalCatalog, tt.replace[0], tt.replace[1], 1)
			require.NotEqual(t, minimalCatalog, doc)

			_, err := Load(strings.NewReader(doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCatalog))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, strings.Join(verr.Problems, "\n"), tt.problem)
		})
	}
}

func TestValidation_DimensionWithoutQuestions(t *testing.T) {
	doc := strings.Replace(minimalCatalog, "dimension: experienceMoat", "dimension: humanInteraction", 1)

	_, err := Load(strings.NewReader(doc))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Problems, `dimension "experienceMoat" has no questions`)
}
