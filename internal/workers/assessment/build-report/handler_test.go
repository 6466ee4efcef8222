// internal/workers/assessment/build-report/handler_test.go
package buildreport

import (
	"context"
	"testing"
	"time"

	"career-risk-workers/internal/assessment"
	"career-risk-workers/internal/catalog"
	"career-risk-workers/internal/common/camunda"
	apperrors "career-risk-workers/internal/common/errors"
	"career-risk-workers/internal/common/logger"
	"career-risk-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

type testLogger struct {
	t *testing.T
}

func (tl *testLogger) Debug(msg string, fields map[string]interface{}) {
	tl.t.Logf("DEBUG: %s %v", msg, fields)
}

func (tl *testLogger) Info(msg string, fields map[string]interface{}) {
	tl.t.Logf("INFO: %s %v", msg, fields)
}

func (tl *testLogger) Warn(msg string, fields map[string]interface{}) {
	tl.t.Logf("WARN: %s %v", msg, fields)
}

func (tl *testLogger) Error(msg string, fields map[string]interface{}) {
	tl.t.Logf("ERROR: %s %v", msg, fields)
}

func (tl *testLogger) WithFields(fields map[string]interface{}) logger.Logger {
	return tl
}

func (tl *testLogger) WithError(err error) logger.Logger {
	return tl.WithFields(map[string]interface{}{"error": err})
}

func (tl *testLogger) With(fields map[string]interface{}) logger.Logger {
	return tl
}

func newTestLogger(t *testing.T) logger.Logger {
	return &testLogger{t: t}
}

func createHandler(t *testing.T) *Handler {
	c, err := catalog.LoadDefault()
	require.NoError(t, err)
	return NewHandler(&Config{Timeout: 5 * time.Second}, assessment.NewEngine(c), &camunda.Runtime{}, newTestLogger(t))
}

func scoreAll(t *testing.T, h *Handler, occupationID string, pick func(scores []int) int) *models.ScoringResult {
	var answers []models.QuizAnswer
	for _, q := range h.engine.Catalog().Questions() {
		scores := make([]int, len(q.Options))
		for i, opt := range q.Options {
			scores[i] = opt.Score
		}
		answers = append(answers, models.QuizAnswer{QuestionID: q.ID, AnswerID: q.Options[pick(scores)].ID})
	}
	result, err := h.engine.Score(answers, occupationID)
	require.NoError(t, err)
	return result
}

func first(scores []int) int { return 0 }

func last(scores []int) int { return len(scores) - 1 }

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Success(t *testing.T) {
	handler := createHandler(t)
	result := scoreAll(t, handler, "finance-accounting", first)

	output, err := handler.Execute(context.Background(), &Input{ScoringResult: result})

	require.NoError(t, err)
	require.NotNil(t, output.Report)
	assert.Equal(t, handler.engine.BuildReport(result), output.Report)

	report := output.Report
	assert.Equal(t, result.OverallScore, report.OverallScore)
	assert.Equal(t, result.RiskLabel, report.RiskLabel)
	assert.Len(t, report.DimensionAnalysis, len(models.Dimensions))
	assert.NotEmpty(t, report.ExecutiveSummary)
	assert.NotEmpty(t, report.CareerOutlook)
	assert.LessOrEqual(t, len(report.TopRisks), 5)
	assert.LessOrEqual(t, len(report.TopStrengths), 5)
}

func TestHandler_Execute_ActionPlanNumbering(t *testing.T) {
	handler := createHandler(t)

	for _, pick := range []func([]int) int{first, last} {
		result := scoreAll(t, handler, "software-engineering", pick)

		output, err := handler.Execute(context.Background(), &Input{ScoringResult: result})
		require.NoError(t, err)

		plan := output.Report.ActionPlan
		require.NotEmpty(t, plan)
		for i, item := range plan {
			assert.Equal(t, i+1, item.Priority)
			assert.NotEmpty(t, item.Title)
			assert.NotEmpty(t, item.Timeframe)
		}
	}
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Execute_InvalidInput(t *testing.T) {
	handler := createHandler(t)

	tests := []struct {
		name  string
		input *Input
	}{
		{"missing result", &Input{}},
		{"no dimensions", &Input{ScoringResult: &models.ScoringResult{OccupationID: "finance-accounting", OverallScore: 50}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := handler.Execute(context.Background(), tt.input)

			assert.Nil(t, output)
			stdErr, ok := apperrors.AsStandardError(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.ErrCodeInvalidAssessmentInput, stdErr.Code)
		})
	}
}
