// internal/workers/assessment/load-assessment-result/handler_test.go
package loadassessmentresult

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"career-risk-workers/internal/common/camunda"
	apperrors "career-risk-workers/internal/common/errors"
	"career-risk-workers/internal/common/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

const storedResult = `{"occupationId":"finance-accounting","occupationLabel":"Finance & Accounting","catalogVersion":"2025.10","overallScore":68,"riskLabel":"High Risk","summary":"s","dimensions":[{"dimension":"taskComposition","label":"Task Composition","score":80,"explanation":"e"}],"skillBreakdown":[],"reskilling":[]}`

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func createHandler(t *testing.T, db *sql.DB) *Handler {
	return NewHandler(&Config{Timeout: 5 * time.Second}, db, &camunda.Runtime{}, logger.NewTestLogger(t))
}

func resultColumns() []string {
	return []string{"user_id", "scoring_result", "report", "updated_at"}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	updatedAt := time.Date(2025, 10, 1, 12, 30, 0, 0, time.UTC)

	rows := sqlmock.NewRows(resultColumns()).
		AddRow("user-001", []byte(storedResult), []byte(`{"overallScore":68}`), updatedAt)
	mock.ExpectQuery(`SELECT user_id, scoring_result, report, updated_at FROM assessment_results`).
		WithArgs("assessment-001").
		WillReturnRows(rows)

	handler := createHandler(t, db)
	output, err := handler.Execute(context.Background(), &Input{AssessmentID: "assessment-001"})

	require.NoError(t, err)
	assert.Equal(t, "assessment-001", output.AssessmentID)
	assert.Equal(t, "user-001", output.UserID)
	assert.Equal(t, "2025-10-01T12:30:00Z", output.StoredAt)
	require.NotNil(t, output.ScoringResult)
	assert.Equal(t, 68, output.ScoringResult.OverallScore)
	assert.Equal(t, "High Risk", output.ScoringResult.RiskLabel)
	require.Len(t, output.ScoringResult.Dimensions, 1)
	assert.JSONEq(t, `{"overallScore":68}`, string(output.Report))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_WithoutReport(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows(resultColumns()).
		AddRow(nil, []byte(storedResult), nil, time.Now())
	mock.ExpectQuery(`SELECT user_id`).WithArgs("assessment-002").WillReturnRows(rows)

	handler := createHandler(t, db)
	output, err := handler.Execute(context.Background(), &Input{AssessmentID: "assessment-002"})

	require.NoError(t, err)
	assert.Empty(t, output.UserID)
	assert.Nil(t, output.Report)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Execute_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT user_id`).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	handler := createHandler(t, db)
	output, err := handler.Execute(context.Background(), &Input{AssessmentID: "missing"})

	require.Error(t, err)
	assert.Nil(t, output)

	stdErr, ok := apperrors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeResultNotFound, stdErr.Code)
	assert.False(t, stdErr.Retryable)
	assert.Equal(t, "missing", stdErr.Metadata["assessmentId"])
}

func TestHandler_Execute_QueryFailure(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT user_id`).WithArgs("assessment-003").WillReturnError(errors.New("connection refused"))

	handler := createHandler(t, db)
	_, err := handler.Execute(context.Background(), &Input{AssessmentID: "assessment-003"})

	stdErr, ok := apperrors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeResultLoadFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}

func TestHandler_Execute_CorruptRow(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows(resultColumns()).AddRow("user-001", []byte("{broken"), nil, time.Now())
	mock.ExpectQuery(`SELECT user_id`).WithArgs("assessment-004").WillReturnRows(rows)

	handler := createHandler(t, db)
	_, err := handler.Execute(context.Background(), &Input{AssessmentID: "assessment-004"})

	stdErr, ok := apperrors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeInternal, stdErr.Code)
}

func TestHandler_Execute_MissingID(t *testing.T) {
	db, mock := setupMockDB(t)

	handler := createHandler(t, db)
	_, err := handler.Execute(context.Background(), &Input{AssessmentID: " "})

	stdErr, ok := apperrors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeInvalidAssessmentInput, stdErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
