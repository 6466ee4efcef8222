// internal/workers/assessment/store-assessment-result/handler.go
package storeassessmentresult

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"career-risk-workers/internal/common/camunda"
	apperrors "career-risk-workers/internal/common/errors"
	"career-risk-workers/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "store-assessment-result"
)

const upsertResult = `
	INSERT INTO assessment_results (
		id, user_id, occupation_id, catalog_version, overall_score,
		risk_label, scoring_result, report, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
	ON CONFLICT (id) DO UPDATE SET
		user_id = EXCLUDED.user_id,
		occupation_id = EXCLUDED.occupation_id,
		catalog_version = EXCLUDED.catalog_version,
		overall_score = EXCLUDED.overall_score,
		risk_label = EXCLUDED.risk_label,
		scoring_result = EXCLUDED.scoring_result,
		report = COALESCE(EXCLUDED.report, assessment_results.report),
		updated_at = EXCLUDED.updated_at`

type Handler struct {
	db     *sql.DB
	runner *camunda.JobRunner
	logger logger.Logger
}

func NewHandler(config *Config, db *sql.DB, rt *camunda.Runtime, log logger.Logger) *Handler {
	return &Handler{
		db:     db,
		runner: rt.Runner(TaskType, config.Timeout),
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	camunda.Run(h.runner, client, job, h.execute)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	result := input.ScoringResult
	if result == nil {
		return nil, apperrors.NewInvalidAssessmentInputError("scoringResult is required")
	}

	assessmentID := input.AssessmentID
	if assessmentID == "" {
		assessmentID = uuid.New().String()
	}
	storedAt := time.Now().UTC().Format(time.RFC3339)

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("marshal scoring result: %w", err))
	}

	var reportJSON interface{} // NULL keeps a previously stored report
	if trimmed := bytes.TrimSpace(input.Report); len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		reportJSON = []byte(trimmed)
	}

	userID := sql.NullString{String: input.UserID, Valid: input.UserID != ""}

	_, err = h.db.ExecContext(ctx, upsertResult,
		assessmentID,
		userID,
		result.OccupationID,
		result.CatalogVersion,
		result.OverallScore,
		result.RiskLabel,
		resultJSON,
		reportJSON,
		storedAt,
	)
	if err != nil {
		return nil, apperrors.NewResultStoreFailedError(fmt.Errorf("upsert assessment %s: %w", assessmentID, err))
	}

	h.writeAudit(ctx, assessmentID, input, storedAt)

	h.logger.Info("assessment result stored", map[string]interface{}{
		"assessmentId": assessmentID,
		"occupationId": result.OccupationID,
		"overallScore": result.OverallScore,
		"hasReport":    reportJSON != nil,
	})

	return &Output{
		AssessmentID: assessmentID,
		StoredAt:     storedAt,
	}, nil
}

// writeAudit records the write. Failures are logged, never returned.
func (h *Handler) writeAudit(ctx context.Context, assessmentID string, input *Input, storedAt string) {
	details, err := json.Marshal(map[string]interface{}{
		"userId":       input.UserID,
		"occupationId": input.ScoringResult.OccupationID,
		"overallScore": input.ScoringResult.OverallScore,
		"riskLabel":    input.ScoringResult.RiskLabel,
	})
	if err != nil {
		h.logger.Warn("failed to marshal audit log details", map[string]interface{}{
			"error": err,
		})
		details = []byte("{}")
	}

	_, err = h.db.ExecContext(ctx, `
		INSERT INTO audit_log (event_type, resource_type, resource_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		"assessment_stored",
		"assessment",
		assessmentID,
		details,
		storedAt,
	)
	if err != nil {
		h.logger.Warn("audit log insert failed", map[string]interface{}{
			"error":        err,
			"assessmentId": assessmentID,
		})
	}
}
