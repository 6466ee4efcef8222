// internal/workers/assessment/load-assessment-result/handler.go
package loadassessmentresult

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"career-risk-workers/internal/common/camunda"
	apperrors "career-risk-workers/internal/common/errors"
	"career-risk-workers/internal/common/logger"
	"career-risk-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "load-assessment-result"
)

const selectResult = `
	SELECT user_id, scoring_result, report, updated_at
	FROM assessment_results
	WHERE id = $1`

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
	id := strings.TrimSpace(input.AssessmentID)
	if id == "" {
		return nil, apperrors.NewInvalidAssessmentInputError("assessmentId is required")
	}

	var (
		userID     sql.NullString
		resultJSON []byte
		reportJSON []byte
		updatedAt  time.Time
	)
	err := h.db.QueryRowContext(ctx, selectResult, id).Scan(&userID, &resultJSON, &reportJSON, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewResultNotFoundError(id)
	}
	if err != nil {
		return nil, apperrors.NewResultLoadFailedError(fmt.Errorf("select assessment %s: %w", id, err))
	}

	var result models.ScoringResult
	if err := json.Unmarshal(resultJSON, &result); err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("decode stored scoring result %s: %w", id, err))
	}

	output := &Output{
		AssessmentID:  id,
		UserID:        userID.String,
		ScoringResult: &result,
		StoredAt:      updatedAt.UTC().Format(time.RFC3339),
	}
	if len(reportJSON) > 0 {
		output.Report = json.RawMessage(reportJSON)
	}

	h.logger.Info("assessment result loaded", map[string]interface{}{
		"assessmentId": id,
		"occupationId": result.OccupationID,
		"hasReport":    output.Report != nil,
	})

	return output, nil
}
