// internal/workers/assessment/build-report/handler.go
package buildreport

import (
	"context"

	"career-risk-workers/internal/assessment"
	"career-risk-workers/internal/common/camunda"
	apperrors "career-risk-workers/internal/common/errors"
	"career-risk-workers/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "build-report"
)

type Handler struct {
	engine *assessment.Engine
	runner *camunda.JobRunner
	logger logger.Logger
}

func NewHandler(config *Config, engine *assessment.Engine, rt *camunda.Runtime, log logger.Logger) *Handler {
	return &Handler{
		engine: engine,
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
	if input.ScoringResult == nil {
		return nil, apperrors.NewInvalidAssessmentInputError("scoringResult is required")
	}
	if len(input.ScoringResult.Dimensions) == 0 {
		return nil, apperrors.NewInvalidAssessmentInputError("scoringResult has no dimension scores")
	}

	report := h.engine.BuildReport(input.ScoringResult)

	h.logger.Info("report built", map[string]interface{}{
		"occupationId": report.OccupationID,
		"overallScore": report.OverallScore,
		"topRisks":     len(report.TopRisks),
		"actions":      len(report.ActionPlan),
	})

	return &Output{Report: report}, nil
}
