// internal/workers/assessment/build-enhanced-report/handler.go
package buildenhancedreport

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
	TaskType = "build-enhanced-report"
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
	result := input.ScoringResult
	if result == nil {
		return nil, apperrors.NewInvalidAssessmentInputError("scoringResult is required")
	}
	if len(result.Dimensions) == 0 {
		return nil, apperrors.NewInvalidAssessmentInputError("scoringResult has no dimension scores")
	}

	// Insights and tool kits come from the loaded catalog; a result scored
	// against another release still renders, but may reference stale ids.
	if version := h.engine.Catalog().Version(); result.CatalogVersion != "" && result.CatalogVersion != version {
		h.logger.Warn("scoring result from a different catalog version", map[string]interface{}{
			"resultVersion":  result.CatalogVersion,
			"catalogVersion": version,
		})
	}

	report := h.engine.BuildEnhancedReport(result, input.Answers)

	h.logger.Info("enhanced report built", map[string]interface{}{
		"occupationId":         report.OccupationID,
		"overallScore":         report.OverallScore,
		"insights":             len(report.AnswerInsights),
		"tools":                len(report.Tools),
		"monthlyMandatoryCost": report.InvestmentSummary.MonthlyMandatoryCost,
	})

	return &Output{Report: report}, nil
}
