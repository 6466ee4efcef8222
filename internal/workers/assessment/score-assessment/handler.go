// internal/workers/assessment/score-assessment/handler.go
package scoreassessment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"career-risk-workers/internal/assessment"
	"career-risk-workers/internal/common/camunda"
	apperrors "career-risk-workers/internal/common/errors"
	"career-risk-workers/internal/common/logger"
	"career-risk-workers/internal/common/metrics"
	"career-risk-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "score-assessment"

	cacheKeyPrefix = "assessment:score:"
)

type Handler struct {
	config *Config
	engine *assessment.Engine
	redis  *redis.Client
	runner *camunda.JobRunner
	logger logger.Logger
}

// NewHandler builds the scoring worker. rdb may be nil, which disables the
// result cache.
func NewHandler(config *Config, engine *assessment.Engine, rdb *redis.Client, rt *camunda.Runtime, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		engine: engine,
		redis:  rdb,
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
	if strings.TrimSpace(input.OccupationID) == "" {
		return nil, apperrors.NewInvalidAssessmentInputError("occupationId is required")
	}

	key := h.cacheKey(input)
	if cached, ok := h.lookup(ctx, key); ok {
		h.logger.Info("scoring result served from cache", map[string]interface{}{
			"occupationId": input.OccupationID,
			"overallScore": cached.OverallScore,
		})
		return &Output{ScoringResult: cached, Cached: true}, nil
	}

	result, err := h.engine.Score(input.Answers, input.OccupationID)
	if err != nil {
		if errors.Is(err, assessment.ErrUnknownOccupation) {
			return nil, apperrors.NewUnknownOccupationError(input.OccupationID, err)
		}
		return nil, apperrors.NewInternalError(err)
	}

	metrics.RecordAssessment(result.RiskLabel, result.OccupationID, result.OverallScore)
	h.store(ctx, key, result)

	h.logger.Info("assessment scored", map[string]interface{}{
		"assessmentId":   input.AssessmentID,
		"occupationId":   result.OccupationID,
		"overallScore":   result.OverallScore,
		"riskLabel":      result.RiskLabel,
		"answers":        len(input.Answers),
		"catalogVersion": result.CatalogVersion,
	})

	return &Output{ScoringResult: result, Cached: false}, nil
}

// cacheKey covers everything Score depends on. Answers are sorted because
// dimension averages do not depend on their order.
func (h *Handler) cacheKey(input *Input) string {
	pairs := make([]string, len(input.Answers))
	for i, a := range input.Answers {
		pairs[i] = a.QuestionID + "=" + a.AnswerID
	}
	sort.Strings(pairs)

	sum := sha256.Sum256([]byte(strings.Join(pairs, "\n")))
	return cacheKeyPrefix + h.engine.Catalog().Version() + ":" + input.OccupationID + ":" + hex.EncodeToString(sum[:])
}

func (h *Handler) lookup(ctx context.Context, key string) (*models.ScoringResult, bool) {
	if h.redis == nil || h.config.CacheTTL <= 0 {
		return nil, false
	}

	val, err := h.redis.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		metrics.AssessmentCacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
		return nil, false
	}
	if err != nil {
		metrics.AssessmentCacheLookups.WithLabelValues(metrics.CacheError).Inc()
		h.logger.Warn("result cache unavailable, scoring directly", map[string]interface{}{
			"error": apperrors.NewCacheUnavailableError(err),
		})
		return nil, false
	}

	var result models.ScoringResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		metrics.AssessmentCacheLookups.WithLabelValues(metrics.CacheError).Inc()
		h.logger.Warn("discarding unreadable cache entry", map[string]interface{}{
			"key":   key,
			"error": err,
		})
		return nil, false
	}

	metrics.AssessmentCacheLookups.WithLabelValues(metrics.CacheHit).Inc()
	return &result, true
}

func (h *Handler) store(ctx context.Context, key string, result *models.ScoringResult) {
	if h.redis == nil || h.config.CacheTTL <= 0 {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		h.logger.Warn("failed to encode scoring result for cache", map[string]interface{}{"error": err})
		return
	}
	if err := h.redis.Set(ctx, key, data, h.config.CacheTTL).Err(); err != nil {
		h.logger.Warn("failed to cache scoring result", map[string]interface{}{
			"key":   key,
			"error": err,
		})
	}
}
