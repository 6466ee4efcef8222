// internal/common/camunda/runner.go
package camunda

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"career-risk-workers/internal/common/errors"
	"career-risk-workers/internal/common/logger"
	"career-risk-workers/internal/common/metrics"
	"career-risk-workers/internal/common/observability"
	"career-risk-workers/internal/common/validation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const commandTimeout = 5 * time.Second

// Runtime holds what every job runner shares.
type Runtime struct {
	Validator     *validation.SchemaValidator
	Observability *observability.Observability
	Logger        logger.Logger
}

// JobRunner drives a single task type: it validates and decodes the job
// variables, runs the worker inside a span with a deadline, and either
// completes the job or hands the error to the ErrorHandler.
type JobRunner struct {
	taskType  string
	timeout   time.Duration
	validator *validation.SchemaValidator
	obs       *observability.Observability
	errors    *errors.ErrorHandler
	logger    logger.Logger
}

func (rt *Runtime) Runner(taskType string, timeout time.Duration) *JobRunner {
	obs := rt.Observability
	if obs == nil {
		obs = observability.NewNoop()
	}
	log := rt.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	log = log.WithFields(map[string]interface{}{"taskType": taskType})

	return &JobRunner{
		taskType:  taskType,
		timeout:   timeout,
		validator: rt.Validator,
		obs:       obs,
		errors:    errors.NewErrorHandler(log),
		logger:    log,
	}
}

func (r *JobRunner) TaskType() string {
	return r.taskType
}

// Decode validates raw job variables against the registered schema and
// unmarshals them into I.
func Decode[I any](r *JobRunner, variables string) (*I, error) {
	if r.validator != nil {
		if result := r.validator.Validate(r.taskType, []byte(variables)); !result.Valid {
			return nil, errors.NewInvalidAssessmentInputError(result.Error())
		}
	}

	var input I
	if err := json.Unmarshal([]byte(variables), &input); err != nil {
		return nil, errors.NewInvalidAssessmentInputError(fmt.Sprintf("parse input: %v", err))
	}
	return &input, nil
}

// Run handles one job end to end.
func Run[I, O any](r *JobRunner, client worker.JobClient, job entities.Job, execute func(context.Context, *I) (*O, error)) {
	start := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(r.taskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(r.taskType).Dec()

	r.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	spanCtx, span := r.obs.StartJobSpan(context.Background(), r.taskType, job.Key)

	output, err := runExecute(spanCtx, r, job, execute)
	if err == nil {
		err = r.complete(spanCtx, client, job, output)
	}
	observability.EndJobSpan(span, err)

	if err != nil {
		r.fail(spanCtx, client, job, err, start)
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(r.taskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(r.taskType).Observe(time.Since(start).Seconds())
	r.obs.RecordJobProcessed(spanCtx, r.taskType, observability.StatusCompleted)
	r.obs.RecordJobDuration(spanCtx, r.taskType, time.Since(start), observability.StatusCompleted)
}

func runExecute[I, O any](ctx context.Context, r *JobRunner, job entities.Job, execute func(context.Context, *I) (*O, error)) (*O, error) {
	input, err := Decode[I](r, job.Variables)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	return execute(ctx, input)
}

func (r *JobRunner) complete(ctx context.Context, client worker.JobClient, job entities.Job, output interface{}) error {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		return errors.NewInternalError(fmt.Errorf("encode job output: %w", err))
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), commandTimeout)
	defer cancel()

	if _, err := cmd.Send(sendCtx); err != nil {
		return errors.NewBrokerUnavailableError("complete-job", err)
	}

	r.logger.Info("job completed successfully", map[string]interface{}{
		"jobKey": job.Key,
	})
	return nil
}

func (r *JobRunner) fail(ctx context.Context, client worker.JobClient, job entities.Job, err error, start time.Time) {
	stdErr := errors.Normalize(err)

	metrics.WorkerJobsFailed.WithLabelValues(r.taskType, string(stdErr.Code)).Inc()
	metrics.WorkerJobDuration.WithLabelValues(r.taskType).Observe(time.Since(start).Seconds())
	r.obs.RecordJobProcessed(ctx, r.taskType, observability.StatusFailed)
	r.obs.RecordJobDuration(ctx, r.taskType, time.Since(start), observability.StatusFailed)

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), commandTimeout)
	defer cancel()

	r.errors.HandleJobError(sendCtx, client, job, stdErr)
}
