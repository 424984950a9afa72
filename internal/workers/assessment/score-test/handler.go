// internal/workers/assessment/score-test/handler.go
package scoretest

import (
	"context"
	"fmt"
	"time"

	"career-assessment-workers/internal/assessment"
	"career-assessment-workers/internal/common/camunda"
	"career-assessment-workers/internal/common/config"
	"career-assessment-workers/internal/common/errors"
	"career-assessment-workers/internal/common/logger"
	"career-assessment-workers/internal/common/metrics"
	"career-assessment-workers/internal/common/validation"
	"career-assessment-workers/internal/workers/assessment/jobvars"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "assessment-score-test"

type Handler struct {
	config   *Config
	logger   logger.Logger
	service  *assessment.Service
	failures *errors.ErrorHandler
}

type HandlerOptions struct {
	AppConfig    *config.Config
	Service      *assessment.Service
	CustomConfig *Config
	Logger       logger.Logger
}

func NewHandler(opts HandlerOptions) (*Handler, error) {
	workerConfig := createConfigFromAppConfig(opts.AppConfig, opts.CustomConfig)
	if err := workerConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for %s: %w", TaskType, err)
	}
	if opts.Service == nil {
		return nil, fmt.Errorf("%s requires an assessment service", TaskType)
	}

	log := opts.Logger
	if log == nil {
		log = logger.NewStructured("info", "json")
	}
	log = log.WithFields(map[string]interface{}{"worker": TaskType})

	return &Handler{
		config:   workerConfig,
		logger:   log,
		service:  opts.Service,
		failures: errors.NewErrorHandler(log),
	}, nil
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	timer := metrics.StartJob(TaskType)

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	h.logger.Info("Processing test submission", map[string]interface{}{
		"jobKey":             job.GetKey(),
		"processInstanceKey": job.GetProcessInstanceKey(),
	})

	input, err := h.parseInput(job)
	if err != nil {
		timer.Done(string(h.failures.HandleJobError(ctx, client, job, err)))
		return
	}

	output, err := h.Execute(ctx, input)
	if err != nil {
		timer.Done(string(h.failures.HandleJobError(ctx, client, job, err)))
		return
	}

	if err := camunda.CompleteJob(ctx, client, job, output.Variables(input)); err != nil {
		h.logger.Error("Failed to complete job", map[string]interface{}{
			"jobKey": job.GetKey(),
			"error":  err.Error(),
		})
		timer.Done(string(errors.ErrCodeInternal))
		return
	}
	timer.Done("")
}

func (h *Handler) parseInput(job entities.Job) (*Input, error) {
	variables, err := job.GetVariablesAsMap()
	if err != nil {
		return nil, errors.NewInputValidationError(fmt.Sprintf("failed to parse job variables: %v", err))
	}

	result := validation.ValidateInput(variables, GetInputSchema())
	if !result.Valid {
		return nil, errors.NewInputValidationError(fmt.Sprintf("validation errors: %v", result.GetErrorMessages()))
	}

	testType, err := jobvars.TestType("testType", variables["testType"])
	if err != nil {
		return nil, err
	}
	responses, err := jobvars.Responses("responses", variables["responses"])
	if err != nil {
		return nil, err
	}

	return &Input{
		IndividualID: jobvars.String(variables, "individualId"),
		TestType:     testType,
		Responses:    responses,
	}, nil
}

// Execute scores the batch and stores it. Unknown question IDs and invalid
// answers are skipped and reported in the result rather than failing the job.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	out, err := h.service.SubmitTest(ctx, input.IndividualID, input.TestType, input.Responses)
	if err != nil {
		return nil, err
	}

	if skipped := len(out.Result.SkippedQuestionIDs); skipped > 0 {
		h.logger.Warn("Responses skipped while scoring", map[string]interface{}{
			"individualId": input.IndividualID,
			"testType":     string(input.TestType),
			"skipped":      skipped,
		})
	}

	return &Output{
		Progress:   out.Progress,
		Result:     out.Result,
		Aggregated: out.Aggregated,
	}, nil
}

// Variables is the job output: the test result, the progress report and the
// aggregated result when this submission completed the assessment.
func (o *Output) Variables(input *Input) map[string]interface{} {
	vars := jobvars.Status(o.Progress)
	vars["testType"] = string(input.TestType)
	vars["testResult"] = o.Result
	vars["aggregated"] = o.Aggregated
	skipped := o.Result.SkippedQuestionIDs
	if skipped == nil {
		skipped = []int{}
	}
	vars["skippedQuestionIds"] = skipped
	if o.Aggregated && o.Progress.Aggregated != nil {
		jobvars.Aggregated(vars, o.Progress.Aggregated)
	}
	return vars
}

func createConfigFromAppConfig(appConfig *config.Config, customConfig *Config) *Config {
	if customConfig != nil {
		return customConfig
	}

	cfg := DefaultConfig()
	if appConfig != nil {
		if workerCfg, exists := appConfig.Workers[TaskType]; exists {
			cfg.Enabled = workerCfg.Enabled
			if workerCfg.MaxJobsActive > 0 {
				cfg.MaxJobsActive = workerCfg.MaxJobsActive
			}
			if workerCfg.Timeout > 0 {
				cfg.Timeout = time.Duration(workerCfg.Timeout) * time.Millisecond
			}
		}
	}
	return cfg
}
