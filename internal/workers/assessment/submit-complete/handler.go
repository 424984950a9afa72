// internal/workers/assessment/submit-complete/handler.go
package submitcomplete

import (
	"context"
	"fmt"
	"sort"
	"time"

	"career-assessment-workers/internal/assessment"
	"career-assessment-workers/internal/common/camunda"
	"career-assessment-workers/internal/common/config"
	"career-assessment-workers/internal/common/errors"
	"career-assessment-workers/internal/common/logger"
	"career-assessment-workers/internal/common/metrics"
	"career-assessment-workers/internal/common/validation"
	"career-assessment-workers/internal/models"
	"career-assessment-workers/internal/workers/assessment/jobvars"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

// TaskType scores several tests in one job. Either every batch is stored or
// none is.
const TaskType = "assessment-submit-complete"

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

	h.logger.Info("Processing combined submission", map[string]interface{}{
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

	if err := camunda.CompleteJob(ctx, client, job, output.Variables()); err != nil {
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

	tests, _ := variables["tests"].(map[string]interface{})
	input := &Input{
		IndividualID: jobvars.String(variables, "individualId"),
		Tests:        make(map[models.TestType][]models.Response, len(tests)),
	}
	for name, raw := range tests {
		t, err := jobvars.TestType("tests", name)
		if err != nil {
			return nil, err
		}
		responses, err := jobvars.Responses("tests."+name, raw)
		if err != nil {
			return nil, err
		}
		input.Tests[t] = responses
	}
	return input, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	out, err := h.service.SubmitComplete(ctx, input.IndividualID, input.Tests)
	if err != nil {
		return nil, err
	}

	submitted := make([]models.TestType, 0, len(input.Tests))
	for t := range input.Tests {
		submitted = append(submitted, t)
	}
	sort.Slice(submitted, func(i, j int) bool { return submitted[i] < submitted[j] })

	return &Output{Progress: out.Progress, Submitted: submitted, Aggregated: out.Aggregated}, nil
}

func (o *Output) Variables() map[string]interface{} {
	vars := jobvars.Status(o.Progress)

	names := make([]string, 0, len(o.Submitted))
	results := make(map[string]interface{}, len(o.Submitted))
	for _, t := range o.Submitted {
		names = append(names, string(t))
		results[string(t)] = o.Progress.Result(t)
	}
	vars["submittedTests"] = names
	vars["testResults"] = results
	vars["aggregated"] = o.Aggregated
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
