// internal/workers/assessment/get-progress/handler.go
package getprogress

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
	"career-assessment-workers/internal/models"
	"career-assessment-workers/internal/workers/assessment/jobvars"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "assessment-get-progress"

type Input struct {
	IndividualID   string
	IncludeResults bool
}

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

	input, err := h.parseInput(job)
	if err != nil {
		timer.Done(string(h.failures.HandleJobError(ctx, client, job, err)))
		return
	}

	vars, err := h.Execute(ctx, input)
	if err != nil {
		timer.Done(string(h.failures.HandleJobError(ctx, client, job, err)))
		return
	}

	if err := camunda.CompleteJob(ctx, client, job, vars); err != nil {
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
	if result := validation.ValidateInput(variables, GetInputSchema()); !result.Valid {
		return nil, errors.NewInputValidationError(fmt.Sprintf("validation errors: %v", result.GetErrorMessages()))
	}
	return &Input{
		IndividualID:   jobvars.String(variables, "individualId"),
		IncludeResults: jobvars.Bool(variables, "includeResults", false),
	}, nil
}

// Execute reports progress. An individual with no record reports NotStarted.
func (h *Handler) Execute(ctx context.Context, input *Input) (map[string]interface{}, error) {
	p, err := h.service.GetProgress(ctx, input.IndividualID)
	if err != nil {
		return nil, err
	}

	vars := jobvars.Status(p)
	if input.IncludeResults {
		results := map[string]interface{}{}
		for _, t := range models.AllTestTypes {
			if r := p.Result(t); r != nil {
				results[string(t)] = r
			}
		}
		vars["testResults"] = results
		if p.Aggregated != nil {
			vars["aggregatedResult"] = p.Aggregated
		}
	}
	return vars, nil
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
