// internal/workers/assessment/aggregate-results/handler.go
package aggregateresults

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

// TaskType combines the three stored results. Calling it before all tests
// are done throws ASSESSMENT_NOT_READY with the missing tests attached.
const TaskType = "assessment-aggregate-results"

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

	individualID, err := h.parseInput(job)
	if err != nil {
		timer.Done(string(h.failures.HandleJobError(ctx, client, job, err)))
		return
	}

	vars, err := h.Execute(ctx, individualID)
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

func (h *Handler) parseInput(job entities.Job) (string, error) {
	variables, err := job.GetVariablesAsMap()
	if err != nil {
		return "", errors.NewInputValidationError(fmt.Sprintf("failed to parse job variables: %v", err))
	}
	if result := validation.ValidateInput(variables, GetInputSchema()); !result.Valid {
		return "", errors.NewInputValidationError(fmt.Sprintf("validation errors: %v", result.GetErrorMessages()))
	}
	return jobvars.String(variables, "individualId"), nil
}

func (h *Handler) Execute(ctx context.Context, individualID string) (map[string]interface{}, error) {
	p, err := h.service.Aggregate(ctx, individualID)
	if err != nil {
		return nil, err
	}

	vars := map[string]interface{}{
		"individualId":         individualID,
		"hasAggregatedResults": true,
	}
	jobvars.Aggregated(vars, p.Aggregated)

	h.logger.Info("Results aggregated", map[string]interface{}{
		"individualId": individualID,
		"topCareers":   len(p.Aggregated.TopCareers),
		"rulesFired":   len(p.Aggregated.RuleBasedEnhancements),
	})
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
