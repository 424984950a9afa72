// internal/workers/assessment/index-results/handler.go
package indexresults

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

const TaskType = "assessment-index-results"

// Indexer is satisfied by *database.ElasticsearchClient.
type Indexer interface {
	IndexDocument(ctx context.Context, index, id string, doc interface{}) (string, error)
}

type Handler struct {
	config   *Config
	logger   logger.Logger
	service  *assessment.Service
	indexer  Indexer
	failures *errors.ErrorHandler
	now      func() time.Time
}

type HandlerOptions struct {
	AppConfig    *config.Config
	Service      *assessment.Service
	Indexer      Indexer
	CustomConfig *Config
	Logger       logger.Logger
}

func NewHandler(opts HandlerOptions) (*Handler, error) {
	workerConfig := createConfigFromAppConfig(opts.AppConfig, opts.CustomConfig)
	if err := workerConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for %s: %w", TaskType, err)
	}
	if opts.Service == nil || opts.Indexer == nil {
		return nil, fmt.Errorf("%s requires an assessment service and an indexer", TaskType)
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
		indexer:  opts.Indexer,
		failures: errors.NewErrorHandler(log),
		now:      func() time.Time { return time.Now().UTC() },
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

// Execute writes the aggregated result under the individual's id, so
// re-running the job overwrites rather than duplicates.
func (h *Handler) Execute(ctx context.Context, individualID string) (map[string]interface{}, error) {
	p, err := h.service.GetProgress(ctx, individualID)
	if err != nil {
		return nil, err
	}
	if p.Aggregated == nil || p.AggregationStale {
		return nil, errors.NewResultsNotAggregatedError(individualID)
	}

	result, err := h.indexer.IndexDocument(ctx, h.config.Index, individualID, newResultDocument(p, h.now()))
	if err != nil {
		return nil, errors.NewIndexOperationFailedError(h.config.Index, err)
	}

	h.logger.Info("Assessment result indexed", map[string]interface{}{
		"individualId": individualID,
		"index":        h.config.Index,
		"result":       result,
	})
	return map[string]interface{}{
		"indexed":     true,
		"indexName":   h.config.Index,
		"documentId":  individualID,
		"indexResult": result,
	}, nil
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
		if appConfig.Assessment.ResultsIndex != "" {
			cfg.Index = appConfig.Assessment.ResultsIndex
		}
	}
	return cfg
}
