// internal/workers/assessment/notify-results/handler.go
package notifyresults

import (
	"context"
	"fmt"
	"time"

	"career-assessment-workers/internal/assessment"
	"career-assessment-workers/internal/common/aws"
	"career-assessment-workers/internal/common/camunda"
	"career-assessment-workers/internal/common/config"
	"career-assessment-workers/internal/common/errors"
	"career-assessment-workers/internal/common/logger"
	"career-assessment-workers/internal/common/metrics"
	"career-assessment-workers/internal/common/validation"
	"career-assessment-workers/internal/workers/assessment/jobvars"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const TaskType = "assessment-notify-results"

type Mailer interface {
	Send(ctx context.Context, e aws.Email) (string, error)
}

type Publisher interface {
	PublishEvent(ctx context.Context, topicARN, eventType string, payload interface{}) (string, error)
}

type Handler struct {
	config    *Config
	logger    logger.Logger
	service   *assessment.Service
	mailer    Mailer
	publisher Publisher
	failures  *errors.ErrorHandler
	now       func() time.Time
}

type HandlerOptions struct {
	AppConfig    *config.Config
	Service      *assessment.Service
	Mailer       Mailer
	Publisher    Publisher
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
	if workerConfig.EmailEnabled && opts.Mailer == nil {
		return nil, fmt.Errorf("%s: email is enabled but no mailer was given", TaskType)
	}
	if workerConfig.EventsEnabled && opts.Publisher == nil {
		return nil, fmt.Errorf("%s: events are enabled but no publisher was given", TaskType)
	}

	log := opts.Logger
	if log == nil {
		log = logger.NewStructured("info", "json")
	}
	log = log.WithFields(map[string]interface{}{"worker": TaskType})

	return &Handler{
		config:    workerConfig,
		logger:    log,
		service:   opts.Service,
		mailer:    opts.Mailer,
		publisher: opts.Publisher,
		failures:  errors.NewErrorHandler(log),
		now:       time.Now,
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

	output, err := h.Execute(ctx, input)
	if err != nil {
		timer.Done(string(h.failures.HandleJobError(ctx, client, job, err)))
		return
	}

	vars := map[string]interface{}{
		"notificationId": output.NotificationID,
		"emailSent":      output.EmailSent,
		"eventPublished": output.EventPublished,
		"sentAt":         output.SentAt.Format(time.RFC3339),
	}
	if output.EmailMessageID != "" {
		vars["emailMessageId"] = output.EmailMessageID
	}
	if output.EventMessageID != "" {
		vars["eventMessageId"] = output.EventMessageID
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

	input := &Input{
		IndividualID:   jobvars.String(variables, "individualId"),
		RecipientEmail: jobvars.String(variables, "recipientEmail"),
		RecipientName:  jobvars.String(variables, "recipientName"),
	}
	if input.RecipientEmail != "" && !validation.ValidateEmail(input.RecipientEmail) {
		return nil, errors.NewInputValidationError(fmt.Sprintf("recipientEmail %q is not a valid address", input.RecipientEmail))
	}
	return input, nil
}

// Execute sends the results email and publishes the results event. Stale or
// missing aggregations are refused so nobody is told outdated results.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	p, err := h.service.GetProgress(ctx, input.IndividualID)
	if err != nil {
		return nil, err
	}
	if p.Aggregated == nil || p.AggregationStale {
		return nil, errors.NewResultsNotAggregatedError(input.IndividualID)
	}

	out := &Output{NotificationID: uuid.New().String(), SentAt: h.now().UTC()}

	if h.config.EmailEnabled && input.RecipientEmail != "" {
		body, err := renderBody(input.RecipientName, p.Aggregated, h.config.MaxCareers)
		if err != nil {
			return nil, err
		}
		id, err := h.mailer.Send(ctx, aws.Email{
			From:    h.config.FromEmail,
			To:      input.RecipientEmail,
			Subject: subject,
			Text:    body,
		})
		if err != nil {
			return nil, errors.NewNotificationSendFailedError("email", err)
		}
		out.EmailSent = true
		out.EmailMessageID = id
	} else {
		h.logger.Debug("Results email skipped", map[string]interface{}{
			"individualId": input.IndividualID,
			"emailEnabled": h.config.EmailEnabled,
		})
	}

	if h.config.EventsEnabled {
		id, err := h.publisher.PublishEvent(ctx, h.config.TopicARN, EventType, ResultsEvent{
			NotificationID:        out.NotificationID,
			IndividualID:          input.IndividualID,
			TopCareers:            p.Aggregated.TopCareers,
			RuleBasedEnhancements: p.Aggregated.RuleBasedEnhancements,
			TestWeights:           p.Aggregated.TestWeights,
			AggregatedAt:          p.Aggregated.AggregatedAt,
		})
		if err != nil {
			return nil, errors.NewNotificationSendFailedError("event", err)
		}
		out.EventPublished = true
		out.EventMessageID = id
	}

	h.logger.Info("Results notification sent", map[string]interface{}{
		"individualId":   input.IndividualID,
		"notificationId": out.NotificationID,
		"emailSent":      out.EmailSent,
		"eventPublished": out.EventPublished,
	})
	return out, nil
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
		n := appConfig.Notifications
		cfg.EmailEnabled = n.Email.Enabled
		cfg.FromEmail = n.Email.FromEmail
		cfg.EventsEnabled = n.Events.Enabled
		cfg.TopicARN = n.Events.TopicARN
	}
	return cfg
}
