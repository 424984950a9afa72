package assessment

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"career-assessment-workers/internal/common/logger"
	"career-assessment-workers/internal/common/metrics"
	"career-assessment-workers/internal/common/observability"
	"career-assessment-workers/internal/models"
)

var (
	// ErrNotFound is returned by a ProgressStore for an unknown individual.
	ErrNotFound = errors.New("assessment progress not found")
	// ErrConflict is returned when a concurrent save already advanced the record.
	ErrConflict = errors.New("assessment progress was modified concurrently")
)

// ProgressStore persists progress records and raw submissions. Save stores
// the record and its submissions atomically: on error neither is written.
type ProgressStore interface {
	Get(ctx context.Context, individualID string) (*models.AssessmentProgress, error)
	Save(ctx context.Context, p *models.AssessmentProgress, subs ...*models.Submission) error
}

// SubmitOutcome is what a submission produced.
type SubmitOutcome struct {
	Progress   *models.AssessmentProgress
	Result     *models.TestResult
	Aggregated bool
}

type Service struct {
	engine        *Engine
	store         ProgressStore
	logger        logger.Logger
	obs           *observability.Observability
	autoAggregate bool
	now           func() time.Time
}

type ServiceOption func(*Service)

// WithAutoAggregate aggregates as soon as the last test is submitted.
func WithAutoAggregate(on bool) ServiceOption {
	return func(s *Service) { s.autoAggregate = on }
}

func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

func WithObservability(o *observability.Observability) ServiceOption {
	return func(s *Service) { s.obs = o }
}

func NewService(engine *Engine, store ProgressStore, log logger.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		engine: engine,
		store:  store,
		logger: log,
		obs:    &observability.Observability{},
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Engine() *Engine { return s.engine }

func (s *Service) span(ctx context.Context, name, individualID string) (context.Context, trace.Span) {
	return s.obs.StartSpan(ctx, name, attribute.String("individualId", individualID))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// GetProgress returns the stored record, or an empty one for an individual
// who has not submitted anything yet.
func (s *Service) GetProgress(ctx context.Context, individualID string) (p *models.AssessmentProgress, err error) {
	ctx, span := s.span(ctx, "assessment.get_progress", individualID)
	defer func() { endSpan(span, err) }()

	return s.load(ctx, individualID)
}

func (s *Service) load(ctx context.Context, individualID string) (*models.AssessmentProgress, error) {
	if individualID == "" {
		return nil, &ValidationError{Field: "individualId", Reason: "is required"}
	}
	p, err := s.store.Get(ctx, individualID)
	if errors.Is(err, ErrNotFound) {
		return NewProgress(individualID), nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// SubmitTest scores one batch, stores it and, when enabled and possible,
// aggregates in the same step.
func (s *Service) SubmitTest(ctx context.Context, individualID string, t models.TestType, responses []models.Response) (out *SubmitOutcome, err error) {
	ctx, span := s.span(ctx, "assessment.submit_test", individualID)
	span.SetAttributes(attribute.String("testType", string(t)))
	defer func() { endSpan(span, err) }()

	log := s.logger.WithFields(map[string]interface{}{"individualId": individualID, "testType": string(t)})

	current, err := s.load(ctx, individualID)
	if err != nil {
		return nil, err
	}

	next, err := s.engine.Submit(current, t, responses)
	if err != nil {
		log.Warn("submission rejected", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	result := next.Result(t)
	s.stampResult(ctx, log, result)

	out = &SubmitOutcome{Progress: next, Result: result}
	if s.autoAggregate && next.AllCompleted() {
		if next, err = s.aggregate(ctx, log, next); err != nil {
			return nil, err
		}
		out.Progress = next
		out.Aggregated = true
	}
	out.Progress.UpdatedAt = s.now()

	if err := s.store.Save(ctx, out.Progress, s.submission(individualID, t, responses, result)); err != nil {
		return nil, err
	}

	log.Info("test submitted", map[string]interface{}{
		"state":      string(StateOf(out.Progress)),
		"aggregated": out.Aggregated,
		"skipped":    len(result.SkippedQuestionIDs),
	})
	return out, nil
}

// SubmitComplete scores every supplied batch. If any batch is invalid
// nothing is stored. Aggregation runs whenever all three tests end up done.
func (s *Service) SubmitComplete(ctx context.Context, individualID string, batches map[models.TestType][]models.Response) (out *SubmitOutcome, err error) {
	ctx, span := s.span(ctx, "assessment.submit_complete", individualID)
	defer func() { endSpan(span, err) }()

	log := s.logger.WithFields(map[string]interface{}{"individualId": individualID})

	if len(batches) == 0 {
		return nil, &ValidationError{Field: "tests", Reason: "at least one test batch is required"}
	}
	for t := range batches {
		if !t.Valid() {
			return nil, &ValidationError{Field: "tests", Reason: "unknown test type " + string(t)}
		}
	}

	next, err := s.load(ctx, individualID)
	if err != nil {
		return nil, err
	}

	var submissions []*models.Submission
	for _, t := range models.AllTestTypes {
		responses, ok := batches[t]
		if !ok {
			continue
		}
		if next, err = s.engine.Submit(next, t, responses); err != nil {
			log.Warn("combined submission rejected", map[string]interface{}{"testType": string(t), "error": err.Error()})
			return nil, err
		}
		result := next.Result(t)
		s.stampResult(ctx, log, result)
		submissions = append(submissions, s.submission(individualID, t, responses, result))
	}

	out = &SubmitOutcome{Progress: next}
	if next.AllCompleted() {
		if next, err = s.aggregate(ctx, log, next); err != nil {
			return nil, err
		}
		out.Progress = next
		out.Aggregated = true
	}
	out.Progress.UpdatedAt = s.now()

	if err := s.store.Save(ctx, out.Progress, submissions...); err != nil {
		return nil, err
	}

	log.Info("combined submission stored", map[string]interface{}{
		"tests":      len(submissions),
		"state":      string(StateOf(out.Progress)),
		"aggregated": out.Aggregated,
	})
	return out, nil
}

// Aggregate combines the stored results and saves the aggregated record.
func (s *Service) Aggregate(ctx context.Context, individualID string) (p *models.AssessmentProgress, err error) {
	ctx, span := s.span(ctx, "assessment.aggregate", individualID)
	defer func() { endSpan(span, err) }()

	log := s.logger.WithFields(map[string]interface{}{"individualId": individualID})

	current, err := s.load(ctx, individualID)
	if err != nil {
		return nil, err
	}
	next, err := s.aggregate(ctx, log, current)
	if err != nil {
		return nil, err
	}
	next.UpdatedAt = s.now()

	if err := s.store.Save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *Service) aggregate(ctx context.Context, log logger.Logger, p *models.AssessmentProgress) (*models.AssessmentProgress, error) {
	next, fired, err := s.engine.aggregateProgress(p)
	if err != nil {
		var notReady *NotReadyError
		if errors.As(err, &notReady) {
			metrics.AggregationsTotal.WithLabelValues("not_ready").Inc()
			log.Info("aggregation requested before all tests were completed", map[string]interface{}{
				"missing": notReady.MissingNames(),
			})
		} else {
			metrics.AggregationsTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	next.Aggregated.AggregatedAt = s.now()
	metrics.AggregationsTotal.WithLabelValues("success").Inc()
	for _, name := range fired {
		metrics.RulesFired.WithLabelValues(name).Inc()
	}

	top := ""
	if len(next.Aggregated.TopCareers) > 0 {
		top = string(next.Aggregated.TopCareers[0].Career)
	}
	log.Info("assessment aggregated", map[string]interface{}{
		"topCareer":   top,
		"rulesFired":  fired,
		"recommended": len(next.Aggregated.TopCareers),
	})
	return next, nil
}

func (s *Service) stampResult(ctx context.Context, log logger.Logger, r *models.TestResult) {
	r.ScoredAt = s.now()

	metrics.TestsScored.WithLabelValues(string(r.TestType)).Inc()
	for c, v := range r.NormalizedScores {
		s.obs.RecordNormalizedScore(ctx, string(r.TestType), string(c), v)
	}
	for _, ref := range UnknownReferences(r) {
		metrics.UnknownReferences.WithLabelValues(string(ref.TestType)).Inc()
		log.Warn("skipping response", map[string]interface{}{"error": ref.Error()})
	}
}

func (s *Service) submission(individualID string, t models.TestType, responses []models.Response, r *models.TestResult) *models.Submission {
	return &models.Submission{
		IndividualID:       individualID,
		TestType:           t,
		Responses:          responses,
		SkippedQuestionIDs: r.SkippedQuestionIDs,
		SubmittedAt:        s.now(),
	}
}
