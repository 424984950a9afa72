// internal/workers/assessment/notify-results/handler_test.go
package notifyresults

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"
	"time"

	"career-assessment-workers/internal/assessment"
	"career-assessment-workers/internal/common/aws"
	"career-assessment-workers/internal/common/errors"
	"career-assessment-workers/internal/common/logger"
	"career-assessment-workers/internal/common/validation"
	"career-assessment-workers/internal/models"
	"career-assessment-workers/internal/repository"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Mocks
// ==========================

type MockSESService struct {
	SendEmailFunc func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

func (m *MockSESService) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	return m.SendEmailFunc(ctx, params, optFns...)
}

type MockSNSService struct {
	PublishFunc func(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

func (m *MockSNSService) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	return m.PublishFunc(ctx, params, optFns...)
}

// ==========================
// Test Helper Functions
// ==========================

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	handler *Handler
	service *assessment.Service
	store   *repository.MemoryStore
	emails  []*ses.SendEmailInput
	events  []*sns.PublishInput
	sesErr  error
	snsErr  error
}

func newFixture(t *testing.T, cfg *Config) *fixture {
	t.Helper()
	engine, err := assessment.NewEngine(assessment.DefaultConfig())
	require.NoError(t, err)

	f := &fixture{store: repository.NewMemoryStore()}
	f.service = assessment.NewService(engine, f.store, logger.NewTestLogger(t),
		assessment.WithAutoAggregate(true),
		assessment.WithClock(func() time.Time { return fixedNow }))

	mailer := aws.NewSESClientWithAPI(&MockSESService{
		SendEmailFunc: func(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
			if f.sesErr != nil {
				return nil, f.sesErr
			}
			f.emails = append(f.emails, params)
			return &ses.SendEmailOutput{MessageId: sdkaws.String("ses-1")}, nil
		},
	})
	publisher := aws.NewSNSClientWithAPI(&MockSNSService{
		PublishFunc: func(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
			if f.snsErr != nil {
				return nil, f.snsErr
			}
			f.events = append(f.events, params)
			return &sns.PublishOutput{MessageId: sdkaws.String("sns-1")}, nil
		},
	})

	f.handler, err = NewHandler(HandlerOptions{
		Service:      f.service,
		Mailer:       mailer,
		Publisher:    publisher,
		CustomConfig: cfg,
		Logger:       logger.NewTestLogger(t),
	})
	require.NoError(t, err)
	f.handler.now = func() time.Time { return fixedNow }
	return f
}

func enabledConfig() *Config {
	cfg := DefaultConfig()
	cfg.EmailEnabled = true
	cfg.FromEmail = "results@example.org"
	cfg.EventsEnabled = true
	cfg.TopicARN = "arn:aws:sns:us-east-1:000000000000:assessment-results"
	return cfg
}

func completeAssessment(t *testing.T, svc *assessment.Service, id string) {
	t.Helper()
	for _, tt := range models.AllTestTypes {
		var rs []models.Response
		for _, q := range svc.Engine().Questions(tt) {
			a := "Strongly Agree"
			if tt == models.TestAptitude {
				a = q.CorrectAnswer
			}
			rs = append(rs, models.Response{QuestionID: q.ID, Answer: a})
		}
		_, err := svc.SubmitTest(context.Background(), id, tt, rs)
		require.NoError(t, err)
	}
}

func createMockJob(t *testing.T, variables map[string]interface{}) entities.Job {
	t.Helper()
	raw, err := json.Marshal(variables)
	require.NoError(t, err)
	return entities.Job{ActivatedJob: &pb.ActivatedJob{
		Key: 9, Type: TaskType, Retries: 3, Variables: string(raw), CustomHeaders: "{}",
	}}
}

// ==========================
// Configuration
// ==========================

func TestNewHandler_Configuration(t *testing.T) {
	engine, err := assessment.NewEngine(assessment.DefaultConfig())
	require.NoError(t, err)
	svc := assessment.NewService(engine, repository.NewMemoryStore(), logger.NewTestLogger(t))

	_, err = NewHandler(HandlerOptions{Service: svc, CustomConfig: enabledConfig(), Logger: logger.NewTestLogger(t)})
	assert.Error(t, err, "email enabled without a mailer")

	cfg := enabledConfig()
	cfg.FromEmail = ""
	_, err = NewHandler(HandlerOptions{Service: svc, CustomConfig: cfg, Logger: logger.NewTestLogger(t)})
	assert.Error(t, err)

	_, err = NewHandler(HandlerOptions{CustomConfig: DefaultConfig(), Logger: logger.NewTestLogger(t)})
	assert.Error(t, err)

	h, err := NewHandler(HandlerOptions{Service: svc, CustomConfig: DefaultConfig(), Logger: logger.NewTestLogger(t)})
	require.NoError(t, err)
	assert.False(t, h.config.EmailEnabled)
}

func TestParseInput(t *testing.T) {
	f := newFixture(t, enabledConfig())

	input, err := f.handler.parseInput(createMockJob(t, map[string]interface{}{
		"individualId":   "ind-1",
		"recipientEmail": "student@example.org",
		"recipientName":  "Ayesha",
	}))
	require.NoError(t, err)
	assert.Equal(t, "student@example.org", input.RecipientEmail)
	assert.Equal(t, "Ayesha", input.RecipientName)

	_, err = f.handler.parseInput(createMockJob(t, map[string]interface{}{"individualId": "ind-1", "recipientEmail": "not-an-address"}))
	assert.Error(t, err)

	_, err = f.handler.parseInput(createMockJob(t, map[string]interface{}{"recipientEmail": "student@example.org"}))
	assert.Error(t, err)
}

// ==========================
// Execute
// ==========================

func TestExecute_SendsEmailAndEvent(t *testing.T) {
	f := newFixture(t, enabledConfig())
	completeAssessment(t, f.service, "ind-1")

	out, err := f.handler.Execute(context.Background(), &Input{
		IndividualID: "ind-1", RecipientEmail: "student@example.org", RecipientName: "Ayesha",
	})
	require.NoError(t, err)
	assert.True(t, out.EmailSent)
	assert.Equal(t, "ses-1", out.EmailMessageID)
	assert.True(t, out.EventPublished)
	assert.Equal(t, "sns-1", out.EventMessageID)
	assert.Equal(t, fixedNow, out.SentAt)
	assert.NotEmpty(t, out.NotificationID)

	require.Len(t, f.emails, 1)
	body := *f.emails[0].Message.Body.Text.Data
	assert.Contains(t, body, "Hello Ayesha")
	assert.Contains(t, body, "1. Engineering")
	assert.NotContains(t, body, "6. ", "email lists at most MaxCareers entries")

	require.Len(t, f.events, 1)
	assert.Equal(t, EventType, *f.events[0].MessageAttributes["eventType"].StringValue)

	var event ResultsEvent
	require.NoError(t, json.Unmarshal([]byte(*f.events[0].Message), &event))
	assert.Equal(t, "ind-1", event.IndividualID)
	assert.Equal(t, out.NotificationID, event.NotificationID)
	assert.Equal(t, models.FieldEngineering, event.TopCareers[0].Career)
	assert.Len(t, event.RuleBasedEnhancements, 5)
}

func TestExecute_EmailSkippedWithoutRecipient(t *testing.T) {
	f := newFixture(t, enabledConfig())
	completeAssessment(t, f.service, "ind-1")

	out, err := f.handler.Execute(context.Background(), &Input{IndividualID: "ind-1"})
	require.NoError(t, err)
	assert.False(t, out.EmailSent)
	assert.True(t, out.EventPublished)
	assert.Empty(t, f.emails)
}

func TestExecute_RequiresFreshAggregation(t *testing.T) {
	f := newFixture(t, enabledConfig())

	_, err := f.handler.Execute(context.Background(), &Input{IndividualID: "nobody"})
	require.Error(t, err)
	var std *errors.StandardError
	require.True(t, stderrors.As(err, &std))
	assert.Equal(t, errors.ErrCodeResultsNotAggregated, std.Code)

	completeAssessment(t, f.service, "ind-2")
	p, err := f.service.GetProgress(context.Background(), "ind-2")
	require.NoError(t, err)
	require.NotNil(t, p.Aggregated)
	p.AggregationStale = true
	p.Version++
	require.NoError(t, f.store.Save(context.Background(), p))

	_, err = f.handler.Execute(context.Background(), &Input{IndividualID: "ind-2", RecipientEmail: "student@example.org"})
	require.True(t, stderrors.As(err, &std))
	assert.Equal(t, errors.ErrCodeResultsNotAggregated, std.Code)

	assert.Empty(t, f.emails)
	assert.Empty(t, f.events)
}

func TestExecute_DeliveryFailures(t *testing.T) {
	tests := []struct {
		name   string
		sesErr error
		snsErr error
	}{
		{name: "email provider down", sesErr: stderrors.New("throttled")},
		{name: "topic unavailable", snsErr: stderrors.New("not found")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, enabledConfig())
			completeAssessment(t, f.service, "ind-1")
			f.sesErr, f.snsErr = tt.sesErr, tt.snsErr

			_, err := f.handler.Execute(context.Background(), &Input{IndividualID: "ind-1", RecipientEmail: "student@example.org"})
			require.Error(t, err)
			var std *errors.StandardError
			require.True(t, stderrors.As(err, &std))
			assert.Equal(t, errors.ErrCodeNotificationSendFailed, std.Code)
			assert.True(t, std.Retryable)
		})
	}
}

func TestOutputSchema(t *testing.T) {
	f := newFixture(t, enabledConfig())
	completeAssessment(t, f.service, "ind-1")

	out, err := f.handler.Execute(context.Background(), &Input{IndividualID: "ind-1"})
	require.NoError(t, err)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	res := validation.ValidateInput(decoded, GetOutputSchema())
	assert.True(t, res.Valid, res.GetErrorMessages())
}

func TestRenderBody_DefaultName(t *testing.T) {
	body, err := renderBody("", &models.AggregatedResult{
		TopCareers: []models.CareerRecommendation{{Career: models.FieldTeaching, Score: 42, RelatedPrograms: []string{"B.Ed"}}},
	}, 3)
	require.NoError(t, err)
	assert.Contains(t, body, "Hello there")
	assert.Contains(t, body, "Teaching (score 42.0)")
	assert.Contains(t, body, "Programs: B.Ed")
	assert.NotContains(t, body, "Why these results")
}
