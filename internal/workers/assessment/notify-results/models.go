package notifyresults

import (
	"time"

	"career-assessment-workers/internal/models"
)

// EventType is the SNS message attribute of the results event.
const EventType = "assessment.results.aggregated"

type Input struct {
	IndividualID   string `json:"individualId"`
	RecipientEmail string `json:"recipientEmail,omitempty"`
	RecipientName  string `json:"recipientName,omitempty"`
}

type Output struct {
	NotificationID string    `json:"notificationId"`
	EmailSent      bool      `json:"emailSent"`
	EmailMessageID string    `json:"emailMessageId,omitempty"`
	EventPublished bool      `json:"eventPublished"`
	EventMessageID string    `json:"eventMessageId,omitempty"`
	SentAt         time.Time `json:"sentAt"`
}

// ResultsEvent is the JSON body published to the topic.
type ResultsEvent struct {
	NotificationID        string                        `json:"notificationId"`
	IndividualID          string                        `json:"individualId"`
	TopCareers            []models.CareerRecommendation `json:"topCareers"`
	RuleBasedEnhancements []string                      `json:"ruleBasedEnhancements"`
	TestWeights           models.TestWeights            `json:"testWeights"`
	AggregatedAt          time.Time                     `json:"aggregatedAt"`
}
