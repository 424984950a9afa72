// internal/common/aws/ses.go
package aws

import (
	"context"
	"fmt"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESAPI is the part of the SES client the mailer uses.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// Email is a rendered message ready to send.
type Email struct {
	From    string
	To      string
	Subject string
	Text    string
	HTML    string
}

type SESClient struct {
	api SESAPI
}

func NewSESClient(cfg sdkaws.Config) *SESClient {
	return &SESClient{api: ses.NewFromConfig(cfg)}
}

// NewSESClientWithAPI wraps an existing client, typically a mock.
func NewSESClientWithAPI(api SESAPI) *SESClient {
	return &SESClient{api: api}
}

// Send delivers e and returns the SES message ID.
func (s *SESClient) Send(ctx context.Context, e Email) (string, error) {
	body := &types.Body{Text: &types.Content{Data: sdkaws.String(e.Text), Charset: sdkaws.String("UTF-8")}}
	if e.HTML != "" {
		body.Html = &types.Content{Data: sdkaws.String(e.HTML), Charset: sdkaws.String("UTF-8")}
	}

	out, err := s.api.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{ToAddresses: []string{e.To}},
		Message: &types.Message{
			Subject: &types.Content{Data: sdkaws.String(e.Subject), Charset: sdkaws.String("UTF-8")},
			Body:    body,
		},
		Source: sdkaws.String(e.From),
	})
	if err != nil {
		return "", fmt.Errorf("ses send to %s: %w", e.To, err)
	}
	return sdkaws.ToString(out.MessageId), nil
}
