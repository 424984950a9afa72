package notifyresults

import "career-assessment-workers/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"individualId":   {Type: "string", MinLength: validation.Int(1)},
			"recipientEmail": {Type: "string", Description: "Address for the results email; email is skipped when empty"},
			"recipientName":  {Type: "string"},
		},
		Required:             []string{"individualId"},
		AdditionalProperties: true,
	}
}

func GetOutputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"notificationId": {Type: "string"},
			"emailSent":      {Type: "boolean"},
			"emailMessageId": {Type: "string"},
			"eventPublished": {Type: "boolean"},
			"eventMessageId": {Type: "string"},
			"sentAt":         {Type: "string"},
		},
		Required:             []string{"notificationId", "emailSent", "eventPublished", "sentAt"},
		AdditionalProperties: true,
	}
}
