package validation

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"dining-concierge/internal/common/errors"
)

// fulfillmentRequestSchema describes the message body placed on the queue by
// the dialog handler. Messages that fail this check are malformed and should
// not be retried.
const fulfillmentRequestSchema = `{
	"type": "object",
	"properties": {
		"Location": {"type": "string", "minLength": 1},
		"Cuisine":  {"type": "string", "minLength": 1},
		"Time":     {"type": "string", "minLength": 1},
		"Date":     {"type": "string", "minLength": 1},
		"People":   {"type": "string", "minLength": 1},
		"Email":    {"type": "string", "minLength": 1}
	},
	"required": ["Location", "Cuisine", "Time", "Date", "People", "Email"]
}`

// ValidateFulfillmentRequest checks a raw queue message body against the
// expected shape before it is decoded.
func ValidateFulfillmentRequest(body string) error {
	schemaLoader := gojsonschema.NewStringLoader(fulfillmentRequestSchema)
	documentLoader := gojsonschema.NewStringLoader(body)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return errors.NewValidationFailedError(err.Error())
	}

	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			messages = append(messages, desc.String())
		}
		return errors.NewValidationFailedError(strings.Join(messages, "; "))
	}

	return nil
}
