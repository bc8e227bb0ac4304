package dialog

import (
	"context"
	"encoding/json"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"dining-concierge/internal/common/errors"
	"dining-concierge/internal/common/logger"
	"dining-concierge/internal/common/metrics"
	"dining-concierge/internal/models"
)

const closingMessage = "Okay, I will notify you via email when we have the recommendations ready."

// QueueService is the queue operation the handler needs, kept narrow for
// mocking.
type QueueService interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// Handler drives one turn of the booking conversation: mid-dialog turns are
// validated and either re-elicited or delegated back to the engine; the
// fulfillment turn enqueues the completed request and closes.
type Handler struct {
	config    *Config
	logger    logger.Logger
	validator *Validator
	queue     QueueService
}

func NewHandler(config *Config, log logger.Logger, queue QueueService) (*Handler, error) {
	loc, err := config.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve timezone: %w", err)
	}
	return &Handler{
		config:    config,
		logger:    log,
		validator: NewValidator(loc),
		queue:     queue,
	}, nil
}

func (h *Handler) Handle(ctx context.Context, event models.DialogEvent) (models.DialogResponse, error) {
	intentName := event.CurrentIntent.Name

	h.logger.Debug("Handling dialog event", map[string]interface{}{
		"intent": intentName,
		"source": event.InvocationSource,
		"userId": event.UserID,
	})

	if intentName != h.config.BookingIntent {
		return models.DialogResponse{}, errors.NewUnsupportedIntentError(intentName)
	}

	if event.InvocationSource == models.SourceDialogCodeHook {
		return h.handleDialogTurn(event), nil
	}

	return h.handleFulfillmentTurn(ctx, event)
}

func (h *Handler) handleDialogTurn(event models.DialogEvent) models.DialogResponse {
	slots := event.CurrentIntent.Slots

	result := h.validator.Validate(slots)
	if !result.Valid {
		slots.Clear(result.ViolatedSlot)

		h.logger.Info("Slot validation failed", map[string]interface{}{
			"slot": result.ViolatedSlot,
		})
		metrics.DialogValidationFailures.WithLabelValues(result.ViolatedSlot).Inc()
		metrics.DialogTurns.WithLabelValues(models.ActionElicitSlot).Inc()

		return models.ElicitSlot(event.SessionAttributes, event.CurrentIntent.Name, slots, result.ViolatedSlot, result.Message)
	}

	metrics.DialogTurns.WithLabelValues(models.ActionDelegate).Inc()
	return models.Delegate(event.SessionAttributes, slots)
}

func (h *Handler) handleFulfillmentTurn(ctx context.Context, event models.DialogEvent) (models.DialogResponse, error) {
	slots := event.CurrentIntent.Slots

	request := models.FulfillmentRequest{
		Location: deref(slots.Location),
		Cuisine:  deref(slots.Cuisine),
		Time:     deref(slots.Time),
		Date:     deref(slots.Date),
		People:   deref(slots.People),
		Email:    deref(slots.Email),
	}

	body, err := json.Marshal(request)
	if err != nil {
		return models.DialogResponse{}, fmt.Errorf("failed to serialize fulfillment request: %w", err)
	}

	_, err = h.queue.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    awssdk.String(h.config.QueueURL),
		MessageBody: awssdk.String(string(body)),
	})
	if err != nil {
		return models.DialogResponse{}, errors.NewQueueSendFailedError(err)
	}

	h.logger.Info("Fulfillment request enqueued", map[string]interface{}{
		"cuisine":  request.Cuisine,
		"location": request.Location,
	})
	metrics.DialogTurns.WithLabelValues(models.ActionClose).Inc()

	return models.Close(event.SessionAttributes, models.StateFulfilled, closingMessage), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
