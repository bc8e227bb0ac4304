package fulfillment

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"dining-concierge/internal/common/errors"
	"dining-concierge/internal/common/logger"
	"dining-concierge/internal/common/metrics"
	"dining-concierge/internal/common/validation"
	"dining-concierge/internal/models"
)

// Narrow collaborator surfaces, one per external service, for mocking.

type QueueService interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

type SearchService interface {
	SearchIDsByCuisine(ctx context.Context, cuisine string) ([]string, error)
}

type StoreService interface {
	Get(ctx context.Context, businessID string) (models.RestaurantRecord, error)
}

type EmailService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type NotifierService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Worker drains the fulfillment queue: each message is searched, joined
// against the document store, formatted, and emailed. A message is deleted
// only after its email went out; anything that fails stays on the queue and
// reappears after the visibility timeout.
type Worker struct {
	config   *Config
	logger   logger.Logger
	queue    QueueService
	search   SearchService
	store    StoreService
	email    EmailService
	notifier NotifierService
}

func NewWorker(config *Config, log logger.Logger, queue QueueService, search SearchService, store StoreService, email EmailService, notifier NotifierService) *Worker {
	return &Worker{
		config:   config,
		logger:   log,
		queue:    queue,
		search:   search,
		store:    store,
		email:    email,
		notifier: notifier,
	}
}

// Run performs a single poll-process-acknowledge pass. Failures of one
// message never abort its siblings.
func (w *Worker) Run(ctx context.Context) (PassResult, error) {
	start := time.Now()
	defer func() {
		metrics.FulfillmentPassDuration.Observe(time.Since(start).Seconds())
	}()

	out, err := w.queue.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            awssdk.String(w.config.QueueURL),
		MaxNumberOfMessages: w.config.MaxMessages,
		VisibilityTimeout:   w.config.VisibilityTimeout,
		WaitTimeSeconds:     w.config.WaitTime,
	})
	if err != nil {
		return PassResult{}, errors.NewQueueReceiveFailedError(err)
	}

	result := PassResult{Received: len(out.Messages)}
	if result.Received == 0 {
		return result, nil
	}

	for _, message := range out.Messages {
		if err := w.processMessage(ctx, message); err != nil {
			result.Failed++
			metrics.FulfillmentMessages.WithLabelValues("failed").Inc()
			w.logger.WithError(err).Error("Fulfillment message failed, leaving it on the queue", map[string]interface{}{
				"messageId": awssdk.ToString(message.MessageId),
				"retryable": errors.IsRetryable(err),
			})
			continue
		}

		if _, err := w.queue.DeleteMessage(ctx, &sqs.DeleteMessageInput{
			QueueUrl:      awssdk.String(w.config.QueueURL),
			ReceiptHandle: message.ReceiptHandle,
		}); err != nil {
			result.Failed++
			metrics.FulfillmentMessages.WithLabelValues("delete_failed").Inc()
			w.logger.WithError(err).Error("Failed to delete processed message", map[string]interface{}{
				"messageId": awssdk.ToString(message.MessageId),
			})
			continue
		}

		result.Processed++
		metrics.FulfillmentMessages.WithLabelValues("processed").Inc()
	}

	w.logger.Info("Fulfillment pass completed", map[string]interface{}{
		"received":  result.Received,
		"processed": result.Processed,
		"failed":    result.Failed,
	})

	return result, nil
}

func (w *Worker) processMessage(ctx context.Context, message sqstypes.Message) error {
	body := awssdk.ToString(message.Body)

	if err := validation.ValidateFulfillmentRequest(body); err != nil {
		return err
	}

	var request models.FulfillmentRequest
	if err := json.Unmarshal([]byte(body), &request); err != nil {
		return fmt.Errorf("failed to decode fulfillment request: %w", err)
	}

	ids, err := w.search.SearchIDsByCuisine(ctx, request.Cuisine)
	if err != nil {
		return err
	}

	if len(ids) < w.config.SampleSize {
		return errors.NewInsufficientResultsError(request.Cuisine, len(ids), w.config.SampleSize)
	}

	sampled := sample(ids, w.config.SampleSize)

	records := make([]models.RestaurantRecord, 0, len(sampled))
	for _, id := range sampled {
		record, err := w.store.Get(ctx, id)
		if err != nil {
			return err
		}
		records = append(records, record)
	}

	text := buildSuggestionMessage(request, records)

	if err := w.sendEmail(ctx, text, request.Email); err != nil {
		return err
	}
	metrics.FulfillmentEmailsSent.Inc()

	// Topic notification is best-effort; the email already went out.
	if w.config.SNSEnabled && w.notifier != nil {
		if err := w.publishNotification(ctx, text); err != nil {
			w.logger.WithError(err).Warn("Topic notification failed", map[string]interface{}{
				"topic": w.config.SNSTopicARN,
			})
		}
	}

	return nil
}

func (w *Worker) sendEmail(ctx context.Context, text, recipient string) error {
	_, err := w.email.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &sestypes.Destination{
			ToAddresses: []string{recipient},
		},
		Message: &sestypes.Message{
			Body: &sestypes.Body{
				Text: &sestypes.Content{
					Charset: awssdk.String("UTF-8"),
					Data:    awssdk.String(text),
				},
			},
			Subject: &sestypes.Content{
				Charset: awssdk.String("UTF-8"),
				Data:    awssdk.String(w.config.Subject),
			},
		},
		Source: awssdk.String(w.config.FromAddress),
	})
	if err != nil {
		return errors.NewEmailSendFailedError(err)
	}
	return nil
}

func (w *Worker) publishNotification(ctx context.Context, text string) error {
	_, err := w.notifier.Publish(ctx, &sns.PublishInput{
		TopicArn: awssdk.String(w.config.SNSTopicARN),
		Subject:  awssdk.String(w.config.Subject),
		Message:  awssdk.String(text),
	})
	return err
}

// sample picks n distinct elements uniformly at random.
func sample(ids []string, n int) []string {
	perm := rand.Perm(len(ids))
	picked := make([]string, n)
	for i := 0; i < n; i++ {
		picked[i] = ids[perm[i]]
	}
	return picked
}
