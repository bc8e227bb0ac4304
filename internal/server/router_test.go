package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimeservice"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dining-concierge/internal/common/logger"
	"dining-concierge/internal/dialog"
	"dining-concierge/internal/intake"
)

type stubLex struct{}

func (stubLex) PostText(ctx context.Context, params *lexruntimeservice.PostTextInput, optFns ...func(*lexruntimeservice.Options)) (*lexruntimeservice.PostTextOutput, error) {
	return &lexruntimeservice.PostTextOutput{Message: awssdk.String("What cuisine would you like?")}, nil
}

type stubQueue struct{}

func (stubQueue) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	return &sqs.SendMessageOutput{}, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	intakeHandler, err := intake.NewHandler(&intake.Config{
		BotName:  "Dining",
		BotAlias: "prod",
		UserID:   "test",
		Timezone: "America/New_York",
	}, logger.NewNoOpLogger(), stubLex{})
	require.NoError(t, err)

	dialogHandler, err := dialog.NewHandler(&dialog.Config{
		BookingIntent: "MakeAppointment",
		Timezone:      "America/New_York",
		QueueURL:      "https://sqs.us-east-1.amazonaws.com/000000000000/test-queue",
	}, logger.NewNoOpLogger(), stubQueue{})
	require.NoError(t, err)

	return New(logger.NewNoOpLogger(), intakeHandler, dialogHandler)
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRouter_Metrics(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Chat(t *testing.T) {
	s := newTestServer(t)

	body := `{"messages":[{"type":"unstructured","unstructured":{"text":"find me food"}}]}`
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "What cuisine would you like?")
}

func TestRouter_Chat_BadJSON(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Dialog_DelegatesValidSlots(t *testing.T) {
	s := newTestServer(t)

	body := `{
		"currentIntent": {
			"name": "MakeAppointment",
			"slots": {"Location": "Manhattan", "Cuisine": "Italian", "Date": "2099-01-01", "Time": "19:00", "People": "4", "Email": "a@b.com"}
		},
		"invocationSource": "DialogCodeHook",
		"sessionAttributes": {}
	}`
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/dialog", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"Delegate"`)
}

func TestRouter_Dialog_UnsupportedIntent(t *testing.T) {
	s := newTestServer(t)

	body := `{
		"currentIntent": {"name": "OrderPizza", "slots": {}},
		"invocationSource": "DialogCodeHook"
	}`
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/dialog", strings.NewReader(body)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/chat", nil))

	assert.NotEqual(t, http.StatusOK, rec.Code)
}
