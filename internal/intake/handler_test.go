package intake

import (
	"context"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimeservice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dining-concierge/internal/common/errors"
	"dining-concierge/internal/common/logger"
)

type mockLex struct {
	postTextFunc func(ctx context.Context, params *lexruntimeservice.PostTextInput, optFns ...func(*lexruntimeservice.Options)) (*lexruntimeservice.PostTextOutput, error)
	calls        []*lexruntimeservice.PostTextInput
}

func (m *mockLex) PostText(ctx context.Context, params *lexruntimeservice.PostTextInput, optFns ...func(*lexruntimeservice.Options)) (*lexruntimeservice.PostTextOutput, error) {
	m.calls = append(m.calls, params)
	return m.postTextFunc(ctx, params, optFns...)
}

func newTestHandler(t *testing.T, lex LexService) *Handler {
	t.Helper()
	cfg := &Config{
		BotName:  "Dining",
		BotAlias: "prod",
		UserID:   "test",
		Timezone: "America/New_York",
	}
	h, err := NewHandler(cfg, logger.NewNoOpLogger(), lex)
	require.NoError(t, err)
	return h
}

func chatRequest(text string) ChatRequest {
	return ChatRequest{
		Messages: []ChatMessage{
			{Type: "unstructured", Unstructured: Unstructured{Text: text}},
		},
	}
}

func TestHandle_ForwardsUtteranceAndWrapsReply(t *testing.T) {
	lex := &mockLex{
		postTextFunc: func(ctx context.Context, params *lexruntimeservice.PostTextInput, optFns ...func(*lexruntimeservice.Options)) (*lexruntimeservice.PostTextOutput, error) {
			return &lexruntimeservice.PostTextOutput{
				Message: awssdk.String("What cuisine would you like?"),
			}, nil
		},
	}
	h := newTestHandler(t, lex)

	resp, err := h.Handle(context.Background(), chatRequest("I want to find a restaurant"))

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "unstructured", resp.Messages[0].Type)
	assert.Equal(t, "What cuisine would you like?", resp.Messages[0].Unstructured.Text)
	assert.NotEmpty(t, resp.Messages[0].Unstructured.ID)
	assert.NotEmpty(t, resp.Messages[0].Unstructured.Timestamp)

	require.Len(t, lex.calls, 1)
	assert.Equal(t, "I want to find a restaurant", *lex.calls[0].InputText)
	assert.Equal(t, "Dining", *lex.calls[0].BotName)
	assert.Equal(t, "prod", *lex.calls[0].BotAlias)
}

func TestHandle_FallsBackToStringifiedResponse(t *testing.T) {
	lex := &mockLex{
		postTextFunc: func(ctx context.Context, params *lexruntimeservice.PostTextInput, optFns ...func(*lexruntimeservice.Options)) (*lexruntimeservice.PostTextOutput, error) {
			return &lexruntimeservice.PostTextOutput{}, nil
		},
	}
	h := newTestHandler(t, lex)

	resp, err := h.Handle(context.Background(), chatRequest("hello"))

	require.NoError(t, err)
	require.Len(t, resp.Messages, 1)
	assert.NotEmpty(t, resp.Messages[0].Unstructured.Text, "fallback text should never be empty")
}

func TestHandle_EngineFailurePropagates(t *testing.T) {
	lex := &mockLex{
		postTextFunc: func(ctx context.Context, params *lexruntimeservice.PostTextInput, optFns ...func(*lexruntimeservice.Options)) (*lexruntimeservice.PostTextOutput, error) {
			return nil, assert.AnError
		},
	}
	h := newTestHandler(t, lex)

	_, err := h.Handle(context.Background(), chatRequest("hello"))

	require.Error(t, err)
	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeDialogEngineFailed, stdErr.Code)
}

func TestHandle_EmptyMessageListStillCallsEngine(t *testing.T) {
	lex := &mockLex{
		postTextFunc: func(ctx context.Context, params *lexruntimeservice.PostTextInput, optFns ...func(*lexruntimeservice.Options)) (*lexruntimeservice.PostTextOutput, error) {
			return &lexruntimeservice.PostTextOutput{Message: awssdk.String("Hi there")}, nil
		},
	}
	h := newTestHandler(t, lex)

	resp, err := h.Handle(context.Background(), ChatRequest{})

	require.NoError(t, err)
	require.Len(t, lex.calls, 1)
	assert.Equal(t, "", *lex.calls[0].InputText)
	assert.Equal(t, "Hi there", resp.Messages[0].Unstructured.Text)
}
