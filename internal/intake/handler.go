package intake

import (
	"context"
	"fmt"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimeservice"
	"github.com/google/uuid"

	"dining-concierge/internal/common/errors"
	"dining-concierge/internal/common/logger"
)

// LexService is the single dialog engine call the adapter needs.
type LexService interface {
	PostText(ctx context.Context, params *lexruntimeservice.PostTextInput, optFns ...func(*lexruntimeservice.Options)) (*lexruntimeservice.PostTextOutput, error)
}

// Handler forwards a raw user utterance to the dialog engine and normalizes
// the reply into the frontend envelope. No slot or session logic lives here.
type Handler struct {
	config *Config
	logger logger.Logger
	lex    LexService
	loc    *time.Location
}

func NewHandler(config *Config, log logger.Logger, lex LexService) (*Handler, error) {
	loc, err := config.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve timezone: %w", err)
	}
	return &Handler{
		config: config,
		logger: log,
		lex:    lex,
		loc:    loc,
	}, nil
}

func (h *Handler) Handle(ctx context.Context, request ChatRequest) (ChatResponse, error) {
	var utterance string
	if len(request.Messages) > 0 {
		utterance = request.Messages[0].Unstructured.Text
	}

	h.logger.Debug("Forwarding utterance to dialog engine", map[string]interface{}{
		"bot":   h.config.BotName,
		"alias": h.config.BotAlias,
	})

	out, err := h.lex.PostText(ctx, &lexruntimeservice.PostTextInput{
		BotName:   awssdk.String(h.config.BotName),
		BotAlias:  awssdk.String(h.config.BotAlias),
		UserId:    awssdk.String(h.config.UserID),
		InputText: awssdk.String(utterance),
	})
	if err != nil {
		return ChatResponse{}, errors.NewDialogEngineFailedError(err)
	}

	// Fall back to the stringified response when the reply field is absent.
	text := fmt.Sprintf("%v", out)
	if out.Message != nil {
		text = *out.Message
	}

	return ChatResponse{
		StatusCode: 200,
		Messages: []ChatMessage{
			{
				Type: "unstructured",
				Unstructured: Unstructured{
					ID:        uuid.NewString(),
					Text:      text,
					Timestamp: time.Now().In(h.loc).Format("2006-01-02 15:04:05"),
				},
			},
		},
	}, nil
}
