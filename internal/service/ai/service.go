// Package ai relays assembled conversations to the external game-master model.
package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/hogehogepiyopiyo/yesnogame/internal/config"
	"github.com/hogehogepiyopiyo/yesnogame/internal/model/game"
)

// ErrRateLimited marks provider failures caused by quota exhaustion so the
// HTTP layer can tell players to try again later.
var ErrRateLimited = errors.New("rate limited by model provider")

// Service drives the chat-model chain for game-master replies.
type Service struct {
	instruction string
	chain       compose.Runnable[map[string]any, *schema.Message]
}

// NewService compiles the prompt chain: fixed system instruction, full room
// history, then the new labeled player message.
func NewService(ctx context.Context, cfg config.AIConfig, instruction string) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile game master chain: %w", err)
	}

	return &Service{
		instruction: instruction,
		chain:       runnable,
	}, nil
}

// Reply submits the transcript plus the new labeled user message and returns
// the raw model text. History order is preserved verbatim: the model's view
// of the game depends on it.
func (s *Service) Reply(ctx context.Context, roomID string, history []game.Turn, userText string) (string, error) {
	input := map[string]any{
		"system":  s.instruction,
		"history": historyMessages(history),
		"query":   userText,
	}

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", classifyErr(err)
	}

	log.Printf("[ai] generated reply for room=%s, length=%d", roomID, len(response.Content))
	return response.Content, nil
}

func historyMessages(turns []game.Turn) []*schema.Message {
	if len(turns) == 0 {
		return nil
	}

	history := make([]*schema.Message, 0, len(turns))
	for _, turn := range turns {
		switch turn.Role {
		case game.RoleUser:
			history = append(history, schema.UserMessage(turn.Text))
		case game.RoleModel:
			history = append(history, schema.AssistantMessage(turn.Text, nil))
		}
	}

	return history
}

// classifyErr distinguishes quota errors by the provider's error phrasing,
// which is the only signal exposed through the chain.
func classifyErr(err error) error {
	msg := err.Error()
	if strings.Contains(msg, "Rate limit reached") ||
		strings.Contains(msg, "rate_limit") ||
		strings.Contains(msg, "429") {
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	}
	return fmt.Errorf("failed to run game master chain: %w", err)
}
