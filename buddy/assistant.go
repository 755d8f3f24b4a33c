// Package buddy implements the conversational assistant fronting the
// completion provider: context retrieval over a fixed knowledge base, at most
// one weather tool round trip, and speech synthesis for the final answer.
package buddy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/rs/zerolog/log"

	"portal/models"
)

// ErrEmptyMessage is returned when the request carries a blank message.
var ErrEmptyMessage = errors.New("empty message")

const systemPersona = "Você é Buddy, um agente de IA do ano 2047 que recomenda conteúdos personalizados sobre arte, cultura e tecnologia."

// CompletionClient abstracts the chat completion call so tests can script
// provider responses.
type CompletionClient interface {
	Complete(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)
}

type chatClient struct {
	client *openai.Client
}

// NewCompletionClient adapts an OpenAI client to the CompletionClient interface.
func NewCompletionClient(client *openai.Client) CompletionClient {
	return &chatClient{client: client}
}

func (c *chatClient) Complete(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	return c.client.Chat.Completions.New(ctx, params)
}

// TemperatureFunc looks up the current temperature at a coordinate.
type TemperatureFunc func(ctx context.Context, latitude, longitude float64) (float64, error)

// Assistant proxies buddy requests to the completion provider.
type Assistant struct {
	client  CompletionClient
	weather TemperatureFunc
	model   openai.ChatModel
}

// NewAssistant creates an assistant using the given completion client,
// weather lookup and chat model name.
func NewAssistant(client CompletionClient, weather TemperatureFunc, model string) *Assistant {
	return &Assistant{client: client, weather: weather, model: openai.ChatModel(model)}
}

// Respond turns one buddy request into a final answer, performing at most one
// weather tool round trip with the provider.
func (a *Assistant) Respond(ctx context.Context, req models.BuddyRequest) (models.BuddyResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return models.BuddyResponse{}, ErrEmptyMessage
	}

	contextText := req.Context
	if contextText == "" {
		contextText = RelevantContent(req.Message)
	}

	var messages []openai.ChatCompletionMessageParamUnion
	if len(req.History) > 0 {
		messages = historyMessages(req.History)
	} else {
		messages = []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPersona),
			openai.UserMessage(fmt.Sprintf("Oi Buddy! %s\n\nContexto:\n%s", req.Message, contextText)),
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    a.model,
		Messages: messages,
		Tools:    []openai.ChatCompletionToolUnionParam{weatherTool},
	}

	completion, err := a.client.Complete(ctx, params)
	if err != nil {
		return models.BuddyResponse{}, fmt.Errorf("completion request failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return models.BuddyResponse{}, errors.New("provider returned no choices")
	}

	var answer string
	message := completion.Choices[0].Message
	switch r := classify(message); r.kind {
	case replyTool:
		answer, err = a.resolveTool(ctx, params, message, r.tool)
		if err != nil {
			return models.BuddyResponse{}, err
		}
	case replyFinal:
		answer = r.text
	}

	resp := models.BuddyResponse{Response: answer}
	if req.VoiceEnabled {
		audioURL := "/api/buddy/speech?text=" + url.QueryEscape(answer)
		resp.AudioURL = &audioURL
	}
	return resp, nil
}

// replyKind tags the two possible shapes of a provider response.
type replyKind int

const (
	replyFinal replyKind = iota
	replyTool
)

type toolRequest struct {
	id        string
	name      string
	arguments string
}

type reply struct {
	kind replyKind
	text string
	tool toolRequest
}

func classify(message openai.ChatCompletionMessage) reply {
	if len(message.ToolCalls) > 0 {
		call := message.ToolCalls[0]
		return reply{
			kind: replyTool,
			tool: toolRequest{id: call.ID, name: call.Function.Name, arguments: call.Function.Arguments},
		}
	}
	return reply{kind: replyFinal, text: message.Content}
}

// resolveTool executes the weather lookup, appends the tool exchange to the
// message sequence and asks the provider for the final answer. Only one round
// trip is made; a second tool request is not serviced.
func (a *Assistant) resolveTool(ctx context.Context, params openai.ChatCompletionNewParams, message openai.ChatCompletionMessage, tool toolRequest) (string, error) {
	var args struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := json.Unmarshal([]byte(tool.arguments), &args); err != nil {
		return "", fmt.Errorf("invalid tool arguments: %w", err)
	}

	temperature, err := a.weather(ctx, args.Latitude, args.Longitude)
	if err != nil {
		log.Warn().Err(err).Msg("weather lookup failed, using fallback temperature")
		temperature = fallbackTemperature
	}

	params.Messages = append(params.Messages,
		message.ToParam(),
		openai.ToolMessage(strconv.FormatFloat(temperature, 'f', -1, 64), tool.id),
	)
	params.Tools = nil

	completion, err := a.client.Complete(ctx, params)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("provider returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

func historyMessages(history []models.ChatMessage) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history))
	for _, m := range history {
		switch m.Role {
		case "system":
			messages = append(messages, openai.SystemMessage(m.Content))
		case "assistant":
			messages = append(messages, openai.AssistantMessage(m.Content))
		case "tool":
			messages = append(messages, openai.ToolMessage(m.Content, m.ToolCallID))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}
	return messages
}
