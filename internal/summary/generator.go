package summary

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/yourorg/property-insight-api/internal/metrics"
	"github.com/yourorg/property-insight-api/internal/property"
)

var (
	// ErrUnavailable is the kind of every Generate failure.
	ErrUnavailable      = errors.New("summary unavailable")
	ErrMissingAPIKey    = fmt.Errorf("%w: openai api key is missing", ErrUnavailable)
	ErrCompletionFailed = fmt.Errorf("%w: completion request failed", ErrUnavailable)
)

// Strings handed to clients in place of a summary. They are returned with a 200.
const (
	MissingKeyMessage = "Error: OpenAI API key is missing."
	FailedMessage     = "Error generating property summary."
)

const defaultTimeout = 60 * time.Second

type Config struct {
	APIKey  string
	Model   string
	BaseURL string // empty uses the SDK default
	Timeout time.Duration
}

type Generator struct {
	client *openai.Client
	model  string
	log    *zap.Logger
}

// NewGenerator builds a generator. Without an API key it is still usable:
// every Generate call returns ErrMissingAPIKey.
func NewGenerator(cfg Config, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Generator{model: cfg.Model, log: log.Named("summary")}
	if g.model == "" {
		g.model = openai.GPT4o
	}
	if cfg.APIKey == "" {
		return g
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	oc.HTTPClient = &http.Client{Timeout: timeout}
	g.client = openai.NewClientWithConfig(oc)
	return g
}

// Generate asks the completion service for an HTML overview of p.
// Errors wrap ErrUnavailable; the underlying cause is logged, not returned.
func (g *Generator) Generate(ctx context.Context, p property.SimplifiedProperty) (string, error) {
	if g.client == nil {
		g.log.Error("openai api key is missing")
		metrics.SummaryGenerations.WithLabelValues("missing_key").Inc()
		return "", ErrMissingAPIKey
	}

	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: BuildPrompt(p)},
		},
	})
	metrics.ObserveUpstream("completion", start)
	if err == nil && len(resp.Choices) == 0 {
		err = errors.New("empty choices")
	}
	if err != nil {
		g.log.Error("summary generation failed",
			zap.String("model", g.model),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		metrics.SummaryGenerations.WithLabelValues("failed").Inc()
		return "", ErrCompletionFailed
	}

	metrics.SummaryGenerations.WithLabelValues("ok").Inc()
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Message returns the client-facing string for a Generate error.
func Message(err error) string {
	if errors.Is(err, ErrMissingAPIKey) {
		return MissingKeyMessage
	}
	return FailedMessage
}
