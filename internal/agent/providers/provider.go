package providers

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/openai"
	einomodel "github.com/cloudwego/eino/components/model"
	"google.golang.org/genai"

	"github.com/cool-vibes/travelchat/internal/agent/model"
	logx "github.com/cool-vibes/travelchat/pkg/logger"
)

const (
	ProviderAzure  = "azure"
	ProviderGemini = "gemini"
)

// Config collects what both providers need; only the selected one is used.
type Config struct {
	Model  model.ModelConfig
	Azure  model.AzureOpenAIConfig
	Gemini model.GeminiConfig
}

// NewChatModel builds the tool-calling chat model for the configured provider.
func NewChatModel(ctx context.Context, cfg Config) (einomodel.ToolCallingChatModel, error) {
	switch cfg.Model.Provider {
	case ProviderAzure, "":
		return newAzureChatModel(ctx, cfg)
	case ProviderGemini:
		return newGeminiChatModel(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown model provider %q", cfg.Model.Provider)
	}
}

// ModelName reports the effective model identifier, used for usage pricing.
func ModelName(cfg Config) string {
	if cfg.Model.Provider == ProviderGemini {
		return cfg.Gemini.Model
	}
	return cfg.Azure.Deployment
}

func newAzureChatModel(ctx context.Context, cfg Config) (einomodel.ToolCallingChatModel, error) {
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		ByAzure:     true,
		BaseURL:     cfg.Azure.Endpoint,
		APIKey:      cfg.Azure.APIKey,
		APIVersion:  cfg.Azure.APIVersion,
		Model:       cfg.Azure.Deployment,
		MaxTokens:   &cfg.Model.MaxTokens,
		Temperature: &cfg.Model.Temperature,
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Azure OpenAI chat model")
		return nil, fmt.Errorf("error creating Azure OpenAI chat model: %w", err)
	}

	logx.Info().
		Str("deployment", cfg.Azure.Deployment).
		Str("api_version", cfg.Azure.APIVersion).
		Msg("Azure OpenAI chat model ready")
	return cm, nil
}

func newGeminiChatModel(ctx context.Context, cfg Config) (einomodel.ToolCallingChatModel, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.Gemini.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.Gemini.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	cm, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       cfg.Gemini.Model,
		Temperature: &cfg.Model.Temperature,
		MaxTokens:   &cfg.Model.MaxTokens,
		ThinkingConfig: &genai.ThinkingConfig{
			IncludeThoughts: true,
			ThinkingBudget:  genai.Ptr(int32(2000)),
		},
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini chat model")
		return nil, fmt.Errorf("error creating Gemini chat model: %w", err)
	}

	logx.Info().Str("model", cfg.Gemini.Model).Msg("Gemini chat model ready")
	return cm, nil
}
