package embedding

import (
	"context"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/cool-vibes/travelchat/internal/agent/model"
	errx "github.com/cool-vibes/travelchat/internal/core/error"
	logx "github.com/cool-vibes/travelchat/pkg/logger"
)

// AzureOpenAIEmbedder vectorizes text with an Azure OpenAI embedding
// deployment. The deployment name doubles as the model identifier.
type AzureOpenAIEmbedder struct {
	client *openai.Client
	model  string
}

func NewAzureOpenAIEmbedder(cfg model.AzureOpenAIConfig) *AzureOpenAIEmbedder {
	clientCfg := openai.DefaultAzureConfig(cfg.APIKey, cfg.Endpoint)
	if cfg.EmbeddingAPIVersion != "" {
		clientCfg.APIVersion = cfg.EmbeddingAPIVersion
	}

	return &AzureOpenAIEmbedder{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.EmbeddingDeployment,
	}
}

func (e *AzureOpenAIEmbedder) Model() string {
	return e.model
}

func (e *AzureOpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(e.model),
	})
	if err != nil {
		logx.Error().Err(err).Str("model", e.model).Msg("embedding request failed")
		return nil, errx.New(err, http.StatusBadGateway, errx.EmbeddingErrorMessage)
	}
	if len(resp.Data) == 0 {
		return nil, errx.New(fmt.Errorf("empty embedding response"), http.StatusBadGateway, errx.EmbeddingErrorMessage)
	}
	return resp.Data[0].Embedding, nil
}

var _ model.Embedder = (*AzureOpenAIEmbedder)(nil)
