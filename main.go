package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/cool-vibes/travelchat/internal/agent/chat"
	"github.com/cool-vibes/travelchat/internal/agent/model"
	"github.com/cool-vibes/travelchat/internal/agent/providers"
	"github.com/cool-vibes/travelchat/internal/agent/repo"
	"github.com/cool-vibes/travelchat/internal/agent/tools"
	"github.com/cool-vibes/travelchat/internal/core"
	"github.com/cool-vibes/travelchat/internal/embedding"
	"github.com/cool-vibes/travelchat/internal/seed"
	"github.com/cool-vibes/travelchat/internal/server"
	"github.com/cool-vibes/travelchat/internal/telemetry"
	logx "github.com/cool-vibes/travelchat/pkg/logger"
	pkgredis "github.com/cool-vibes/travelchat/pkg/redis"
)

// AppConfig defines all configurable parameters for the service, sourced
// from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`

	// Infrastructure
	Redis pkgredis.Config

	// Telemetry
	AppInsightsConnectionString string `envconfig:"APPLICATIONINSIGHTS_CONNECTION_STRING"`

	// LLM provider
	Model  model.ModelConfig
	Azure  model.AzureOpenAIConfig
	Gemini model.GeminiConfig

	// Agent configs
	Conversation model.ConversationConfig
	Memory       model.MemoryConfig
	Seed         model.SeedConfig
	Server       model.ServerConfig
}

func main() {
	ctx := context.Background()

	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Load structured config from env
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	env := core.ParseEnvironment(cfg.Environment)
	logx.Init(logx.LoggerOpts{Environment: env})

	tele, err := telemetry.New(cfg.AppInsightsConnectionString)
	if err != nil {
		logx.Warn().Err(err).Msg("Invalid Application Insights connection string, telemetry disabled")
	}
	if tele != nil {
		logx.Hook(tele.Hook())
		defer tele.Close()
	}

	if err := validateProviderConfig(cfg); err != nil {
		logx.Fatal().Err(err).Msg("Incomplete model provider configuration")
	}

	rdb, err := cfg.Redis.New()
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to initialise Redis client")
	}
	defer rdb.Close()
	logx.Info().Msg("Connected to Redis")

	ttl, err := time.ParseDuration(cfg.Conversation.TTL)
	if err != nil {
		logx.Fatal().Str("ttl", cfg.Conversation.TTL).Err(err).Msg("Invalid CONVERSATION_TTL")
	}
	cacheTTL, err := time.ParseDuration(cfg.Memory.CacheTTL)
	if err != nil {
		logx.Fatal().Str("ttl", cfg.Memory.CacheTTL).Err(err).Msg("Invalid MEMORY_CACHE_TTL")
	}

	// The embedder is optional. Without Azure credentials preference
	// search stays available but unranked.
	var embedder model.Embedder
	if cfg.Azure.Endpoint != "" && cfg.Azure.APIKey != "" {
		embedder = embedding.NewCachedEmbedder(
			embedding.NewAzureOpenAIEmbedder(cfg.Azure),
			rdb,
			cfg.Memory.Namespace,
			cacheTTL,
		)
	} else {
		logx.Warn().Msg("Azure OpenAI embedding credentials missing, preference search will be unranked")
	}

	prefs := repo.NewRedisPreferenceStore(rdb, embedder, cfg.Memory)

	if err := seed.Run(ctx, prefs, cfg.Seed.File); err != nil {
		logx.Warn().Err(err).Str("file", cfg.Seed.File).Msg("Seeding failed, continuing with existing data")
	}

	providerCfg := providers.Config{Model: cfg.Model, Azure: cfg.Azure, Gemini: cfg.Gemini}
	chatModel, err := providers.NewChatModel(ctx, providerCfg)
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to create chat model")
	}

	newConversations := repo.NewConversationRepositoryFactory(rdb, cfg.Memory.Namespace, ttl)
	svc, err := chat.NewService(ctx, chat.Config{
		ChatModel:     chatModel,
		Registry:      tools.NewRegistry(prefs),
		Conversations: newConversations(),
		Preferences:   prefs,
		CheckPoints:   repo.NewRedisCheckPointStore(rdb, cfg.Memory.Namespace, ttl),
		MaxTurns:      cfg.Conversation.MaxTurns,
		ModelName:     providers.ModelName(providerCfg),
	})
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to build agents")
	}

	srv := server.New(cfg.Server, env, svc, prefs)
	go func() {
		if err := srv.Run(); err != nil {
			logx.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	tele.TrackTrace("travelchat started")
	logx.Info().Str("url", "http://"+srv.Addr()).Msg("Cool Vibes Travel demo ready")
	logx.Info().Msg(`Try: "Hi, I'm Mark. Can you help me plan a trip?"`)
	logx.Info().Msg(`Try: "I want to visit New York in November and catch a basketball game"`)
	logx.Info().Msg(`Try: "Hi, I'm Shruti. What family-friendly activities are in Chicago?"`)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logx.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logx.Error().Err(err).Msg("Server forced to shutdown")
	}
	logx.Info().Msg("Server exiting")
}

// validateProviderConfig reports every missing credential for the active
// provider at once so a first run can be fixed in one pass.
func validateProviderConfig(cfg AppConfig) error {
	var missing []string
	switch cfg.Model.Provider {
	case providers.ProviderGemini:
		if cfg.Gemini.APIKey == "" {
			missing = append(missing, "GEMINI_API_KEY")
		}
	default:
		if cfg.Azure.Endpoint == "" {
			missing = append(missing, "AZURE_OPENAI_ENDPOINT")
		}
		if cfg.Azure.APIKey == "" {
			missing = append(missing, "AZURE_OPENAI_API_KEY")
		}
		if cfg.Azure.Deployment == "" {
			missing = append(missing, "AZURE_OPENAI_DEPLOYMENT_NAME")
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}
