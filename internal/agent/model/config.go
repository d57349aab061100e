package model

// ================ Config ================
type ModelConfig struct {
	Provider    string  `envconfig:"MODEL_PROVIDER" default:"azure"`
	MaxTokens   int     `envconfig:"CHAT_MAX_TOKENS" default:"2000"`
	Temperature float32 `envconfig:"CHAT_TEMPERATURE" default:"0.7"`
}

type AzureOpenAIConfig struct {
	Endpoint            string `envconfig:"AZURE_OPENAI_ENDPOINT"`
	APIKey              string `envconfig:"AZURE_OPENAI_API_KEY"`
	Deployment          string `envconfig:"AZURE_OPENAI_DEPLOYMENT_NAME"`
	APIVersion          string `envconfig:"AZURE_OPENAI_API_VERSION" default:"2024-08-01-preview"`
	EmbeddingDeployment string `envconfig:"AZURE_OPENAI_EMBEDDING_DEPLOYMENT_NAME" default:"text-embedding-3-small"`
	EmbeddingAPIVersion string `envconfig:"AZURE_OPENAI_EMBEDDING_API_VERSION" default:"2024-02-15-preview"`
}

type GeminiConfig struct {
	APIKey  string `envconfig:"GEMINI_API_KEY"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`
	Model   string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
}

type ConversationConfig struct {
	TTL      string `envconfig:"CONVERSATION_TTL" default:"24h"`
	MaxTurns int    `envconfig:"CONVERSATION_MAX_TURNS" default:"20"`
}

type MemoryConfig struct {
	Namespace string  `envconfig:"MEMORY_NAMESPACE" default:"cool-vibes-agent"`
	TopK      int     `envconfig:"MEMORY_TOP_K" default:"3"`
	MinScore  float64 `envconfig:"MEMORY_MIN_SCORE" default:"0.1"`
	CacheTTL  string  `envconfig:"MEMORY_CACHE_TTL" default:"24h"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port int    `envconfig:"SERVER_PORT" default:"8000"`
}

type SeedConfig struct {
	File string `envconfig:"SEED_FILE" default:"seed.json"`
}
