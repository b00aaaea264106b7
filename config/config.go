package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	Static     StaticConfig

	// Providers
	Memu       MemuConfig
	OpenRouter OpenRouterConfig
	Anam       AnamConfig

	// Demos
	Chat   ChatConfig
	Avatar AvatarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type StaticConfig struct {
	Dir string
}

// MemuConfig configures the hosted memory service client.
type MemuConfig struct {
	BaseURL       string
	APIKey        string
	RetrievalMode string
	RetrieveLimit int
}

// OpenRouterConfig configures the OpenAI-compatible LLM gateway.
type OpenRouterConfig struct {
	APIKey   string
	BaseURL  string
	Model    string
	Referrer string
	Title    string
}

// AnamConfig configures the avatar streaming provider.
type AnamConfig struct {
	BaseURL string
	APIKey  string
}

// ChatConfig configures the chatbot demo.
type ChatConfig struct {
	SystemPrompt string
	SamplePath   string
	UserID       string
	AgentID      string
}

// AvatarConfig configures the avatar demo persona.
type AvatarConfig struct {
	PersonaName       string
	AvatarID          string
	VoiceID           string
	LLMID             string
	SystemPrompt      string
	MaxSessionSeconds int
	MemoryEnabled     bool
	ContextQuery      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerSecond = viper.GetFloat64("rate_limit.requests_per_second")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.Static.Dir = viper.GetString("static.dir")

	// MemU
	cfg.Memu.BaseURL = viper.GetString("memu.base_url")
	cfg.Memu.APIKey = viper.GetString("memu.api_key")
	cfg.Memu.RetrievalMode = viper.GetString("memu.retrieval_mode")
	cfg.Memu.RetrieveLimit = viper.GetInt("memu.retrieve_limit")
	if key := viper.GetString("memu_api_key"); key != "" {
		cfg.Memu.APIKey = key
	}

	// OpenRouter
	cfg.OpenRouter.APIKey = viper.GetString("openrouter.api_key")
	cfg.OpenRouter.BaseURL = viper.GetString("openrouter.base_url")
	cfg.OpenRouter.Model = viper.GetString("openrouter.model")
	cfg.OpenRouter.Referrer = viper.GetString("openrouter.referrer")
	cfg.OpenRouter.Title = viper.GetString("openrouter.title")
	if key := viper.GetString("openrouter_api_key"); key != "" {
		cfg.OpenRouter.APIKey = key
	}

	// Anam
	cfg.Anam.BaseURL = viper.GetString("anam.base_url")
	cfg.Anam.APIKey = viper.GetString("anam.api_key")
	if key := viper.GetString("anam_api_key"); key != "" {
		cfg.Anam.APIKey = key
	}

	// Chatbot demo
	cfg.Chat.SystemPrompt = viper.GetString("chat.system_prompt")
	cfg.Chat.SamplePath = viper.GetString("chat.sample_path")
	cfg.Chat.UserID = viper.GetString("chat.user_id")
	cfg.Chat.AgentID = viper.GetString("chat.agent_id")

	// Avatar demo
	cfg.Avatar.PersonaName = viper.GetString("avatar.persona_name")
	cfg.Avatar.AvatarID = viper.GetString("avatar.avatar_id")
	cfg.Avatar.VoiceID = viper.GetString("avatar.voice_id")
	cfg.Avatar.LLMID = viper.GetString("avatar.llm_id")
	cfg.Avatar.SystemPrompt = viper.GetString("avatar.system_prompt")
	cfg.Avatar.MaxSessionSeconds = viper.GetInt("avatar.max_session_seconds")
	cfg.Avatar.MemoryEnabled = viper.GetBool("avatar.memory_enabled")
	cfg.Avatar.ContextQuery = viper.GetString("avatar.context_query")

	return cfg, nil
}

// ValidateChatbot fails fast on the credentials the chatbot demo needs,
// before any provider is dialed.
func (cfg *Config) ValidateChatbot() error {
	if cfg.Memu.APIKey == "" {
		return fmt.Errorf("memu.api_key is required (set MEMU_API_KEY)")
	}
	if cfg.OpenRouter.APIKey == "" {
		return fmt.Errorf("openrouter.api_key is required (set OPENROUTER_API_KEY)")
	}
	return nil
}

// ValidateAvatar fails fast on the credentials the avatar demo needs.
func (cfg *Config) ValidateAvatar() error {
	if cfg.Anam.APIKey == "" {
		return fmt.Errorf("anam.api_key is required (set ANAM_API_KEY)")
	}
	if cfg.Avatar.MemoryEnabled && cfg.Memu.APIKey == "" {
		return fmt.Errorf("memu.api_key is required when avatar.memory_enabled is true (set MEMU_API_KEY)")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_second", 2.0)
	viper.SetDefault("rate_limit.burst", 5)
	viper.SetDefault("static.dir", "./web/static")

	// Providers
	viper.SetDefault("memu.base_url", "https://api.memu.so")
	viper.SetDefault("memu.retrieval_mode", "embedding")
	viper.SetDefault("memu.retrieve_limit", 5)
	viper.SetDefault("openrouter.base_url", "https://openrouter.ai/api/v1")
	viper.SetDefault("openrouter.model", "openai/gpt-4o")
	viper.SetDefault("openrouter.referrer", "http://localhost:8080")
	viper.SetDefault("openrouter.title", "MemU Demos")
	viper.SetDefault("anam.base_url", "https://api.anam.ai")

	// Chatbot demo
	viper.SetDefault("chat.sample_path", "./example/example_conversation.json")
	viper.SetDefault("chat.user_id", "demo-user")
	viper.SetDefault("chat.agent_id", "memu-chatbot")

	// Avatar demo
	viper.SetDefault("avatar.persona_name", "Maya")
	viper.SetDefault("avatar.max_session_seconds", 600)
	viper.SetDefault("avatar.memory_enabled", true)
	viper.SetDefault("avatar.context_query", "general conversation context")
}
