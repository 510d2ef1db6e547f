package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// LLM provider names accepted by llm.provider.
const (
	ProviderGroq            = "groq"
	ProviderOpenAI          = "openai"
	ProviderLangchainOpenAI = "langchain-openai"
	ProviderOllama          = "ollama"
	ProviderAnthropic       = "anthropic"
	ProviderGemini          = "gemini"
	ProviderMock            = "mock"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	CORS      CORSConfig
	LLM       LLMConfig
	YouTube   YouTubeConfig
	Quiz      QuizConfig
	Redis     RedisConfig
	CacheTTLs CacheTTLConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

type LoggerConfig struct {
	Env   string
	Level string
}

type CORSConfig struct {
	AllowOrigins string
}

// LLMConfig selects the generative provider. An empty Model picks the
// provider default.
type LLMConfig struct {
	Provider        string
	Model           string
	APIKey          string
	BaseURL         string
	Temperature     float64
	CourseMaxTokens int
	QuizMaxTokens   int
	Timeout         time.Duration
}

type YouTubeConfig struct {
	APIKey            string
	BaseURL           string
	LanguageQualifier string
	MaxResults        int64
	Timeout           time.Duration
}

type QuizConfig struct {
	QuestionCount     int
	TimeLimitMinutes  int
	PointsPerQuestion int
	StrictValidation  bool
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// CacheTTLConfig holds TTLs as duration strings ("24h", "30m").
type CacheTTLConfig struct {
	Course string
	Video  string
}

type TelemetryConfig struct {
	Enabled     bool
	Endpoint    string
	Insecure    bool
	ServiceName string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.read_timeout", 60)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("server.body_limit", 4*1024*1024)

	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")

	v.SetDefault("cors.allow_origins", "*")

	v.SetDefault("llm.provider", ProviderGroq)
	v.SetDefault("llm.temperature", 0.3)
	v.SetDefault("llm.course_max_tokens", 8000)
	v.SetDefault("llm.quiz_max_tokens", 1500)
	v.SetDefault("llm.timeout", 90)

	v.SetDefault("youtube.language_qualifier", "in English")
	v.SetDefault("youtube.max_results", 3)
	v.SetDefault("youtube.timeout", 10)

	v.SetDefault("quiz.question_count", 10)
	v.SetDefault("quiz.time_limit_minutes", 15)
	v.SetDefault("quiz.points_per_question", 2)
	v.SetDefault("quiz.strict_validation", true)

	v.SetDefault("redis.db", 0)

	v.SetDefault("cache_ttls.course", "24h")
	v.SetDefault("cache_ttls.video", "168h")

	v.SetDefault("telemetry.service_name", "craftify")
}

// LoadConfig reads config.yaml (optional) and the environment.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./configs")

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			BodyLimit:    v.GetInt("server.body_limit"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetString("cors.allow_origins"),
		},
		LLM: LLMConfig{
			Provider:        strings.ToLower(v.GetString("llm.provider")),
			Model:           v.GetString("llm.model"),
			APIKey:          v.GetString("llm.api_key"),
			BaseURL:         v.GetString("llm.base_url"),
			Temperature:     v.GetFloat64("llm.temperature"),
			CourseMaxTokens: v.GetInt("llm.course_max_tokens"),
			QuizMaxTokens:   v.GetInt("llm.quiz_max_tokens"),
			Timeout:         time.Duration(v.GetInt("llm.timeout")) * time.Second,
		},
		YouTube: YouTubeConfig{
			APIKey:            v.GetString("youtube.api_key"),
			BaseURL:           v.GetString("youtube.base_url"),
			LanguageQualifier: v.GetString("youtube.language_qualifier"),
			MaxResults:        v.GetInt64("youtube.max_results"),
			Timeout:           time.Duration(v.GetInt("youtube.timeout")) * time.Second,
		},
		Quiz: QuizConfig{
			QuestionCount:     v.GetInt("quiz.question_count"),
			TimeLimitMinutes:  v.GetInt("quiz.time_limit_minutes"),
			PointsPerQuestion: v.GetInt("quiz.points_per_question"),
			StrictValidation:  v.GetBool("quiz.strict_validation"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		CacheTTLs: CacheTTLConfig{
			Course: v.GetString("cache_ttls.course"),
			Video:  v.GetString("cache_ttls.video"),
		},
		Telemetry: TelemetryConfig{
			Enabled:     v.GetBool("telemetry.enabled"),
			Endpoint:    v.GetString("telemetry.endpoint"),
			Insecure:    v.GetBool("telemetry.insecure"),
			ServiceName: v.GetString("telemetry.service_name"),
		},
	}

	// Well-known variables used by hosting platforms and provider SDKs.
	if port := os.Getenv("PORT"); port != "" {
		v.Set("server.port", port)
		config.Server.Port = v.GetInt("server.port")
	}
	if config.LLM.APIKey == "" {
		config.LLM.APIKey = providerKeyFromEnv(config.LLM.Provider)
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}

	return config
}

func providerKeyFromEnv(provider string) string {
	switch provider {
	case ProviderGroq:
		return os.Getenv("GROQ_API_KEY")
	case ProviderOpenAI, ProviderLangchainOpenAI:
		return os.Getenv("OPENAI_API_KEY")
	case ProviderAnthropic:
		return os.Getenv("ANTHROPIC_API_KEY")
	case ProviderGemini:
		return os.Getenv("GEMINI_API_KEY")
	}
	return ""
}

// Validate checks that the selected provider can be constructed.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderGroq, ProviderOpenAI, ProviderLangchainOpenAI, ProviderAnthropic, ProviderGemini:
		if c.LLM.APIKey == "" {
			return fmt.Errorf("llm.api_key is required for the %s provider", c.LLM.Provider)
		}
	case ProviderOllama:
		if c.LLM.BaseURL == "" {
			return fmt.Errorf("llm.base_url is required for the ollama provider")
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.LLM.Provider)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Quiz.QuestionCount <= 0 {
		return fmt.Errorf("quiz.question_count must be positive")
	}
	return nil
}

// ParseTTLStringOrDefault parses a duration string, falling back to def
// when the string is empty or invalid.
func (c *Config) ParseTTLStringOrDefault(ttl string, def time.Duration) time.Duration {
	if ttl == "" {
		return def
	}
	d, err := time.ParseDuration(ttl)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
