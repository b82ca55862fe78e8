package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Database   Database
	Redis      Redis
	Auth       Auth
	LLM        LLM
	Retriever  Retriever
	Generation Generation
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Redis struct {
	Addr     string // empty means in-process cache
	Password string
	DB       int
}

type Auth struct {
	JWTSecret string
}

type LLM struct {
	Provider      string // "gemini", "openai"
	GeminiAPIKey  string
	OpenAIAPIKey  string
	OpenAIBaseURL string // set for OpenAI-compatible local servers
	Model         string
	Temperature   float64
}

type Retriever struct {
	BaseURL        string // empty disables semantic retrieval
	MinScore       float64
	TimeoutSeconds int
}

type Generation struct {
	PromptVersion           string
	TimeoutSeconds          int
	RequestBudgetSeconds    int
	DefaultRatio            float64
	CacheTTLMinutes         int
	PreGenDelaySeconds      int
	PreGenMinSessionMinutes int
	PreGenQuestionCount     int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("LLM_PROVIDER", "gemini")
	viper.SetDefault("LLM_MODEL", "gemini-1.5-flash")
	viper.SetDefault("LLM_TEMPERATURE", 0.7)
	viper.SetDefault("RETRIEVER_MIN_SCORE", 0.75)
	viper.SetDefault("RETRIEVER_TIMEOUT_SECONDS", 5)
	viper.SetDefault("PROMPT_VERSION", "v2")
	viper.SetDefault("GENERATION_TIMEOUT_SECONDS", 60)
	viper.SetDefault("REQUEST_BUDGET_SECONDS", 90)
	viper.SetDefault("DEFAULT_PREVIOUS_YEAR_RATIO", 0.7)
	viper.SetDefault("CACHE_TTL_MINUTES", 60)
	viper.SetDefault("PREGEN_DELAY_SECONDS", 30)
	viper.SetDefault("PREGEN_MIN_SESSION_MINUTES", 5)
	viper.SetDefault("PREGEN_QUESTION_COUNT", 10)

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")

	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")

	config.LLM.Provider = viper.GetString("LLM_PROVIDER")
	config.LLM.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")
	config.LLM.OpenAIAPIKey = viper.GetString("OPENAI_API_KEY")
	config.LLM.OpenAIBaseURL = viper.GetString("OPENAI_BASE_URL")
	config.LLM.Model = viper.GetString("LLM_MODEL")
	config.LLM.Temperature = viper.GetFloat64("LLM_TEMPERATURE")

	config.Retriever.BaseURL = viper.GetString("RETRIEVER_BASE_URL")
	config.Retriever.MinScore = viper.GetFloat64("RETRIEVER_MIN_SCORE")
	config.Retriever.TimeoutSeconds = viper.GetInt("RETRIEVER_TIMEOUT_SECONDS")

	config.Generation.PromptVersion = viper.GetString("PROMPT_VERSION")
	config.Generation.TimeoutSeconds = viper.GetInt("GENERATION_TIMEOUT_SECONDS")
	config.Generation.RequestBudgetSeconds = viper.GetInt("REQUEST_BUDGET_SECONDS")
	config.Generation.DefaultRatio = viper.GetFloat64("DEFAULT_PREVIOUS_YEAR_RATIO")
	config.Generation.CacheTTLMinutes = viper.GetInt("CACHE_TTL_MINUTES")
	config.Generation.PreGenDelaySeconds = viper.GetInt("PREGEN_DELAY_SECONDS")
	config.Generation.PreGenMinSessionMinutes = viper.GetInt("PREGEN_MIN_SESSION_MINUTES")
	config.Generation.PreGenQuestionCount = viper.GetInt("PREGEN_QUESTION_COUNT")

	log.Info().
		Str("server_port", config.Server.Port).
		Str("database_host", config.Database.Host).
		Str("llm_provider", config.LLM.Provider).
		Str("prompt_version", config.Generation.PromptVersion).
		Msg("Config loaded")
	return &config, nil
}
