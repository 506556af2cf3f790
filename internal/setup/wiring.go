package setup

import (
	"fmt"
	"os"
	"strconv"

	"github.com/avasilev/estate-doc-agent/internal/classifier"
	"github.com/avasilev/estate-doc-agent/internal/config"
	"github.com/avasilev/estate-doc-agent/internal/history"
	"github.com/avasilev/estate-doc-agent/internal/pipeline"
	"github.com/avasilev/estate-doc-agent/internal/validator"
	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel      string
	APIPort       string
	RedisAddr     string
	RedisPassword string
	StreamName    string
	StreamGroup   string
	ConsumerName  string
	BatchWorkers  int
}

type Dependencies struct {
	Pipeline   *pipeline.Pipeline
	Classifier *classifier.Classifier
	Validator  *validator.Validator
	History    *history.Store
	Logger     *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		APIPort:       getEnv("DOC_AGENT_API_PORT", "18082"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		StreamName:    getEnv("DOC_STREAM", "doc-events"),
		StreamGroup:   getEnv("DOC_STREAM_GROUP", "doc-group"),
		ConsumerName:  getEnv("HOSTNAME", "doc-agent"),
		BatchWorkers:  getEnvInt("BATCH_WORKERS", 5),
	}
}

// Wire builds the document pipeline and its collaborators from the rules
// configuration.
func Wire(cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	rules, err := config.LoadRulesConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load rules config: %w", err)
	}

	docClassifier := classifier.New(rules.ClassifierRules(), logger)
	docValidator := validator.New(rules.ValidatorRules(), logger)
	store := history.NewStore()

	pipe := pipeline.New(docClassifier, docValidator, store, logger)

	return &Dependencies{
		Pipeline:   pipe,
		Classifier: docClassifier,
		Validator:  docValidator,
		History:    store,
		Logger:     logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil || value <= 0 {
		value = defaultValue
	}

	return value
}
