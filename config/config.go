package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration, populated from the environment.
type Config struct {
	Addr           string        `envconfig:"ADDR" default:":8000"`
	OpenAIAPIKey   string        `envconfig:"OPENAI_API_KEY" required:"true"`
	ChatModel      string        `envconfig:"CHAT_MODEL" default:"gpt-3.5-turbo"`
	SpeechModel    string        `envconfig:"SPEECH_MODEL" default:"gpt-4o-mini-tts"`
	DataFile       string        `envconfig:"DATA_FILE" default:"products_data.json"`
	FrontendDir    string        `envconfig:"FRONTEND_DIR" default:"frontend"`
	WeatherBaseURL string        `envconfig:"WEATHER_BASE_URL"`
	WeatherTimeout time.Duration `envconfig:"WEATHER_TIMEOUT" default:"10s"`
	LogDebug       bool          `envconfig:"LOG_DEBUG" default:"false"`
	LogPretty      bool          `envconfig:"LOG_PRETTY" default:"false"`
}

// Load reads the configuration from the environment. It fails when a required
// variable (the provider API key) is absent.
func Load() (*Config, error) {
	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}
