package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/rs/zerolog/log"

	"portal/buddy"
	"portal/config"
	"portal/handlers"
	"portal/logger"
	"portal/routes"
	"portal/store"
	"portal/weather"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using environment variables")
	}

	// Load configuration; fails fast when OPENAI_API_KEY is absent.
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	logger.Init(logger.Config{Debug: cfg.LogDebug, Pretty: cfg.LogPretty})

	// Open the catalog and seed the example products on first run.
	catalog := store.Open(cfg.DataFile)
	catalog.Seed(store.DefaultProducts)

	// One client serves both chat completions and speech synthesis.
	client := openai.NewClient(option.WithAPIKey(cfg.OpenAIAPIKey))
	weatherClient := weather.New(cfg.WeatherBaseURL, cfg.WeatherTimeout)
	assistant := buddy.NewAssistant(buddy.NewCompletionClient(&client), weatherClient.Temperature, cfg.ChatModel)
	synthesizer := buddy.NewSynthesizer(&client, cfg.SpeechModel)

	app := fiber.New()

	// Add middleware
	app.Use(cors.New())
	app.Use(recover.New())
	app.Use(fiberlogger.New())

	// Setup routes
	routes.SetupRoutes(app,
		handlers.NewProductHandler(catalog),
		handlers.NewBuddyHandler(assistant, synthesizer),
		handlers.NewPageHandler(cfg.FrontendDir),
	)

	// Start server
	log.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
