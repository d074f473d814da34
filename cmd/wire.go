package cmd

import (
	"context"
	"fmt"

	rodbrowser "github.com/leetcoder-bot/leetcoder/internal/adapters/browser/rod"
	"github.com/leetcoder-bot/leetcoder/internal/adapters/generator/gemini"
	tomlrepo "github.com/leetcoder-bot/leetcoder/internal/adapters/repo/toml"
	chainstore "github.com/leetcoder-bot/leetcoder/internal/adapters/secrets/chain"
	"github.com/leetcoder-bot/leetcoder/internal/application"
	"github.com/leetcoder-bot/leetcoder/internal/config"
	"github.com/leetcoder-bot/leetcoder/internal/domain"
	"github.com/leetcoder-bot/leetcoder/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envFile = ".env"

// codeGenerator is what the commands need from a generator beyond the port.
type codeGenerator interface {
	ports.CodeGenerator
	Ping(ctx context.Context) error
}

type browserSession interface {
	ports.BrowserDriver
	Login(ctx context.Context) error
	Close() error
}

type app struct {
	cfg          *viper.Viper
	settings     config.Settings
	catalog      *application.CatalogService
	secretStore  ports.SecretStore
	logger       *zap.Logger
	verbose      bool
	orchestrator *application.Orchestrator
	newGenerator func(ctx context.Context, settings config.Settings, apiKey string, logger *zap.Logger) (codeGenerator, error)
	newBrowser   func(settings config.Settings, logger *zap.Logger) browserSession
}

func wireApp() (*app, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	settings, err := config.FromViper(cfg)
	if err != nil {
		return nil, err
	}

	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire problem repository: %w", err)
	}

	secretStore, err := chainstore.NewDefault(settings.SecretsDir)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	return &app{
		cfg:          cfg,
		settings:     settings,
		catalog:      application.NewCatalogService(repo),
		secretStore:  secretStore,
		logger:       zap.NewNop(),
		orchestrator: application.NewOrchestrator(),
		newGenerator: newGeminiGenerator,
		newBrowser:   newRodBrowser,
	}, nil
}

func newGeminiGenerator(ctx context.Context, settings config.Settings, apiKey string, logger *zap.Logger) (codeGenerator, error) {
	return gemini.New(ctx, gemini.Config{
		APIKey:            apiKey,
		Model:             settings.GeminiModel,
		RequestsPerMinute: settings.RequestsPerMinute,
		CacheSize:         settings.CacheSize,
		Logger:            logger,
	})
}

func newRodBrowser(settings config.Settings, logger *zap.Logger) browserSession {
	return rodbrowser.New(rodbrowser.Config{
		Bin:         settings.ChromePath,
		Headless:    settings.Headless,
		UserDataDir: settings.ProfileDir,
		BaseURL:     settings.BaseURL,
		Logger:      logger,
	})
}

// generator resolves the API key and builds a generator from it.
func (a *app) generator(ctx context.Context) (codeGenerator, error) {
	apiKey, err := a.secretStore.Get(ctx, domain.GeminiAPIKeySecret)
	if err != nil {
		return nil, fmt.Errorf("resolve gemini api key (run `lcs auth set-key` or set GEMINI_API_KEY): %w", err)
	}

	gen, err := a.newGenerator(ctx, a.settings, apiKey, a.logger)
	if err != nil {
		return nil, fmt.Errorf("wire code generator: %w", err)
	}

	return gen, nil
}
