// Package config resolves settings from defaults, the data directory's
// config.toml, a .env file, the environment and command flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	tomlrepo "github.com/leetcoder-bot/leetcoder/internal/adapters/repo/toml"
	"github.com/leetcoder-bot/leetcoder/internal/domain"
	"github.com/spf13/viper"
)

const (
	GeminiModelKey       = "gemini.model"
	RequestsPerMinuteKey = "gemini.requests_per_minute"
	CacheSizeKey         = "gemini.cache_size"
	LanguageKey          = "session.language"
	SkipSolvedKey        = "session.skip_solved"
	SkipPremiumKey       = "session.skip_premium"
	MaxAttemptsKey       = "session.max_attempts"
	StrictVerdictsKey    = "session.strict_verdicts"
	ChromePathKey        = "browser.chrome_path"
	HeadlessKey          = "browser.headless"
	ProfileDirKey        = "browser.profile_dir"
	BaseURLKey           = "browser.base_url"
	VerboseKey           = "log.verbose"

	defaultDataDir = ".leetcoder"
)

// envBindings keeps the variable names the tool has always honoured.
var envBindings = map[string]string{
	tomlrepo.DataDirKey:  "LEETCODER_HOME",
	GeminiModelKey:       "GEMINI_MODEL",
	LanguageKey:          "PROGRAMMING_LANGUAGE",
	SkipSolvedKey:        "SKIP_SOLVED",
	SkipPremiumKey:       "SKIP_PREMIUM",
	VerboseKey:           "VERBOSE_LOGGING",
	ChromePathKey:        "GOOGLE_CHROME_EXECUTABLE_PATH",
	HeadlessKey:          "LEETCODER_HEADLESS",
	BaseURLKey:           "LEETCODER_BASE_URL",
	RequestsPerMinuteKey: "LEETCODER_REQUESTS_PER_MINUTE",
}

type Settings struct {
	DataDir           string
	ProblemsDir       string
	SolvedPath        string
	SolutionsDir      string
	SecretsDir        string
	GeminiModel       string
	RequestsPerMinute int
	CacheSize         int
	Language          domain.Language
	SkipSolved        bool
	SkipPremium       bool
	MaxAttempts       int
	StrictVerdicts    bool
	ChromePath        string
	Headless          bool
	ProfileDir        string
	BaseURL           string
	Verbose           bool
}

// Load returns a viper instance with every source except flags applied.
// envFile may be empty; a missing file is not an error.
func Load(envFile string) (*viper.Viper, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	v := viper.New()
	setDefaults(v, filepath.Join(homeDir, defaultDataDir))
	for key, name := range envBindings {
		if err := v.BindEnv(key, name); err != nil {
			return nil, fmt.Errorf("bind %s: %w", name, err)
		}
	}

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(v.GetString(tomlrepo.DataDirKey))
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return v, nil
}

func setDefaults(v *viper.Viper, dataDir string) {
	v.SetDefault(tomlrepo.DataDirKey, dataDir)
	v.SetDefault(GeminiModelKey, "gemini-1.5-flash")
	v.SetDefault(RequestsPerMinuteKey, 15)
	v.SetDefault(CacheSizeKey, 100)
	v.SetDefault(LanguageKey, string(domain.LanguageJava))
	v.SetDefault(SkipSolvedKey, true)
	v.SetDefault(SkipPremiumKey, true)
	v.SetDefault(MaxAttemptsKey, domain.DefaultMaxAttempts)
	v.SetDefault(StrictVerdictsKey, false)
	v.SetDefault(HeadlessKey, false)
	v.SetDefault(BaseURLKey, "https://leetcode.com")
	v.SetDefault(VerboseKey, false)
}

// FromViper resolves Settings and validates them. Paths left unset derive
// from the data directory.
func FromViper(v *viper.Viper) (Settings, error) {
	dataDir := v.GetString(tomlrepo.DataDirKey)
	s := Settings{
		DataDir:           dataDir,
		ProblemsDir:       stringOr(v, tomlrepo.ProblemsDirKey, filepath.Join(dataDir, "problems")),
		SolvedPath:        stringOr(v, tomlrepo.SolvedPathKey, filepath.Join(dataDir, "solved.toml")),
		SolutionsDir:      stringOr(v, tomlrepo.SolutionsDirKey, filepath.Join(dataDir, "solutions")),
		SecretsDir:        filepath.Join(dataDir, "secrets"),
		GeminiModel:       strings.TrimSpace(v.GetString(GeminiModelKey)),
		RequestsPerMinute: v.GetInt(RequestsPerMinuteKey),
		CacheSize:         v.GetInt(CacheSizeKey),
		SkipSolved:        v.GetBool(SkipSolvedKey),
		SkipPremium:       v.GetBool(SkipPremiumKey),
		MaxAttempts:       v.GetInt(MaxAttemptsKey),
		StrictVerdicts:    v.GetBool(StrictVerdictsKey),
		ChromePath:        v.GetString(ChromePathKey),
		Headless:          v.GetBool(HeadlessKey),
		ProfileDir:        stringOr(v, ProfileDirKey, filepath.Join(dataDir, "chrome-profile")),
		BaseURL:           strings.TrimRight(v.GetString(BaseURLKey), "/"),
		Verbose:           v.GetBool(VerboseKey),
	}

	lang, err := domain.ParseLanguage(v.GetString(LanguageKey))
	if err != nil {
		return Settings{}, err
	}
	s.Language = lang

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

func (s Settings) Validate() error {
	var errs []error
	if !s.Language.IsSupported() {
		errs = append(errs, fmt.Errorf("language %q is not supported", s.Language))
	}
	if s.RequestsPerMinute <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", RequestsPerMinuteKey, s.RequestsPerMinute))
	}
	if s.CacheSize <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", CacheSizeKey, s.CacheSize))
	}
	if s.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1, got %d", MaxAttemptsKey, s.MaxAttempts))
	}
	if s.BaseURL == "" {
		errs = append(errs, fmt.Errorf("%s is empty", BaseURLKey))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

func stringOr(v *viper.Viper, key, fallback string) string {
	if value := strings.TrimSpace(v.GetString(key)); value != "" {
		return value
	}

	return fallback
}
