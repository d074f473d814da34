// Package gemini implements ports.CodeGenerator on top of the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/leetcoder-bot/leetcoder/internal/domain"
	"github.com/leetcoder-bot/leetcoder/internal/ports"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const (
	DefaultModel             = "gemini-1.5-flash"
	DefaultRequestsPerMinute = 15
	DefaultCacheSize         = 100

	healthPrompt = "What is 2+2?"
)

var fallbackModels = []string{"gemini-1.5-flash", "gemini-1.5-pro", "gemini-2.0-flash-exp"}

type Config struct {
	APIKey            string
	Model             string
	RequestsPerMinute int
	CacheSize         int
	Logger            *zap.Logger
}

// textModel is the slice of the Gemini API the generator needs.
type textModel interface {
	generateText(ctx context.Context, model, prompt string) (string, error)
}

type genaiModel struct {
	client *genai.Client
}

func (m genaiModel) generateText(ctx context.Context, model, prompt string) (string, error) {
	resp, err := m.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}

// Client generates solutions with a rotating list of models. Requests are
// throttled per minute and successful generations are cached by problem and
// language.
type Client struct {
	backend textModel
	models  []string
	limiter *rate.Limiter
	cache   *lru.Cache[string, string]
	logger  *zap.Logger

	mu      sync.Mutex
	current int
}

var _ ports.CodeGenerator = (*Client)(nil)

func New(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("gemini api key is required: %w", domain.ErrInvalidCredentials)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return newClient(genaiModel{client: client}, cfg)
}

func newClient(backend textModel, cfg Config) (*Client, error) {
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = DefaultRequestsPerMinute
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	cache, err := lru.New[string, string](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("create generation cache: %w", err)
	}

	return &Client{
		backend: backend,
		models:  modelList(cfg.Model),
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), cfg.RequestsPerMinute),
		cache:   cache,
		logger:  cfg.Logger,
	}, nil
}

func modelList(configured string) []string {
	models := make([]string, 0, len(fallbackModels)+1)
	seen := map[string]struct{}{}
	for _, name := range append([]string{strings.TrimSpace(configured)}, fallbackModels...) {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		models = append(models, name)
	}

	return models
}

func (c *Client) Models() []string {
	out := make([]string, len(c.models))
	copy(out, c.models)
	return out
}

// Initialize checks the key with a trivial prompt.
func (c *Client) Initialize(ctx context.Context) error {
	if err := c.Ping(ctx); err != nil {
		return err
	}

	c.logger.Info("gemini generator ready", zap.String("model", c.activeModel()))
	return nil
}

func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.request(ctx, healthPrompt); err != nil {
		return fmt.Errorf("check gemini: %w", err)
	}

	return nil
}

func (c *Client) Generate(ctx context.Context, id domain.ProblemID, lang domain.Language) (string, error) {
	key := string(id) + ":" + string(lang)
	if code, ok := c.cache.Peek(key); ok {
		c.logger.Debug("generation cache hit", zap.String("problem", string(id)), zap.String("language", string(lang)))
		return code, nil
	}

	text, err := c.request(ctx, solutionPrompt(id, lang))
	if err != nil {
		return "", err
	}

	code, err := cleanCode(text, lang)
	if err != nil {
		return "", err
	}

	c.cache.Add(key, code)
	return code, nil
}

// ResolveNameFromNumber asks the model for the slug of question number and
// falls back to a built-in table of well known problems.
func (c *Client) ResolveNameFromNumber(ctx context.Context, number int) (domain.ProblemID, error) {
	if number <= 0 {
		return "", fmt.Errorf("problem #%d: %w", number, domain.ErrProblemNotFound)
	}

	key := fmt.Sprintf("name:%d", number)
	if name, ok := c.cache.Peek(key); ok {
		return domain.ProblemID(name), nil
	}

	text, err := c.request(ctx, namePrompt(number))
	if err != nil && ctx.Err() != nil {
		return "", ctx.Err()
	}
	if err == nil {
		if id, ok := parseSlug(text); ok {
			c.cache.Add(key, string(id))
			return id, nil
		}
		c.logger.Debug("unusable problem name from model", zap.Int("number", number), zap.String("answer", text))
	} else {
		c.logger.Debug("problem name lookup failed", zap.Int("number", number), zap.Error(err))
	}

	if id, ok := knownProblems[number]; ok {
		return id, nil
	}

	return "", fmt.Errorf("problem #%d: %w", number, domain.ErrProblemNotFound)
}

// request sends prompt to each model in turn, starting with the last one that
// worked. Invalid credentials stop the rotation immediately.
func (c *Client) request(ctx context.Context, prompt string) (string, error) {
	start := c.currentIndex()
	allRateLimited := true
	var lastErr error

	for offset := range c.models {
		index := (start + offset) % len(c.models)
		name := c.models[index]

		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}

		text, err := c.backend.generateText(ctx, name, prompt)
		if err == nil {
			c.setCurrent(index)
			return text, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}

		err = classifyError(err)
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return "", err
		}
		if !errors.Is(err, domain.ErrRateLimited) {
			allRateLimited = false
		}

		c.logger.Warn("gemini request failed", zap.String("model", name), zap.Error(err))
		lastErr = fmt.Errorf("%s: %w", name, err)
	}

	if allRateLimited {
		return "", fmt.Errorf("all %d models rate limited: %w", len(c.models), domain.ErrRateLimited)
	}

	return "", lastErr
}

func (c *Client) currentIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.current
}

func (c *Client) setCurrent(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index != c.current {
		c.logger.Info("switched gemini model", zap.String("model", c.models[index]))
	}
	c.current = index
}

func (c *Client) activeModel() string {
	return c.models[c.currentIndex()]
}

var statusCodePattern = regexp.MustCompile(`(?i)\b(?:error|status|code|http)[ :=]*(\d{3})\b`)

// classifyError maps Gemini API failures onto the domain's generation
// categories. Structured API errors are classified by their status; other
// errors fall back to their text.
func classifyError(err error) error {
	switch domain.ClassifyGenerationError(err) {
	case domain.GenerationRateLimited, domain.GenerationInvalidCredentials, domain.GenerationInvalidOutput:
		return err
	}

	var sentinel error
	if apiErr, ok := asAPIError(err); ok {
		sentinel = classifyAPIError(apiErr)
	} else {
		sentinel = classifyMessage(err.Error())
	}

	return fmt.Errorf("%w: %w", sentinel, err)
}

func asAPIError(err error) (genai.APIError, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return *apiErrPtr, true
	}

	return genai.APIError{}, false
}

func classifyAPIError(apiErr genai.APIError) error {
	switch {
	case apiErr.Code == 401, apiErr.Code == 403,
		apiErr.Status == "UNAUTHENTICATED", apiErr.Status == "PERMISSION_DENIED",
		strings.Contains(apiErr.Message, "API_KEY_INVALID"),
		strings.Contains(strings.ToLower(apiErr.Message), "api key not valid"):
		return domain.ErrInvalidCredentials
	case apiErr.Code == 429, apiErr.Status == "RESOURCE_EXHAUSTED":
		return domain.ErrRateLimited
	default:
		return domain.ErrTransient
	}
}

// classifyMessage only trusts status codes that appear next to a status
// keyword, so request ids and token counts are not mistaken for them.
func classifyMessage(message string) error {
	lower := strings.ToLower(message)
	code := ""
	if m := statusCodePattern.FindStringSubmatch(message); m != nil {
		code = m[1]
	}

	switch {
	case strings.Contains(message, "API_KEY_INVALID"),
		strings.Contains(lower, "api key not valid"),
		strings.Contains(message, "UNAUTHENTICATED"),
		strings.Contains(message, "PERMISSION_DENIED"),
		code == "401", code == "403":
		return domain.ErrInvalidCredentials
	case strings.Contains(lower, "quota"),
		strings.Contains(lower, "rate limit"),
		strings.Contains(lower, "resource_exhausted"),
		code == "429":
		return domain.ErrRateLimited
	default:
		return domain.ErrTransient
	}
}
