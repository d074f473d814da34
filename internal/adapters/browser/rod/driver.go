// Package rod drives the LeetCode web UI through Chrome.
package rod

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/leetcoder-bot/leetcoder/internal/domain"
	"github.com/leetcoder-bot/leetcoder/internal/ports"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://leetcode.com"
	DefaultTimeout = 30 * time.Second

	loginPollInterval = 2 * time.Second
)

const setMonacoValueJS = `(code) => {
	const monaco = window.monaco;
	if (!monaco || !monaco.editor) return false;
	const models = monaco.editor.getModels();
	if (models.length === 0) return false;
	models[0].setValue(code);
	return true;
}`

type Config struct {
	// Bin is the Chrome executable. Empty means rod's own lookup.
	Bin         string
	Headless    bool
	UserDataDir string
	BaseURL     string
	Timeout     time.Duration
	Selectors   *Selectors
	Logger      *zap.Logger
}

// Driver keeps one browser tab and navigates it to each problem the first
// time any method is called for it.
type Driver struct {
	cfg       Config
	selectors Selectors
	logger    *zap.Logger

	mu       sync.Mutex
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
	current  domain.ProblemID
}

var _ ports.BrowserDriver = (*Driver)(nil)

func New(cfg Config) *Driver {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	selectors := DefaultSelectors()
	if cfg.Selectors != nil {
		selectors = *cfg.Selectors
	}

	return &Driver{cfg: cfg, selectors: selectors, logger: cfg.Logger}
}

func (d *Driver) ProblemURL(id domain.ProblemID) string {
	return fmt.Sprintf("%s/problems/%s/", d.cfg.BaseURL, id)
}

func (d *Driver) IsAlreadySolved(ctx context.Context, id domain.ProblemID) (bool, error) {
	return d.has(ctx, id, "solved marker", d.selectors.Solved)
}

func (d *Driver) IsPremiumLocked(ctx context.Context, id domain.ProblemID) (bool, error) {
	return d.has(ctx, id, "premium marker", d.selectors.Premium)
}

// InjectCode replaces the editor contents with source. The Monaco model is
// set directly when the page exposes it; otherwise the code is typed into
// the focused editor.
func (d *Driver) InjectCode(ctx context.Context, id domain.ProblemID, source string, lang domain.Language) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	page, err := d.openLocked(ctx, id)
	if err != nil {
		return err
	}

	if err := d.selectLanguage(page, lang); err != nil {
		d.logger.Warn("language selection failed", zap.String("problem", string(id)), zap.String("language", string(lang)), zap.Error(err))
	}

	res, err := page.Eval(setMonacoValueJS, source)
	if err != nil {
		return mapError("set editor value", err)
	}
	if res.Value.Bool() {
		return nil
	}

	editor, err := find(page, d.selectors.Editor)
	if err != nil {
		return mapError("find editor", err)
	}
	if editor == nil {
		return fmt.Errorf("find editor on %s: %w", id, domain.ErrElementNotFound)
	}
	if err := editor.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return mapError("focus editor", err)
	}
	if err := page.KeyActions().Press(input.ControlLeft).Type(input.KeyA).Do(); err != nil {
		return mapError("select editor text", err)
	}
	if err := page.InsertText(source); err != nil {
		return mapError("type code", err)
	}

	return nil
}

func (d *Driver) Submit(ctx context.Context, id domain.ProblemID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	page, err := d.openLocked(ctx, id)
	if err != nil {
		return err
	}

	button, err := find(page, d.selectors.Submit)
	if err != nil {
		return mapError("find submit button", err)
	}
	if button == nil {
		return fmt.Errorf("find submit button on %s: %w", id, domain.ErrElementNotFound)
	}
	if err := button.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return mapError("click submit", err)
	}

	return nil
}

// ReadVerdict returns the visible submission result, or "" when none is
// shown yet.
func (d *Driver) ReadVerdict(ctx context.Context, id domain.ProblemID) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	page, err := d.openLocked(ctx, id)
	if err != nil {
		return "", err
	}

	el, err := find(page, d.selectors.Verdict)
	if err != nil {
		return "", mapError("find verdict", err)
	}
	if el == nil {
		return "", nil
	}

	verdict, err := el.Text()
	if err != nil {
		return "", mapError("read verdict", err)
	}

	return strings.TrimSpace(verdict), nil
}

// Login opens the sign-in page and blocks until the profile is signed in or
// ctx ends.
func (d *Driver) Login(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	page, err := d.pageLocked(ctx)
	if err != nil {
		return err
	}

	d.current = ""
	if err := navigate(ctx, page, d.cfg.BaseURL+"/accounts/login/", d.cfg.Timeout); err != nil {
		return err
	}

	ticker := time.NewTicker(loginPollInterval)
	defer ticker.Stop()
	for {
		el, err := find(page.Context(ctx), d.selectors.SignedIn)
		if err != nil && ctx.Err() == nil {
			d.logger.Debug("sign-in check failed", zap.Error(err))
		}
		if el != nil {
			d.logger.Info("signed in to leetcode")
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var errs []error
	if d.browser != nil {
		if err := d.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close browser: %w", err))
		}
	}
	if d.launcher != nil {
		d.launcher.Kill()
	}
	d.browser, d.page, d.launcher, d.current = nil, nil, nil, ""

	return errors.Join(errs...)
}

func (d *Driver) has(ctx context.Context, id domain.ProblemID, what string, selectors []selector) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	page, err := d.openLocked(ctx, id)
	if err != nil {
		return false, err
	}

	el, err := find(page, selectors)
	if err != nil {
		return false, mapError("find "+what, err)
	}

	return el != nil, nil
}

func (d *Driver) selectLanguage(page *rod.Page, lang domain.Language) error {
	button, err := find(page, d.selectors.Language)
	if err != nil || button == nil {
		return fmt.Errorf("language picker: %w", errors.Join(err, domain.ErrElementNotFound))
	}

	current, err := button.Text()
	if err == nil && strings.EqualFold(strings.TrimSpace(current), lang.DisplayName()) {
		return nil
	}

	if err := button.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return err
	}

	option, err := find(page, []selector{languageOption(lang.DisplayName())})
	if err != nil {
		return err
	}
	if option == nil {
		return fmt.Errorf("option %q: %w", lang.DisplayName(), domain.ErrElementNotFound)
	}

	return option.Click(proto.InputMouseButtonLeft, 1)
}

// openLocked returns the tab bound to ctx, navigating it when id differs
// from the problem currently loaded.
func (d *Driver) openLocked(ctx context.Context, id domain.ProblemID) (*rod.Page, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	page, err := d.pageLocked(ctx)
	if err != nil {
		return nil, err
	}

	if d.current != id {
		d.current = ""
		if err := navigate(ctx, page, d.ProblemURL(id), d.cfg.Timeout); err != nil {
			return nil, err
		}
		d.current = id
	}

	return page.Context(ctx), nil
}

func (d *Driver) pageLocked(ctx context.Context) (*rod.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d.page != nil {
		return d.page, nil
	}

	if d.browser == nil {
		l := launcher.New().Headless(d.cfg.Headless)
		if d.cfg.Bin != "" {
			l = l.Bin(d.cfg.Bin)
		}
		if d.cfg.UserDataDir != "" {
			l = l.UserDataDir(d.cfg.UserDataDir)
		}

		controlURL, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("launch chrome: %w", err)
		}

		browser := rod.New().ControlURL(controlURL)
		if err := browser.Connect(); err != nil {
			l.Kill()
			return nil, fmt.Errorf("connect to chrome: %w", err)
		}

		d.launcher = l
		d.browser = browser
		d.logger.Debug("chrome started", zap.String("control_url", controlURL), zap.Bool("headless", d.cfg.Headless))
	}

	page, err := d.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("open tab: %w", err)
	}
	d.page = page

	return page, nil
}

func navigate(ctx context.Context, page *rod.Page, url string, timeout time.Duration) error {
	p := page.Context(ctx).Timeout(timeout)
	defer p.CancelTimeout()

	if err := p.Navigate(url); err != nil {
		return navigationError(url, err)
	}
	if err := p.WaitLoad(); err != nil {
		return navigationError(url, err)
	}

	return nil
}

func navigationError(url string, err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("load %s: %w: %w", url, domain.ErrTimeout, err)
	default:
		return fmt.Errorf("load %s: %w: %w", url, domain.ErrNavigation, err)
	}
}

// mapError wraps rod failures in the domain's browser error categories.
func mapError(op string, err error) error {
	var notFound *rod.ElementNotFoundError
	switch {
	case errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrTimeout, err)
	case errors.As(err, &notFound), errors.Is(err, domain.ErrElementNotFound):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrElementNotFound, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
