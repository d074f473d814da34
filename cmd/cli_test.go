package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/leetcoder-bot/leetcoder/internal/application"
	"github.com/leetcoder-bot/leetcoder/internal/config"
	"github.com/leetcoder-bot/leetcoder/internal/domain"
	"github.com/leetcoder-bot/leetcoder/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestVersionPrintsBuildVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, newHome(t), "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)

	stdout, _, err = executeCLI(t, newHome(t), "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "lcs "+version.Version+" "))
	assert.Contains(t, stdout, runtime.GOOS+"/"+runtime.GOARCH)
}

func TestProblemsAddThenList(t *testing.T) {
	home := newHome(t)

	stdout, _, err := executeCLI(t, home, "problems", "add", "two-sum", "Add Two Numbers")
	require.NoError(t, err)
	assert.Contains(t, stdout, "added two-sum")
	assert.Contains(t, stdout, "added add-two-numbers")
	assert.FileExists(t, filepath.Join(home, ".leetcoder", "problems", "two-sum.toml"))

	stdout, _, err = executeCLI(t, home, "problems", "add", "two-sum")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 already present")

	stdout, _, err = executeCLI(t, home, "problems", "list")
	require.NoError(t, err)
	assert.Equal(t, "add-two-numbers\ntwo-sum\n", stdout)
}

func TestProblemsListEmptyCatalog(t *testing.T) {
	stdout, _, err := executeCLI(t, newHome(t), "problems", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "no problems yet")
}

func TestProblemsAddRequiresArgument(t *testing.T) {
	_, _, err := executeCLI(t, newHome(t), "problems", "add")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}

func TestSolvedMarkThenList(t *testing.T) {
	home := newHome(t)

	_, _, err := executeCLI(t, home, "solved", "mark", "two-sum", "valid-parentheses", "two-sum")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "solved", "list")
	require.NoError(t, err)
	assert.Equal(t, "two-sum\nvalid-parentheses\nsolved: 2\n", stdout)
}

func TestAuthSetKeyRequiresValueFlag(t *testing.T) {
	_, _, err := executeCLI(t, newHome(t), "auth", "set-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"value\" not set")
}

func TestAuthSetKeyIsUsedByGenerator(t *testing.T) {
	home := newHome(t)

	stdout, _, err := executeCLI(t, home, "auth", "set-key", "--value", "  key-123  ")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Gemini API key saved")

	gen := &fakeGenerator{names: map[int]domain.ProblemID{1: "two-sum"}}
	stdout, _, err = executeCLIWith(t, home, withFakes(gen, &fakeBrowser{}), "problem", "name", "1")
	require.NoError(t, err)
	assert.Equal(t, "two-sum\n", stdout)
	assert.Equal(t, "key-123", gen.apiKey)
}

func TestEnvironmentKeyTakesPrecedence(t *testing.T) {
	home := newHome(t)
	_, _, err := executeCLI(t, home, "auth", "set-key", "--value", "stored-key")
	require.NoError(t, err)

	gen := &fakeGenerator{}
	stdout, _, err := executeCLIWith(t, home, func(a *app) {
		t.Setenv("GEMINI_API_KEY", "env-key")
		withFakes(gen, &fakeBrowser{})(a)
	}, "auth", "check")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Gemini API key is valid")
	assert.Equal(t, "env-key", gen.apiKey)
	assert.Equal(t, 1, gen.pings)
}

func TestAuthCheckReportsInvalidKey(t *testing.T) {
	home := newHome(t)
	t.Setenv("GEMINI_API_KEY", "bad-key")

	gen := &fakeGenerator{pingErr: domain.ErrInvalidCredentials}
	_, stderr, err := executeCLIWith(t, home, withFakes(gen, &fakeBrowser{}), "auth", "check")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Contains(t, stderr, "lcs auth set-key")
}

func TestAuthRemoveDeletesStoredKey(t *testing.T) {
	home := newHome(t)
	_, _, err := executeCLI(t, home, "auth", "set-key", "--value", "stored-key")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "auth", "remove")
	require.NoError(t, err)

	_, _, err = executeCLIWith(t, home, withFakes(&fakeGenerator{}, &fakeBrowser{}), "auth", "check")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestProblemNameRejectsOutOfRangeNumber(t *testing.T) {
	for _, arg := range []string{"abc", "0", "3001"} {
		t.Run(arg, func(t *testing.T) {
			_, _, err := executeCLI(t, newHome(t), "problem", "name", arg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "problem number must be between 1 and 3000")
		})
	}
}

func TestSolveRequiresAPIKey(t *testing.T) {
	home := newHome(t)
	_, _, err := executeCLIWith(t, home, withFakes(&fakeGenerator{}, &fakeBrowser{}), "solve", "--plain")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
	assert.Contains(t, err.Error(), "resolve gemini api key")
}

func TestSolveRejectsInvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "count too low", args: []string{"--count", "0"}, want: "target count 0 out of range"},
		{name: "count too high", args: []string{"--count", "101"}, want: "target count 101 out of range"},
		{name: "language", args: []string{"--language", "cobol"}, want: "unsupported language"},
		{name: "daily", args: []string{"--daily", "4000"}, want: "daily challenge 4000 out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"solve", "--plain"}, tt.args...)
			_, _, err := executeCLI(t, newHome(t), args...)
			require.ErrorIs(t, err, domain.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSolveRunsSessionAndPrintsSummary(t *testing.T) {
	home := newHome(t)
	t.Setenv("GEMINI_API_KEY", "key-123")
	_, _, err := executeCLI(t, home, "problems", "add", "two-sum", "valid-parentheses")
	require.NoError(t, err)

	gen := &fakeGenerator{}
	browser := &fakeBrowser{verdicts: map[domain.ProblemID]string{"two-sum": "Accepted", "valid-parentheses": "Accepted"}}
	stdout, stderr, err := executeCLIWith(t, home, withFakes(gen, browser), "solve", "--plain", "--count", "2", "--language", "python", "--seed", "7")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Session completed")
	assert.Contains(t, stdout, "2/2 solved")
	assert.Contains(t, stdout, "detailed log:")
	assert.Contains(t, stderr, "[100%]")
	assert.True(t, browser.closed)
	assert.ElementsMatch(t, []domain.ProblemID{"two-sum", "valid-parentheses"}, browser.submitted)
	assert.Equal(t, domain.LanguagePython, gen.lastLang)

	stdout, _, err = executeCLI(t, home, "solved", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "solved: 2")
	assert.FileExists(t, filepath.Join(home, ".leetcoder", "solutions", "two-sum.toml"))

	logs, err := filepath.Glob(filepath.Join(home, ".leetcoder", "logs", "*.log"))
	require.NoError(t, err)
	require.Len(t, logs, 1)
	raw, err := os.ReadFile(logs[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"tag":"ACCEPTED"`)
}

func TestSolveJSONOutput(t *testing.T) {
	home := newHome(t)
	t.Setenv("GEMINI_API_KEY", "key-123")
	_, _, err := executeCLI(t, home, "problems", "add", "two-sum")
	require.NoError(t, err)

	browser := &fakeBrowser{verdicts: map[domain.ProblemID]string{"two-sum": "Wrong Answer"}}
	stdout, _, err := executeCLIWith(t, home, withFakes(&fakeGenerator{}, browser), "solve", "--json", "--count", "1")
	require.NoError(t, err)

	var result domain.SessionResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, 1, result.Counts.Failed)
	assert.Empty(t, result.Solved)
	require.Len(t, result.Records, 1)
	assert.Equal(t, domain.OutcomeRejected, result.Records[0].Outcome)
}

func TestSolveSkipsSolvedAndPremium(t *testing.T) {
	home := newHome(t)
	t.Setenv("GEMINI_API_KEY", "key-123")
	_, _, err := executeCLI(t, home, "problems", "add", "a-problem", "b-problem")
	require.NoError(t, err)

	browser := &fakeBrowser{
		solved:  map[domain.ProblemID]bool{"a-problem": true},
		premium: map[domain.ProblemID]bool{"b-problem": true},
	}
	stdout, _, err := executeCLIWith(t, home, withFakes(&fakeGenerator{}, browser), "solve", "--json", "--count", "2", "--skip-solved", "--skip-premium")
	require.NoError(t, err)

	var result domain.SessionResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, domain.SessionCounts{Skipped: 1, Premium: 1}, result.Counts)
	assert.Empty(t, browser.submitted)
}

func TestBrowserLoginUsesVisibleBrowser(t *testing.T) {
	home := newHome(t)
	t.Setenv("LEETCODER_HEADLESS", "true")

	browser := &fakeBrowser{}
	var headless *bool
	stdout, _, err := executeCLIWith(t, home, func(a *app) {
		a.newBrowser = func(settings config.Settings, _ *zap.Logger) browserSession {
			headless = &settings.Headless
			return browser
		}
	}, "browser", "login")
	require.NoError(t, err)
	require.NotNil(t, headless)
	assert.False(t, *headless)
	assert.True(t, browser.loggedIn)
	assert.True(t, browser.closed)
	assert.Contains(t, stdout, "Signed in")
	assert.Contains(t, stdout, filepath.Join(home, ".leetcoder", "chrome-profile"))
}

func TestInvalidConfigFailsEveryCommand(t *testing.T) {
	home := newHome(t)
	t.Setenv("PROGRAMMING_LANGUAGE", "cobol")

	_, _, err := executeCLI(t, home, "problems", "list")
	require.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestConfigFileChangesDataPaths(t *testing.T) {
	home := newHome(t)
	problems := filepath.Join(home, "elsewhere")
	dataDir := filepath.Join(home, ".leetcoder")
	require.NoError(t, os.MkdirAll(dataDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "config.toml"), []byte("[problems]\ndir = \""+filepath.ToSlash(problems)+"\"\n"), 0o600))

	_, _, err := executeCLI(t, home, "problems", "add", "two-sum")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(problems, "two-sum.toml"))
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWith(t, home, nil, args...)
}

func executeCLIWith(t *testing.T, home string, configure func(*app), args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	app, err := wireApp()
	if err == nil {
		app.orchestrator = application.NewOrchestrator(application.WithSleeper(noSleep{}))
		if configure != nil {
			configure(app)
		}
	}

	root := buildRootCmd(app, err)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err = root.Execute()
	return stdout.String(), stderr.String(), err
}

// newHome returns a temp HOME with every variable the config reads cleared
// and pass(1) hidden so secrets land in the file backend.
func newHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PATH", t.TempDir())
	for _, name := range []string{
		"LEETCODER_HOME", "GEMINI_API_KEY", "GEMINI_MODEL", "PROGRAMMING_LANGUAGE", "SKIP_SOLVED",
		"SKIP_PREMIUM", "VERBOSE_LOGGING", "GOOGLE_CHROME_EXECUTABLE_PATH", "LEETCODER_HEADLESS",
		"LEETCODER_BASE_URL", "LEETCODER_REQUESTS_PER_MINUTE",
	} {
		t.Setenv(name, "")
	}

	return home
}

// withFakes replaces the generator and browser factories.
func withFakes(gen *fakeGenerator, browser *fakeBrowser) func(*app) {
	return func(a *app) {
		a.newGenerator = func(_ context.Context, _ config.Settings, apiKey string, _ *zap.Logger) (codeGenerator, error) {
			gen.apiKey = apiKey
			return gen, nil
		}
		a.newBrowser = func(config.Settings, *zap.Logger) browserSession {
			return browser
		}
	}
}

type noSleep struct{}

func (noSleep) Sleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

type fakeGenerator struct {
	apiKey   string
	names    map[int]domain.ProblemID
	pingErr  error
	pings    int
	lastLang domain.Language
}

func (g *fakeGenerator) Initialize(context.Context) error { return nil }

func (g *fakeGenerator) Ping(context.Context) error {
	g.pings++
	return g.pingErr
}

func (g *fakeGenerator) Generate(_ context.Context, id domain.ProblemID, lang domain.Language) (string, error) {
	g.lastLang = lang
	return "class Solution:\n    pass  # " + string(id), nil
}

func (g *fakeGenerator) ResolveNameFromNumber(_ context.Context, number int) (domain.ProblemID, error) {
	if id, ok := g.names[number]; ok {
		return id, nil
	}
	return "", domain.ErrProblemNotFound
}

type fakeBrowser struct {
	mu        sync.Mutex
	solved    map[domain.ProblemID]bool
	premium   map[domain.ProblemID]bool
	verdicts  map[domain.ProblemID]string
	submitted []domain.ProblemID
	loggedIn  bool
	closed    bool
}

func (b *fakeBrowser) IsAlreadySolved(_ context.Context, id domain.ProblemID) (bool, error) {
	return b.solved[id], nil
}

func (b *fakeBrowser) IsPremiumLocked(_ context.Context, id domain.ProblemID) (bool, error) {
	return b.premium[id], nil
}

func (b *fakeBrowser) InjectCode(context.Context, domain.ProblemID, string, domain.Language) error {
	return nil
}

func (b *fakeBrowser) Submit(_ context.Context, id domain.ProblemID) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.submitted = append(b.submitted, id)
	return nil
}

func (b *fakeBrowser) ReadVerdict(_ context.Context, id domain.ProblemID) (string, error) {
	return b.verdicts[id], nil
}

func (b *fakeBrowser) Login(context.Context) error {
	b.loggedIn = true
	return nil
}

func (b *fakeBrowser) Close() error {
	b.closed = true
	return nil
}
