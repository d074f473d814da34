//go:build integration

package rod

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/leetcoder-bot/leetcoder/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const problemPage = `<!doctype html>
<html><body>
%s
<div data-e2e-locator="lang-select"><button>Java</button></div>
<textarea data-gramm="false" id="editor"></textarea>
<div data-e2e-locator="console-footer">
  <button data-e2e-locator="console-submit-button" onclick="showResult()">Submit</button>
</div>
<div id="result"></div>
<script>
%s
function showResult() {
  const code = window.__code !== undefined ? window.__code : document.getElementById('editor').value;
  const verdict = code.includes('class Solution') ? 'Accepted' : 'Wrong Answer';
  document.getElementById('result').innerHTML = '<span data-e2e-locator="submission-result">' + verdict + '</span>';
}
</script>
</body></html>`

const monacoStub = `window.monaco = { editor: { getModels: () => [{ setValue: (c) => { window.__code = c; } }] } };`

func newProblemServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/problems/", func(w http.ResponseWriter, r *http.Request) {
		slug := strings.Trim(strings.TrimPrefix(r.URL.Path, "/problems/"), "/")
		marker, script := "", ""
		switch slug {
		case "solved-one":
			marker = `<div data-e2e-locator="solved-status">Solved</div>`
		case "locked-one":
			marker = `<p>Subscribe to unlock this question</p>`
		case "monaco-one":
			script = monacoStub
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = fmt.Fprintf(w, problemPage, marker, script)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newIntegrationDriver(t *testing.T) *Driver {
	t.Helper()

	server := newProblemServer(t)
	d := New(Config{BaseURL: server.URL, Headless: true, Timeout: 20 * time.Second})
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestDriverDetectsMarkers(t *testing.T) {
	d := newIntegrationDriver(t)
	ctx := context.Background()

	solved, err := d.IsAlreadySolved(ctx, "solved-one")
	require.NoError(t, err)
	assert.True(t, solved)

	premium, err := d.IsPremiumLocked(ctx, "solved-one")
	require.NoError(t, err)
	assert.False(t, premium)

	premium, err = d.IsPremiumLocked(ctx, "locked-one")
	require.NoError(t, err)
	assert.True(t, premium)
}

func TestDriverTypesIntoEditorAndReadsVerdict(t *testing.T) {
	d := newIntegrationDriver(t)
	ctx := context.Background()

	verdict, err := d.ReadVerdict(ctx, "plain-one")
	require.NoError(t, err)
	assert.Empty(t, verdict)

	code := domain.FallbackSolution("plain-one", domain.LanguageJava)
	require.NoError(t, d.InjectCode(ctx, "plain-one", code, domain.LanguageJava))
	require.NoError(t, d.Submit(ctx, "plain-one"))

	verdict, err = d.ReadVerdict(ctx, "plain-one")
	require.NoError(t, err)
	assert.Equal(t, "Accepted", verdict)
}

func TestDriverSetsMonacoModel(t *testing.T) {
	d := newIntegrationDriver(t)
	ctx := context.Background()

	require.NoError(t, d.InjectCode(ctx, "monaco-one", "print(1)", domain.LanguagePython))
	require.NoError(t, d.Submit(ctx, "monaco-one"))

	verdict, err := d.ReadVerdict(ctx, "monaco-one")
	require.NoError(t, err)
	assert.Equal(t, "Wrong Answer", verdict)
}
