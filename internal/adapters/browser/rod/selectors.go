package rod

import (
	"fmt"
	"regexp"

	"github.com/go-rod/rod"
)

type selectorKind int

const (
	byCSS selectorKind = iota
	byXPath
	byText
)

// selector locates one element. byText matches css candidates whose text
// matches pattern.
type selector struct {
	kind    selectorKind
	query   string
	pattern string
}

func css(query string) selector   { return selector{kind: byCSS, query: query} }
func xpath(query string) selector { return selector{kind: byXPath, query: query} }

func textMatch(query, pattern string) selector {
	return selector{kind: byText, query: query, pattern: pattern}
}

func (s selector) String() string {
	switch s.kind {
	case byXPath:
		return "xpath:" + s.query
	case byText:
		return fmt.Sprintf("%s /%s/", s.query, s.pattern)
	default:
		return s.query
	}
}

// Selectors groups the lookups for one page layout. Entries are tried in
// order and the first hit wins.
type Selectors struct {
	Solved   []selector
	Premium  []selector
	Editor   []selector
	Language []selector
	Submit   []selector
	Verdict  []selector
	SignedIn []selector
}

func DefaultSelectors() Selectors {
	return Selectors{
		Solved: []selector{
			css(`[data-e2e-locator="solved-status"]`),
			textMatch(`div[class*="text-green"], span[class*="text-green"]`, `^\s*Solved\s*$`),
		},
		Premium: []selector{
			css(`svg[data-icon="lock"]`),
			xpath(`//*[contains(text(), "Subscribe to unlock")]`),
			xpath(`//*[contains(text(), "Only available to premium users")]`),
		},
		Editor: []selector{
			css(`.monaco-editor textarea`),
			css(`textarea[data-gramm="false"]`),
			css(`[data-cy="code-editor"] textarea`),
			css(`.cm-content`),
		},
		Language: []selector{
			css(`[data-e2e-locator="lang-select"]`),
			css(`div[class*="lang"] button`),
			css(`button[class*="language"]`),
		},
		Submit: []selector{
			css(`button[data-e2e-locator="console-submit-button"]`),
			css(`button[data-cy="submit-code-btn"]`),
			xpath(`//div[@data-e2e-locator="console-footer"]//button[last()]`),
			textMatch(`button`, `^\s*Submit\s*$`),
		},
		Verdict: []selector{
			css(`[data-e2e-locator="submission-result"]`),
			css(`.submission-result`),
			textMatch(`span, div[class*="text-red"], div[class*="text-green"]`,
				`^\s*(Accepted|Wrong Answer|Time Limit Exceeded|Memory Limit Exceeded|Output Limit Exceeded|Compile Error|Runtime Error)\s*$`),
		},
		SignedIn: []selector{
			css(`#navbar_user_avatar`),
			css(`[data-e2e-locator="navbar-user-avatar"]`),
			css(`img[alt*="avatar" i]`),
		},
	}
}

func languageOption(display string) selector {
	return textMatch(`[role="option"], li, div`, `^\s*`+regexp.QuoteMeta(display)+`\s*$`)
}

// find returns the first element matched by any selector, or nil. Lookups do
// not wait for the element to appear.
func find(page *rod.Page, selectors []selector) (*rod.Element, error) {
	for _, s := range selectors {
		var (
			ok  bool
			el  *rod.Element
			err error
		)
		switch s.kind {
		case byXPath:
			ok, el, err = page.HasX(s.query)
		case byText:
			ok, el, err = page.HasR(s.query, "/"+s.pattern+"/")
		default:
			ok, el, err = page.Has(s.query)
		}
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", s, err)
		}
		if ok {
			return el, nil
		}
	}

	return nil, nil
}
