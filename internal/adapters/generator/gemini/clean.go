package gemini

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leetcoder-bot/leetcoder/internal/domain"
)

var (
	fenceOpen  = regexp.MustCompile("(?m)^\\s*```[A-Za-z0-9+#]*[ \\t]*\\n?")
	fenceClose = regexp.MustCompile("```")
	slugShape  = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

const (
	classMarker = "class Solution"
	maxSlugLen  = 100
	maxSlugDash = 15
)

// cleanCode strips markdown from a model answer and, for class-based
// languages, trims everything outside the imports and the Solution class.
func cleanCode(text string, lang domain.Language) (string, error) {
	code := fenceOpen.ReplaceAllString(text, "")
	code = strings.TrimSpace(fenceClose.ReplaceAllString(code, ""))

	if classBased(lang) {
		code = extractClass(code)
	}

	if err := validateCode(code, lang); err != nil {
		return "", err
	}

	return code, nil
}

func classBased(lang domain.Language) bool {
	return lang == domain.LanguageJava || lang == domain.LanguageCPP
}

func extractClass(code string) string {
	classAt := strings.Index(code, classMarker)
	if classAt < 0 {
		return code
	}

	start := classAt
	for _, prefix := range []string{"import ", "#include"} {
		if at := strings.Index(code, prefix); at >= 0 && at < start {
			start = at
		}
	}

	open := strings.Index(code[classAt:], "{")
	if open < 0 {
		return strings.TrimSpace(code[start:])
	}

	depth := 0
	for i := classAt + open; i < len(code); i++ {
		switch code[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				end := i + 1
				if end < len(code) && code[end] == ';' {
					end++
				}
				return strings.TrimSpace(code[start:end])
			}
		}
	}

	return strings.TrimSpace(code[start:])
}

func validateCode(code string, lang domain.Language) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("empty solution: %w", domain.ErrInvalidOutput)
	}
	if !classBased(lang) {
		return nil
	}
	if !strings.Contains(code, classMarker) {
		return fmt.Errorf("missing %q: %w", classMarker, domain.ErrInvalidOutput)
	}
	if strings.Count(code, "{") != strings.Count(code, "}") {
		return fmt.Errorf("unbalanced braces: %w", domain.ErrInvalidOutput)
	}

	return nil
}

// parseSlug pulls a kebab-case problem name out of a free-form answer.
func parseSlug(text string) (domain.ProblemID, bool) {
	line := ""
	for _, candidate := range strings.Split(text, "\n") {
		if candidate = strings.TrimSpace(candidate); candidate != "" {
			line = candidate
			break
		}
	}
	if idx := strings.LastIndex(line, ":"); idx >= 0 {
		line = line[idx+1:]
	}

	id := domain.Slugify(strings.Trim(line, "`\"'*. "))
	if !slugShape.MatchString(string(id)) || len(id) > maxSlugLen || strings.Count(string(id), "-") > maxSlugDash {
		return "", false
	}

	return id, true
}
