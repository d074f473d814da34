package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ProblemID is a catalog slug such as "two-sum". Comparison is case-sensitive.
type ProblemID string

func (id ProblemID) Validate() error {
	if strings.TrimSpace(string(id)) == "" {
		return fmt.Errorf("problem id is required")
	}

	return nil
}

type Language string

const (
	LanguageJava       Language = "java"
	LanguagePython     Language = "python"
	LanguageCPP        Language = "cpp"
	LanguageC          Language = "c"
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
	LanguageGo         Language = "go"
	LanguageRust       Language = "rust"
)

var supportedLanguages = []Language{
	LanguageJava,
	LanguagePython,
	LanguageCPP,
	LanguageC,
	LanguageJavaScript,
	LanguageTypeScript,
	LanguageGo,
	LanguageRust,
}

func SupportedLanguages() []Language {
	out := make([]Language, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

func ParseLanguage(raw string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(raw)))
	if lang.IsSupported() {
		return lang, nil
	}

	return "", fmt.Errorf("%w: unsupported language %q", ErrInvalidConfig, raw)
}

func (l Language) IsSupported() bool {
	for _, candidate := range supportedLanguages {
		if l == candidate {
			return true
		}
	}

	return false
}

// DisplayName is the label LeetCode's language picker shows.
func (l Language) DisplayName() string {
	switch l {
	case LanguageCPP:
		return "C++"
	case LanguageC:
		return "C"
	case LanguageJavaScript:
		return "JavaScript"
	case LanguageTypeScript:
		return "TypeScript"
	case LanguagePython:
		return "Python3"
	case LanguageGo:
		return "Go"
	case LanguageRust:
		return "Rust"
	case LanguageJava:
		return "Java"
	default:
		return string(l)
	}
}

var (
	nonSlugChars  = regexp.MustCompile(`[^a-z0-9]+`)
	leadingDigits = regexp.MustCompile(`^(\d+)`)
)

// Slugify lowercases raw and collapses every run of non-alphanumerics into a
// single dash.
func Slugify(raw string) ProblemID {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(raw), "-")
	return ProblemID(strings.Trim(slug, "-"))
}

// Title turns "two-sum" into "Two Sum".
func (id ProblemID) Title() string {
	words := strings.Split(string(id), "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}

	return strings.Join(words, " ")
}

// LeadingNumber extracts a question number from names like "1-two-sum".
func LeadingNumber(raw string) (int, bool) {
	match := leadingDigits.FindStringSubmatch(strings.TrimSpace(raw))
	if match == nil {
		return 0, false
	}

	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}

	return n, true
}
