package gemini

import (
	"fmt"
	"strings"

	"github.com/leetcoder-bot/leetcoder/internal/domain"
)

type languagePrompt struct {
	structure string
	notes     []string
}

var languagePrompts = map[domain.Language]languagePrompt{
	domain.LanguageJava: {
		structure: `"class Solution { ... }"`,
		notes: []string{
			"Prefer primitive arrays over boxed collections when possible.",
			"Use HashMap, ArrayDeque and PriorityQueue from java.util.",
			"Use StringBuilder for string building.",
		},
	},
	domain.LanguagePython: {
		structure: `"class Solution:" with a typed method`,
		notes: []string{
			"Use collections.deque, defaultdict, Counter and heapq where they help.",
			"Use list comprehensions and built-ins over manual loops.",
			"Include the typing imports the signature needs.",
		},
	},
	domain.LanguageJavaScript: {
		structure: "a `var` function declaration with JSDoc parameter types",
		notes: []string{
			"Use Map and Set for hashing.",
			"Avoid recursion depth problems on large inputs.",
		},
	},
	domain.LanguageCPP: {
		structure: `"class Solution { public: ... };"`,
		notes: []string{
			"Use unordered_map, vector and priority_queue from the STL.",
			"Pass large containers by reference.",
			"Reserve vector capacity when the size is known.",
		},
	},
}

func solutionPrompt(id domain.ProblemID, lang domain.Language) string {
	display := lang.DisplayName()
	config, ok := languagePrompts[lang]
	if !ok {
		config = languagePrompt{
			structure: fmt.Sprintf("the exact %s signature LeetCode provides", display),
			notes:     []string{"Use the standard library's most efficient data structures."},
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert competitive programmer. Generate the most optimal %s solution for this LeetCode problem.\n\n", display)
	fmt.Fprintf(&b, "PROBLEM: %s (%s)\n\n", id.Title(), id)
	b.WriteString("REQUIREMENTS:\n")
	fmt.Fprintf(&b, "1. Output ONLY executable %s code. No explanations, comments or markdown.\n", display)
	fmt.Fprintf(&b, "2. Use the exact LeetCode structure: %s.\n", config.structure)
	b.WriteString("3. Choose the algorithm with the best time and space complexity.\n")
	b.WriteString("4. Handle every edge case: empty input, nulls and boundary values.\n")
	b.WriteString("5. The code must compile without errors or warnings.\n")
	b.WriteString("6. Never use placeholder code or TODOs.\n\n")
	b.WriteString("LANGUAGE NOTES:\n")
	for _, note := range config.notes {
		fmt.Fprintf(&b, "- %s\n", note)
	}
	fmt.Fprintf(&b, "\nNow generate the %s solution:", display)

	return b.String()
}

func namePrompt(number int) string {
	return fmt.Sprintf(`You are an expert on LeetCode problems. Give the exact title of LeetCode problem number %d in kebab-case.

Reply with ONLY the kebab-case name, for example:
- Problem 1: two-sum
- Problem 3: longest-substring-without-repeating-characters

LeetCode problem %d:`, number, number)
}
