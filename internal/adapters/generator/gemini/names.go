package gemini

import "github.com/leetcoder-bot/leetcoder/internal/domain"

var knownProblems = map[int]domain.ProblemID{
	1:   "two-sum",
	2:   "add-two-numbers",
	3:   "longest-substring-without-repeating-characters",
	4:   "median-of-two-sorted-arrays",
	5:   "longest-palindromic-substring",
	7:   "reverse-integer",
	9:   "palindrome-number",
	11:  "container-with-most-water",
	15:  "3sum",
	20:  "valid-parentheses",
	21:  "merge-two-sorted-lists",
	53:  "maximum-subarray",
	70:  "climbing-stairs",
	121: "best-time-to-buy-and-sell-stock",
	136: "single-number",
	206: "reverse-linked-list",
	217: "contains-duplicate",
	226: "invert-binary-tree",
	238: "product-of-array-except-self",
	242: "valid-anagram",
	347: "top-k-frequent-elements",
}
