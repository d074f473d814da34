package domain

import "time"

// SolutionRecord is the code that was submitted for a problem, kept for later
// inspection.
type SolutionRecord struct {
	Problem     ProblemID
	Language    Language
	Code        string
	GeneratedBy GeneratedBy
	Outcome     Outcome
	Timestamp   time.Time
}
