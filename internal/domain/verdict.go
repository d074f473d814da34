package domain

import "strings"

type VerdictKind string

const (
	VerdictAccepted  VerdictKind = "accepted"
	VerdictRejected  VerdictKind = "rejected"
	VerdictAmbiguous VerdictKind = "ambiguous"
)

var rejectionMarkers = []string{
	"Wrong",
	"Error",
	"Time Limit",
	"Memory Limit",
	"Output Limit",
}

// ClassifyVerdict inspects the judge's result text. Acceptance wins over
// rejection markers when both appear.
func ClassifyVerdict(text string) VerdictKind {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return VerdictAmbiguous
	}
	if strings.Contains(trimmed, "Accepted") {
		return VerdictAccepted
	}
	for _, marker := range rejectionMarkers {
		if strings.Contains(trimmed, marker) {
			return VerdictRejected
		}
	}

	return VerdictAmbiguous
}
