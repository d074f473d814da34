package ports

import "github.com/leetcoder-bot/leetcoder/internal/domain"

type ProgressSink interface {
	Progress(event domain.ProgressEvent)
}

type AuditSink interface {
	Audit(entry domain.AuditEntry)
}
