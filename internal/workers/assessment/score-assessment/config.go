// internal/workers/assessment/score-assessment/config.go
package scoreassessment

import "time"

type Config struct {
	Timeout time.Duration
	// CacheTTL of zero disables memoization.
	CacheTTL time.Duration
}
