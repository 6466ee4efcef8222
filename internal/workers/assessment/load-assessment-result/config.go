// internal/workers/assessment/load-assessment-result/config.go
package loadassessmentresult

import "time"

type Config struct {
	Timeout time.Duration
}
