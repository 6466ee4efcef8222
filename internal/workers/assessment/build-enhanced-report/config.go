// internal/workers/assessment/build-enhanced-report/config.go
package buildenhancedreport

import "time"

type Config struct {
	Timeout time.Duration
}
