// internal/workers/assessment/build-report/config.go
package buildreport

import "time"

type Config struct {
	Timeout time.Duration
}
