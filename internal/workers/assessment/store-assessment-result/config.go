// internal/workers/assessment/store-assessment-result/config.go
package storeassessmentresult

import "time"

type Config struct {
	Timeout time.Duration
}
