package contact

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Results recorded by CountSubmission.
const (
	ResultStored  = "stored"
	ResultInvalid = "invalid"
	ResultFailed  = "failed"
	ResultLimited = "limited"
)

var (
	submissions     *prometheus.CounterVec //nolint:gochecknoglobals
	submissionsOnce sync.Once              //nolint:gochecknoglobals
)

// CountSubmission increments contact_submissions_total for result.
func CountSubmission(result string) {
	submissionsOnce.Do(func() {
		submissions = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contact_submissions_total",
				Help: "Number of contact form submissions, differentiated by result.",
			},
			[]string{"result"},
		)
	})

	submissions.WithLabelValues(result).Inc()
}
