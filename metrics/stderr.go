package metrics

import (
	"time"

	metrics "github.com/rcrowley/go-metrics"
	log "github.com/sirupsen/logrus"
)

// SetupStderr will configure metric system to periodically print metrics on
// stderr.
func SetupStderr(interval time.Duration) {
	go metrics.Log(metrics.DefaultRegistry, interval, log.StandardLogger())
}
