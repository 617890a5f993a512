package metrics

import (
	"fmt"
	"net"
	"strings"
	"time"

	graphite "github.com/allegro/go-metrics-graphite"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/rcrowley/go-metrics"
	"github.com/shirou/gopsutil/host"
	log "github.com/sirupsen/logrus"
)

const graphiteConfigEnvPrefix = "faker_graphite"

// GraphiteConfig holds basic Graphite configuration.
type GraphiteConfig struct {
	Host     string
	Port     int           `default:"2003"`
	Prefix   string        `default:"allegro.faker"`
	Interval time.Duration `default:"1m"`
}

// Init processes the environment in search of Graphite configuration and
// starts reporting the default registry. Metrics are tagged with id.
func Init(id string) error {
	var cfg GraphiteConfig
	if err := envconfig.Process(graphiteConfigEnvPrefix, &cfg); err != nil {
		return errors.Wrap(err, "invalid graphite configuration")
	}
	if cfg.Host == "" {
		log.Info("No metric storage specified - using stderr to periodically print metrics")
		SetupStderr(cfg.Interval)
		return nil
	}
	if err := SetupGraphite(cfg, id); err != nil {
		return err
	}
	log.Infof("Metrics will be sent to Graphite with ID: %s", normalizeValue(id))
	return nil
}

// SetupGraphite will configure metric system to periodically send metrics to
// Graphite.
func SetupGraphite(cfg GraphiteConfig, id string) error {
	addr, err := net.ResolveTCPAddr("tcp", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port))
	if err != nil {
		return errors.Wrap(err, "invalid Graphite address")
	}
	prefix, err := buildUniquePrefix(cfg.Prefix, id)
	if err != nil {
		return err
	}
	go graphite.Graphite(metrics.DefaultRegistry, cfg.Interval, prefix, addr.String())
	return nil
}

var hostname = func() (string, error) {
	info, err := host.Info()
	if err != nil {
		return "", err
	}
	return info.Hostname, nil
}

func buildUniquePrefix(basePrefix, id string) (string, error) {
	name, err := hostname()
	if err != nil {
		return "", errors.Wrap(err, "unable to get hostname for metrics key")
	}
	return fmt.Sprintf("%s.%s.%s", basePrefix, normalizeValue(name), normalizeValue(id)), nil
}

func normalizeValue(value string) string {
	return strings.Replace(value, ".", "_", -1)
}
