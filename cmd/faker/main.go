package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/evalphobia/logrus_sentry"
	"github.com/getsentry/raven-go"
	"github.com/kelseyhightower/envconfig"
	"github.com/pborman/uuid"
	"github.com/pkg/errors"
	gometrics "github.com/rcrowley/go-metrics"
	log "github.com/sirupsen/logrus"

	"github.com/allegro/faker"
	"github.com/allegro/faker/metrics"
	"github.com/allegro/faker/record"
	"github.com/allegro/faker/xio"
)

const environmentPrefix = "faker"

const usage = `usage: faker <command> [args]

commands:
  between FROM TO   random date-time in [FROM,TO]
  future END        random date-time after now and not later than END
  past BEGIN        random date-time before now and not earlier than BEGIN
  element           random chemical element name

Date-times are given in RFC 3339 format.`

// Version designates the version of application.
var Version string

// Config contains application configuration
type Config struct {
	faker.Config

	// Number of records to generate
	Count int `default:"1"`
	// Maximum number of records written per second, unlimited when 0
	RateLimit int `split_words:"true"`
	// Maximum size of an encoded record in bytes, larger records are dropped.
	// Unlimited when 0
	SizeLimit int `split_words:"true"`
	// Output format: logfmt or json
	Format string `default:"logfmt"`

	// SentryDSN is an address used for sending logs to Sentry
	SentryDSN string `split_words:"true"`
	// Environment reported to Sentry
	Environment string `default:"local"`
}

type generator func() (string, error)

func main() {
	var cfg Config
	if err := envconfig.Process(environmentPrefix, &cfg); err != nil {
		log.WithError(err).Fatal("Failed to load faker configuration")
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	if err := initSentry(cfg); err != nil {
		log.WithError(err).Fatal("Failed to initialize Sentry")
	}

	runID := uuid.New()
	log.Infof("Faker (version: %s, run: %s)", Version, runID)
	if err := metrics.Init(runID); err != nil {
		log.WithError(err).Fatal("Failed to initialize metrics")
	}

	log.Info("Initializing faker with following configuration:")
	log.Infof("Debug      = %t", cfg.Debug)
	log.Infof("Seed       = %d", cfg.Seed)
	log.Infof("ValuesFile = %s", cfg.ValuesFile)
	log.Infof("Count      = %d", cfg.Count)
	log.Infof("RateLimit  = %d", cfg.RateLimit)
	log.Infof("SizeLimit  = %d", cfg.SizeLimit)
	log.Infof("Format     = %s", cfg.Format)

	if err := run(context.Background(), cfg, runID, os.Args[1:], os.Stdout); err != nil {
		log.WithError(err).Fatal("Faker exited with error")
	}
}

func initSentry(cfg Config) error {
	if len(cfg.SentryDSN) == 0 {
		return nil
	}
	log.Infof("Enabling Sentry integration for the %s environment", cfg.Environment)

	client, err := raven.New(cfg.SentryDSN)
	if err != nil {
		return fmt.Errorf("Unable to setup raven client: %s", err)
	}
	client.SetRelease(Version)
	client.SetEnvironment(cfg.Environment)

	sentryHook, err := logrus_sentry.NewWithClientSentryHook(client, []log.Level{
		log.PanicLevel,
		log.FatalLevel,
		log.ErrorLevel,
	})
	if err != nil {
		return fmt.Errorf("Unable to setup sentry hook for logger: %s", err)
	}
	sentryHook.Timeout = time.Second
	log.AddHook(sentryHook)

	return nil
}

func run(ctx context.Context, cfg Config, runID string, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New(usage)
	}
	if cfg.Count <= 0 {
		return errors.Errorf("record count must be positive, got %d", cfg.Count)
	}
	f, err := faker.FromConfig(cfg.Config)
	if err != nil {
		return err
	}
	generate, err := newGenerator(f, args[0], args[1:])
	if err != nil {
		return err
	}

	// Decorators apply inside out, so oversized records are rejected before
	// they wait for the rate limiter.
	var decorators []xio.WriterDecorator
	if cfg.RateLimit > 0 {
		decorators = append(decorators, xio.Throttle(ctx, cfg.RateLimit))
	}
	if cfg.SizeLimit > 0 {
		decorators = append(decorators, xio.SizeLimit(cfg.SizeLimit))
	}
	out = xio.DecorateWriter(out, decorators...)
	encoder, err := record.NewEncoder(cfg.Format, out)
	if err != nil {
		return err
	}
	extender := record.StaticDataExtender{Data: map[string]interface{}{
		"command": args[0],
		"run_id":  runID,
	}}
	droppedBecauseOfSize := gometrics.GetOrRegisterCounter("faker.records.dropped.SizeExceeded", gometrics.DefaultRegistry)

	for i := 0; i < cfg.Count; i++ {
		value, err := generate()
		if err != nil {
			return err
		}
		entry := record.Extend(record.Entry{"value": value}, extender)
		err = encoder.Encode(entry)
		if err == xio.ErrSizeLimitExceeded {
			droppedBecauseOfSize.Inc(1)
			log.WithField("value", value).Warn("Record dropped because of size")
			continue
		}
		if err != nil {
			return errors.Wrap(err, "unable to write record")
		}
	}
	log.WithField("count", cfg.Count).Debug("Generated records")
	return nil
}

func newGenerator(f *faker.Faker, command string, args []string) (generator, error) {
	switch command {
	case "between":
		bounds, err := parseTimes(args, 2)
		if err != nil {
			return nil, err
		}
		return formatted(func() (time.Time, error) { return f.DateTime().Between(bounds[0], bounds[1]) }), nil
	case "future":
		bounds, err := parseTimes(args, 1)
		if err != nil {
			return nil, err
		}
		return formatted(func() (time.Time, error) { return f.DateTime().Future(bounds[0]) }), nil
	case "past":
		bounds, err := parseTimes(args, 1)
		if err != nil {
			return nil, err
		}
		return formatted(func() (time.Time, error) { return f.DateTime().Past(bounds[0]) }), nil
	case "element":
		if len(args) != 0 {
			return nil, errors.New("element takes no arguments")
		}
		return func() (string, error) { return f.Chemistry().Element(), nil }, nil
	default:
		return nil, errors.Errorf("unknown command %q\n%s", command, usage)
	}
}

func parseTimes(args []string, n int) ([]time.Time, error) {
	if len(args) != n {
		return nil, errors.Errorf("expected %d date-time arguments, got %d", n, len(args))
	}
	times := make([]time.Time, n)
	for i, arg := range args {
		t, err := time.Parse(time.RFC3339Nano, arg)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid date-time %q", arg)
		}
		times[i] = t
	}
	return times, nil
}

func formatted(generate func() (time.Time, error)) generator {
	return func() (string, error) {
		t, err := generate()
		if err != nil {
			return "", err
		}
		return t.Format(time.RFC3339Nano), nil
	}
}
