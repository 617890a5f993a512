package faker

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/allegro/faker/values"
)

// Faker groups generators sharing a clock, a random source and value
// categories.
type Faker struct {
	clock  Clock
	random Random

	categories []values.Categories
	fetcher    ValueFetcher

	dateTime  *DateTime
	chemistry *Chemistry
}

// Option configures a Faker created with New.
type Option func(*Faker) error

// WithClock sets the clock used to determine the present instant.
func WithClock(clock Clock) Option {
	return func(f *Faker) error {
		f.clock = clock
		return nil
	}
}

// WithRandom sets the random source shared by all generators.
func WithRandom(random Random) Option {
	return func(f *Faker) error {
		f.random = random
		return nil
	}
}

// WithSeed seeds the random source, making generated values reproducible.
func WithSeed(seed int64) Option {
	return WithRandom(NewRandom(seed))
}

// WithValues replaces the value lookup service.
func WithValues(fetcher ValueFetcher) Option {
	return func(f *Faker) error {
		f.fetcher = fetcher
		return nil
	}
}

// WithValuesFile adds value categories loaded from a JSON file. They take
// precedence over the built-in ones.
func WithValuesFile(path string) Option {
	return func(f *Faker) error {
		file, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "unable to open values file")
		}
		defer file.Close()
		categories, err := values.Load(file)
		if err != nil {
			return errors.Wrapf(err, "unable to load values from %s", path)
		}
		log.WithFields(log.Fields{"file": path, "categories": categories.Keys()}).Debug("Loaded value categories")
		f.categories = append(f.categories, categories)
		return nil
	}
}

// New creates a Faker. Without options it uses the system clock, a time
// seeded random source and the built-in value categories.
func New(options ...Option) (*Faker, error) {
	f := &Faker{
		clock:      SystemClock{},
		categories: []values.Categories{values.Default()},
	}
	for _, option := range options {
		if err := option(f); err != nil {
			return nil, errors.Wrap(err, "invalid faker option")
		}
	}
	if f.random == nil {
		f.random = newRandom()
	}
	if f.fetcher == nil {
		f.fetcher = values.NewService(f.random, f.categories...)
	}
	f.dateTime = NewDateTime(f.clock, f.random)
	f.chemistry = NewChemistry(f.fetcher)
	return f, nil
}

// FromConfig creates a Faker configured by cfg.
func FromConfig(cfg Config) (*Faker, error) {
	var options []Option
	if cfg.Seed != 0 {
		options = append(options, WithSeed(cfg.Seed))
	}
	if cfg.ValuesFile != "" {
		options = append(options, WithValuesFile(cfg.ValuesFile))
	}
	return New(options...)
}

// DateTime returns the date-time generator.
func (f *Faker) DateTime() *DateTime {
	return f.dateTime
}

// Chemistry returns the chemistry generator.
func (f *Faker) Chemistry() *Chemistry {
	return f.chemistry
}
