// Package values provides category based lookups of sample strings used by
// fake-data generators.
package values

import (
	"io"
	"sort"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/rcrowley/go-metrics"
	log "github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigFastest

// ErrUnknownCategory is returned by Lookup for categories without any values.
var ErrUnknownCategory = errors.New("unknown value category")

// Random draws uniformly distributed integers in [low,high].
type Random interface {
	Int64Range(low, high int64) int64
}

// Categories maps a dotted category key (e.g. "chemistry.elements") to its
// sample values.
type Categories map[string][]string

// Service returns values sampled uniformly from named categories. It is
// read-only after construction and safe for concurrent use when its Random is.
type Service struct {
	categories Categories
	random     Random
	misses     metrics.Counter
}

// NewService creates a lookup service over the passed categories. Later
// category sets override keys of the earlier ones.
func NewService(random Random, sets ...Categories) *Service {
	merged := Categories{}
	for _, set := range sets {
		for key, values := range set {
			merged[key] = values
		}
	}
	return &Service{
		categories: merged,
		random:     random,
		misses:     metrics.GetOrRegisterCounter("faker.values.Miss", metrics.DefaultRegistry),
	}
}

// FetchString returns one value of the category, or an empty string when the
// category is unknown or empty.
func (s *Service) FetchString(key string) string {
	value, err := s.Lookup(key)
	if err != nil {
		log.WithError(err).WithField("category", key).Debug("No value to fetch")
		return ""
	}
	return value
}

// Lookup returns one value of the category or ErrUnknownCategory.
func (s *Service) Lookup(key string) (string, error) {
	values := s.categories[key]
	if len(values) == 0 {
		s.misses.Inc(1)
		return "", errors.Wrapf(ErrUnknownCategory, "category %q", key)
	}
	return values[s.random.Int64Range(0, int64(len(values)-1))], nil
}

// Keys returns sorted category keys.
func (c Categories) Keys() []string {
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Load parses a JSON document of nested objects whose leaves are arrays of
// strings. Nested keys are joined with dots.
func Load(reader io.Reader) (Categories, error) {
	var document map[string]interface{}
	if err := json.NewDecoder(reader).Decode(&document); err != nil {
		return nil, errors.Wrap(err, "unable to decode values")
	}
	categories := Categories{}
	if err := flatten("", document, categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func flatten(prefix string, node map[string]interface{}, out Categories) error {
	for key, value := range node {
		if prefix != "" {
			key = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]interface{}:
			if err := flatten(key, v, out); err != nil {
				return err
			}
		case []interface{}:
			values := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return errors.Errorf("category %q contains non string value %v", key, item)
				}
				values = append(values, s)
			}
			out[key] = values
		default:
			return errors.Errorf("category %q must be an object or an array of strings", key)
		}
	}
	return nil
}
