package faker

import "github.com/allegro/faker/values"

// ValueFetcher returns one value sampled from the named category.
type ValueFetcher interface {
	FetchString(key string) string
}

// Chemistry generates chemistry related values.
type Chemistry struct {
	values ValueFetcher
}

// NewChemistry creates a Chemistry generator backed by fetcher.
func NewChemistry(fetcher ValueFetcher) *Chemistry {
	return &Chemistry{values: fetcher}
}

// Element returns the name of a chemical element.
func (c *Chemistry) Element() string {
	return c.values.FetchString(values.ChemistryElements)
}
