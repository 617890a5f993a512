package metrics

import (
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIfFailsToSetupGraphiteWithInvalidConfig(t *testing.T) {
	cfg := GraphiteConfig{
		Host: "!@#$",
	}
	err := SetupGraphite(cfg, "id")

	assert.Error(t, err)
}

func TestIfNotFailsToSetupGraphiteWithValidConfig(t *testing.T) {
	cfg := GraphiteConfig{
		Host:     "localhost",
		Port:     2003,
		Interval: time.Minute,
	}
	err := SetupGraphite(cfg, "id")

	assert.NoError(t, err)
}

func TestIfBuildsCorrectMetricsPrefix(t *testing.T) {
	defer func(original func() (string, error)) { hostname = original }(hostname)
	testCases := []struct {
		hostname       string
		expectedPrefix string
	}{
		{"localhost", "basePrefix.localhost.uuid"},
		{"my.host.with.dots", "basePrefix.my_host_with_dots.uuid"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("hostname=%s", tc.hostname), func(t *testing.T) {
			name := tc.hostname
			hostname = func() (string, error) { return name, nil }

			actualPrefix, err := buildUniquePrefix("basePrefix", "uuid")
			require.NoError(t, err)
			assert.Equal(t, tc.expectedPrefix, actualPrefix)
		})
	}
}

func TestIfFailsToBuildPrefixWithoutHostname(t *testing.T) {
	defer func(original func() (string, error)) { hostname = original }(hostname)
	hostname = func() (string, error) { return "", errors.New("no hostname") }

	_, err := buildUniquePrefix("basePrefix", "uuid")

	assert.Error(t, err)
}

func TestIfInitFallsBackToStderrWithoutHost(t *testing.T) {
	os.Unsetenv("FAKER_GRAPHITE_HOST")

	assert.NoError(t, Init("id"))
}

func TestIfInitFailsOnInvalidConfig(t *testing.T) {
	os.Setenv("FAKER_GRAPHITE_PORT", "not a number")
	defer os.Unsetenv("FAKER_GRAPHITE_PORT")

	assert.Error(t, Init("id"))
}
