package faker

// Config settable from the environment
type Config struct {
	// Sets logging level to `debug` when true, `info` otherwise
	Debug bool `default:"false"`
	// Seed of the random source. Zero seeds from the current time.
	Seed int64
	// Path to a JSON file with additional value categories
	ValuesFile string `split_words:"true"`
}
