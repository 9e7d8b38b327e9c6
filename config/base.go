package config

import "github.com/tanasatit/ci-demo/report"

const DefaultSqsMaxMessages = 1000

type Config struct {
	Version bool
	Verbose bool

	Environment string
	Output      string

	Values []float64
	File   string
	URL    string

	RedisHosts []string
	RedisKeys  []string

	SqsQueues      []string
	SqsMaxMessages int
}

func NewWithDefaults() Config {
	return Config{
		Output:         report.FormatText,
		SqsMaxMessages: DefaultSqsMaxMessages,
	}
}

// SourceCount returns how many data sources the configuration selects.
func (c Config) SourceCount() int {
	count := 0

	for _, selected := range []bool{
		len(c.Values) > 0,
		c.File != "",
		c.URL != "",
		len(c.RedisHosts) > 0 || len(c.RedisKeys) > 0,
		len(c.SqsQueues) > 0,
	} {
		if selected {
			count++
		}
	}

	return count
}
