package config

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tanasatit/ci-demo/report"
)

var _ = Describe("Base", func() {
	Describe("NewWithDefaults", func() {
		It("Returns new Config struct instance", func() {
			Expect(NewWithDefaults()).To(Equal(Config{
				Output:         report.FormatText,
				SqsMaxMessages: DefaultSqsMaxMessages,
			}))
		})
	})

	Describe("SourceCount", func() {
		DescribeTable("Counts selected sources",
			func(cfg Config, expectation int) { Expect(cfg.SourceCount()).To(Equal(expectation)) },
			Entry("Nothing selected", NewWithDefaults(), 0),
			Entry("Static values", Config{Values: []float64{1}}, 1),
			Entry("File", Config{File: "data.yaml"}, 1),
			Entry("Redis hosts only", Config{RedisHosts: []string{"localhost:6379"}}, 1),
			Entry("Redis hosts and keys", Config{RedisHosts: []string{"localhost:6379"}, RedisKeys: []string{"k"}}, 1),
			Entry("Url", Config{URL: "http://stats.local/values"}, 1),
			Entry("Sqs", Config{SqsQueues: []string{"q"}}, 1),
			Entry("Static and file", Config{Values: []float64{1}, File: "data.yaml"}, 2),
		)
	})
})
