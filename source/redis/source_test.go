package redis

import (
	"context"
	"fmt"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Source", func() {
	Describe("New", func() {
		var config Config
		var logger *zap.Logger

		BeforeEach(func() {
			logger = zap.NewNop()
		})

		AfterEach(func() {
			config = Config{}
		})

		Context("When hosts list empty", func() {
			It("Returns error", func() {
				config.ListKeys = []string{"asdf", "qwerty"}

				src, err := New(&config, logger)

				Expect(*src).To(BeZero())
				Expect(err).To(HaveOccurred())
				Expect(err).To(Equal(fmt.Errorf("hosts list cannot be empty")))
			})
		})

		Context("When list keys empty", func() {
			It("Returns error", func() {
				config.Hosts = []string{"host:6379"}

				src, err := New(&config, logger)

				Expect(*src).To(BeZero())
				Expect(err).To(HaveOccurred())
				Expect(err).To(Equal(fmt.Errorf("list keys cannot be empty")))
			})
		})

		Context("When host is not reachable", func() {
			It("Returns error", func() {
				config.Hosts = []string{"host:6379"}
				config.ListKeys = []string{"asdf"}

				src, err := New(&config, logger)

				Expect(*src).To(BeZero())
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("dial tcp"))
			})
		})

		Context("When all good", func() {
			var server *miniredis.Miniredis
			var err error

			BeforeEach(func() {
				server, err = miniredis.Run()

				if err != nil {
					Fail("miniredis failed to start")
				}

				config = Config{
					Hosts:    []string{server.Addr()},
					ListKeys: []string{"asdf"},
				}
			})

			AfterEach(func() {
				server.Close()
			})

			It("Properly setup redis source", func() {
				src, err := New(&config, logger)

				Expect(err).ToNot(HaveOccurred())
				Expect(src.listKeys).To(Equal(config.ListKeys))

				pingRes, err := src.client.Ping(context.Background()).Result()
				Expect(err).ToNot(HaveOccurred())
				Expect(pingRes).To(Equal("PONG"))

				Expect(src.Close()).To(Succeed())
			})
		})
	})

	Describe("Source receiver", func() {
		var (
			ctx context.Context

			listKeys = []string{"k1", "k2", "k3"}
			src      Source

			ringClient *redis.Ring
			server     *miniredis.Miniredis
			err        error
		)

		BeforeEach(func() {
			server, err = miniredis.Run()

			ctx = context.Background()

			if err != nil {
				Fail("miniredis failed to start")
			}

			ringClient = redis.NewRing(&redis.RingOptions{
				Addrs: map[string]string{
					"h1": server.Addr(),
				},
			})

			src = Source{
				listKeys: listKeys,
				client:   ringClient,
				logger:   zap.NewNop(),
			}
		})

		AfterEach(func() {
			_ = ringClient.Close()
			server.Close()
			src = Source{}
		})

		Describe("Kind()", func() {
			It("Return redis string", func() {
				Expect(src.Kind()).To(Equal("redis"))
			})
		})

		Describe("Values()", func() {
			It("Returns values of all lists in key order", func() {
				for _, keyValue := range [][]string{
					{"k1", "1"},
					{"k1", "2"},
					{"k1", "3.5"},
					{"k2", "-4"},
					{"k3", "1e3"},
				} {
					_, err := server.RPush(keyValue[0], keyValue[1])

					if err != nil {
						Fail("can't push entity to Redis")
					}
				}

				res, err := src.Values(ctx)

				Expect(err).ToNot(HaveOccurred())
				Expect(res).To(Equal([]float64{1, 2, 3.5, -4, 1000}))
			})

			It("When keys are not existing returns empty sequence", func() {
				res, err := src.Values(ctx)

				Expect(res).To(BeEmpty())
				Expect(err).ToNot(HaveOccurred())
			})

			It("Rejects non numeric elements", func() {
				_, err := server.RPush("k2", "asdf")
				Expect(err).ToNot(HaveOccurred())

				res, err := src.Values(ctx)

				Expect(res).To(BeNil())
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("list k2"))
			})

			It("Proxies errors for keys of a different type", func() {
				Expect(server.Set("k1", "1")).To(Succeed())

				_, err := src.Values(ctx)

				Expect(err).To(HaveOccurred())
			})
		})
	})
})
