package events_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/frahmantamala/user-admin/internal/core/events"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestEvents(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Events Suite")
}

var _ = Describe("EventBus", func() {
	var (
		bus *events.EventBus
		ctx context.Context
	)

	BeforeEach(func() {
		testLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		bus = events.NewEventBus(testLogger)
		ctx = context.Background()
	})

	Describe("Publish", func() {
		It("should deliver the event to a subscribed handler", func() {
			received := make(chan events.Event, 1)
			bus.Subscribe("AuthUserChangeEnabled", func(ctx context.Context, event events.Event) error {
				received <- event
				return nil
			})

			event := events.NewTrackingEvent("AuthUserChangeEnabled", map[string]string{"username": "BOB"}, nil)
			Expect(bus.Publish(ctx, event)).To(Succeed())

			var got events.Event
			Eventually(received).Should(Receive(&got))
			Expect(got.EventType()).To(Equal("AuthUserChangeEnabled"))
			Expect(got.EventID()).To(Equal(event.EventID()))
		})

		It("should deliver to every handler for the type", func() {
			var wg sync.WaitGroup
			wg.Add(2)
			for i := 0; i < 2; i++ {
				bus.Subscribe("AuthUserChangeEnabled", func(ctx context.Context, event events.Event) error {
					wg.Done()
					return nil
				})
			}

			event := events.NewTrackingEvent("AuthUserChangeEnabled", nil, nil)
			Expect(bus.Publish(ctx, event)).To(Succeed())

			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			Eventually(done).Should(BeClosed())
		})

		It("should succeed with no handlers registered", func() {
			event := events.NewTrackingEvent("UnheardEvent", nil, nil)
			Expect(bus.Publish(ctx, event)).To(Succeed())
		})

		It("should not surface handler failures to the publisher", func() {
			bus.Subscribe("AuthUserChangeEnabled", func(ctx context.Context, event events.Event) error {
				return errors.New("sink unavailable")
			})

			event := events.NewTrackingEvent("AuthUserChangeEnabled", nil, nil)
			Expect(bus.Publish(ctx, event)).To(Succeed())
		})

		It("should not deliver to handlers of other types", func() {
			received := make(chan events.Event, 1)
			bus.Subscribe("OtherEvent", func(ctx context.Context, event events.Event) error {
				received <- event
				return nil
			})

			event := events.NewTrackingEvent("AuthUserChangeEnabled", nil, nil)
			Expect(bus.Publish(ctx, event)).To(Succeed())
			Consistently(received).ShouldNot(Receive())
		})
	})

	Describe("PublishSync", func() {
		It("should run handlers in subscription order", func() {
			var order []int
			for i := 1; i <= 3; i++ {
				i := i
				bus.Subscribe("AuthUserChangeEnabled", func(ctx context.Context, event events.Event) error {
					order = append(order, i)
					return nil
				})
			}

			event := events.NewTrackingEvent("AuthUserChangeEnabled", nil, nil)
			Expect(bus.PublishSync(ctx, event)).To(Succeed())
			Expect(order).To(Equal([]int{1, 2, 3}))
		})

		It("should stop at the first failing handler", func() {
			var order []int
			bus.Subscribe("AuthUserChangeEnabled", func(ctx context.Context, event events.Event) error {
				order = append(order, 1)
				return errors.New("sink unavailable")
			})
			bus.Subscribe("AuthUserChangeEnabled", func(ctx context.Context, event events.Event) error {
				order = append(order, 2)
				return nil
			})

			event := events.NewTrackingEvent("AuthUserChangeEnabled", nil, nil)
			err := bus.PublishSync(ctx, event)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("sink unavailable"))
			Expect(order).To(Equal([]int{1}))
		})
	})
})

var _ = Describe("TrackingEvent", func() {
	It("should carry attributes in the payload", func() {
		event := events.NewTrackingEvent("AuthUserChangeEnabled", map[string]string{
			"username": "BOB",
			"admin":    "AUTH_ADM",
			"enabled":  "true",
		}, nil)

		Expect(event.EventType()).To(Equal("AuthUserChangeEnabled"))
		Expect(event.EventID()).NotTo(BeEmpty())
		Expect(event.OccurredAt()).NotTo(BeZero())

		payload, ok := event.Payload().(map[string]interface{})
		Expect(ok).To(BeTrue())
		Expect(payload).To(HaveKeyWithValue("username", "BOB"))
		Expect(payload).To(HaveKeyWithValue("enabled", "true"))
	})

	It("should assign unique identifiers", func() {
		a := events.NewTrackingEvent("AuthUserChangeEnabled", nil, nil)
		b := events.NewTrackingEvent("AuthUserChangeEnabled", nil, nil)
		Expect(a.EventID()).NotTo(Equal(b.EventID()))
	})

	It("should keep the optional metric", func() {
		value := 1.5
		event := events.NewTrackingEvent("AuthUserChangeEnabled", nil, &value)
		Expect(event.Metric).NotTo(BeNil())
		Expect(*event.Metric).To(Equal(1.5))
	})
})
