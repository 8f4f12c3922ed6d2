package events_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wheelibin/ledpanel/internal/events"
	"github.com/wheelibin/ledpanel/internal/models"
)

func Test_Bus(t *testing.T) {

	t.Run("delivers events to subscribers of that type", func(t *testing.T) {
		// arrange
		bus := events.New()
		received := make(chan events.StripSelected, 1)
		unsub := bus.Subscribe(func(e events.StripSelected) {
			received <- e
		})
		defer unsub()

		// act
		bus.Publish(events.StripSelected{Strip: models.Strip{ID: 3, Name: "desk"}})

		// assert
		select {
		case got := <-received:
			assert.Equal(t, "desk", got.Strip.Name)
		case <-time.After(time.Second):
			t.Fatal("event not delivered")
		}
	})

	t.Run("delivers to multiple subscribers", func(t *testing.T) {
		// arrange
		bus := events.New()
		received1 := make(chan events.SceneChanged, 1)
		received2 := make(chan events.SceneChanged, 1)
		unsub1 := bus.Subscribe(func(e events.SceneChanged) { received1 <- e })
		defer unsub1()
		unsub2 := bus.Subscribe(func(e events.SceneChanged) { received2 <- e })
		defer unsub2()

		// act
		bus.Publish(events.SceneChanged{Name: "sunset"})

		// assert
		assert.Equal(t, "sunset", (<-received1).Name)
		assert.Equal(t, "sunset", (<-received2).Name)
	})

	t.Run("stops delivering after unsubscribe", func(t *testing.T) {
		// arrange
		bus := events.New()
		received := make(chan events.ColorChanged, 1)
		unsub := bus.Subscribe(func(e events.ColorChanged) { received <- e })
		bus.Publish(events.ColorChanged{Hue: true})
		<-received

		// act
		unsub()
		bus.Publish(events.ColorChanged{Hue: true})

		// assert
		select {
		case <-received:
			t.Fatal("received event after unsubscribe")
		case <-time.After(20 * time.Millisecond):
		}
	})

	t.Run("unknown handler types get a no-op unsubscribe", func(t *testing.T) {
		bus := events.New()
		unsub := bus.Subscribe(func(s string) {})
		assert.NotPanics(t, unsub)
	})
}
