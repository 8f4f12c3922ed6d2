package events

import (
	"github.com/kelindar/event"
)

// Bus wraps the kelindar/event dispatcher shared by the panel components
type Bus struct {
	dispatcher *event.Dispatcher
}

func New() *Bus {
	return &Bus{
		dispatcher: event.NewDispatcher(),
	}
}

// Publish sends an event to every subscriber of its type, unknown types are dropped
func (b *Bus) Publish(ev Event) {
	switch e := ev.(type) {
	case ColorChanged:
		event.Publish(b.dispatcher, e)
	case SelectionChanged:
		event.Publish(b.dispatcher, e)
	case SceneChanged:
		event.Publish(b.dispatcher, e)
	case PreviewUpdated:
		event.Publish(b.dispatcher, e)
	case StripSelected:
		event.Publish(b.dispatcher, e)
	}
}

// Subscribe registers handler for the event type it accepts and returns the unsubscribe func.
// Handlers run asynchronously.
// Usage: unsub := bus.Subscribe(func(e PreviewUpdated) { ... })
func (b *Bus) Subscribe(handler any) func() {
	switch h := handler.(type) {
	case func(ColorChanged):
		return event.Subscribe(b.dispatcher, h)
	case func(SelectionChanged):
		return event.Subscribe(b.dispatcher, h)
	case func(SceneChanged):
		return event.Subscribe(b.dispatcher, h)
	case func(PreviewUpdated):
		return event.Subscribe(b.dispatcher, h)
	case func(StripSelected):
		return event.Subscribe(b.dispatcher, h)
	default:
		return func() {}
	}
}
