package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub_PublishInSubscriptionOrder(t *testing.T) {
	hub := NewHub()
	var order []string

	hub.Subscribe(func(ev *KeyEvent) { order = append(order, "first:"+ev.Key) })
	hub.Subscribe(func(ev *KeyEvent) { order = append(order, "second:"+ev.Key) })
	hub.Publish(NewKeyEvent("x"))

	assert.Equal(t, []string{"first:x", "second:x"}, order)
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := NewHub()
	calls := 0

	unsub := hub.Subscribe(func(*KeyEvent) { calls++ })
	hub.Publish(NewKeyEvent("a"))
	unsub()
	unsub()
	hub.Publish(NewKeyEvent("b"))

	assert.Equal(t, 1, calls)
	assert.Zero(t, hub.Len())
}

func TestHub_UnsubscribeDuringPublish(t *testing.T) {
	hub := NewHub()
	var got []string

	var unsubFirst func()
	unsubFirst = hub.Subscribe(func(ev *KeyEvent) {
		got = append(got, "first:"+ev.Key)
		unsubFirst()
	})
	hub.Subscribe(func(ev *KeyEvent) { got = append(got, "second:"+ev.Key) })

	hub.Publish(NewKeyEvent("a"))
	hub.Publish(NewKeyEvent("b"))

	assert.Equal(t, []string{"first:a", "second:a", "second:b"}, got)
}

func TestHub_PreventedEventSeenByLaterSubscribers(t *testing.T) {
	hub := NewHub()
	var prevented bool

	hub.Subscribe(func(ev *KeyEvent) { ev.PreventDefault() })
	hub.Subscribe(func(ev *KeyEvent) { prevented = ev.DefaultPrevented() })
	hub.Publish(NewKeyEvent("a"))

	assert.True(t, prevented)
}
