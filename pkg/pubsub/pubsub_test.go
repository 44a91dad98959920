package pubsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub_PublishReachesAllSubscribers(t *testing.T) {
	var h Hub[int]

	var a, b []int
	h.Subscribe(func(v int) { a = append(a, v) })
	h.Subscribe(func(v int) { b = append(b, v) })

	h.Publish(1)
	h.Publish(2)

	assert.Equal(t, []int{1, 2}, a)
	assert.Equal(t, []int{1, 2}, b)
}

func TestHub_SubscriptionOrderPreserved(t *testing.T) {
	var h Hub[string]

	var got []string
	h.Subscribe(func(string) { got = append(got, "first") })
	h.Subscribe(func(string) { got = append(got, "second") })
	h.Subscribe(func(string) { got = append(got, "third") })

	h.Publish("x")

	assert.Equal(t, []string{"first", "second", "third"}, got)
}

func TestHub_Unsubscribe(t *testing.T) {
	var h Hub[int]

	var calls int
	unsub := h.Subscribe(func(int) { calls++ })

	h.Publish(1)
	unsub()
	h.Publish(2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, h.Len())
}

func TestHub_UnsubscribeTwice(t *testing.T) {
	var h Hub[int]

	unsub := h.Subscribe(func(int) {})
	unsub()
	unsub()

	assert.Equal(t, 0, h.Len())
}

func TestHub_SubscriberMayUnsubscribeItself(t *testing.T) {
	var h Hub[int]

	var calls int
	var unsub func()
	unsub = h.Subscribe(func(int) {
		calls++
		unsub()
	})

	h.Publish(1)
	h.Publish(2)

	assert.Equal(t, 1, calls)
}

func TestHub_PublishWithNoSubscribers(t *testing.T) {
	var h Hub[struct{}]

	assert.NotPanics(t, func() { h.Publish(struct{}{}) })
}
