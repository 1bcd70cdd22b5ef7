package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignal_SetNotifiesInOrder(t *testing.T) {
	s := NewSignal("/")
	var seen []string

	s.Subscribe(func(v string) { seen = append(seen, "a:"+v) })
	s.Subscribe(func(v string) { seen = append(seen, "b:"+v) })

	s.Set("/topics")

	assert.Equal(t, "/topics", s.Get())
	assert.Equal(t, []string{"a:/topics", "b:/topics"}, seen)
}

func TestSignal_SameValueDoesNotNotify(t *testing.T) {
	s := NewSignal(1)
	calls := 0
	s.Subscribe(func(int) { calls++ })

	s.Set(1)
	assert.Zero(t, calls)
}

func TestSignal_UnsubscribeMiddle(t *testing.T) {
	s := NewSignal(0)
	var seen []string

	s.Subscribe(func(int) { seen = append(seen, "first") })
	stop := s.Subscribe(func(int) { seen = append(seen, "second") })
	s.Subscribe(func(int) { seen = append(seen, "third") })

	stop()
	stop() // second call is harmless
	s.Set(5)

	assert.Equal(t, []string{"first", "third"}, seen)
}
