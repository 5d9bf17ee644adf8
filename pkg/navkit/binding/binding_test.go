package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoolRoutesWrites(t *testing.T) {
	state := true
	var writes []bool

	b := NewBool(
		func() bool { return state },
		func(v bool) {
			writes = append(writes, v)
			if !v {
				state = false
			}
		},
	)

	assert.True(t, b.Get())
	b.Set(false)
	assert.False(t, b.Get())
	assert.Equal(t, []bool{false}, writes)
}

func TestZeroAndConstantBool(t *testing.T) {
	var zero Bool
	assert.False(t, zero.Get())
	zero.Set(true) // no setter, no panic

	c := Constant(true)
	c.Set(false)
	assert.True(t, c.Get())
}

func TestHubDeliversInSubscriptionOrder(t *testing.T) {
	var h Hub[string]
	var got []string

	h.Subscribe(func(e string) { got = append(got, "a:"+e) })
	h.Subscribe(func(e string) { got = append(got, "b:"+e) })

	h.Emit("x")
	assert.Equal(t, []string{"a:x", "b:x"}, got)
	assert.Equal(t, 2, h.Len())
}

func TestHubBatchesUntilOutermostEnd(t *testing.T) {
	h := NewHub[int]()
	var got []int
	h.Subscribe(func(e int) { got = append(got, e) })

	h.Begin()
	h.Emit(1)
	h.Begin()
	h.Emit(2)
	h.End()
	assert.Empty(t, got, "inner End must not flush")

	h.Emit(3)
	h.End()
	assert.Equal(t, []int{1, 2, 3}, got)

	// Unbalanced End is ignored.
	h.End()
	h.Emit(4)
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestHubCancel(t *testing.T) {
	h := NewHub[int]()
	calls := 0
	cancel := h.Subscribe(func(int) { calls++ })

	h.Emit(1)
	cancel()
	cancel()
	h.Emit(2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, h.Len())
}

func TestHubSubscriberCancelsItselfDuringDelivery(t *testing.T) {
	h := NewHub[int]()
	var got []string

	var cancel func()
	cancel = h.Subscribe(func(int) {
		got = append(got, "once")
		cancel()
	})
	h.Subscribe(func(int) { got = append(got, "always") })

	h.Emit(1)
	h.Emit(2)

	assert.Equal(t, []string{"once", "always", "always"}, got)
}
