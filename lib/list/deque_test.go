package list

import (
	stdlist "container/list"
	randv2 "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeque_Empty(t *testing.T) {
	dq := NewDeque[int]()
	require.True(t, dq.IsEmpty())
	require.Equal(t, int64(0), dq.Len())

	_, ok := dq.PopFront()
	require.False(t, ok)
	_, ok = dq.PopBack()
	require.False(t, ok)
	_, ok = dq.Back()
	require.False(t, ok)
	dq.Clear()
	require.True(t, dq.IsEmpty())
}

func TestDeque_AsStack(t *testing.T) {
	dq := NewDeque[int]()
	for i := 0; i < 5; i++ {
		dq.PushBack(i)
	}
	require.Equal(t, int64(5), dq.Len())

	top, ok := dq.Back()
	require.True(t, ok)
	require.Equal(t, 4, top)

	for i := 4; i >= 0; i-- {
		v, ok := dq.PopBack()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	require.True(t, dq.IsEmpty())
}

func TestDeque_AsQueue(t *testing.T) {
	dq := NewDeque[string]()
	dq.PushBack("a")
	dq.PushBack("b")
	dq.PushBack("c")

	tail, ok := dq.Back()
	require.True(t, ok)
	require.Equal(t, "c", tail)

	for _, expected := range []string{"a", "b", "c"} {
		v, ok := dq.PopFront()
		require.True(t, ok)
		require.Equal(t, expected, v)
	}
	require.True(t, dq.IsEmpty())
}

func TestDeque_Clear(t *testing.T) {
	dq := NewDeque[int]()
	for i := 0; i < 4; i++ {
		dq.PushBack(i)
	}
	v, ok := dq.PopFront()
	require.True(t, ok)
	require.Equal(t, 0, v)
	require.Equal(t, int64(3), dq.Len())

	dq.Clear()
	require.True(t, dq.IsEmpty())
	_, ok = dq.PopBack()
	require.False(t, ok)

	dq.PushBack(7)
	v, ok = dq.PopFront()
	require.True(t, ok)
	require.Equal(t, 7, v)
}

func TestDeque_CompareWithContainerList(t *testing.T) {
	rng := randv2.New(randv2.NewPCG(1, 2))
	dq := NewDeque[int]()
	std := stdlist.New()

	for i := 0; i < 10_000; i++ {
		switch op := rng.IntN(4); op {
		case 0, 1:
			dq.PushBack(i)
			std.PushBack(i)
		case 2:
			v, ok := dq.PopFront()
			if e := std.Front(); e != nil {
				require.True(t, ok)
				require.Equal(t, std.Remove(e), v)
			} else {
				require.False(t, ok)
			}
		case 3:
			v, ok := dq.PopBack()
			if e := std.Back(); e != nil {
				require.True(t, ok)
				require.Equal(t, std.Remove(e), v)
			} else {
				require.False(t, ok)
			}
		}
		require.Equal(t, int64(std.Len()), dq.Len())
	}

	for e := std.Front(); e != nil; e = e.Next() {
		v, ok := dq.PopFront()
		require.True(t, ok)
		require.Equal(t, e.Value, v)
	}
	require.True(t, dq.IsEmpty())
}

func BenchmarkDeque_PushPop(b *testing.B) {
	dq := NewDeque[int]()
	for i := 0; i < b.N; i++ {
		dq.PushBack(i)
		if i&0x3 == 0 {
			dq.PopBack()
		}
	}
}
