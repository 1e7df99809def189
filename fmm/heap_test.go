package fmm

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandleHeapPopsInAscendingOrder(t *testing.T) {
	h := newHandleHeap(16)
	keys := []float64{5, 1, 9, 3, 7, 2, 8, 0, 6, 4}
	for i, k := range keys {
		h.Push(i, k)
	}

	var popped []float64
	for h.Len() > 0 {
		_, k := h.PopMin()
		popped = append(popped, k)
	}

	want := append([]float64{}, keys...)
	sort.Float64s(want)
	require.Equal(t, want, popped)
}

func TestHandleHeapDecreaseKey(t *testing.T) {
	h := newHandleHeap(4)
	h.Push(0, 10)
	h.Push(1, 20)
	h.Push(2, 30)

	h.DecreaseKey(2, 1)
	off, key := h.PopMin()
	require.Equal(t, 2, off)
	require.Equal(t, 1.0, key)
}

func TestHandleHeapRandomized(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	const n = 500
	h := newHandleHeap(n)
	keys := make([]float64, n)
	for i := 0; i < n; i++ {
		keys[i] = r.Float64() * 1000
		h.Push(i, keys[i])
	}
	sorted := append([]float64{}, keys...)
	sort.Float64s(sorted)

	for i := 0; i < n; i++ {
		_, k := h.PopMin()
		require.Equal(t, sorted[i], k)
	}
}
