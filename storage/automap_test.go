package storage_test

import (
	"testing"

	"github.com/orrery-engine/orrery/assert"
	"github.com/orrery-engine/orrery/storage"
)

func TestAutoMapConstructsOnMiss(t *testing.T) {
	built := 0
	m := storage.NewAutoMap(func(k string) *[]int {
		built++
		return &[]int{}
	})

	first := m.Get("a")
	assert.Equal(t, built, 1)

	// A second Get returns the same constructed value.
	second := m.Get("a")
	assert.Equal(t, built, 1)
	assert.True(t, first == second)

	m.Get("b")
	assert.Equal(t, built, 2)
	assert.Equal(t, m.Len(), 2)
}

func TestAutoMapPeekDoesNotConstruct(t *testing.T) {
	built := 0
	m := storage.NewAutoMap(func(k int) int {
		built++
		return k * 2
	})

	_, ok := m.Peek(1)
	assert.False(t, ok)
	assert.Equal(t, built, 0)

	m.Get(1)
	v, ok := m.Peek(1)
	assert.True(t, ok)
	assert.Equal(t, v, 2)
}

func TestAutoMapDelete(t *testing.T) {
	m := storage.NewAutoMap(func(k string) int { return len(k) })
	m.Get("xyz")
	m.Delete("xyz")

	_, ok := m.Peek("xyz")
	assert.False(t, ok)
	assert.Equal(t, m.Len(), 0)
}

func TestAutoMapEach(t *testing.T) {
	m := storage.NewAutoMap(func(k string) int { return len(k) })
	m.Get("a")
	m.Get("bb")
	m.Get("ccc")

	seen := map[string]int{}
	m.Each(func(k string, v int) bool {
		seen[k] = v
		return true
	})
	assert.DeepEqual(t, seen, map[string]int{"a": 1, "bb": 2, "ccc": 3})
}
