package storage_test

import (
	"testing"

	"github.com/orrery-engine/orrery/assert"
	"github.com/orrery-engine/orrery/storage"
	"github.com/orrery-engine/orrery/types"
)

type sword struct{ Damage int }

func (sword) Name() string { return "sword" }

type shield struct{ Block int }

func (shield) Name() string { return "shield" }

const (
	swordID  types.ComponentID = 0
	shieldID types.ComponentID = 1
)

func TestTagSetAddGetRemove(t *testing.T) {
	ts := storage.NewTagSet()

	assert.True(t, ts.Add(swordID, 1, sword{Damage: 3}))
	assert.True(t, ts.Add(shieldID, 1, shield{Block: 2}))
	assert.Equal(t, ts.Len(), 2)

	c, ok := ts.Get(swordID, 1)
	assert.True(t, ok)
	assert.Equal(t, c.(sword).Damage, 3)

	assert.True(t, ts.Remove(swordID, 1))
	assert.False(t, ts.Remove(swordID, 1))
	assert.Equal(t, ts.Len(), 1)

	// Removing from a type the group has never seen is a no-op.
	assert.False(t, ts.Remove(types.ComponentID(99), 1))
}

func TestTagSetEachFlattensGroupedTypes(t *testing.T) {
	ts := storage.NewTagSet()
	ts.Add(swordID, 1, sword{Damage: 1})
	ts.Add(swordID, 2, sword{Damage: 2})
	ts.Add(shieldID, 1, shield{Block: 5})

	type pair struct {
		Entity types.EntityID
		Name   string
	}
	var got []pair
	ts.Each(func(e types.EntityID, c types.Component) bool {
		got = append(got, pair{e, c.Name()})
		return true
	})
	assert.DeepEqual(t, got, []pair{{1, "sword"}, {2, "sword"}, {1, "shield"}})
}

func TestTagSetEachOfScansOneEntity(t *testing.T) {
	ts := storage.NewTagSet()
	ts.Add(swordID, 1, sword{Damage: 1})
	ts.Add(shieldID, 1, shield{Block: 5})
	ts.Add(swordID, 2, sword{Damage: 9})

	var names []string
	ts.EachOf(1, func(c types.Component) bool {
		names = append(names, c.Name())
		return true
	})
	assert.DeepEqual(t, names, []string{"sword", "shield"})

	names = names[:0]
	ts.EachOf(3, func(c types.Component) bool {
		names = append(names, c.Name())
		return true
	})
	assert.Len(t, names, 0)
}
