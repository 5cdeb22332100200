package orrery

import (
	"github.com/rotisserie/eris"

	"github.com/orrery-engine/orrery/storage"
	"github.com/orrery-engine/orrery/types"
)

// RelationshipName is the registered component name of Relationship.
const RelationshipName = "orrery.relationship"

// noChildren is the shared view returned for entities without children, so
// Children never allocates for the common leaf case.
var noChildren = []types.EntityID{}

// Relationship records an entity's place in the parent/child forest: a single
// optional parent and a set of children. It is attached lazily, through the
// ordinary component path, the first time an entity participates in Parent or
// Unparent. The parent→child edges always form a forest; Parent refuses edges
// that would create a cycle.
type Relationship struct {
	parent    types.EntityID
	hasParent bool
	children  *storage.SparseSet[struct{}]
}

// Name implements types.Component.
func (*Relationship) Name() string { return RelationshipName }

// ParentID returns the parent entity and whether one is set.
func (r *Relationship) ParentID() (types.EntityID, bool) {
	return r.parent, r.hasParent
}

// Children returns a read-only view of the child set. The slice aliases
// internal storage: it must not be mutated, and it is invalidated by the next
// hierarchy change. Entities without children share one empty slice.
func (r *Relationship) Children() []types.EntityID {
	if r.children == nil || r.children.Len() == 0 {
		return noChildren
	}
	return r.children.Entities()
}

// HasChild reports whether e is a direct child.
func (r *Relationship) HasChild(e types.EntityID) bool {
	return r.children != nil && r.children.Has(e)
}

func (r *Relationship) addChild(e types.EntityID) {
	if r.children == nil {
		r.children = storage.NewSparseSet[struct{}](0)
	}
	r.children.Add(e, struct{}{})
}

func (r *Relationship) removeChild(e types.EntityID) {
	if r.children != nil {
		r.children.Remove(e)
	}
}

// Parent makes child a child of parent. A Relationship component is attached
// lazily to both sides. If the edge would create a cycle the hierarchy is left
// untouched and ErrCircularRelationship is returned. A child that already has
// a different parent is unparented from it first.
func (w *World) Parent(parent, child types.EntityID) error {
	if !w.entities.Has(parent) || !w.entities.Has(child) {
		return eris.Wrap(ErrEntityDoesNotExist, "parent")
	}

	pRel, err := w.ensureRelationship(parent)
	if err != nil {
		return err
	}

	// Walk parent's ancestor chain looking for child before touching any
	// edges. The walk starts at parent itself so self-parenting is rejected
	// too.
	for cur, walking := parent, true; walking; {
		if cur == child {
			return eris.Wrap(ErrCircularRelationship, "parent")
		}
		rel, ok := w.relationshipOf(cur)
		if !ok {
			break
		}
		cur, walking = rel.parent, rel.hasParent
	}

	cRel, err := w.ensureRelationship(child)
	if err != nil {
		return err
	}

	if cRel.hasParent && cRel.parent != parent {
		if err := w.Unparent(cRel.parent, child); err != nil {
			return err
		}
	}

	pRel.addChild(child)
	cRel.parent = parent
	cRel.hasParent = true
	return nil
}

// Unparent removes the parent→child edge. It is a no-op when either side has
// no Relationship component, and child's parent pointer is only cleared when
// it currently points at parent.
func (w *World) Unparent(parent, child types.EntityID) error {
	if !w.entities.Has(parent) || !w.entities.Has(child) {
		return eris.Wrap(ErrEntityDoesNotExist, "unparent")
	}
	pRel, ok := w.relationshipOf(parent)
	if !ok {
		return nil
	}
	cRel, ok := w.relationshipOf(child)
	if !ok {
		return nil
	}
	if cRel.hasParent && cRel.parent == parent {
		cRel.parent = 0
		cRel.hasParent = false
	}
	pRel.removeChild(child)
	return nil
}

// RelationshipOf returns e's Relationship component, if it has one.
func (w *World) RelationshipOf(e types.EntityID) (*Relationship, bool) {
	return w.relationshipOf(e)
}

func (w *World) relationshipOf(e types.EntityID) (*Relationship, bool) {
	c, ok := w.Component(e, RelationshipName)
	if !ok {
		return nil, false
	}
	return c.(*Relationship), true
}

// ensureRelationship lazily attaches a Relationship to e through the ordinary
// component path, so component-added callbacks observe it.
func (w *World) ensureRelationship(e types.EntityID) (*Relationship, error) {
	if rel, ok := w.relationshipOf(e); ok {
		return rel, nil
	}
	rel := &Relationship{}
	if err := w.AddComponent(e, rel); err != nil {
		return nil, err
	}
	return rel, nil
}
