package orrery

import "errors"

var (
	// ErrEntityDoesNotExist is returned by every entity-targeted operation
	// that is given an id outside the live set. Callers must check for it; it
	// is not fatal.
	ErrEntityDoesNotExist = errors.New("entity does not exist")

	// ErrCircularRelationship is returned by Parent when the requested edge
	// would create a cycle. The hierarchy is left untouched.
	ErrCircularRelationship = errors.New("relationship would create a cycle")

	// ErrComponentNotOnEntity is returned by GetComponent when the entity does
	// not hold the requested component.
	ErrComponentNotOnEntity = errors.New("component not on entity")

	// ErrComponentNotFound is returned by GetOneComponent when no instance of
	// the component exists anywhere in the world.
	ErrComponentNotFound = errors.New("no instance of component exists")

	// ErrSystemNotFound is returned by GetSystem and RemoveSystem when no
	// registered system matches the requested type.
	ErrSystemNotFound = errors.New("system not found")
)
