package types

// EntityID is the opaque handle for an entity. IDs are handed out
// monotonically by a World and are never reused.
type EntityID uint64

// SingletonID is the entity pre-allocated by every World. By convention it
// holds world-global ("singleton") components.
const SingletonID EntityID = 0
