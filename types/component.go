package types

// Component is the interface implemented by all component values. Name is the
// component's identity: an entity holds at most one component per name, and
// names must be unique across all component types used with a World.
type Component interface {
	Name() string
}

// ComponentID is a dense identifier assigned to a component name the first
// time a World sees it. Stores and callback registries are keyed by
// ComponentID rather than by runtime type.
type ComponentID int

// Tag is a symbolic label shared by several component types, letting queries
// join across heterogeneous components that play one cross-cutting role.
type Tag string

// Tagged is implemented by component types that belong to one or more tags.
// Tag membership is read once, when the component type is first registered.
type Tagged interface {
	Tags() []Tag
}
