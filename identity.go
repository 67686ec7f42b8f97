package decider

// Identity is implemented by types that can produce a canonical
// identity value of type T, such as deriving a stable aggregate or
// stream identifier from a command or state value. The core provides
// no default implementation; the id package offers generators domains
// commonly back this with.
type Identity[T any] interface {
	Identity() T
}
