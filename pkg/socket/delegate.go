package socket

// Delegate is the capability contract for an external transport
// security layer (e.g. TLS). The socket never inspects delegate
// state; it calls InitializeAsServer before binding a listener and
// Deinitialize unconditionally during teardown. Deinitialize must not
// fail outward. The socket holds a non-owning reference; the
// delegate's lifetime is managed by its holder.
type Delegate interface {
	InitializeAsServer() error
	Deinitialize()
}
