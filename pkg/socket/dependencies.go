package socket

import (
	"golang.org/x/sys/unix"
)

// Dependencies contains injectable syscall and resolver functions for
// testing and customization. All fields are optional and will use the
// real platform implementations if nil.
type Dependencies struct {
	Resolve     ResolveFunc
	Bind        BindFunc
	Getsockname GetsocknameFunc
	SysListen   SysListenFunc
}

// ResolveFunc resolves passive (bindable) local address candidates
// for the given host, port, and socket configuration. An empty host
// requests the wildcard address of the family. Candidates are tried
// for binding in the order returned.
type ResolveFunc func(host string, port int, family AddressFamily, kind SocketKind) ([]Candidate, error)

// BindFunc binds a socket descriptor to a local address.
type BindFunc func(fd int, sa unix.Sockaddr) error

// GetsocknameFunc queries the local address a descriptor is bound to.
type GetsocknameFunc func(fd int) (unix.Sockaddr, error)

// SysListenFunc transitions a bound descriptor into listening state.
type SysListenFunc func(fd int, backlog int) error

// GetResolveFunc returns the resolver from deps, or the default
// passive resolver.
func GetResolveFunc(deps *Dependencies) ResolveFunc {
	if deps != nil && deps.Resolve != nil {
		return deps.Resolve
	}
	return resolvePassive
}

// GetBindFunc returns the bind function from deps, or unix.Bind.
func GetBindFunc(deps *Dependencies) BindFunc {
	if deps != nil && deps.Bind != nil {
		return deps.Bind
	}
	return unix.Bind
}

// GetGetsocknameFunc returns the getsockname function from deps, or
// unix.Getsockname.
func GetGetsocknameFunc(deps *Dependencies) GetsocknameFunc {
	if deps != nil && deps.Getsockname != nil {
		return deps.Getsockname
	}
	return unix.Getsockname
}

// GetSysListenFunc returns the listen function from deps, or
// unix.Listen.
func GetSysListenFunc(deps *Dependencies) SysListenFunc {
	if deps != nil && deps.SysListen != nil {
		return deps.SysListen
	}
	return unix.Listen
}
