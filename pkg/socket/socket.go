// Package socket abstracts raw operating-system socket primitives:
// creating a descriptor from a validated family/kind/protocol triple,
// binding it to a local address, and transitioning it into listening
// state, with an optional pluggable transport-security delegate.
// Only TCP stream sockets over IPv4/IPv6 are supported.
//
// All operations are synchronous and blocking, with no internal
// locking; callers must serialize Listen and Close on one instance.
package socket

import (
	"golang.org/x/sys/unix"
)

// DefaultBacklog is the listen queue size used when callers have no
// reason to pick another.
const DefaultBacklog = 50

const readBufferSize = 4096

const invalidFD = -1

// Socket owns an OS socket descriptor, a fixed-size read buffer, and
// the Signature describing its identity. The descriptor is either a
// valid open handle or invalidFD, and is closed exactly once.
type Socket struct {
	fd        int
	buf       []byte
	sig       *Signature
	delegate  Delegate
	deps      *Dependencies
	listening bool
	closed    bool
}

// Create opens a raw socket for the given triple. Datagram sockets
// and UDP are not implemented and fail with NOT_SUPPORTED_YET. On
// failure no half-initialized socket is returned.
func Create(family AddressFamily, kind SocketKind, proto SocketProtocol) (*Socket, error) {
	if kind == SocketDatagram {
		return nil, newError(ErrNotSupportedYet, "datagram sockets are not implemented")
	}
	if proto == ProtoUDP {
		return nil, newError(ErrNotSupportedYet, "the UDP protocol is not implemented")
	}

	return newSocket(family, kind, proto)
}

// Default opens an IPv4 TCP stream socket.
func Default() (*Socket, error) {
	return Create(FamilyInet, SocketStream, ProtoTCP)
}

func newSocket(family AddressFamily, kind SocketKind, proto SocketProtocol) (*Socket, error) {
	fd, err := unix.Socket(family.Native(), kind.Native(), proto.Native())
	if err != nil {
		return nil, wrapError(err, ErrCreateFailed, "socket(%s, %s, %s)", family, kind, proto)
	}

	return &Socket{
		fd:  fd,
		buf: make([]byte, readBufferSize),
		sig: &Signature{
			Family:   family,
			Kind:     kind,
			Protocol: proto,
		},
	}, nil
}

// SetDelegate attaches a transport-security delegate. Attach before
// Listen; the socket does not take ownership.
func (s *Socket) SetDelegate(d Delegate) {
	s.delegate = d
}

// SetDependencies overrides the syscall and resolver functions used
// by Listen, for testing and customization.
func (s *Socket) SetDependencies(deps *Dependencies) {
	s.deps = deps
}

// Signature returns a copy of the socket's identity record.
func (s *Socket) Signature() Signature {
	if s.sig == nil {
		return Signature{}
	}
	return *s.sig
}

// IsListening reports whether Listen has succeeded on this socket.
func (s *Socket) IsListening() bool {
	return s.listening
}

// FD returns the underlying descriptor, or -1 after Close.
func (s *Socket) FD() int {
	return s.fd
}

// Close tears the socket down: closes the descriptor if it is open,
// releases the read buffer, then calls Deinitialize on an attached
// delegate, in that order. Close is idempotent; the descriptor is
// never closed twice. A closed socket cannot be reused.
func (s *Socket) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.listening = false

	var err error
	if s.fd != invalidFD {
		err = unix.Close(s.fd)
		s.fd = invalidFD
	}

	s.buf = nil

	if s.delegate != nil {
		s.delegate.Deinitialize()
	}

	return err
}
