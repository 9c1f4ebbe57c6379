package socket

import (
	"golang.org/x/sys/unix"
)

// Accept blocks until a connection arrives on a listening socket and
// returns it as a new connected Socket with its own read buffer. The
// child's signature records the peer address; Secure is inherited
// from the listener since the delegate wraps accepted connections.
func (s *Socket) Accept() (*Socket, error) {
	if s.closed {
		return nil, newError(ErrAlreadyClosed, "socket is closed")
	}
	if !s.listening {
		return nil, newError(ErrAcceptFailed, "socket is not listening")
	}

	nfd, sa, err := unix.Accept(s.fd)
	if err != nil {
		return nil, wrapError(err, ErrAcceptFailed, "accept")
	}

	addr, err := addressFromSockaddr(sa)
	if err != nil {
		_ = unix.Close(nfd)
		return nil, err
	}

	// Accepted descriptors do not inherit SO_NOSIGPIPE.
	if caps.noSigPipeOpt != 0 {
		if err := unix.SetsockoptInt(nfd, unix.SOL_SOCKET, caps.noSigPipeOpt, 1); err != nil {
			_ = unix.Close(nfd)
			return nil, wrapError(err, ErrSetSockOptFailed, "setsockopt(SO_NOSIGPIPE) on accepted socket")
		}
	}

	return &Socket{
		fd:  nfd,
		buf: make([]byte, readBufferSize),
		sig: &Signature{
			Family:   addr.Family(),
			Kind:     s.sig.Kind,
			Protocol: s.sig.Protocol,
			Address:  addr,
			Hostname: addr.IP().String(),
			Port:     addr.Port(),
			Secure:   s.sig.Secure,
		},
	}, nil
}
