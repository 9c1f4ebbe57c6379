package socket

import (
	"golang.org/x/sys/unix"

	"rawsock/pkg/log"
)

// Listen binds the socket to a local address for the given port and
// transitions it into listening state with the given backlog. Port 0
// requests an OS-assigned ephemeral port; the actual port is read
// back from the OS and recorded in the Signature.
//
// Candidates from address resolution are tried for binding in order;
// the first success wins, so the family is not committed until bind
// proves it bindable. The Signature's address, hostname, and port are
// written only after address determination succeeds in full; any
// failure up to that point leaves them unset and the socket
// non-listening.
func (s *Socket) Listen(port int, backlog int) error {
	if s.closed {
		return newError(ErrAlreadyClosed, "socket is closed")
	}

	// Reuse the local address immediately after close. Failure here is
	// not fatal.
	if err := unix.SetsockoptInt(s.fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		log.ErrorMsg("setsockopt(SO_REUSEADDR): %s\n", err)
	}

	if caps.noSigPipeOpt != 0 {
		if err := unix.SetsockoptInt(s.fd, unix.SOL_SOCKET, caps.noSigPipeOpt, 1); err != nil {
			return wrapError(err, ErrSetSockOptFailed, "setsockopt(SO_NOSIGPIPE)")
		}
	}

	if s.sig == nil {
		return newError(ErrInternal, "socket has no signature")
	}

	if s.delegate != nil {
		if err := s.delegate.InitializeAsServer(); err != nil {
			return wrapError(err, ErrSecurityFailed, "initializing security delegate for server mode")
		}
	}

	resolve := GetResolveFunc(s.deps)
	cands, err := resolve("", port, s.sig.Family, s.sig.Kind)
	if err != nil {
		return wrapError(err, ErrGetAddrInfoFailed, "resolving local candidates for port %d", port)
	}

	bind := GetBindFunc(s.deps)
	var bound *Candidate
	var lastErr error
	for i := range cands {
		if err := bind(s.fd, cands[i].Sockaddr); err != nil {
			lastErr = err
			continue
		}
		bound = &cands[i]
		break
	}
	if bound == nil {
		if lastErr != nil {
			return wrapError(lastErr, ErrBindFailed, "binding to %d candidate address(es)", len(cands))
		}
		return newError(ErrBindFailed, "no candidate addresses to bind")
	}

	var addr *Address
	if port != 0 {
		addr, err = addressFromSockaddr(bound.Sockaddr)
		if err != nil {
			return err
		}
	} else {
		sa, gerr := GetGetsocknameFunc(s.deps)(s.fd)
		if gerr != nil {
			return wrapError(gerr, ErrBindFailed, "querying OS-assigned address")
		}
		addr, err = addressFromSockaddr(sa)
		if err != nil {
			return err
		}
	}

	s.sig.Address = addr
	s.sig.Hostname = addr.IP().String()
	s.sig.Port = addr.Port()

	if err := GetSysListenFunc(s.deps)(s.fd, backlog); err != nil {
		return wrapError(err, ErrListenFailed, "listen with backlog %d", backlog)
	}

	s.listening = true
	s.sig.Secure = s.delegate != nil

	log.VerboseMsg("Listening on %s\n", addr)

	return nil
}
