package socket

import (
	"net"

	"golang.org/x/sys/unix"

	"rawsock/pkg/format"
)

// Address wraps a concrete IPv4 or IPv6 socket address. The family tag
// always matches the stored layout; v4 bytes are never read as v6.
type Address struct {
	family AddressFamily
	v4     unix.SockaddrInet4
	v6     unix.SockaddrInet6
}

// addressFromSockaddr builds an Address from a sockaddr returned by
// bind candidates, getsockname, or accept.
func addressFromSockaddr(sa unix.Sockaddr) (*Address, error) {
	switch v := sa.(type) {
	case *unix.SockaddrInet4:
		return &Address{family: FamilyInet, v4: *v}, nil
	case *unix.SockaddrInet6:
		return &Address{family: FamilyInet6, v6: *v}, nil
	}
	return nil, newError(ErrWrongProtocol, "address family is neither IPv4 nor IPv6")
}

// Family returns the address family of the stored address.
func (a *Address) Family() AddressFamily {
	return a.family
}

// Port returns the port encoded in the address.
func (a *Address) Port() int {
	if a.family == FamilyInet6 {
		return a.v6.Port
	}
	return a.v4.Port
}

// IP returns the IP encoded in the address.
func (a *Address) IP() net.IP {
	if a.family == FamilyInet6 {
		ip := make(net.IP, net.IPv6len)
		copy(ip, a.v6.Addr[:])
		return ip
	}
	return net.IPv4(a.v4.Addr[0], a.v4.Addr[1], a.v4.Addr[2], a.v4.Addr[3])
}

// Sockaddr returns a copy of the platform sockaddr.
func (a *Address) Sockaddr() unix.Sockaddr {
	if a.family == FamilyInet6 {
		sa := a.v6
		return &sa
	}
	sa := a.v4
	return &sa
}

func (a *Address) String() string {
	return format.Addr(a.IP().String(), a.Port())
}
