package socket

import (
	"golang.org/x/sys/unix"
)

// AddressFamily selects the IP address family of a socket.
type AddressFamily int

const (
	FamilyInet AddressFamily = iota // IPv4
	FamilyInet6                     // IPv6
)

// Native returns the platform constant for the family.
func (f AddressFamily) Native() int {
	switch f {
	case FamilyInet6:
		return unix.AF_INET6
	default:
		return unix.AF_INET
	}
}

// AddressFamilyFromNative maps a platform constant back to a family.
// Unrecognized values return false, never a panic.
func AddressFamilyFromNative(v int) (AddressFamily, bool) {
	switch v {
	case unix.AF_INET:
		return FamilyInet, true
	case unix.AF_INET6:
		return FamilyInet6, true
	}
	return 0, false
}

func (f AddressFamily) String() string {
	switch f {
	case FamilyInet6:
		return "inet6"
	default:
		return "inet"
	}
}

// SocketKind selects the communication style of a socket.
type SocketKind int

const (
	SocketStream   SocketKind = iota // connection-oriented byte stream
	SocketDatagram                   // connectionless datagrams (not supported)
)

// Native returns the platform constant for the kind.
func (k SocketKind) Native() int {
	switch k {
	case SocketDatagram:
		return unix.SOCK_DGRAM
	default:
		return unix.SOCK_STREAM
	}
}

// SocketKindFromNative maps a platform constant back to a kind.
func SocketKindFromNative(v int) (SocketKind, bool) {
	switch v {
	case unix.SOCK_STREAM:
		return SocketStream, true
	case unix.SOCK_DGRAM:
		return SocketDatagram, true
	}
	return 0, false
}

func (k SocketKind) String() string {
	switch k {
	case SocketDatagram:
		return "datagram"
	default:
		return "stream"
	}
}

// SocketProtocol selects the transport protocol of a socket.
type SocketProtocol int

const (
	ProtoTCP SocketProtocol = iota
	ProtoUDP                // not supported
)

// Native returns the platform constant for the protocol.
func (p SocketProtocol) Native() int {
	switch p {
	case ProtoUDP:
		return unix.IPPROTO_UDP
	default:
		return unix.IPPROTO_TCP
	}
}

// SocketProtocolFromNative maps a platform constant back to a protocol.
func SocketProtocolFromNative(v int) (SocketProtocol, bool) {
	switch v {
	case unix.IPPROTO_TCP:
		return ProtoTCP, true
	case unix.IPPROTO_UDP:
		return ProtoUDP, true
	}
	return 0, false
}

func (p SocketProtocol) String() string {
	switch p {
	case ProtoUDP:
		return "udp"
	default:
		return "tcp"
	}
}
