package socket

import (
	"net"

	"golang.org/x/sys/unix"
)

// Candidate is one resolved local-address option. Listen tries
// candidates in order and commits to the first that binds.
type Candidate struct {
	Family   AddressFamily
	Sockaddr unix.Sockaddr
}

// resolvePassive is the default resolver. An empty host yields the
// wildcard address of the requested family. A hostname is resolved
// through the system resolver and filtered by family, preserving
// resolution order. An empty candidate list is not an error here; the
// bind loop reports it as a bind failure.
func resolvePassive(host string, port int, family AddressFamily, _ SocketKind) ([]Candidate, error) {
	if host == "" {
		switch family {
		case FamilyInet6:
			return []Candidate{{Family: FamilyInet6, Sockaddr: &unix.SockaddrInet6{Port: port}}}, nil
		default:
			return []Candidate{{Family: FamilyInet, Sockaddr: &unix.SockaddrInet4{Port: port}}}, nil
		}
	}

	ips, err := net.LookupIP(host)
	if err != nil {
		return nil, err
	}

	var out []Candidate
	for _, ip := range ips {
		if ip4 := ip.To4(); ip4 != nil {
			if family == FamilyInet {
				sa := &unix.SockaddrInet4{Port: port}
				copy(sa.Addr[:], ip4)
				out = append(out, Candidate{Family: FamilyInet, Sockaddr: sa})
			}
			continue
		}
		if family == FamilyInet6 {
			sa := &unix.SockaddrInet6{Port: port}
			copy(sa.Addr[:], ip.To16())
			out = append(out, Candidate{Family: FamilyInet6, Sockaddr: sa})
		}
	}

	return out, nil
}
