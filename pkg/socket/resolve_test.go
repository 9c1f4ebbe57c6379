package socket

import (
	"net"
	"testing"

	"golang.org/x/sys/unix"
)

func TestResolvePassive_WildcardInet(t *testing.T) {
	t.Parallel()

	cands, err := resolvePassive("", 8080, FamilyInet, SocketStream)
	if err != nil {
		t.Fatalf("resolvePassive() error = %v", err)
	}
	if len(cands) != 1 {
		t.Fatalf("got %d candidates, want 1", len(cands))
	}
	if cands[0].Family != FamilyInet {
		t.Errorf("candidate family = %s, want inet", cands[0].Family)
	}
	sa, ok := cands[0].Sockaddr.(*unix.SockaddrInet4)
	if !ok {
		t.Fatal("candidate sockaddr is not *unix.SockaddrInet4")
	}
	if sa.Port != 8080 {
		t.Errorf("candidate port = %d, want 8080", sa.Port)
	}
	if sa.Addr != [4]byte{} {
		t.Errorf("candidate address = %v, want the wildcard", sa.Addr)
	}
}

func TestResolvePassive_WildcardInet6(t *testing.T) {
	t.Parallel()

	cands, err := resolvePassive("", 9090, FamilyInet6, SocketStream)
	if err != nil {
		t.Fatalf("resolvePassive() error = %v", err)
	}
	if len(cands) != 1 {
		t.Fatalf("got %d candidates, want 1", len(cands))
	}
	sa, ok := cands[0].Sockaddr.(*unix.SockaddrInet6)
	if !ok {
		t.Fatal("candidate sockaddr is not *unix.SockaddrInet6")
	}
	if sa.Port != 9090 {
		t.Errorf("candidate port = %d, want 9090", sa.Port)
	}
}

func TestResolvePassive_FiltersByFamily(t *testing.T) {
	t.Parallel()

	if _, err := net.LookupIP("localhost"); err != nil {
		t.Skipf("no resolver for localhost: %v", err)
	}

	cands, err := resolvePassive("localhost", 80, FamilyInet, SocketStream)
	if err != nil {
		t.Fatalf("resolvePassive(localhost) error = %v", err)
	}
	for _, c := range cands {
		if c.Family != FamilyInet {
			t.Errorf("candidate family = %s, want only inet", c.Family)
		}
		if _, ok := c.Sockaddr.(*unix.SockaddrInet4); !ok {
			t.Error("inet candidate should carry *unix.SockaddrInet4")
		}
	}
}
