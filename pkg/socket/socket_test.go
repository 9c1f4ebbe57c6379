package socket

import (
	"testing"
)

func TestCreate_Default(t *testing.T) {
	t.Parallel()

	s, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	defer s.Close()

	if s.FD() < 0 {
		t.Errorf("FD() = %d, want a valid descriptor", s.FD())
	}

	sig := s.Signature()
	if sig.Family != FamilyInet {
		t.Errorf("Signature().Family = %s, want inet", sig.Family)
	}
	if sig.Kind != SocketStream {
		t.Errorf("Signature().Kind = %s, want stream", sig.Kind)
	}
	if sig.Protocol != ProtoTCP {
		t.Errorf("Signature().Protocol = %s, want tcp", sig.Protocol)
	}
	if sig.Address != nil || sig.Hostname != "" || sig.Port != 0 {
		t.Error("Signature() address fields should be unset before Listen")
	}
	if sig.Secure {
		t.Error("Signature().Secure should be false without a delegate")
	}
}

func TestCreate_NotSupported(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		family AddressFamily
		kind   SocketKind
		proto  SocketProtocol
	}{
		{"datagram", FamilyInet, SocketDatagram, ProtoTCP},
		{"udp", FamilyInet, SocketStream, ProtoUDP},
		{"datagram udp", FamilyInet6, SocketDatagram, ProtoUDP},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := Create(tc.family, tc.kind, tc.proto)
			if s != nil {
				t.Error("Create() should not return a socket on failure")
			}
			if Code(err) != ErrNotSupportedYet {
				t.Errorf("Create() code = %s, want %s", Code(err), ErrNotSupportedYet)
			}
		})
	}
}

func TestCreate_IPv6(t *testing.T) {
	t.Parallel()

	s, err := Create(FamilyInet6, SocketStream, ProtoTCP)
	if err != nil {
		t.Fatalf("Create(inet6) error = %v", err)
	}
	defer s.Close()

	if sig := s.Signature(); sig.Family != FamilyInet6 {
		t.Errorf("Signature().Family = %s, want inet6", sig.Family)
	}
}

func TestClose_Idempotent(t *testing.T) {
	t.Parallel()

	s, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	if err := s.Close(); err != nil {
		t.Errorf("first Close() error = %v", err)
	}
	if s.FD() != invalidFD {
		t.Errorf("FD() after Close = %d, want %d", s.FD(), invalidFD)
	}
	if s.buf != nil {
		t.Error("read buffer should be released on Close")
	}

	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestClose_CallsDelegateTeardown(t *testing.T) {
	t.Parallel()

	s, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	d := &fakeDelegate{}
	s.SetDelegate(d)

	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if d.deinitialized != 1 {
		t.Errorf("delegate deinitialized %d times, want 1", d.deinitialized)
	}

	// A second Close must not run teardown again.
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if d.deinitialized != 1 {
		t.Errorf("delegate deinitialized %d times after double Close, want 1", d.deinitialized)
	}
}
