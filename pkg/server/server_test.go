package server

import (
	"bytes"
	"crypto/tls"
	"io"
	"net"
	"strconv"
	"testing"

	"rawsock/pkg/config"
)

func startServer(t *testing.T, cfg *config.Shared) *Server {
	t.Helper()

	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if err := s.Listen(); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	if s.Addr() == "" {
		t.Fatal("Addr() empty after Listen()")
	}
	go s.Serve()

	return s
}

func TestServer_Echo(t *testing.T) {
	t.Parallel()

	s := startServer(t, &config.Shared{Port: 0, Backlog: 10})

	port := s.sock.Signature().Port
	conn, err := net.Dial("tcp4", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
	if err != nil {
		t.Fatalf("dialing server: %v", err)
	}
	defer conn.Close()

	msg := []byte("echo me")
	if _, err := conn.Write(msg); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := make([]byte, len(msg))
	if _, err := io.ReadFull(conn, got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, msg) {
		t.Errorf("echoed %q, want %q", got, msg)
	}
}

func TestServer_EchoWithTLS(t *testing.T) {
	t.Parallel()

	s := startServer(t, &config.Shared{Port: 0, Backlog: 10, SSL: true})

	sig := s.sock.Signature()
	if !sig.Secure {
		t.Error("Signature().Secure = false with SSL enabled")
	}

	conn, err := net.Dial("tcp4", net.JoinHostPort("127.0.0.1", strconv.Itoa(sig.Port)))
	if err != nil {
		t.Fatalf("dialing server: %v", err)
	}
	defer conn.Close()

	cli := tls.Client(conn, &tls.Config{
		InsecureSkipVerify: true,
		MinVersion:         tls.VersionTLS13,
	})
	if err := cli.Handshake(); err != nil {
		t.Fatalf("TLS handshake: %v", err)
	}

	msg := []byte("echo me securely")
	if _, err := cli.Write(msg); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := make([]byte, len(msg))
	if _, err := io.ReadFull(cli, got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, msg) {
		t.Errorf("echoed %q, want %q", got, msg)
	}
}

func TestServer_ServeAfterClose(t *testing.T) {
	t.Parallel()

	s, err := New(&config.Shared{Port: 0, Backlog: 10})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := s.Listen(); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Serve(); err == nil {
		t.Error("Serve() should fail on a closed listener")
	}
}
