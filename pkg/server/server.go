// Package server is a minimal accept-and-echo server demonstrating
// how the socket core, delegate, and CLI fit together.
package server

import (
	"io"
	"time"

	"github.com/pkg/errors"

	"rawsock/pkg/config"
	"rawsock/pkg/log"
	"rawsock/pkg/security"
	"rawsock/pkg/socket"
)

const handshakeTimeout = 10 * time.Second

// Server listens on the configured port and echoes every accepted
// connection, TLS-wrapped when SSL is enabled.
type Server struct {
	cfg  *config.Shared
	sock *socket.Socket
	tlsd *security.TLSDelegate
}

// New creates the listening socket and attaches the TLS delegate when
// SSL is enabled.
func New(cfg *config.Shared) (*Server, error) {
	sock, err := socket.Default()
	if err != nil {
		return nil, errors.Wrap(err, "creating socket")
	}

	s := &Server{cfg: cfg, sock: sock}
	if cfg.SSL {
		s.tlsd = security.NewTLSDelegate(cfg.GetKey())
		sock.SetDelegate(s.tlsd)
	}

	return s, nil
}

// Addr returns the bound address once Serve has started listening.
func (s *Server) Addr() string {
	sig := s.sock.Signature()
	if sig.Address == nil {
		return ""
	}
	return sig.Address.String()
}

// Listen binds the socket to the configured port.
func (s *Server) Listen() error {
	if err := s.sock.Listen(s.cfg.Port, s.cfg.Backlog); err != nil {
		return errors.Wrap(err, "listening")
	}

	sig := s.sock.Signature()
	log.InfoMsg("Listening on %s (secure: %t)\n", sig.Address, sig.Secure)

	return nil
}

// Serve handles connections until Accept fails, e.g. because Close
// was called. Listen must have succeeded first.
func (s *Server) Serve() error {
	for {
		child, err := s.sock.Accept()
		if err != nil {
			return errors.Wrap(err, "accepting")
		}

		go func() {
			defer child.Close()

			log.InfoMsg("New connection from %s\n", child.Signature().Address)

			if err := s.handle(child); err != nil {
				log.ErrorMsg("Handling connection: %s\n", err)
			}
		}()
	}
}

// Close shuts the listener down. Idempotent, like the socket teardown
// beneath it.
func (s *Server) Close() error {
	return s.sock.Close()
}

func (s *Server) handle(child *socket.Socket) error {
	if s.tlsd == nil {
		_, err := io.Copy(child, child)
		return err
	}

	conn, err := child.NetConn()
	if err != nil {
		return errors.Wrap(err, "detaching connection")
	}
	defer conn.Close()

	tlsConn := s.tlsd.Server(conn)
	if err := s.tlsd.Handshake(tlsConn, handshakeTimeout); err != nil {
		return err
	}

	_, err = io.Copy(tlsConn, tlsConn)
	return err
}
