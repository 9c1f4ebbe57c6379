// Package security implements the transport-security delegate
// consumed by pkg/socket. The socket core only sees the two-method
// capability contract; the TLS specifics live here.
package security

import (
	"crypto/tls"
	"net"
	"time"

	"github.com/pkg/errors"

	"rawsock/pkg/crypto"
	"rawsock/pkg/log"
)

// TLSDelegate wraps accepted connections in TLS 1.3. Certificates are
// derived from a shared key; a non-empty key additionally enforces
// mutual authentication.
type TLSDelegate struct {
	key string
	cfg *tls.Config
}

// NewTLSDelegate returns an uninitialized delegate. The TLS
// configuration is built when the socket calls InitializeAsServer.
func NewTLSDelegate(key string) *TLSDelegate {
	return &TLSDelegate{key: key}
}

// InitializeAsServer builds the server-side TLS configuration.
func (d *TLSDelegate) InitializeAsServer() error {
	caCert, cert, err := crypto.GenerateCertificates(d.key)
	if err != nil {
		return errors.Wrap(err, "generating certificates")
	}

	cfg := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS13,
	}

	if d.key != "" {
		cfg.ClientAuth = tls.RequireAndVerifyClientCert
		cfg.ClientCAs = caCert
		log.VerboseMsg("TLS mutual authentication enabled\n")
	}

	d.cfg = cfg
	return nil
}

// Deinitialize releases the delegate's resources. It never fails
// outward; the socket calls it unconditionally during teardown.
func (d *TLSDelegate) Deinitialize() {
	d.cfg = nil
}

// Server wraps an accepted connection into the TLS server side.
// InitializeAsServer must have succeeded first.
func (d *TLSDelegate) Server(conn net.Conn) *tls.Conn {
	return tls.Server(conn, d.cfg)
}

// Handshake runs the server-side handshake with a deadline guard. The
// deadline is cleared right after the handshake so it cannot kill the
// healthy connection later.
func (d *TLSDelegate) Handshake(conn *tls.Conn, timeout time.Duration) error {
	if timeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(timeout))
	}

	err := conn.Handshake()

	if timeout > 0 {
		_ = conn.SetDeadline(time.Time{})
	}

	if err != nil {
		return errors.Wrap(err, "TLS handshake")
	}
	return nil
}
