package socket

import (
	"io"
	"net"
	"os"

	"golang.org/x/sys/unix"
)

// Read reads from the socket through its owned read buffer. At most
// one buffer's worth of data is returned per call. An orderly peer
// shutdown yields io.EOF.
func (s *Socket) Read(p []byte) (int, error) {
	if s.closed {
		return 0, newError(ErrAlreadyClosed, "socket is closed")
	}

	limit := len(p)
	if limit > len(s.buf) {
		limit = len(s.buf)
	}

	n, err := unix.Read(s.fd, s.buf[:limit])
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, io.EOF
	}

	copy(p, s.buf[:n])
	return n, nil
}

// Write sends all of p, using the capability table's send flags so
// platforms without SO_NOSIGPIPE suppress SIGPIPE per send.
func (s *Socket) Write(p []byte) (int, error) {
	if s.closed {
		return 0, newError(ErrAlreadyClosed, "socket is closed")
	}

	total := 0
	for total < len(p) {
		n, err := unix.SendmsgN(s.fd, p[total:], nil, nil, caps.sendFlags)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// NetConn duplicates the descriptor into an independent net.Conn, so
// accepted connections can be handed to code built on the standard
// networking interfaces (e.g. a TLS wrapper). The socket keeps
// ownership of its own descriptor; closing one does not close the
// other.
func (s *Socket) NetConn() (net.Conn, error) {
	if s.closed {
		return nil, newError(ErrAlreadyClosed, "socket is closed")
	}

	nfd, err := unix.Dup(s.fd)
	if err != nil {
		return nil, wrapError(err, ErrInternal, "dup")
	}

	f := os.NewFile(uintptr(nfd), "socket")
	defer f.Close()

	conn, err := net.FileConn(f)
	if err != nil {
		return nil, wrapError(err, ErrInternal, "net.FileConn")
	}
	return conn, nil
}
