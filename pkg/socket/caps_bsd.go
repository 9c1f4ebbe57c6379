//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package socket

import (
	"golang.org/x/sys/unix"
)

// resolveCaps returns the capability table for BSD-style platforms,
// which carry a socket-level SO_NOSIGPIPE option.
func resolveCaps() platformCaps {
	return platformCaps{
		noSigPipeOpt: unix.SO_NOSIGPIPE,
	}
}
