//go:build linux

package socket

import (
	"golang.org/x/sys/unix"
)

// resolveCaps returns the capability table for Linux, which has no
// socket-level SIGPIPE option and suppresses the signal per send.
func resolveCaps() platformCaps {
	return platformCaps{
		sendFlags: unix.MSG_NOSIGNAL,
	}
}
